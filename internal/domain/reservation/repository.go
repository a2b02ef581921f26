package reservation

import (
	"context"

	"github.com/BruksfildServices01/restaurant-api/internal/models"
)

// TableDirectory é o registro de mesas físicas.
type TableDirectory interface {
	ListTablesByLocation(ctx context.Context, location string) ([]models.Table, error)
	GetTableByID(ctx context.Context, id uint) (*models.Table, error)
	GetTableByNumber(ctx context.Context, number int) (*models.Table, error)
}

// AvailabilityChecker responde se uma mesa já está presa num slot.
type AvailabilityChecker interface {
	IsTableReserved(ctx context.Context, tableID uint, date string, slot Slot) (bool, error)
}

// Filter com os campos opcionais da listagem. Zero = sem filtro.
type Filter struct {
	ID     uint
	Date   string
	Time   string
	Guests int
	Status string
	UserID uint
}

type Repository interface {
	TableDirectory
	AvailabilityChecker

	// -------- Users --------
	GetUserByID(ctx context.Context, id uint) (*models.User, error)

	// -------- Reservations --------
	CreateReservation(ctx context.Context, r *models.Reservation) error
	GetReservationByID(ctx context.Context, id uint) (*models.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id uint, status Status) error
	DeleteReservation(ctx context.Context, id uint) error
	QueryReservations(ctx context.Context, f Filter) ([]models.Reservation, error)
	QueryReservationsDetailed(ctx context.Context, f Filter) ([]models.Reservation, error)

	// -------- Assignments --------
	CreateAssignment(ctx context.Context, a *models.TableAssignment) error
	ListTableIDsForReservation(ctx context.Context, reservationID uint) ([]uint, error)
	ReleaseTables(ctx context.Context, reservationID uint) error

	// Transaction executa fn numa transação; o repo recebido só
	// deve ser usado dentro de fn.
	Transaction(ctx context.Context, fn func(repo Repository) error) error
}
