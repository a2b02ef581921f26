package table

import (
	"context"

	"github.com/BruksfildServices01/restaurant-api/internal/models"
)

type Repository interface {
	ListTables(ctx context.Context) ([]models.Table, error)
	GetTableByID(ctx context.Context, id uint) (*models.Table, error)
	CreateTable(ctx context.Context, t *models.Table) error
	UpdateTableCapacity(ctx context.Context, id uint, capacity int) error
	DeleteTable(ctx context.Context, id uint) error

	Transaction(ctx context.Context, fn func(repo Repository) error) error

	// -------- Assignments --------
	CountAssignmentsFrom(ctx context.Context, tableID uint, date string) (int64, error)
	// CountUndersizedReservations conta reservas ativas a partir de date que
	// usam a mesa e cuja capacidade somada ficou abaixo de guests.
	CountUndersizedReservations(ctx context.Context, tableID uint, date string) (int64, error)
	ListAssignmentsByDate(ctx context.Context, date string) ([]models.TableAssignment, error)
	ListAssignmentsFrom(ctx context.Context, date string) ([]models.TableAssignment, error)
}
