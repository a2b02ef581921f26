package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/restaurant-api/internal/domain/reservation"
	"github.com/BruksfildServices01/restaurant-api/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

func (r *ReservationGormRepository) Transaction(
	ctx context.Context,
	fn func(repo domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ReservationGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *ReservationGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Table directory
// --------------------------------------------------

func (r *ReservationGormRepository) ListTablesByLocation(
	ctx context.Context,
	location string,
) ([]models.Table, error) {

	var tables []models.Table
	if err := r.db.WithContext(ctx).
		Where("location = ?", location).
		Order("number ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *ReservationGormRepository) GetTableByID(
	ctx context.Context,
	id uint,
) (*models.Table, error) {

	var table models.Table
	if err := r.db.WithContext(ctx).First(&table, id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *ReservationGormRepository) GetTableByNumber(
	ctx context.Context,
	number int,
) (*models.Table, error) {

	var table models.Table
	if err := r.db.WithContext(ctx).
		Where("number = ?", number).
		First(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *ReservationGormRepository) IsTableReserved(
	ctx context.Context,
	tableID uint,
	date string,
	slot domain.Slot,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TableAssignment{}).
		Where("table_id = ? AND date = ? AND time = ?", tableID, date, string(slot)).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Omit("User", "Assignments").Create(res).Error
}

func (r *ReservationGormRepository) GetReservationByID(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) UpdateReservationStatus(
	ctx context.Context,
	id uint,
	status domain.Status,
) error {

	result := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteReservation apaga as mesas presas e a reserva na mesma transação.
func (r *ReservationGormRepository) DeleteReservation(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("reservation_id = ?", id).
			Delete(&models.TableAssignment{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Reservation{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *ReservationGormRepository) QueryReservations(
	ctx context.Context,
	f domain.Filter,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.filtered(ctx, f).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// QueryReservationsDetailed carrega o dono e as mesas de cada reserva.
func (r *ReservationGormRepository) QueryReservationsDetailed(
	ctx context.Context,
	f domain.Filter,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.filtered(ctx, f).
		Preload("User").
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("table_id ASC")
		}).
		Preload("Assignments.Table").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationGormRepository) filtered(ctx context.Context, f domain.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Reservation{})

	if f.ID != 0 {
		q = q.Where("id = ?", f.ID)
	}
	if f.Date != "" {
		q = q.Where("date = ?", f.Date)
	}
	if f.Time != "" {
		q = q.Where("time = ?", f.Time)
	}
	if f.Guests != 0 {
		q = q.Where("guests = ?", f.Guests)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}

	return q.Order("date ASC").Order("id ASC")
}

// --------------------------------------------------
// Assignments
// --------------------------------------------------

func (r *ReservationGormRepository) CreateAssignment(
	ctx context.Context,
	a *models.TableAssignment,
) error {
	return r.db.WithContext(ctx).Omit("Table").Create(a).Error
}

func (r *ReservationGormRepository) ListTableIDsForReservation(
	ctx context.Context,
	reservationID uint,
) ([]uint, error) {

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.TableAssignment{}).
		Where("reservation_id = ?", reservationID).
		Order("table_id ASC").
		Pluck("table_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *ReservationGormRepository) ReleaseTables(
	ctx context.Context,
	reservationID uint,
) error {
	return r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Delete(&models.TableAssignment{}).Error
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
