package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/restaurant-api/internal/models"
	tableDomain "github.com/BruksfildServices01/restaurant-api/internal/domain/table"
)

type TableGormRepository struct {
	db *gorm.DB
}

func NewTableGormRepository(db *gorm.DB) *TableGormRepository {
	return &TableGormRepository{db: db}
}

func (r *TableGormRepository) Transaction(
	ctx context.Context,
	fn func(repo tableDomain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&TableGormRepository{db: tx})
	})
}

func (r *TableGormRepository) ListTables(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if err := r.db.WithContext(ctx).Order("number ASC").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *TableGormRepository) GetTableByID(ctx context.Context, id uint) (*models.Table, error) {
	var table models.Table
	if err := r.db.WithContext(ctx).First(&table, id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *TableGormRepository) CreateTable(ctx context.Context, t *models.Table) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TableGormRepository) UpdateTableCapacity(ctx context.Context, id uint, capacity int) error {
	result := r.db.WithContext(ctx).
		Model(&models.Table{}).
		Where("id = ?", id).
		Update("capacity", capacity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TableGormRepository) DeleteTable(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Table{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TableGormRepository) CountAssignmentsFrom(
	ctx context.Context,
	tableID uint,
	date string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TableAssignment{}).
		Where("table_id = ? AND date >= ?", tableID, date).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TableGormRepository) CountUndersizedReservations(
	ctx context.Context,
	tableID uint,
	date string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM (
			SELECT r.id
			FROM reservations r
			JOIN table_assignments a ON a.reservation_id = r.id
			JOIN tables t ON t.id = a.table_id
			WHERE r.status <> ?
			  AND r.date >= ?
			  AND r.id IN (SELECT reservation_id FROM table_assignments WHERE table_id = ?)
			GROUP BY r.id, r.guests
			HAVING SUM(t.capacity) < r.guests
		) undersized`,
		"cancelled", date, tableID,
	).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TableGormRepository) ListAssignmentsByDate(
	ctx context.Context,
	date string,
) ([]models.TableAssignment, error) {

	var out []models.TableAssignment
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TableGormRepository) ListAssignmentsFrom(
	ctx context.Context,
	date string,
) ([]models.TableAssignment, error) {

	var out []models.TableAssignment
	if err := r.db.WithContext(ctx).
		Where("date >= ?", date).
		Order("date ASC").
		Order("table_id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ tableDomain.Repository = (*TableGormRepository)(nil)
