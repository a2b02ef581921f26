package table

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/restaurant-api/internal/audit"
	domain "github.com/BruksfildServices01/restaurant-api/internal/domain/table"
	"github.com/BruksfildServices01/restaurant-api/internal/httperr"
	"github.com/BruksfildServices01/restaurant-api/internal/models"
	"github.com/BruksfildServices01/restaurant-api/internal/timezone"
)

// ======================================================
// LIST
// ======================================================

type ListTables struct {
	repo domain.Repository
}

func NewListTables(repo domain.Repository) *ListTables {
	return &ListTables{repo: repo}
}

func (uc *ListTables) Execute(ctx context.Context) ([]models.Table, error) {
	out, err := uc.repo.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Table{}
	}
	return out, nil
}

// ======================================================
// UPDATE CAPACITY
// ======================================================

type UpdateCapacity struct {
	repo  domain.Repository
	audit Auditor
	tz    string
}

func NewUpdateCapacity(repo domain.Repository, audit Auditor, tz string) *UpdateCapacity {
	return &UpdateCapacity{repo: repo, audit: audit, tz: tz}
}

func (uc *UpdateCapacity) Execute(
	ctx context.Context,
	id uint,
	capacity int,
	actorID uint,
) (*models.Table, error) {

	if capacity <= 0 {
		return nil, httperr.ErrBadRequest("invalid_capacity")
	}

	var t *models.Table

	// grava e confere na mesma transação: se alguma reserva ativa ficar
	// sem lugares suficientes, o rollback desfaz a alteração
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.UpdateTableCapacity(ctx, id, capacity); err != nil {
			if httperr.IsNotFound(err) {
				return httperr.ErrNotFound("table_not_found")
			}
			return err
		}

		undersized, err := tx.CountUndersizedReservations(ctx, id, timezone.Today(uc.tz))
		if err != nil {
			return err
		}
		if undersized > 0 {
			return httperr.ErrConflict("capacity_below_reservations")
		}

		t, err = tx.GetTableByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   optional(actorID),
		Action:   "table_capacity_updated",
		Entity:   "table",
		EntityID: audit.Ptr(id),
		Metadata: map[string]any{"capacity": capacity},
	})

	return t, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteTable struct {
	repo  domain.Repository
	audit Auditor
	log   *logrus.Logger
	tz    string
}

func NewDeleteTable(repo domain.Repository, audit Auditor, log *logrus.Logger, tz string) *DeleteTable {
	return &DeleteTable{repo: repo, audit: audit, log: log, tz: tz}
}

// Execute só remove mesas sem reservas de hoje em diante.
func (uc *DeleteTable) Execute(ctx context.Context, id uint, actorID uint) (*models.Table, error) {
	t, err := uc.repo.GetTableByID(ctx, id)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrNotFound("table_not_found")
		}
		return nil, err
	}

	pending, err := uc.repo.CountAssignmentsFrom(ctx, id, timezone.Today(uc.tz))
	if err != nil {
		return nil, err
	}
	if pending > 0 {
		return nil, httperr.ErrConflict("table_has_reservations")
	}

	if err := uc.repo.DeleteTable(ctx, id); err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrNotFound("table_not_found")
		}
		// atribuições antigas ainda apontam para a mesa
		if httperr.IsForeignKey(err) {
			return nil, httperr.ErrConflict("table_has_reservations")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   optional(actorID),
		Action:   "table_deleted",
		Entity:   "table",
		EntityID: audit.Ptr(id),
	})
	uc.log.WithField("table_id", id).Info("table deleted")

	return t, nil
}
