package reservation

import (
	"context"

	"github.com/BruksfildServices01/restaurant-api/internal/audit"
	domain "github.com/BruksfildServices01/restaurant-api/internal/domain/reservation"
	"github.com/BruksfildServices01/restaurant-api/internal/httperr"
	"github.com/BruksfildServices01/restaurant-api/internal/models"
)

type DeleteReservation struct {
	repo  domain.Repository
	audit Auditor
}

func NewDeleteReservation(repo domain.Repository, audit Auditor) *DeleteReservation {
	return &DeleteReservation{repo: repo, audit: audit}
}

// Execute devolve a reserva apagada.
func (uc *DeleteReservation) Execute(ctx context.Context, id uint) (*models.Reservation, error) {
	res, err := uc.repo.GetReservationByID(ctx, id)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrNotFound("reservation_not_found")
		}
		return nil, err
	}

	if err := uc.repo.DeleteReservation(ctx, id); err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrNotFound("reservation_not_found")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(res.UserID),
		Action:   "reservation_deleted",
		Entity:   "reservation",
		EntityID: audit.Ptr(res.ID),
	})

	return res, nil
}
