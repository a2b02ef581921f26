package reservation

import (
	"context"

	domain "github.com/BruksfildServices01/restaurant-api/internal/domain/reservation"
	"github.com/BruksfildServices01/restaurant-api/internal/httperr"
	"github.com/BruksfildServices01/restaurant-api/internal/models"
)

type GetReservation struct {
	repo domain.Repository
}

func NewGetReservation(repo domain.Repository) *GetReservation {
	return &GetReservation{repo: repo}
}

func (uc *GetReservation) Execute(ctx context.Context, id uint) (*models.Reservation, error) {
	res, err := uc.repo.GetReservationByID(ctx, id)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrNotFound("reservation_not_found")
		}
		return nil, err
	}
	return res, nil
}
