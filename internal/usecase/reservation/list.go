package reservation

import (
	"context"

	domain "github.com/BruksfildServices01/restaurant-api/internal/domain/reservation"
	"github.com/BruksfildServices01/restaurant-api/internal/dto"
	"github.com/BruksfildServices01/restaurant-api/internal/models"
)

type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

func (uc *ListReservations) Execute(ctx context.Context, f domain.Filter) ([]models.Reservation, error) {
	out, err := uc.repo.QueryReservations(ctx, f)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Reservation{}
	}
	return out, nil
}

type ListCustomerReservations struct {
	repo domain.Repository
}

func NewListCustomerReservations(repo domain.Repository) *ListCustomerReservations {
	return &ListCustomerReservations{repo: repo}
}

func (uc *ListCustomerReservations) Execute(
	ctx context.Context,
	f domain.Filter,
) ([]dto.CustomerReservationDTO, error) {

	reservations, err := uc.repo.QueryReservationsDetailed(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CustomerReservationDTO, 0, len(reservations))
	for _, r := range reservations {
		item := dto.CustomerReservationDTO{
			ID:        r.ID,
			Date:      r.Date,
			Time:      r.Time,
			Guests:    r.Guests,
			Status:    r.Status,
			UserID:    r.UserID,
			Tables:    make([]int, 0, len(r.Assignments)),
			CreatedAt: r.CreatedAt,
		}
		if r.User != nil {
			item.Name = r.User.Name
			item.Surname = r.User.Surname
		}
		for _, a := range r.Assignments {
			if a.Table != nil {
				item.Tables = append(item.Tables, a.Table.Number)
			}
		}
		out = append(out, item)
	}

	return out, nil
}
