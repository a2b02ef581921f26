package table

import (
	"context"

	reservation "github.com/BruksfildServices01/restaurant-api/internal/domain/reservation"
	domain "github.com/BruksfildServices01/restaurant-api/internal/domain/table"
	"github.com/BruksfildServices01/restaurant-api/internal/dto"
	"github.com/BruksfildServices01/restaurant-api/internal/httperr"
	"github.com/BruksfildServices01/restaurant-api/internal/models"
	"github.com/BruksfildServices01/restaurant-api/internal/timezone"
)

// ======================================================
// GRADE DE DISPONIBILIDADE
// ======================================================

type GetAvailability struct {
	repo domain.Repository
	tz   string
}

func NewGetAvailability(repo domain.Repository, tz string) *GetAvailability {
	return &GetAvailability{repo: repo, tz: tz}
}

// Execute devolve, para cada mesa, quais slots do dia ainda estão livres.
func (uc *GetAvailability) Execute(ctx context.Context, date string) ([]dto.TableAvailabilityDTO, error) {
	if _, err := timezone.ParseDate(uc.tz, date); err != nil {
		return nil, httperr.ErrBadRequest("invalid_date")
	}

	tables, err := uc.repo.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	assignments, err := uc.repo.ListAssignmentsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[uint]map[string]bool, len(assignments))
	for _, a := range assignments {
		if taken[a.TableID] == nil {
			taken[a.TableID] = map[string]bool{}
		}
		taken[a.TableID][a.Time] = true
	}

	out := make([]dto.TableAvailabilityDTO, 0, len(tables))
	for _, t := range tables {
		free := make(map[string]bool, len(reservation.Slots))
		for _, s := range reservation.Slots {
			free[string(s)] = !taken[t.ID][string(s)]
		}

		out = append(out, dto.TableAvailabilityDTO{
			ID:        t.ID,
			Number:    t.Number,
			Location:  t.Location,
			Capacity:  t.Capacity,
			Available: free,
		})
	}

	return out, nil
}

// ======================================================
// ATRIBUIÇÕES FUTURAS
// ======================================================

type ListFutureAssignments struct {
	repo domain.Repository
	tz   string
}

func NewListFutureAssignments(repo domain.Repository, tz string) *ListFutureAssignments {
	return &ListFutureAssignments{repo: repo, tz: tz}
}

func (uc *ListFutureAssignments) Execute(ctx context.Context, from string) ([]models.TableAssignment, error) {
	if _, err := timezone.ParseDate(uc.tz, from); err != nil {
		return nil, httperr.ErrBadRequest("invalid_date")
	}

	out, err := uc.repo.ListAssignmentsFrom(ctx, from)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.TableAssignment{}
	}
	return out, nil
}
