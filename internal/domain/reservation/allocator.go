package reservation

import (
	"context"

	"github.com/BruksfildServices01/restaurant-api/internal/httperr"
	"github.com/BruksfildServices01/restaurant-api/internal/models"
)

type AllocationRequest struct {
	Location string
	Date     string
	Slot     Slot
	Guests   int
}

type Allocator struct {
	tables TableDirectory
	avail  AvailabilityChecker
}

func NewAllocator(tables TableDirectory, avail AvailabilityChecker) *Allocator {
	return &Allocator{tables: tables, avail: avail}
}

// Allocate escolhe mesas livres na ordem do diretório (first-fit) até a
// capacidade acumulada cobrir os convidados. Pode sobrar capacidade; nunca falta.
func (a *Allocator) Allocate(ctx context.Context, in AllocationRequest) ([]models.Table, error) {
	if in.Guests <= 0 {
		return nil, httperr.ErrBadRequest("invalid_guests")
	}

	tables, err := a.tables.ListTablesByLocation(ctx, in.Location)
	if err != nil {
		return nil, err
	}

	capacity := 0
	selected := make([]models.Table, 0, len(tables))

	for _, t := range tables {
		if capacity >= in.Guests {
			break
		}

		reserved, err := a.avail.IsTableReserved(ctx, t.ID, in.Date, in.Slot)
		if err != nil {
			return nil, err
		}
		if reserved {
			continue
		}

		capacity += t.Capacity
		selected = append(selected, t)
	}

	if in.Guests > capacity {
		return nil, httperr.ErrConflict("insufficient_capacity")
	}

	return selected, nil
}

func TotalCapacity(tables []models.Table) int {
	total := 0
	for _, t := range tables {
		total += t.Capacity
	}
	return total
}
