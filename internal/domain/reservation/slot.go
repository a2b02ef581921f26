package reservation

import (
	"github.com/BruksfildServices01/restaurant-api/internal/httperr"
)

// Slot é o período de serviço reservável dentro de um dia.
type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
)

// Slots na ordem do dia.
var Slots = []Slot{SlotBreakfast, SlotLunch, SlotDinner}

func ParseSlot(s string) (Slot, error) {
	for _, slot := range Slots {
		if string(slot) == s {
			return slot, nil
		}
	}
	return "", httperr.ErrBadRequest("invalid_time")
}
