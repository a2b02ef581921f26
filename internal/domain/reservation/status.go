package reservation

import "github.com/BruksfildServices01/restaurant-api/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return st, nil
	}
	return "", httperr.ErrBadRequest("invalid_status")
}

// ===============================
// Validations
// ===============================

// InitialStatus valida o estado com que a reserva é criada.
func InitialStatus(s string) (Status, error) {
	st, err := ParseStatus(s)
	if err != nil {
		return "", err
	}
	if st != StatusPending && st != StatusConfirmed {
		return "", httperr.ErrBadRequest("invalid_initial_status")
	}
	return st, nil
}

func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrConflict("invalid_transition")
}

// HoldsTables indica se a reserva ainda ocupa mesas.
func (s Status) HoldsTables() bool {
	return s != StatusCancelled
}
