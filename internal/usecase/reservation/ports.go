package reservation

import (
	"github.com/BruksfildServices01/restaurant-api/internal/audit"
	"github.com/BruksfildServices01/restaurant-api/internal/notify"
)

type Notifier interface {
	Dispatch(msg notify.Message)
}

type Auditor interface {
	Dispatch(ev audit.Event)
}
