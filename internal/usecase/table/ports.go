package table

import "github.com/BruksfildServices01/restaurant-api/internal/audit"

type Auditor interface {
	Dispatch(ev audit.Event)
}
