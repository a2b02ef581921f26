package reservation

import (
	"context"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/restaurant-api/internal/audit"
	domain "github.com/BruksfildServices01/restaurant-api/internal/domain/reservation"
	"github.com/BruksfildServices01/restaurant-api/internal/models"
	"github.com/BruksfildServices01/restaurant-api/internal/notify"
)

const (
	testDate = "2099-06-15"
	testTZ   = "UTC"
)

type recordingNotifier struct {
	mu   sync.Mutex
	msgs []notify.Message
}

func (n *recordingNotifier) Dispatch(msg notify.Message) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
}

func (n *recordingNotifier) kinds() []notify.Kind {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]notify.Kind, 0, len(n.msgs))
	for _, m := range n.msgs {
		out = append(out, m.Kind)
	}
	return out
}

type recordingAuditor struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *recordingAuditor) Dispatch(ev audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
}

func (a *recordingAuditor) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.events))
	for _, ev := range a.events {
		out = append(out, ev.Action)
	}
	return out
}

// staleRepo simula a janela check-then-act: toda mesa parece livre,
// mesmo quando outra reserva já a ocupa.
type staleRepo struct {
	domain.Repository
}

func (s staleRepo) IsTableReserved(context.Context, uint, string, domain.Slot) (bool, error) {
	return false, nil
}

func (s staleRepo) Transaction(ctx context.Context, fn func(repo domain.Repository) error) error {
	return s.Repository.Transaction(ctx, func(tx domain.Repository) error {
		return fn(staleRepo{tx})
	})
}

// hold grava diretamente uma reserva que ocupa as mesas dadas.
func hold(t *testing.T, gdb *gorm.DB, userID uint, date, slot string, tableIDs ...uint) models.Reservation {
	t.Helper()

	res := models.Reservation{Date: date, Time: slot, Guests: 1, Status: "pending", UserID: userID}
	if err := gdb.Omit("User", "Assignments").Create(&res).Error; err != nil {
		t.Fatalf("failed to seed reservation: %v", err)
	}
	for _, id := range tableIDs {
		a := models.TableAssignment{ReservationID: res.ID, TableID: id, Date: date, Time: slot}
		if err := gdb.Omit("Table").Create(&a).Error; err != nil {
			t.Fatalf("failed to seed assignment: %v", err)
		}
	}
	return res
}

func count(t *testing.T, gdb *gorm.DB, model any) int64 {
	t.Helper()

	var n int64
	if err := gdb.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}
