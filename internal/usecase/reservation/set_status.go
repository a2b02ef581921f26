package reservation

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/restaurant-api/internal/audit"
	domain "github.com/BruksfildServices01/restaurant-api/internal/domain/reservation"
	"github.com/BruksfildServices01/restaurant-api/internal/httperr"
	"github.com/BruksfildServices01/restaurant-api/internal/models"
	"github.com/BruksfildServices01/restaurant-api/internal/notify"
)

type SetStatus struct {
	repo     domain.Repository
	notifier Notifier
	audit    Auditor
	log      *logrus.Logger
}

func NewSetStatus(
	repo domain.Repository,
	notifier Notifier,
	audit Auditor,
	log *logrus.Logger,
) *SetStatus {
	return &SetStatus{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		log:      log,
	}
}

func (uc *SetStatus) Execute(
	ctx context.Context,
	id uint,
	target string,
) (*models.Reservation, error) {

	to, err := domain.ParseStatus(target)
	if err != nil {
		return nil, err
	}

	var res *models.Reservation
	var from domain.Status

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		current, err := tx.GetReservationByID(ctx, id)
		if err != nil {
			if httperr.IsNotFound(err) {
				return httperr.ErrNotFound("reservation_not_found")
			}
			return err
		}

		from, err = domain.ParseStatus(current.Status)
		if err != nil {
			return httperr.ErrConflict("invalid_transition")
		}
		if err := domain.CanTransition(from, to); err != nil {
			return err
		}

		if err := tx.UpdateReservationStatus(ctx, id, to); err != nil {
			return err
		}

		// cancelada não segura mais as mesas
		if !to.HoldsTables() {
			if err := tx.ReleaseTables(ctx, id); err != nil {
				return err
			}
		}

		current.Status = string(to)
		res = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(res.UserID),
		Action:   "reservation_" + string(to),
		Entity:   "reservation",
		EntityID: audit.Ptr(res.ID),
		Metadata: map[string]any{"from": from, "to": to},
	})

	if to == domain.StatusConfirmed {
		uc.notifyConfirmed(ctx, res)
	}

	return res, nil
}

// notifyConfirmed é best-effort: falhas só vão para o log.
func (uc *SetStatus) notifyConfirmed(ctx context.Context, res *models.Reservation) {
	user, err := uc.repo.GetUserByID(ctx, res.UserID)
	if err != nil {
		uc.log.WithError(err).WithField("reservation_id", res.ID).
			Warn("confirmation not sent: owner lookup failed")
		return
	}
	uc.notifier.Dispatch(notify.ReservationConfirmed(user, res))
}
