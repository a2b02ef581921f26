package reservation

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/restaurant-api/internal/audit"
	domain "github.com/BruksfildServices01/restaurant-api/internal/domain/reservation"
	"github.com/BruksfildServices01/restaurant-api/internal/httperr"
	"github.com/BruksfildServices01/restaurant-api/internal/models"
	"github.com/BruksfildServices01/restaurant-api/internal/notify"
	"github.com/BruksfildServices01/restaurant-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateByLocationInput struct {
	Date     string
	Time     string
	Guests   int
	Status   string
	UserID   uint
	Location string
}

type CreateByLocationOutput struct {
	Reservation *models.Reservation
	Tables      []models.Table
}

// ======================================================
// USE CASE
// ======================================================

type CreateByLocation struct {
	repo     domain.Repository
	notifier Notifier
	audit    Auditor
	log      *logrus.Logger
	tz       string
}

func NewCreateByLocation(
	repo domain.Repository,
	notifier Notifier,
	audit Auditor,
	log *logrus.Logger,
	tz string,
) *CreateByLocation {
	return &CreateByLocation{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		log:      log,
		tz:       tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateByLocation) Execute(
	ctx context.Context,
	in CreateByLocationInput,
) (*CreateByLocationOutput, error) {

	// --------------------------------------------------
	// 1️⃣ Validação (nada é gravado antes disso)
	// --------------------------------------------------
	in.Location = strings.TrimSpace(in.Location)

	slot, status, err := uc.validate(in)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Usuário + aviso de recebimento (assíncrono)
	// --------------------------------------------------
	user, err := uc.repo.GetUserByID(ctx, in.UserID)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrNotFound("user_not_found")
		}
		return nil, err
	}

	uc.notifier.Dispatch(notify.ReservationReceived(user))

	// --------------------------------------------------
	// 3️⃣ Alocação + reserva + mesas numa única transação
	// --------------------------------------------------
	var (
		res    models.Reservation
		tables []models.Table
	)

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		allocated, err := domain.NewAllocator(tx, tx).Allocate(ctx, domain.AllocationRequest{
			Location: in.Location,
			Date:     in.Date,
			Slot:     slot,
			Guests:   in.Guests,
		})
		if err != nil {
			return err
		}

		res = models.Reservation{
			Date:   in.Date,
			Time:   string(slot),
			Guests: in.Guests,
			Status: string(status),
			UserID: user.ID,
		}
		if err := tx.CreateReservation(ctx, &res); err != nil {
			return err
		}

		for _, t := range allocated {
			if err := tx.CreateAssignment(ctx, &models.TableAssignment{
				ReservationID: res.ID,
				TableID:       t.ID,
				Date:          in.Date,
				Time:          string(slot),
			}); err != nil {
				return err
			}
		}

		tables = allocated
		return nil
	})

	// --------------------------------------------------
	// 4️⃣ Falha: o rollback desfaz reserva e mesas
	// --------------------------------------------------
	if err != nil {
		err = httperr.Classify(err, "tables_already_reserved")
		uc.logFailure(in, err)
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Auditoria + confirmação
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(user.ID),
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: audit.Ptr(res.ID),
		Metadata: map[string]any{
			"location": in.Location,
			"guests":   in.Guests,
			"tables":   tableIDs(tables),
			"capacity": domain.TotalCapacity(tables),
		},
	})

	if status == domain.StatusConfirmed {
		uc.notifier.Dispatch(notify.ReservationConfirmed(user, &res))
	}

	uc.log.WithFields(logrus.Fields{
		"reservation_id": res.ID,
		"location":       in.Location,
		"date":           in.Date,
		"time":           res.Time,
		"guests":         in.Guests,
		"tables":         tableIDs(tables),
	}).Info("reservation created")

	return &CreateByLocationOutput{Reservation: &res, Tables: tables}, nil
}

func (uc *CreateByLocation) validate(in CreateByLocationInput) (domain.Slot, domain.Status, error) {
	if in.Location == "" || in.UserID == 0 {
		return "", "", httperr.ErrBadRequest("invalid_body")
	}
	if in.Guests <= 0 {
		return "", "", httperr.ErrBadRequest("invalid_guests")
	}

	date, err := timezone.ParseDate(uc.tz, in.Date)
	if err != nil {
		return "", "", httperr.ErrBadRequest("invalid_date")
	}
	if date.Format(timezone.DateLayout) < timezone.Today(uc.tz) {
		return "", "", httperr.ErrBadRequest("date_in_past")
	}

	slot, err := domain.ParseSlot(in.Time)
	if err != nil {
		return "", "", err
	}

	status, err := domain.InitialStatus(in.Status)
	if err != nil {
		return "", "", err
	}

	return slot, status, nil
}

func (uc *CreateByLocation) logFailure(in CreateByLocationInput, err error) {
	fields := logrus.Fields{
		"location": in.Location,
		"date":     in.Date,
		"time":     in.Time,
		"guests":   in.Guests,
		"user_id":  in.UserID,
	}

	kind, ok := httperr.KindOf(err)
	if !ok {
		uc.log.WithError(err).WithFields(fields).Error("reservation failed")
		return
	}

	if kind == httperr.KindConflict {
		uc.audit.Dispatch(audit.Event{
			UserID:   audit.Ptr(in.UserID),
			Action:   "reservation_conflict",
			Entity:   "reservation",
			Metadata: map[string]any{"reason": err.Error(), "location": in.Location, "date": in.Date, "time": in.Time},
		})
	}
	uc.log.WithFields(fields).WithField("reason", err.Error()).Info("reservation rejected")
}

func tableIDs(tables []models.Table) []uint {
	out := make([]uint, 0, len(tables))
	for _, t := range tables {
		out = append(out, t.ID)
	}
	return out
}
