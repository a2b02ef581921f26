package table

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/restaurant-api/internal/audit"
	domain "github.com/BruksfildServices01/restaurant-api/internal/domain/table"
	"github.com/BruksfildServices01/restaurant-api/internal/httperr"
	"github.com/BruksfildServices01/restaurant-api/internal/models"
)

type CreateTableInput struct {
	Number   int
	Capacity int
	Location string
	ActorID  uint
}

type CreateTable struct {
	repo  domain.Repository
	audit Auditor
	log   *logrus.Logger
}

func NewCreateTable(repo domain.Repository, audit Auditor, log *logrus.Logger) *CreateTable {
	return &CreateTable{repo: repo, audit: audit, log: log}
}

func (uc *CreateTable) Execute(ctx context.Context, in CreateTableInput) (*models.Table, error) {
	location := strings.TrimSpace(in.Location)
	if in.Number <= 0 || location == "" {
		return nil, httperr.ErrBadRequest("invalid_body")
	}
	if in.Capacity <= 0 {
		return nil, httperr.ErrBadRequest("invalid_capacity")
	}

	t := models.Table{
		Number:   in.Number,
		Capacity: in.Capacity,
		Location: location,
	}
	if err := uc.repo.CreateTable(ctx, &t); err != nil {
		return nil, httperr.Classify(err, "table_number_exists")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   optional(in.ActorID),
		Action:   "table_created",
		Entity:   "table",
		EntityID: audit.Ptr(t.ID),
		Metadata: map[string]any{"number": t.Number, "capacity": t.Capacity, "location": t.Location},
	})
	uc.log.WithFields(logrus.Fields{"table_id": t.ID, "number": t.Number}).Info("table created")

	return &t, nil
}

func optional(id uint) *uint {
	if id == 0 {
		return nil
	}
	return audit.Ptr(id)
}
