package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/restaurant-api/internal/db/dbtest"
	domain "github.com/BruksfildServices01/restaurant-api/internal/domain/reservation"
	"github.com/BruksfildServices01/restaurant-api/internal/httperr"
	infraRepo "github.com/BruksfildServices01/restaurant-api/internal/infra/repository"
	"github.com/BruksfildServices01/restaurant-api/internal/logger"
	"github.com/BruksfildServices01/restaurant-api/internal/models"
	"github.com/BruksfildServices01/restaurant-api/internal/notify"
)

type createFixture struct {
	db       *gorm.DB
	user     models.User
	tables   []models.Table
	notifier *recordingNotifier
	auditor  *recordingAuditor
}

func newCreateFixture(t *testing.T, capacities ...int) *createFixture {
	gdb := dbtest.New(t)
	f := &createFixture{
		db:       gdb,
		user:     dbtest.SeedUser(t, gdb, "Ana", "ana@example.com"),
		notifier: &recordingNotifier{},
		auditor:  &recordingAuditor{},
	}
	for i, c := range capacities {
		f.tables = append(f.tables, dbtest.SeedTable(t, gdb, i+1, c, "patio"))
	}
	return f
}

func (f *createFixture) useCase(repo domain.Repository) *CreateByLocation {
	return NewCreateByLocation(repo, f.notifier, f.auditor, logger.Discard(), testTZ)
}

func (f *createFixture) repo() domain.Repository {
	return infraRepo.NewReservationGormRepository(f.db)
}

func (f *createFixture) input(guests int) CreateByLocationInput {
	return CreateByLocationInput{
		Date:     testDate,
		Time:     "dinner",
		Guests:   guests,
		Status:   "pending",
		UserID:   f.user.ID,
		Location: "patio",
	}
}

func assignedTables(t *testing.T, gdb *gorm.DB, reservationID uint) []uint {
	var ids []uint
	require.NoError(t, gdb.Model(&models.TableAssignment{}).
		Where("reservation_id = ?", reservationID).
		Order("table_id ASC").
		Pluck("table_id", &ids).Error)
	return ids
}

func TestCreateByLocationFirstFit(t *testing.T) {
	f := newCreateFixture(t, 2, 4, 4)

	out, err := f.useCase(f.repo()).Execute(context.Background(), f.input(5))

	require.NoError(t, err)
	assert.NotZero(t, out.Reservation.ID)
	assert.Equal(t, []uint{f.tables[0].ID, f.tables[1].ID}, assignedTables(t, f.db, out.Reservation.ID))
	assert.Equal(t, 6, domain.TotalCapacity(out.Tables))

	assert.Equal(t, []notify.Kind{notify.KindReservationReceived}, f.notifier.kinds())
	assert.Equal(t, []string{"reservation_created"}, f.auditor.actions())
}

func TestCreateByLocationTrimsLocation(t *testing.T) {
	f := newCreateFixture(t, 4)
	in := f.input(3)
	in.Location = "  patio "

	out, err := f.useCase(f.repo()).Execute(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, []uint{f.tables[0].ID}, assignedTables(t, f.db, out.Reservation.ID))

	f.auditor.mu.Lock()
	defer f.auditor.mu.Unlock()
	require.Len(t, f.auditor.events, 1)
	meta, ok := f.auditor.events[0].Metadata.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "patio", meta["location"])
}

func TestCreateByLocationSkipsReservedTable(t *testing.T) {
	f := newCreateFixture(t, 2, 4, 4)
	hold(t, f.db, f.user.ID, testDate, "dinner", f.tables[1].ID)

	out, err := f.useCase(f.repo()).Execute(context.Background(), f.input(5))

	require.NoError(t, err)
	assert.Equal(t, []uint{f.tables[0].ID, f.tables[2].ID}, assignedTables(t, f.db, out.Reservation.ID))
}

func TestCreateByLocationOtherSlotDoesNotConflict(t *testing.T) {
	f := newCreateFixture(t, 4)
	hold(t, f.db, f.user.ID, testDate, "lunch", f.tables[0].ID)

	_, err := f.useCase(f.repo()).Execute(context.Background(), f.input(4))

	require.NoError(t, err)
}

func TestCreateByLocationInsufficientCapacityWritesNothing(t *testing.T) {
	f := newCreateFixture(t, 2, 2)

	out, err := f.useCase(f.repo()).Execute(context.Background(), f.input(5))

	assert.Nil(t, out)
	assert.True(t, httperr.IsBusiness(err, "insufficient_capacity"))
	assert.Zero(t, count(t, f.db, &models.Reservation{}))
	assert.Zero(t, count(t, f.db, &models.TableAssignment{}))
	assert.Equal(t, []string{"reservation_conflict"}, f.auditor.actions())
}

func TestCreateByLocationUnknownUser(t *testing.T) {
	f := newCreateFixture(t, 4)
	in := f.input(2)
	in.UserID = 999

	_, err := f.useCase(f.repo()).Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, "user_not_found"))
	assert.Zero(t, count(t, f.db, &models.Reservation{}))
	assert.Empty(t, f.notifier.kinds())
}

func TestCreateByLocationValidation(t *testing.T) {
	f := newCreateFixture(t, 4)

	cases := map[string]func(in *CreateByLocationInput){
		"invalid_time":           func(in *CreateByLocationInput) { in.Time = "21:00" },
		"invalid_date":           func(in *CreateByLocationInput) { in.Date = "15/06/2099" },
		"date_in_past":           func(in *CreateByLocationInput) { in.Date = "2000-01-01" },
		"invalid_guests":         func(in *CreateByLocationInput) { in.Guests = 0 },
		"invalid_status":         func(in *CreateByLocationInput) { in.Status = "seated" },
		"invalid_initial_status": func(in *CreateByLocationInput) { in.Status = "completed" },
		"invalid_body":           func(in *CreateByLocationInput) { in.Location = " " },
	}

	for code, mutate := range cases {
		in := f.input(2)
		mutate(&in)

		_, err := f.useCase(f.repo()).Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, code), "expected %s, got %v", code, err)
	}

	assert.Zero(t, count(t, f.db, &models.Reservation{}))
	assert.Empty(t, f.notifier.kinds())
}

func TestCreateByLocationConfirmedNotifies(t *testing.T) {
	f := newCreateFixture(t, 4)
	in := f.input(2)
	in.Status = "confirmed"

	_, err := f.useCase(f.repo()).Execute(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t,
		[]notify.Kind{notify.KindReservationReceived, notify.KindReservationConfirmed},
		f.notifier.kinds(),
	)
}

func TestCreateByLocationRaceLoserGetsConflict(t *testing.T) {
	f := newCreateFixture(t, 4)
	winner := hold(t, f.db, f.user.ID, testDate, "dinner", f.tables[0].ID)

	_, err := f.useCase(staleRepo{f.repo()}).Execute(context.Background(), f.input(2))

	assert.True(t, httperr.IsBusiness(err, "tables_already_reserved"))
	assert.Equal(t, int64(1), count(t, f.db, &models.Reservation{}))
	assert.Equal(t, []uint{f.tables[0].ID}, assignedTables(t, f.db, winner.ID))
}

func TestCreateByLocationPartialAssignmentRollsBack(t *testing.T) {
	f := newCreateFixture(t, 2, 2, 2)
	hold(t, f.db, f.user.ID, testDate, "dinner", f.tables[2].ID)

	// as duas primeiras mesas entram, a terceira bate no índice único
	_, err := f.useCase(staleRepo{f.repo()}).Execute(context.Background(), f.input(6))

	assert.True(t, httperr.IsBusiness(err, "tables_already_reserved"))
	assert.Equal(t, int64(1), count(t, f.db, &models.Reservation{}))
	assert.Equal(t, int64(1), count(t, f.db, &models.TableAssignment{}))
}

func TestCreateByLocationNoDoubleBooking(t *testing.T) {
	f := newCreateFixture(t, 4, 4)
	uc := f.useCase(f.repo())

	_, err := uc.Execute(context.Background(), f.input(4))
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), f.input(4))
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), f.input(1))
	assert.True(t, httperr.IsBusiness(err, "insufficient_capacity"))

	type slotKey struct {
		TableID uint
		Date    string
		Time    string
	}
	var rows []models.TableAssignment
	require.NoError(t, f.db.Find(&rows).Error)

	seen := map[slotKey]bool{}
	for _, r := range rows {
		k := slotKey{r.TableID, r.Date, r.Time}
		assert.False(t, seen[k], "table %d double booked", r.TableID)
		seen[k] = true
	}
	assert.Len(t, rows, 2)
}
