package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/restaurant-api/internal/db/dbtest"
	domain "github.com/BruksfildServices01/restaurant-api/internal/domain/reservation"
	"github.com/BruksfildServices01/restaurant-api/internal/httperr"
	infraRepo "github.com/BruksfildServices01/restaurant-api/internal/infra/repository"
	"github.com/BruksfildServices01/restaurant-api/internal/models"
)

func TestGetReservation(t *testing.T) {
	gdb := dbtest.New(t)
	user := dbtest.SeedUser(t, gdb, "Ana", "ana@example.com")
	res := hold(t, gdb, user.ID, testDate, "lunch")

	uc := NewGetReservation(infraRepo.NewReservationGormRepository(gdb))

	got, err := uc.Execute(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.ID, got.ID)
	assert.Equal(t, "lunch", got.Time)

	_, err = uc.Execute(context.Background(), res.ID+100)
	assert.True(t, httperr.IsBusiness(err, "reservation_not_found"))
}

func TestDeleteReservation(t *testing.T) {
	gdb := dbtest.New(t)
	user := dbtest.SeedUser(t, gdb, "Ana", "ana@example.com")
	table := dbtest.SeedTable(t, gdb, 1, 4, "patio")
	res := hold(t, gdb, user.ID, testDate, "dinner", table.ID)

	auditor := &recordingAuditor{}
	uc := NewDeleteReservation(infraRepo.NewReservationGormRepository(gdb), auditor)

	deleted, err := uc.Execute(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.ID, deleted.ID)

	assert.Zero(t, count(t, gdb, &models.Reservation{}))
	assert.Zero(t, count(t, gdb, &models.TableAssignment{}))
	assert.Equal(t, []string{"reservation_deleted"}, auditor.actions())

	_, err = uc.Execute(context.Background(), res.ID)
	assert.True(t, httperr.IsBusiness(err, "reservation_not_found"))
}

func TestListReservations(t *testing.T) {
	gdb := dbtest.New(t)
	ana := dbtest.SeedUser(t, gdb, "Ana", "ana@example.com")
	bia := dbtest.SeedUser(t, gdb, "Bia", "bia@example.com")
	t1 := dbtest.SeedTable(t, gdb, 7, 4, "patio")
	t2 := dbtest.SeedTable(t, gdb, 9, 2, "patio")

	hold(t, gdb, ana.ID, testDate, "lunch", t1.ID, t2.ID)
	hold(t, gdb, bia.ID, testDate, "dinner", t1.ID)
	hold(t, gdb, ana.ID, "2099-06-16", "lunch")

	repo := infraRepo.NewReservationGormRepository(gdb)
	ctx := context.Background()

	t.Run("empty filter returns everything", func(t *testing.T) {
		out, err := NewListReservations(repo).Execute(ctx, domain.Filter{})
		require.NoError(t, err)
		assert.Len(t, out, 3)
	})

	t.Run("filters combine", func(t *testing.T) {
		out, err := NewListReservations(repo).Execute(ctx, domain.Filter{
			Date:   testDate,
			UserID: ana.ID,
		})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "lunch", out[0].Time)
	})

	t.Run("no match is empty not nil", func(t *testing.T) {
		out, err := NewListReservations(repo).Execute(ctx, domain.Filter{Status: "completed"})
		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("customer view carries owner and table numbers", func(t *testing.T) {
		out, err := NewListCustomerReservations(repo).Execute(ctx, domain.Filter{
			Date: testDate,
			Time: "lunch",
		})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "Ana", out[0].Name)
		assert.Equal(t, "Test", out[0].Surname)
		assert.Equal(t, []int{7, 9}, out[0].Tables)
	})
}
