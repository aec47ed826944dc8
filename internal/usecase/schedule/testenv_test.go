package schedule_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/calensys/appointment-api/internal/audit"
	dbpkg "github.com/calensys/appointment-api/internal/db"
	infraRepo "github.com/calensys/appointment-api/internal/infra/repository"
	"github.com/calensys/appointment-api/internal/models"
	"github.com/calensys/appointment-api/internal/usecase/schedule"
)

type testEnv struct {
	db   *gorm.DB
	repo *infraRepo.ScheduleGormRepository

	findSlots      *schedule.FindAvailableSlots
	book           *schedule.BookAppointment
	cancel         *schedule.CancelAppointment
	list           *schedule.ListAppointments
	addDayOff      *schedule.AddDayOff
	addUnavailable *schedule.AddUnavailableHours
	createSlot     *schedule.CreateSlot
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	repo := infraRepo.NewScheduleGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	return &testEnv{
		db:             db,
		repo:           repo,
		findSlots:      schedule.NewFindAvailableSlots(repo),
		book:           schedule.NewBookAppointment(repo, dispatcher),
		cancel:         schedule.NewCancelAppointment(repo, dispatcher),
		list:           schedule.NewListAppointments(repo),
		addDayOff:      schedule.NewAddDayOff(repo, dispatcher),
		addUnavailable: schedule.NewAddUnavailableHours(repo, dispatcher),
		createSlot:     schedule.NewCreateSlot(repo, dispatcher),
	}
}

func (e *testEnv) mustCreateSlot(t *testing.T, date, clock string, capacity int) *models.Slot {
	t.Helper()

	slot, err := e.createSlot.Execute(context.Background(), schedule.CreateSlotInput{
		Date:     date,
		Time:     clock,
		Capacity: capacity,
	})
	require.NoError(t, err)
	return slot
}

func (e *testEnv) slotCapacity(t *testing.T, date, clock string) int {
	t.Helper()

	slot, err := e.repo.GetSlot(context.Background(), date, clock)
	require.NoError(t, err)
	require.NotNil(t, slot)
	return slot.RemainingCapacity
}
