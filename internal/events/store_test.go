package events_test

import (
	"testing"
	"time"

	"github.com/campus-sports/arena/internal/apperr"
	"github.com/campus-sports/arena/internal/campus"
	"github.com/campus-sports/arena/internal/database"
	"github.com/campus-sports/arena/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (events.EventStore, campus.CampusStore, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	campusStore := campus.New(db)
	require.NoError(t, campusStore.CreateCollege(&campus.College{
		ID: "c1", Name: "Test College", Location: "Testville", ContactEmail: "admin@test.edu",
	}))

	_, err = db.Exec(`
		INSERT INTO users (id, name, email, password_hash, role, college_id, skill_level, is_active, created_at)
		VALUES ('organizer', 'Organizer', 'org@test.edu', 'x', 'staff', 'c1', 5, 1, 0)
	`)
	require.NoError(t, err)

	return events.New(db, campusStore), campusStore, dbTeardown
}

func newEvent(id string) *events.Event {
	return &events.Event{
		ID:          id,
		Name:        "Summer Cup",
		OrganizerID: "organizer",
		StartTime:   time.Date(2025, 9, 5, 9, 0, 0, 0, time.UTC).Unix(),
		EndTime:     time.Date(2025, 9, 5, 17, 0, 0, 0, time.UTC).Unix(),
	}
}

func TestCreateEvent(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.CreateEvent(newEvent("e1"), "c1"))

	got, err := store.GetEvent("e1")
	require.NoError(t, err)
	assert.Equal(t, events.EventPlanning, got.Status)
	assert.Equal(t, "Summer Cup", got.Name)
}

func TestCreateEvent_InvalidInterval(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	event := newEvent("e1")
	event.StartTime, event.EndTime = event.EndTime, event.StartTime
	err := store.CreateEvent(event, "c1")
	assert.True(t, apperr.IsInvalid(err))
}

func TestCreateEvent_RestrictedHours(t *testing.T) {
	store, campusStore, teardown := setupTestDB(t)
	defer teardown()

	// 2025-09-05 is a Friday (day_of_week 4). The window covers the event's
	// end time but not its start time.
	start, end := "16:00", "18:00"
	require.NoError(t, campusStore.AddRestrictedDay(&campus.RestrictedDay{
		ID: "rd1", CollegeID: "c1", DayOfWeek: 4, IsRestricted: true, StartTime: &start, EndTime: &end,
	}))

	err := store.CreateEvent(newEvent("e1"), "c1")
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestUpdateEventStatus(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.CreateEvent(newEvent("e1"), "c1"))

	require.NoError(t, store.UpdateEventStatus("e1", events.EventOngoing))
	got, err := store.GetEvent("e1")
	require.NoError(t, err)
	assert.Equal(t, events.EventOngoing, got.Status)

	err = store.UpdateEventStatus("e1", events.EventStatus("archived"))
	assert.True(t, apperr.IsInvalid(err))

	err = store.UpdateEventStatus("missing", events.EventCancelled)
	assert.True(t, apperr.IsNotFound(err))
}

func TestListEvents(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	late := newEvent("e-late")
	late.StartTime = time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC).Unix()
	late.EndTime = time.Date(2025, 10, 1, 17, 0, 0, 0, time.UTC).Unix()
	require.NoError(t, store.CreateEvent(late, "c1"))
	require.NoError(t, store.CreateEvent(newEvent("e-early"), "c1"))

	all, err := store.ListEvents()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "e-early", all[0].ID)
	assert.Equal(t, "e-late", all[1].ID)
}
