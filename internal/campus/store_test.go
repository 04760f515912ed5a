package campus_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/campus-sports/arena/internal/apperr"
	"github.com/campus-sports/arena/internal/campus"
	"github.com/campus-sports/arena/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (campus.CampusStore, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := campus.New(db)
	require.NoError(t, store.CreateCollege(&campus.College{
		ID:           "c1",
		Name:         "Test College",
		Location:     "Testville",
		ContactEmail: "admin@test.edu",
	}))
	return store, db, dbTeardown
}

func strPtr(s string) *string { return &s }

func TestCreateAndGetCollege(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	got, err := store.GetCollege("c1")
	require.NoError(t, err)
	assert.Equal(t, "Test College", got.Name)

	_, err = store.GetCollege("missing")
	assert.True(t, apperr.IsNotFound(err))
}

func TestIsTimeRestricted_NoRow(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	restricted, err := store.IsTimeRestricted("c1", time.Date(2025, 6, 11, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, restricted)
}

func TestIsTimeRestricted_TimeWindow(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	// day_of_week 2 is Wednesday (0=Monday).
	require.NoError(t, store.AddRestrictedDay(&campus.RestrictedDay{
		ID:           "rd1",
		CollegeID:    "c1",
		DayOfWeek:    2,
		IsRestricted: true,
		StartTime:    strPtr("14:00"),
		EndTime:      strPtr("16:00"),
	}))

	// 2025-06-11 is a Wednesday.
	wednesday := func(hour, minute int) time.Time {
		return time.Date(2025, 6, 11, hour, minute, 0, 0, time.UTC)
	}

	restricted, err := store.IsTimeRestricted("c1", wednesday(15, 0))
	require.NoError(t, err)
	assert.True(t, restricted, "inside the window should be restricted")

	restricted, err = store.IsTimeRestricted("c1", wednesday(17, 0))
	require.NoError(t, err)
	assert.False(t, restricted, "after the window should be unrestricted")

	// The window is inclusive at both ends.
	restricted, err = store.IsTimeRestricted("c1", wednesday(14, 0))
	require.NoError(t, err)
	assert.True(t, restricted)

	restricted, err = store.IsTimeRestricted("c1", wednesday(16, 0))
	require.NoError(t, err)
	assert.True(t, restricted)

	// Other weekdays are unaffected. 2025-06-12 is a Thursday.
	restricted, err = store.IsTimeRestricted("c1", time.Date(2025, 6, 12, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, restricted)
}

func TestIsTimeRestricted_WholeDay(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.AddRestrictedDay(&campus.RestrictedDay{
		ID:           "rd1",
		CollegeID:    "c1",
		DayOfWeek:    2,
		IsRestricted: true,
	}))

	restricted, err := store.IsTimeRestricted("c1", time.Date(2025, 6, 11, 3, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, restricted, "a row without time bounds restricts the whole day")
}

func TestIsTimeRestricted_NotRestrictedFlag(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.AddRestrictedDay(&campus.RestrictedDay{
		ID:           "rd1",
		CollegeID:    "c1",
		DayOfWeek:    2,
		IsRestricted: false,
	}))

	restricted, err := store.IsTimeRestricted("c1", time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, restricted, "rows with is_restricted=false are ignored")
}

func TestAddRestrictedDay_BadWeekday(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	err := store.AddRestrictedDay(&campus.RestrictedDay{ID: "rd1", CollegeID: "c1", DayOfWeek: 7, IsRestricted: true})
	assert.True(t, apperr.IsInvalid(err))
}

func TestVenues(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.CreateVenue(&campus.Venue{
		ID:          "v1",
		Name:        "Main Court",
		Location:    "North Campus",
		Capacity:    200,
		CollegeID:   "c1",
		IsAvailable: true,
	}))

	got, err := store.GetVenue("v1")
	require.NoError(t, err)
	assert.Equal(t, "Main Court", got.Name)
	assert.True(t, got.IsAvailable)

	_, err = store.GetVenue("missing")
	assert.True(t, apperr.IsNotFound(err))

	err = store.CreateVenue(&campus.Venue{ID: "v2", Name: "Bad", CollegeID: "c1", Capacity: 0})
	assert.True(t, apperr.IsInvalid(err))
}

func TestEquipment(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.AddEquipment(&campus.Equipment{
		ID:        "e1",
		CollegeID: "c1",
		Name:      "Footballs",
		Quantity:  12,
		Condition: campus.ConditionGood,
	}))

	err := store.AddEquipment(&campus.Equipment{
		ID:        "e2",
		CollegeID: "c1",
		Name:      "Rackets",
		Quantity:  3,
		Condition: campus.Condition("shiny"),
	})
	assert.True(t, apperr.IsInvalid(err))

	items, err := store.ListEquipment("c1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Footballs", items[0].Name)
}
