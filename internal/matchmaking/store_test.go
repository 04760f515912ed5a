package matchmaking_test

import (
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/campus-sports/arena/internal/apperr"
	"github.com/campus-sports/arena/internal/campus"
	"github.com/campus-sports/arena/internal/database"
	"github.com/campus-sports/arena/internal/matchmaking"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database with a college,
// a game category and a handful of users.
func setupTestDB(t *testing.T) (matchmaking.MatchStore, campus.CampusStore, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	campusStore := campus.New(db)
	require.NoError(t, campusStore.CreateCollege(&campus.College{
		ID: "c1", Name: "Test College", Location: "Testville", ContactEmail: "admin@test.edu",
	}))

	_, err = db.Exec(`INSERT INTO game_categories (id, name, type) VALUES ('g1', 'Basketball', 'team')`)
	require.NoError(t, err)

	store := matchmaking.NewStore(db, clockwork.NewFakeClock(), campusStore)
	return store, campusStore, db, dbTeardown
}

func addUser(t *testing.T, db *sql.DB, id string, skill int) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO users (id, name, email, password_hash, role, college_id, skill_level, is_active, created_at)
		VALUES (?, ?, ?, 'x', 'student', 'c1', ?, 1, 0)
	`, id, "User "+id, id+"@test.edu", skill)
	require.NoError(t, err)
}

func newMatch(id string, maxPlayers, skillRange int) *matchmaking.Match {
	return &matchmaking.Match{
		ID:              id,
		GameCategoryID:  "g1",
		ScheduledTime:   time.Date(2025, 9, 5, 18, 0, 0, 0, time.UTC).Unix(),
		MinPlayers:      matchmaking.DefaultMinPlayers,
		MaxPlayers:      maxPlayers,
		SkillLevelRange: skillRange,
	}
}

func TestCreateMatch(t *testing.T) {
	store, _, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.CreateMatch(newMatch("m1", 10, 1), "c1"))

	got, err := store.GetMatch("m1")
	require.NoError(t, err)
	assert.Equal(t, matchmaking.StatusScheduled, got.Status)
	assert.Equal(t, 10, got.MaxPlayers)
	assert.Equal(t, 1, got.SkillLevelRange)
}

func TestCreateMatch_InvalidPlayerLimits(t *testing.T) {
	store, _, _, teardown := setupTestDB(t)
	defer teardown()

	m := newMatch("m1", 10, 1)
	m.MinPlayers = 11
	err := store.CreateMatch(m, "c1")
	assert.True(t, apperr.IsInvalid(err))

	m = newMatch("m2", 10, -1)
	err = store.CreateMatch(m, "c1")
	assert.True(t, apperr.IsInvalid(err))
}

func TestCreateMatch_RestrictedHours(t *testing.T) {
	store, campusStore, _, teardown := setupTestDB(t)
	defer teardown()

	// 2025-09-05 is a Friday (day_of_week 4), restricted all day.
	require.NoError(t, campusStore.AddRestrictedDay(&campus.RestrictedDay{
		ID: "rd1", CollegeID: "c1", DayOfWeek: 4, IsRestricted: true,
	}))

	err := store.CreateMatch(newMatch("m1", 10, 1), "c1")
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestRegisterForMatch_Success(t *testing.T) {
	store, _, db, teardown := setupTestDB(t)
	defer teardown()

	addUser(t, db, "u1", 5)
	require.NoError(t, store.CreateMatch(newMatch("m1", 10, 1), "c1"))

	p, err := store.RegisterForMatch("m1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, "m1", p.MatchID)
	assert.True(t, p.IsConfirmed)
	assert.NotEmpty(t, p.ParticipationToken)

	count, err := store.CountParticipants("m1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRegisterForMatch_MatchNotFound(t *testing.T) {
	store, _, db, teardown := setupTestDB(t)
	defer teardown()

	addUser(t, db, "u1", 5)
	_, err := store.RegisterForMatch("missing", "u1")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestRegisterForMatch_DuplicateRegistration(t *testing.T) {
	store, _, db, teardown := setupTestDB(t)
	defer teardown()

	addUser(t, db, "u1", 5)
	require.NoError(t, store.CreateMatch(newMatch("m1", 10, 1), "c1"))

	_, err := store.RegisterForMatch("m1", "u1")
	require.NoError(t, err)

	// The second attempt always fails, regardless of ordering.
	_, err = store.RegisterForMatch("m1", "u1")
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegisterForMatch_SkillGate(t *testing.T) {
	store, _, db, teardown := setupTestDB(t)
	defer teardown()

	addUser(t, db, "u1", 5)
	addUser(t, db, "u2", 7) // |7 - 5| == 2 == range: boundary is inclusive
	addUser(t, db, "u3", 8) // |8 - 6| == 2 == range against the new mean of 6
	addUser(t, db, "u4", 9) // one unit beyond fails
	require.NoError(t, store.CreateMatch(newMatch("m1", 10, 2), "c1"))

	// First joiner is their own baseline and always passes.
	_, err := store.RegisterForMatch("m1", "u1")
	require.NoError(t, err)

	_, err = store.RegisterForMatch("m1", "u2")
	require.NoError(t, err, "a deviation equal to the range should pass")

	// Mean is now (5+7)/2 = 6.
	_, err = store.RegisterForMatch("m1", "u3")
	require.NoError(t, err)

	// Mean is now (5+7+8)/3 ≈ 6.67; |9 - 6.67| > 2.
	_, err = store.RegisterForMatch("m1", "u4")
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	assert.Contains(t, err.Error(), "skill level")
}

func TestRegisterForMatch_SkillGateDisabled(t *testing.T) {
	store, _, db, teardown := setupTestDB(t)
	defer teardown()

	addUser(t, db, "u1", 1)
	addUser(t, db, "u2", 10)
	require.NoError(t, store.CreateMatch(newMatch("m1", 10, 0), "c1"))

	_, err := store.RegisterForMatch("m1", "u1")
	require.NoError(t, err)
	_, err = store.RegisterForMatch("m1", "u2")
	require.NoError(t, err, "skill_level_range 0 disables the gate")
}

func TestRegisterForMatch_EndToEnd(t *testing.T) {
	store, _, db, teardown := setupTestDB(t)
	defer teardown()

	addUser(t, db, "a", 5)
	addUser(t, db, "b", 5)
	addUser(t, db, "c", 5)
	require.NoError(t, store.CreateMatch(newMatch("m1", 2, 1), "c1"))

	_, err := store.RegisterForMatch("m1", "a")
	require.NoError(t, err)
	_, err = store.RegisterForMatch("m1", "b")
	require.NoError(t, err)

	_, err = store.RegisterForMatch("m1", "c")
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	assert.Contains(t, err.Error(), "full")
}

func TestRegisterForMatch_ConcurrentJoinsNeverExceedCapacity(t *testing.T) {
	store, _, db, teardown := setupTestDB(t)
	defer teardown()

	const maxPlayers = 4
	const attempts = 16
	for i := 0; i < attempts; i++ {
		addUser(t, db, fmt.Sprintf("u%d", i), 5)
	}
	require.NoError(t, store.CreateMatch(newMatch("m1", maxPlayers, 0), "c1"))

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.RegisterForMatch("m1", fmt.Sprintf("u%d", i)) //nolint:errcheck
		}(i)
	}
	wg.Wait()

	count, err := store.CountParticipants("m1")
	require.NoError(t, err)
	assert.Equal(t, maxPlayers, count, "concurrent joins must not overshoot max_players")
}

func TestAvgSkillOfParticipants(t *testing.T) {
	store, _, db, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.CreateMatch(newMatch("m1", 10, 0), "c1"))

	avg, err := store.AvgSkillOfParticipants("m1")
	require.NoError(t, err)
	assert.Nil(t, avg, "no participants means no average")

	addUser(t, db, "u1", 4)
	addUser(t, db, "u2", 8)
	_, err = store.RegisterForMatch("m1", "u1")
	require.NoError(t, err)
	_, err = store.RegisterForMatch("m1", "u2")
	require.NoError(t, err)

	avg, err = store.AvgSkillOfParticipants("m1")
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.InDelta(t, 6.0, *avg, 0.001)
}

func TestJoinTeam(t *testing.T) {
	store, _, db, teardown := setupTestDB(t)
	defer teardown()

	addUser(t, db, "captain", 5)
	addUser(t, db, "newcomer", 5)
	captainID := "captain"
	require.NoError(t, store.CreateTeam(&matchmaking.Team{ID: "t1", Name: "Tigers", SkillLevel: 5, CaptainID: &captainID}))
	require.NoError(t, store.CreateMatch(newMatch("m1", 10, 0), "c1"))

	// Tie the team to the match through the captain's registration.
	_, err := db.Exec(`
		INSERT INTO participants (user_id, match_id, participation_token, team_id, registration_date, is_confirmed)
		VALUES ('captain', 'm1', 'tok', 't1', 0, 1)
	`)
	require.NoError(t, err)

	p, err := store.JoinTeam("t1", "newcomer")
	require.NoError(t, err)
	assert.Equal(t, "m1", p.MatchID)
	require.NotNil(t, p.TeamID)
	assert.Equal(t, "t1", *p.TeamID)
	assert.True(t, p.IsConfirmed)
}

func TestJoinTeam_TeamNotFound(t *testing.T) {
	store, _, db, teardown := setupTestDB(t)
	defer teardown()

	addUser(t, db, "u1", 5)
	_, err := store.JoinTeam("missing", "u1")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestJoinTeam_AlreadyMember(t *testing.T) {
	store, _, db, teardown := setupTestDB(t)
	defer teardown()

	addUser(t, db, "u1", 5)
	addUser(t, db, "u2", 5)
	require.NoError(t, store.CreateTeam(&matchmaking.Team{ID: "t1", Name: "Tigers", SkillLevel: 5}))
	require.NoError(t, store.CreateMatch(newMatch("m1", 10, 0), "c1"))

	_, err := db.Exec(`
		INSERT INTO participants (user_id, match_id, participation_token, team_id, registration_date, is_confirmed)
		VALUES ('u1', 'm1', 'tok', 't1', 0, 1)
	`)
	require.NoError(t, err)

	_, err = store.JoinTeam("t1", "u1")
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	assert.Contains(t, err.Error(), "member")
}

func TestJoinTeam_TeamWithoutMatch(t *testing.T) {
	store, _, db, teardown := setupTestDB(t)
	defer teardown()

	addUser(t, db, "u1", 5)
	require.NoError(t, store.CreateTeam(&matchmaking.Team{ID: "t1", Name: "Tigers", SkillLevel: 5}))

	_, err := store.JoinTeam("t1", "u1")
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	assert.Contains(t, err.Error(), "not registered for any match")
}

func TestJoinTeam_PicksEarliestScheduledMatch(t *testing.T) {
	store, _, db, teardown := setupTestDB(t)
	defer teardown()

	addUser(t, db, "member", 5)
	addUser(t, db, "newcomer", 5)
	require.NoError(t, store.CreateTeam(&matchmaking.Team{ID: "t1", Name: "Tigers", SkillLevel: 5}))

	later := newMatch("m-later", 10, 0)
	later.ScheduledTime = time.Date(2025, 9, 10, 18, 0, 0, 0, time.UTC).Unix()
	require.NoError(t, store.CreateMatch(later, "c1"))
	earlier := newMatch("m-earlier", 10, 0)
	earlier.ScheduledTime = time.Date(2025, 9, 1, 18, 0, 0, 0, time.UTC).Unix()
	require.NoError(t, store.CreateMatch(earlier, "c1"))

	for _, matchID := range []string{"m-later", "m-earlier"} {
		_, err := db.Exec(`
			INSERT INTO participants (user_id, match_id, participation_token, team_id, registration_date, is_confirmed)
			VALUES ('member', ?, 'tok-'||?, 't1', 0, 1)
		`, matchID, matchID)
		require.NoError(t, err)
	}

	p, err := store.JoinTeam("t1", "newcomer")
	require.NoError(t, err)
	assert.Equal(t, "m-earlier", p.MatchID, "team binding picks the earliest scheduled match")
}

func TestJoinTeam_BypassesCapacity(t *testing.T) {
	store, _, db, teardown := setupTestDB(t)
	defer teardown()

	addUser(t, db, "u1", 5)
	addUser(t, db, "u2", 5)
	require.NoError(t, store.CreateTeam(&matchmaking.Team{ID: "t1", Name: "Tigers", SkillLevel: 5}))

	full := newMatch("m1", 1, 0)
	require.NoError(t, store.CreateMatch(full, "c1"))
	_, err := db.Exec(`
		INSERT INTO participants (user_id, match_id, participation_token, team_id, registration_date, is_confirmed)
		VALUES ('u1', 'm1', 'tok', 't1', 0, 1)
	`)
	require.NoError(t, err)

	// The match is at capacity, but the team path carries the registration.
	p, err := store.JoinTeam("t1", "u2")
	require.NoError(t, err)
	assert.Equal(t, "m1", p.MatchID)
}

func TestUpdateMatchStatus(t *testing.T) {
	store, _, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.CreateMatch(newMatch("m1", 10, 0), "c1"))

	require.NoError(t, store.UpdateMatchStatus("m1", matchmaking.StatusOngoing))
	got, err := store.GetMatch("m1")
	require.NoError(t, err)
	assert.Equal(t, matchmaking.StatusOngoing, got.Status)

	err = store.UpdateMatchStatus("m1", matchmaking.MatchStatus("paused"))
	assert.True(t, apperr.IsInvalid(err))

	err = store.UpdateMatchStatus("missing", matchmaking.StatusCancelled)
	assert.True(t, apperr.IsNotFound(err))
}

func TestIssueCertificate(t *testing.T) {
	store, _, db, teardown := setupTestDB(t)
	defer teardown()

	addUser(t, db, "u1", 5)
	require.NoError(t, store.CreateMatch(newMatch("m1", 10, 0), "c1"))
	_, err := store.RegisterForMatch("m1", "u1")
	require.NoError(t, err)

	_, err = store.IssueCertificate("u1", "m1", matchmaking.CertificateParticipation)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err), "certificates require a completed match")

	require.NoError(t, store.UpdateMatchStatus("m1", matchmaking.StatusCompleted))

	cert, err := store.IssueCertificate("u1", "m1", matchmaking.CertificateParticipation)
	require.NoError(t, err)
	assert.Equal(t, matchmaking.CertificateParticipation, cert.Type)
	assert.NotEmpty(t, cert.ID)

	_, err = store.IssueCertificate("stranger", "m1", matchmaking.CertificateWinner)
	assert.True(t, apperr.IsNotFound(err))
}
