package matchmaking

import (
	"database/sql"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/campus-sports/arena/internal/apperr"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// NewStore creates a new MatchStore.
func NewStore(db *sql.DB, clock clockwork.Clock, restrictions RestrictionChecker) MatchStore {
	return &store{
		db:           db,
		clock:        clock,
		restrictions: restrictions,
	}
}

func (s *store) CreateMatch(match *Match, organizerCollegeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if match.Status == "" {
		match.Status = StatusScheduled
	}
	if _, err := ParseMatchStatus(string(match.Status)); err != nil {
		return err
	}
	if match.MinPlayers == 0 {
		match.MinPlayers = DefaultMinPlayers
	}
	if match.MaxPlayers == 0 {
		match.MaxPlayers = DefaultMaxPlayers
	}
	if match.MinPlayers <= 0 || match.MaxPlayers <= 0 || match.MinPlayers > match.MaxPlayers {
		return apperr.New(apperr.KindInvalid, "min_players must be positive and not exceed max_players")
	}
	if match.SkillLevelRange < 0 {
		return apperr.New(apperr.KindInvalid, "skill_level_range must not be negative")
	}

	restricted, err := s.restrictions.IsTimeRestricted(organizerCollegeID, time.Unix(match.ScheduledTime, 0).UTC())
	if err != nil {
		return fmt.Errorf("failed to check restricted hours: %w", err)
	}
	if restricted {
		return apperr.New(apperr.KindConflict, "match cannot be scheduled during restricted college hours")
	}

	_, err = s.db.Exec(`
		INSERT INTO matches (id, game_category_id, scheduled_time, status, winner_team_id, min_players, max_players, skill_level_range)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, match.ID, match.GameCategoryID, match.ScheduledTime, string(match.Status), match.WinnerTeamID,
		match.MinPlayers, match.MaxPlayers, match.SkillLevelRange)
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}

	log.Info("Created match", "id", match.ID, "scheduled_time", match.ScheduledTime, "max_players", match.MaxPlayers)
	return nil
}

func (s *store) GetMatch(matchID string) (*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return getMatch(s.db, matchID)
}

// querier lets match lookups run either on the pool or inside a transaction.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
}

func getMatch(q querier, matchID string) (*Match, error) {
	var match Match
	var status string
	err := q.QueryRow(`
		SELECT id, game_category_id, scheduled_time, status, winner_team_id, min_players, max_players, skill_level_range
		FROM matches WHERE id = ?
	`, matchID).Scan(
		&match.ID,
		&match.GameCategoryID,
		&match.ScheduledTime,
		&status,
		&match.WinnerTeamID,
		&match.MinPlayers,
		&match.MaxPlayers,
		&match.SkillLevelRange,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.KindNotFound, "match not found")
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	match.Status = MatchStatus(status)
	return &match, nil
}

func (s *store) ListMatches() ([]*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, game_category_id, scheduled_time, status, winner_team_id, min_players, max_players, skill_level_range
		FROM matches ORDER BY scheduled_time ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []*Match
	for rows.Next() {
		var match Match
		var status string
		err := rows.Scan(
			&match.ID,
			&match.GameCategoryID,
			&match.ScheduledTime,
			&status,
			&match.WinnerTeamID,
			&match.MinPlayers,
			&match.MaxPlayers,
			&match.SkillLevelRange,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		match.Status = MatchStatus(status)
		matches = append(matches, &match)
	}
	return matches, rows.Err()
}

func (s *store) UpdateMatchStatus(matchID string, status MatchStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := ParseMatchStatus(string(status)); err != nil {
		return err
	}

	res, err := s.db.Exec(`UPDATE matches SET status = ? WHERE id = ?`, string(status), matchID)
	if err != nil {
		return fmt.Errorf("failed to update match status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return apperr.New(apperr.KindNotFound, "match not found")
	}

	log.Info("Updated match status", "id", matchID, "status", status)
	return nil
}

func (s *store) CountParticipants(matchID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM participants WHERE match_id = ? AND is_confirmed = 1
	`, matchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}
	return count, nil
}

func (s *store) GetParticipant(userID, matchID string) (*Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p Participant
	err := s.db.QueryRow(`
		SELECT user_id, match_id, participation_token, team_id, registration_date, is_confirmed
		FROM participants WHERE user_id = ? AND match_id = ?
	`, userID, matchID).Scan(&p.UserID, &p.MatchID, &p.ParticipationToken, &p.TeamID, &p.RegistrationDate, &p.IsConfirmed)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.KindNotFound, "participant not found")
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return &p, nil
}

func (s *store) AvgSkillOfParticipants(matchID string) (*float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var avg sql.NullFloat64
	err := s.db.QueryRow(`
		SELECT AVG(u.skill_level)
		FROM participants p
		JOIN users u ON u.id = p.user_id
		WHERE p.match_id = ?
	`, matchID).Scan(&avg)
	if err != nil {
		return nil, fmt.Errorf("failed to compute average skill: %w", err)
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// RegisterForMatch enforces, in order: match exists, capacity, no duplicate
// registration, skill compatibility. The participant count and the mean skill
// are recomputed from the store on every call rather than cached, and the
// whole check-then-insert sequence holds the store write lock inside a single
// transaction so concurrent joins cannot both pass the capacity gate.
func (s *store) RegisterForMatch(matchID, userID string) (*Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	match, err := getMatch(tx, matchID)
	if err != nil {
		return nil, err
	}

	var count int
	err = tx.QueryRow(`SELECT COUNT(*) FROM participants WHERE match_id = ? AND is_confirmed = 1`, matchID).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("failed to count participants: %w", err)
	}
	if count >= match.MaxPlayers {
		return nil, apperr.New(apperr.KindConflict, "match is already full")
	}

	var exists int
	err = tx.QueryRow(`SELECT 1 FROM participants WHERE user_id = ? AND match_id = ?`, userID, matchID).Scan(&exists)
	if err == nil {
		return nil, apperr.New(apperr.KindConflict, "already registered for this match")
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}

	var skillLevel int
	err = tx.QueryRow(`SELECT skill_level FROM users WHERE id = ?`, userID).Scan(&skillLevel)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.KindNotFound, "user not found")
		}
		return nil, fmt.Errorf("failed to get user skill level: %w", err)
	}

	if match.SkillLevelRange > 0 {
		var avg sql.NullFloat64
		err = tx.QueryRow(`
			SELECT AVG(u.skill_level)
			FROM participants p
			JOIN users u ON u.id = p.user_id
			WHERE p.match_id = ?
		`, matchID).Scan(&avg)
		if err != nil {
			return nil, fmt.Errorf("failed to compute average skill: %w", err)
		}
		// The first joiner is their own baseline and always passes.
		meanSkill := float64(skillLevel)
		if avg.Valid {
			meanSkill = avg.Float64
		}
		if math.Abs(float64(skillLevel)-meanSkill) > float64(match.SkillLevelRange) {
			return nil, apperr.New(apperr.KindConflict, "skill level does not match this game's requirements")
		}
	}

	participant := &Participant{
		UserID:             userID,
		MatchID:            matchID,
		ParticipationToken: uuid.New().String(),
		RegistrationDate:   s.clock.Now().Unix(),
		IsConfirmed:        true,
	}
	if err := insertParticipant(tx, participant); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit registration: %w", err)
	}

	log.Info("Registered participant", "match_id", matchID, "user_id", userID)
	return participant, nil
}

func (s *store) CreateTeam(team *Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if team.SkillLevel <= 0 {
		return apperr.New(apperr.KindInvalid, "team skill level must be positive")
	}

	team.CreatedAt = s.clock.Now().Unix()
	_, err := s.db.Exec(`
		INSERT INTO teams (id, name, skill_level, captain_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, team.ID, team.Name, team.SkillLevel, team.CaptainID, team.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}

	log.Info("Created team", "id", team.ID, "name", team.Name)
	return nil
}

func (s *store) GetTeam(teamID string) (*Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var team Team
	err := s.db.QueryRow(`
		SELECT id, name, skill_level, captain_id, created_at FROM teams WHERE id = ?
	`, teamID).Scan(&team.ID, &team.Name, &team.SkillLevel, &team.CaptainID, &team.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.KindNotFound, "team not found")
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return &team, nil
}

// JoinTeam registers the user for the match their team already participates
// in. When the team participates in several matches the earliest scheduled one
// wins, with the match id as tie-break, so repeated calls bind the same match.
// Capacity and skill checks do not apply on this path: team membership carries
// the registration.
func (s *store) JoinTeam(teamID, userID string) (*Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRow(`SELECT 1 FROM teams WHERE id = ?`, teamID).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.KindNotFound, "team not found")
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	err = tx.QueryRow(`SELECT 1 FROM participants WHERE user_id = ? AND team_id = ?`, userID, teamID).Scan(&exists)
	if err == nil {
		return nil, apperr.New(apperr.KindConflict, "already a member of this team")
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to check team membership: %w", err)
	}

	var matchID string
	err = tx.QueryRow(`
		SELECT m.id
		FROM matches m
		JOIN participants p ON p.match_id = m.id
		WHERE p.team_id = ?
		ORDER BY m.scheduled_time ASC, m.id ASC
		LIMIT 1
	`, teamID).Scan(&matchID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.KindConflict, "team is not registered for any match")
		}
		return nil, fmt.Errorf("failed to find match for team: %w", err)
	}

	participant := &Participant{
		UserID:             userID,
		MatchID:            matchID,
		ParticipationToken: uuid.New().String(),
		TeamID:             &teamID,
		RegistrationDate:   s.clock.Now().Unix(),
		IsConfirmed:        true,
	}
	if err := insertParticipant(tx, participant); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit team join: %w", err)
	}

	log.Info("Joined team", "team_id", teamID, "user_id", userID, "match_id", matchID)
	return participant, nil
}

func insertParticipant(tx *sql.Tx, p *Participant) error {
	_, err := tx.Exec(`
		INSERT INTO participants (user_id, match_id, participation_token, team_id, registration_date, is_confirmed)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.UserID, p.MatchID, p.ParticipationToken, p.TeamID, p.RegistrationDate, p.IsConfirmed)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperr.New(apperr.KindConflict, "already registered for this match")
		}
		return fmt.Errorf("failed to insert participant: %w", err)
	}
	return nil
}

func (s *store) IssueCertificate(userID, matchID string, certType CertificateType) (*Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := ParseCertificateType(string(certType)); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRow(`SELECT 1 FROM participants WHERE user_id = ? AND match_id = ?`, userID, matchID).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.KindNotFound, "participant not found")
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	match, err := getMatch(tx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status != StatusCompleted {
		return nil, apperr.New(apperr.KindConflict, "certificates can only be issued for completed matches")
	}

	cert := &Certificate{
		ID:         uuid.New().String(),
		UserID:     userID,
		MatchID:    matchID,
		Type:       certType,
		DateIssued: s.clock.Now().Unix(),
	}
	_, err = tx.Exec(`
		INSERT INTO certificates (id, participant_user_id, match_id, type, date_issued, download_url)
		VALUES (?, ?, ?, ?, ?, ?)
	`, cert.ID, cert.UserID, cert.MatchID, string(cert.Type), cert.DateIssued, cert.DownloadURL)
	if err != nil {
		return nil, fmt.Errorf("failed to insert certificate: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit certificate: %w", err)
	}

	log.Info("Issued certificate", "user_id", userID, "match_id", matchID, "type", certType)
	return cert, nil
}
