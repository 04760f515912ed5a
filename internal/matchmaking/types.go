package matchmaking

import (
	"database/sql"
	"sync"
	"time"

	"github.com/campus-sports/arena/internal/apperr"
	"github.com/jonboulle/clockwork"
)

// store handles database operations for matches, teams and participants.
type store struct {
	db           *sql.DB
	clock        clockwork.Clock
	restrictions RestrictionChecker
	mu           sync.RWMutex
}

// MatchStatus is the closed set of match lifecycle states.
type MatchStatus string

const (
	StatusScheduled MatchStatus = "scheduled"
	StatusOngoing   MatchStatus = "ongoing"
	StatusCompleted MatchStatus = "completed"
	StatusCancelled MatchStatus = "cancelled"
)

// ParseMatchStatus validates a raw status string against the closed set.
func ParseMatchStatus(raw string) (MatchStatus, error) {
	switch MatchStatus(raw) {
	case StatusScheduled:
		return StatusScheduled, nil
	case StatusOngoing:
		return StatusOngoing, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusCancelled:
		return StatusCancelled, nil
	}
	return "", apperr.Newf(apperr.KindInvalid, "unknown match status: %q", raw)
}

// Default player limits and skill range for new matches.
const (
	DefaultMinPlayers      = 2
	DefaultMaxPlayers      = 10
	DefaultSkillLevelRange = 1
)

// Match represents a scheduled game between participants.
// SkillLevelRange is the maximum allowed deviation between a joining user's
// skill and the match's current mean skill; 0 disables the gate.
type Match struct {
	ID              string      `json:"id"`
	GameCategoryID  string      `json:"game_category_id"`
	ScheduledTime   int64       `json:"scheduled_time"`
	Status          MatchStatus `json:"status"`
	WinnerTeamID    *string     `json:"winner_team_id,omitempty"`
	MinPlayers      int         `json:"min_players"`
	MaxPlayers      int         `json:"max_players"`
	SkillLevelRange int         `json:"skill_level_range"`
}

// Team is a named group of users led by a captain.
type Team struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	SkillLevel int     `json:"skill_level"`
	CaptainID  *string `json:"captain_id,omitempty"`
	CreatedAt  int64   `json:"created_at"`
}

// Participant ties a user (optionally via a team) to a specific match.
// At most one row exists per (user, match).
type Participant struct {
	UserID             string  `json:"user_id"`
	MatchID            string  `json:"match_id"`
	ParticipationToken string  `json:"participation_token"`
	TeamID             *string `json:"team_id,omitempty"`
	RegistrationDate   int64   `json:"registration_date"`
	IsConfirmed        bool    `json:"is_confirmed"`
}

// CertificateType is the closed set of certificate types.
type CertificateType string

const (
	CertificateParticipation CertificateType = "participation"
	CertificateWinner        CertificateType = "winner"
	CertificateAchievement   CertificateType = "achievement"
)

// ParseCertificateType validates a raw certificate type against the closed set.
func ParseCertificateType(raw string) (CertificateType, error) {
	switch CertificateType(raw) {
	case CertificateParticipation:
		return CertificateParticipation, nil
	case CertificateWinner:
		return CertificateWinner, nil
	case CertificateAchievement:
		return CertificateAchievement, nil
	}
	return "", apperr.Newf(apperr.KindInvalid, "unknown certificate type: %q", raw)
}

// Certificate is issued to a participant of a completed match.
type Certificate struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	MatchID     string          `json:"match_id"`
	Type        CertificateType `json:"type"`
	DateIssued  int64           `json:"date_issued"`
	DownloadURL *string         `json:"download_url,omitempty"`
}

// RestrictionChecker is the slice of the campus store that matchmaking needs.
// This keeps the package decoupled from the full campus interface.
type RestrictionChecker interface {
	IsTimeRestricted(collegeID string, t time.Time) (bool, error)
}
