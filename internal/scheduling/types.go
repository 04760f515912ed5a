package scheduling

import (
	"database/sql"
	"sync"

	"github.com/jonboulle/clockwork"
)

// store handles database operations for venue bookings.
type store struct {
	db    *sql.DB
	clock clockwork.Clock
	mu    sync.RWMutex
}

// Schedule books a venue for a match over a half-open interval
// [StartTime, EndTime). Two bookings on the same venue conflict when their
// intervals overlap; touching boundaries do not.
type Schedule struct {
	ID        string   `json:"id"`
	MatchID   string   `json:"match_id"`
	VenueID   string   `json:"venue_id"`
	StartTime int64    `json:"start_time"`
	EndTime   int64    `json:"end_time"`
	Equipment []string `json:"equipment,omitempty"`
}
