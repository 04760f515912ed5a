package users

import (
	"database/sql"
	"sync"

	"github.com/campus-sports/arena/internal/apperr"
	"github.com/jonboulle/clockwork"
)

// store handles all database operations for user accounts.
type store struct {
	db    *sql.DB
	clock clockwork.Clock
	mu    sync.RWMutex
}

// Role is the closed set of user roles.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
)

// ParseRole validates a raw role string against the closed set.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleStudent:
		return RoleStudent, nil
	case RoleStaff:
		return RoleStaff, nil
	}
	return "", apperr.Newf(apperr.KindInvalid, "unknown role: %q", raw)
}

// Skill levels are bounded to this closed range.
const (
	MinSkillLevel = 1
	MaxSkillLevel = 10
)

// User represents a registered account.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	CollegeID    string `json:"college_id"`
	SkillLevel   int    `json:"skill_level"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    int64  `json:"created_at"`
}
