package users

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/campus-sports/arena/internal/apperr"
	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
)

// New creates a new UserStore.
func New(db *sql.DB, clock clockwork.Clock) UserStore {
	return &store{
		db:    db,
		clock: clock,
	}
}

func (s *store) CreateUser(user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.SkillLevel < MinSkillLevel || user.SkillLevel > MaxSkillLevel {
		return apperr.Newf(apperr.KindInvalid, "skill level must be between %d and %d", MinSkillLevel, MaxSkillLevel)
	}
	if _, err := ParseRole(string(user.Role)); err != nil {
		return err
	}

	user.CreatedAt = s.clock.Now().Unix()
	query := `
		INSERT INTO users (id, name, email, password_hash, role, college_id, skill_level, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		string(user.Role),
		user.CollegeID,
		user.SkillLevel,
		user.IsActive,
		user.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperr.New(apperr.KindConflict, "email already registered")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("Created user", "id", user.ID, "email", user.Email, "role", user.Role)
	return nil
}

func (s *store) GetUser(id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return scanUser(s.db.QueryRow(`
		SELECT id, name, email, password_hash, role, college_id, skill_level, is_active, created_at
		FROM users WHERE id = ?
	`, id))
}

func (s *store) GetUserByEmail(email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return scanUser(s.db.QueryRow(`
		SELECT id, name, email, password_hash, role, college_id, skill_level, is_active, created_at
		FROM users WHERE email = ?
	`, email))
}

func (s *store) UpdateSkillLevel(id string, skillLevel int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if skillLevel < MinSkillLevel || skillLevel > MaxSkillLevel {
		return apperr.Newf(apperr.KindInvalid, "skill level must be between %d and %d", MinSkillLevel, MaxSkillLevel)
	}

	res, err := s.db.Exec(`UPDATE users SET skill_level = ? WHERE id = ?`, skillLevel, id)
	if err != nil {
		return fmt.Errorf("failed to update skill level: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return apperr.New(apperr.KindNotFound, "user not found")
	}
	return nil
}

func scanUser(row *sql.Row) (*User, error) {
	var user User
	var role string
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&role,
		&user.CollegeID,
		&user.SkillLevel,
		&user.IsActive,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.KindNotFound, "user not found")
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	user.Role = Role(role)
	return &user, nil
}
