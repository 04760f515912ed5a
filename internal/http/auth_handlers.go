package http

import (
	"net/http"

	"github.com/campus-sports/arena/internal/apperr"
	"github.com/campus-sports/arena/internal/users"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// RegisterHandler creates a new user account and returns an access token.
func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name       string `json:"name"`
			Email      string `json:"email"`
			Password   string `json:"password"`
			Role       string `json:"role"`
			CollegeID  string `json:"college_id"`
			SkillLevel int    `json:"skill_level"`
		}
		if err := decodeBody(r, &req); err != nil {
			respondError(w, err)
			return
		}
		if req.Email == "" || req.Password == "" || req.CollegeID == "" {
			respondError(w, apperr.New(apperr.KindInvalid, "email, password and college_id are required"))
			return
		}
		if req.Role == "" {
			req.Role = string(users.RoleStudent)
		}
		role, err := users.ParseRole(req.Role)
		if err != nil {
			respondError(w, err)
			return
		}
		if req.SkillLevel == 0 {
			req.SkillLevel = users.MinSkillLevel
		}

		hash, err := s.Auth.HashPassword(req.Password)
		if err != nil {
			respondError(w, err)
			return
		}

		user := &users.User{
			ID:           uuid.New().String(),
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         role,
			CollegeID:    req.CollegeID,
			SkillLevel:   req.SkillLevel,
			IsActive:     true,
		}
		if err := s.Users.CreateUser(user); err != nil {
			respondError(w, err)
			return
		}

		token, err := s.Auth.IssueToken(user.ID, user.Role)
		if err != nil {
			respondError(w, err)
			return
		}

		log.Info("User registered", "userID", user.ID, "email", user.Email)
		respondJSON(w, http.StatusCreated, map[string]any{
			"user":  user,
			"token": token,
		})
	}
}

// MeHandler returns the authenticated user's own account.
func (s *Server) MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, currentUserFromContext(r))
	}
}

// UpdateSkillLevelHandler sets a user's skill level.
func (s *Server) UpdateSkillLevelHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			SkillLevel int `json:"skill_level"`
		}
		if err := decodeBody(r, &req); err != nil {
			respondError(w, err)
			return
		}
		if err := s.Users.UpdateSkillLevel(r.PathValue("id"), req.SkillLevel); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// LoginHandler verifies credentials and returns an access token.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := decodeBody(r, &req); err != nil {
			respondError(w, err)
			return
		}

		user, err := s.Users.GetUserByEmail(req.Email)
		if err != nil || !s.Auth.CheckPassword(user.PasswordHash, req.Password) {
			// Same response for unknown email and wrong password.
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		if !user.IsActive {
			http.Error(w, "Account is deactivated", http.StatusForbidden)
			return
		}

		token, err := s.Auth.IssueToken(user.ID, user.Role)
		if err != nil {
			respondError(w, err)
			return
		}

		log.Info("User logged in", "userID", user.ID)
		respondJSON(w, http.StatusOK, map[string]any{
			"user":  user,
			"token": token,
		})
	}
}
