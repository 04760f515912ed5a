package http

import (
	"net/http"

	"github.com/campus-sports/arena/internal/apperr"
	"github.com/campus-sports/arena/internal/matchmaking"
	"github.com/campus-sports/arena/internal/pubsub"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// CreateMatchHandler creates a match for the caller's college, honoring the
// college's restricted hours.
func (s *Server) CreateMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUserFromContext(r)
		isDryRun := isDryRunFromContext(r)

		var match matchmaking.Match
		if err := decodeBody(r, &match); err != nil {
			respondError(w, err)
			return
		}
		if match.ID == "" {
			match.ID = uuid.New().String()
		}
		if err := s.Matches.CreateMatch(&match, user.CollegeID); err != nil {
			respondError(w, err)
			return
		}

		if err := s.Notifier.SendMatchAnnouncement(&match, isDryRun); err != nil {
			log.Error("Failed to announce match", "matchID", match.ID, "error", err)
		}
		respondJSON(w, http.StatusCreated, match)
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Matches.ListMatches()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, matches)
	}
}

func (s *Server) GetMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		match, err := s.Matches.GetMatch(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, match)
	}
}

// RegisterForMatchHandler registers the caller for a match. Capacity and
// skill checks happen in the store as one serialized transaction.
func (s *Server) RegisterForMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUserFromContext(r)
		matchID := r.PathValue("id")

		participant, err := s.Matches.RegisterForMatch(matchID, user.ID)
		if err != nil {
			if apperr.IsConflict(err) {
				s.Metrics.IncRegistrationRejections()
				s.MetricsStore.Increment("registration_rejections")
			}
			respondError(w, err)
			return
		}

		s.Metrics.IncRegistrations()
		s.MetricsStore.Increment("registrations")
		if err := s.pubsub.SendMessage(pubsub.EventMatchRegistered, participant); err != nil {
			log.Error("Failed to publish registration event", "matchID", matchID, "error", err)
		}
		respondJSON(w, http.StatusCreated, participant)
	}
}

func (s *Server) UpdateMatchStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.PathValue("id")
		isDryRun := isDryRunFromContext(r)

		var req struct {
			Status string `json:"status"`
		}
		if err := decodeBody(r, &req); err != nil {
			respondError(w, err)
			return
		}
		status, err := matchmaking.ParseMatchStatus(req.Status)
		if err != nil {
			respondError(w, err)
			return
		}
		if err := s.Matches.UpdateMatchStatus(matchID, status); err != nil {
			respondError(w, err)
			return
		}

		if status == matchmaking.StatusCompleted {
			match, err := s.Matches.GetMatch(matchID)
			if err == nil {
				if err := s.Notifier.SendResultNotification(match, isDryRun); err != nil {
					log.Error("Failed to send result notification", "matchID", matchID, "error", err)
				}
				if err := s.pubsub.SendMessage(pubsub.EventMatchCompleted, match); err != nil {
					log.Error("Failed to publish completion event", "matchID", matchID, "error", err)
				}
			}
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) IssueCertificateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.PathValue("id")
		isDryRun := isDryRunFromContext(r)

		var req struct {
			UserID string `json:"user_id"`
			Type   string `json:"type"`
		}
		if err := decodeBody(r, &req); err != nil {
			respondError(w, err)
			return
		}
		certType, err := matchmaking.ParseCertificateType(req.Type)
		if err != nil {
			respondError(w, err)
			return
		}

		cert, err := s.Matches.IssueCertificate(req.UserID, matchID, certType)
		if err != nil {
			respondError(w, err)
			return
		}

		userName := req.UserID
		if user, err := s.Users.GetUser(req.UserID); err == nil {
			userName = user.Name
		}
		if err := s.Notifier.SendCertificateNotification(cert, userName, isDryRun); err != nil {
			log.Error("Failed to send certificate notification", "certID", cert.ID, "error", err)
		}
		if err := s.pubsub.SendMessage(pubsub.EventCertificateIssued, cert); err != nil {
			log.Error("Failed to publish certificate event", "certID", cert.ID, "error", err)
		}
		respondJSON(w, http.StatusCreated, cert)
	}
}

func (s *Server) CreateTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUserFromContext(r)

		var team matchmaking.Team
		if err := decodeBody(r, &team); err != nil {
			respondError(w, err)
			return
		}
		if team.ID == "" {
			team.ID = uuid.New().String()
		}
		if team.CaptainID == nil {
			team.CaptainID = &user.ID
		}
		if err := s.Matches.CreateTeam(&team); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, team)
	}
}

func (s *Server) GetTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team, err := s.Matches.GetTeam(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, team)
	}
}

// JoinTeamHandler registers the caller for the match their team participates
// in. The team path does not apply capacity or skill checks.
func (s *Server) JoinTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUserFromContext(r)
		teamID := r.PathValue("id")

		participant, err := s.Matches.JoinTeam(teamID, user.ID)
		if err != nil {
			respondError(w, err)
			return
		}

		s.Metrics.IncRegistrations()
		s.MetricsStore.Increment("registrations")
		if err := s.pubsub.SendMessage(pubsub.EventMatchRegistered, participant); err != nil {
			log.Error("Failed to publish registration event", "teamID", teamID, "error", err)
		}
		respondJSON(w, http.StatusCreated, participant)
	}
}
