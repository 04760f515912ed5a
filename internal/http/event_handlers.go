package http

import (
	"net/http"

	"github.com/campus-sports/arena/internal/events"
	"github.com/google/uuid"
)

// CreateEventHandler creates an event organized by the caller, honoring the
// caller college's restricted hours.
func (s *Server) CreateEventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUserFromContext(r)

		var event events.Event
		if err := decodeBody(r, &event); err != nil {
			respondError(w, err)
			return
		}
		if event.ID == "" {
			event.ID = uuid.New().String()
		}
		event.OrganizerID = user.ID
		if err := s.Events.CreateEvent(&event, user.CollegeID); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, event)
	}
}

func (s *Server) ListEventsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := s.Events.ListEvents()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, all)
	}
}

func (s *Server) GetEventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := s.Events.GetEvent(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, event)
	}
}

func (s *Server) UpdateEventStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Status string `json:"status"`
		}
		if err := decodeBody(r, &req); err != nil {
			respondError(w, err)
			return
		}
		status, err := events.ParseEventStatus(req.Status)
		if err != nil {
			respondError(w, err)
			return
		}
		if err := s.Events.UpdateEventStatus(r.PathValue("id"), status); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
