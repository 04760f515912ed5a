package http

import (
	"net/http"

	"github.com/campus-sports/arena/internal/campus"
	"github.com/google/uuid"
)

func (s *Server) CreateCollegeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var college campus.College
		if err := decodeBody(r, &college); err != nil {
			respondError(w, err)
			return
		}
		if college.ID == "" {
			college.ID = uuid.New().String()
		}
		if err := s.Campus.CreateCollege(&college); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, college)
	}
}

func (s *Server) GetCollegeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		college, err := s.Campus.GetCollege(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, college)
	}
}

func (s *Server) AddRestrictedDayHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var day campus.RestrictedDay
		if err := decodeBody(r, &day); err != nil {
			respondError(w, err)
			return
		}
		day.CollegeID = r.PathValue("id")
		if day.ID == "" {
			day.ID = uuid.New().String()
		}
		if err := s.Campus.AddRestrictedDay(&day); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, day)
	}
}

func (s *Server) CreateVenueHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var venue campus.Venue
		if err := decodeBody(r, &venue); err != nil {
			respondError(w, err)
			return
		}
		venue.CollegeID = r.PathValue("id")
		if venue.ID == "" {
			venue.ID = uuid.New().String()
		}
		if err := s.Campus.CreateVenue(&venue); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, venue)
	}
}

func (s *Server) GetVenueHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venue, err := s.Campus.GetVenue(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, venue)
	}
}

func (s *Server) AddEquipmentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var eq campus.Equipment
		if err := decodeBody(r, &eq); err != nil {
			respondError(w, err)
			return
		}
		eq.CollegeID = r.PathValue("id")
		if eq.ID == "" {
			eq.ID = uuid.New().String()
		}
		if err := s.Campus.AddEquipment(&eq); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, eq)
	}
}

func (s *Server) ListEquipmentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		equipment, err := s.Campus.ListEquipment(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, equipment)
	}
}
