package http

import (
	"net/http"

	"github.com/campus-sports/arena/internal/pubsub"
	"github.com/campus-sports/arena/internal/scheduling"
	"github.com/charmbracelet/log"
)

// CreateScheduleHandler books a venue for a match. Overlap detection happens
// in the store as one serialized transaction.
func (s *Server) CreateScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := isDryRunFromContext(r)

		var schedule scheduling.Schedule
		if err := decodeBody(r, &schedule); err != nil {
			respondError(w, err)
			return
		}
		if err := s.Schedules.CreateSchedule(&schedule); err != nil {
			respondError(w, err)
			return
		}

		s.Metrics.IncVenueBookings()
		s.MetricsStore.Increment("venue_bookings")

		venueName := schedule.VenueID
		if venue, err := s.Campus.GetVenue(schedule.VenueID); err == nil {
			venueName = venue.Name
		}
		if err := s.Notifier.SendBookingNotification(&schedule, venueName, isDryRun); err != nil {
			log.Error("Failed to send booking notification", "scheduleID", schedule.ID, "error", err)
		}
		if err := s.pubsub.SendMessage(pubsub.EventVenueBooked, schedule); err != nil {
			log.Error("Failed to publish booking event", "scheduleID", schedule.ID, "error", err)
		}
		respondJSON(w, http.StatusCreated, schedule)
	}
}

func (s *Server) ListVenueSchedulesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schedules, err := s.Schedules.ListSchedulesForVenue(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, schedules)
	}
}
