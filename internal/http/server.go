package http

import (
	"net/http"

	"github.com/campus-sports/arena/internal/auth"
	"github.com/campus-sports/arena/internal/campus"
	"github.com/campus-sports/arena/internal/config"
	"github.com/campus-sports/arena/internal/events"
	"github.com/campus-sports/arena/internal/matchmaking"
	"github.com/campus-sports/arena/internal/metrics"
	"github.com/campus-sports/arena/internal/notifier"
	"github.com/campus-sports/arena/internal/pubsub"
	"github.com/campus-sports/arena/internal/scheduling"
	"github.com/campus-sports/arena/internal/users"
)

func NewServer(
	userStore users.UserStore,
	campusStore campus.CampusStore,
	matchStore matchmaking.MatchStore,
	scheduleStore scheduling.ScheduleStore,
	eventStore events.EventStore,
	authSvc *auth.Service,
	metricsSvc metrics.Metrics,
	metricsStore metrics.MetricsStore,
	metricsHandler http.Handler,
	cfg config.Config,
	notifier notifier.Notifier,
	pubsub pubsub.PubSubClient,
) *Server {
	server := &Server{
		Users:          userStore,
		Campus:         campusStore,
		Matches:        matchStore,
		Schedules:      scheduleStore,
		Events:         eventStore,
		Auth:           authSvc,
		Metrics:        metricsSvc,
		MetricsStore:   metricsStore,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// Protected routes add authMiddleware on top of paramsMiddleware, and
	// admin-only routes add requireAdmin on top of that.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /stats", Chain(s.StatsHandler(), paramsMiddleware))

	s.Router.Handle("POST /auth/register", Chain(s.RegisterHandler(), paramsMiddleware))
	s.Router.Handle("POST /auth/login", Chain(s.LoginHandler(), paramsMiddleware))
	s.Router.Handle("GET /me", Chain(s.MeHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("PUT /users/{id}/skill", Chain(s.UpdateSkillLevelHandler(), paramsMiddleware, s.authMiddleware, s.requireAdmin))

	s.Router.Handle("POST /colleges", Chain(s.CreateCollegeHandler(), paramsMiddleware, s.authMiddleware, s.requireAdmin))
	s.Router.Handle("GET /colleges/{id}", Chain(s.GetCollegeHandler(), paramsMiddleware))
	s.Router.Handle("POST /colleges/{id}/restricted-days", Chain(s.AddRestrictedDayHandler(), paramsMiddleware, s.authMiddleware, s.requireAdmin))
	s.Router.Handle("POST /colleges/{id}/venues", Chain(s.CreateVenueHandler(), paramsMiddleware, s.authMiddleware, s.requireAdmin))
	s.Router.Handle("GET /venues/{id}", Chain(s.GetVenueHandler(), paramsMiddleware))
	s.Router.Handle("POST /colleges/{id}/equipment", Chain(s.AddEquipmentHandler(), paramsMiddleware, s.authMiddleware, s.requireAdmin))
	s.Router.Handle("GET /colleges/{id}/equipment", Chain(s.ListEquipmentHandler(), paramsMiddleware))

	s.Router.Handle("POST /matches", Chain(s.CreateMatchHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /matches", Chain(s.ListMatchesHandler(), paramsMiddleware))
	s.Router.Handle("GET /matches/{id}", Chain(s.GetMatchHandler(), paramsMiddleware))
	s.Router.Handle("POST /matches/{id}/register", Chain(s.RegisterForMatchHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("PUT /matches/{id}/status", Chain(s.UpdateMatchStatusHandler(), paramsMiddleware, s.authMiddleware, s.requireAdmin))
	s.Router.Handle("POST /matches/{id}/certificates", Chain(s.IssueCertificateHandler(), paramsMiddleware, s.authMiddleware, s.requireAdmin))

	s.Router.Handle("POST /teams", Chain(s.CreateTeamHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /teams/{id}", Chain(s.GetTeamHandler(), paramsMiddleware))
	s.Router.Handle("POST /teams/{id}/join", Chain(s.JoinTeamHandler(), paramsMiddleware, s.authMiddleware))

	s.Router.Handle("POST /schedules", Chain(s.CreateScheduleHandler(), paramsMiddleware, s.authMiddleware, s.requireAdmin))
	s.Router.Handle("GET /venues/{id}/schedules", Chain(s.ListVenueSchedulesHandler(), paramsMiddleware))

	s.Router.Handle("POST /events", Chain(s.CreateEventHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /events", Chain(s.ListEventsHandler(), paramsMiddleware))
	s.Router.Handle("GET /events/{id}", Chain(s.GetEventHandler(), paramsMiddleware))
	s.Router.Handle("PUT /events/{id}/status", Chain(s.UpdateEventStatusHandler(), paramsMiddleware, s.authMiddleware, s.requireAdmin))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
