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

type Server struct {
	Users          users.UserStore
	Campus         campus.CampusStore
	Matches        matchmaking.MatchStore
	Schedules      scheduling.ScheduleStore
	Events         events.EventStore
	Auth           *auth.Service
	Metrics        metrics.Metrics
	MetricsStore   metrics.MetricsStore
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
