package notifier

import (
	"github.com/campus-sports/arena/internal/matchmaking"
	"github.com/campus-sports/arena/internal/scheduling"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For newly created matches
	SendMatchAnnouncement(match *matchmaking.Match, dryRun bool) error
	// For completed matches
	SendResultNotification(match *matchmaking.Match, dryRun bool) error
	// For venue bookings
	SendBookingNotification(schedule *scheduling.Schedule, venueName string, dryRun bool) error
	// For issued certificates
	SendCertificateNotification(cert *matchmaking.Certificate, userName string, dryRun bool) error
}
