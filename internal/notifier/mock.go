package notifier

import (
	"sync"

	"github.com/campus-sports/arena/internal/matchmaking"
	"github.com/campus-sports/arena/internal/scheduling"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendMatchAnnouncementCalls  []*matchmaking.Match
	SendResultNotificationCalls []*matchmaking.Match
	SendBookingNotificationCalls []struct {
		Schedule  *scheduling.Schedule
		VenueName string
	}
	SendCertificateNotificationCalls []struct {
		Cert     *matchmaking.Certificate
		UserName string
	}

	// Spies for method calls
	SendMatchAnnouncementFunc       func(match *matchmaking.Match, dryRun bool) error
	SendResultNotificationFunc      func(match *matchmaking.Match, dryRun bool) error
	SendBookingNotificationFunc     func(schedule *scheduling.Schedule, venueName string, dryRun bool) error
	SendCertificateNotificationFunc func(cert *matchmaking.Certificate, userName string, dryRun bool) error
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchAnnouncementCalls = nil
	m.SendResultNotificationCalls = nil
	m.SendBookingNotificationCalls = nil
	m.SendCertificateNotificationCalls = nil
}

func (m *Mock) SendMatchAnnouncement(match *matchmaking.Match, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchAnnouncementCalls = append(m.SendMatchAnnouncementCalls, match)
	if m.SendMatchAnnouncementFunc != nil {
		return m.SendMatchAnnouncementFunc(match, dryRun)
	}
	return nil
}

func (m *Mock) SendResultNotification(match *matchmaking.Match, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = append(m.SendResultNotificationCalls, match)
	if m.SendResultNotificationFunc != nil {
		return m.SendResultNotificationFunc(match, dryRun)
	}
	return nil
}

func (m *Mock) SendBookingNotification(schedule *scheduling.Schedule, venueName string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendBookingNotificationCalls = append(m.SendBookingNotificationCalls, struct {
		Schedule  *scheduling.Schedule
		VenueName string
	}{schedule, venueName})
	if m.SendBookingNotificationFunc != nil {
		return m.SendBookingNotificationFunc(schedule, venueName, dryRun)
	}
	return nil
}

func (m *Mock) SendCertificateNotification(cert *matchmaking.Certificate, userName string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendCertificateNotificationCalls = append(m.SendCertificateNotificationCalls, struct {
		Cert     *matchmaking.Certificate
		UserName string
	}{cert, userName})
	if m.SendCertificateNotificationFunc != nil {
		return m.SendCertificateNotificationFunc(cert, userName, dryRun)
	}
	return nil
}
