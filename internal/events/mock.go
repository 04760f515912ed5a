package events

import "sync"

// MockStore is a mock implementation of the EventStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateEventFunc       func(event *Event, organizerCollegeID string) error
	GetEventFunc          func(eventID string) (*Event, error)
	ListEventsFunc        func() ([]*Event, error)
	UpdateEventStatusFunc func(eventID string, status EventStatus) error

	// Call records
	CreateEventCalls []struct {
		Event              *Event
		OrganizerCollegeID string
	}
	UpdateEventStatusCalls []struct {
		EventID string
		Status  EventStatus
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateEventCalls = nil
	m.UpdateEventStatusCalls = nil
}

func (m *MockStore) CreateEvent(event *Event, organizerCollegeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateEventCalls = append(m.CreateEventCalls, struct {
		Event              *Event
		OrganizerCollegeID string
	}{event, organizerCollegeID})
	if m.CreateEventFunc != nil {
		return m.CreateEventFunc(event, organizerCollegeID)
	}
	return nil
}

func (m *MockStore) GetEvent(eventID string) (*Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetEventFunc != nil {
		return m.GetEventFunc(eventID)
	}
	return nil, nil
}

func (m *MockStore) ListEvents() ([]*Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListEventsFunc != nil {
		return m.ListEventsFunc()
	}
	return nil, nil
}

func (m *MockStore) UpdateEventStatus(eventID string, status EventStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateEventStatusCalls = append(m.UpdateEventStatusCalls, struct {
		EventID string
		Status  EventStatus
	}{eventID, status})
	if m.UpdateEventStatusFunc != nil {
		return m.UpdateEventStatusFunc(eventID, status)
	}
	return nil
}
