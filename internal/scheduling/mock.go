package scheduling

import "sync"

// MockStore is a mock implementation of the ScheduleStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateScheduleFunc        func(schedule *Schedule) error
	GetScheduleFunc           func(scheduleID string) (*Schedule, error)
	ListSchedulesForVenueFunc func(venueID string) ([]*Schedule, error)

	// Call records
	CreateScheduleCalls        []*Schedule
	ListSchedulesForVenueCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateScheduleCalls = nil
	m.ListSchedulesForVenueCalls = nil
}

func (m *MockStore) CreateSchedule(schedule *Schedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateScheduleCalls = append(m.CreateScheduleCalls, schedule)
	if m.CreateScheduleFunc != nil {
		return m.CreateScheduleFunc(schedule)
	}
	return nil
}

func (m *MockStore) GetSchedule(scheduleID string) (*Schedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetScheduleFunc != nil {
		return m.GetScheduleFunc(scheduleID)
	}
	return nil, nil
}

func (m *MockStore) ListSchedulesForVenue(venueID string) ([]*Schedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListSchedulesForVenueCalls = append(m.ListSchedulesForVenueCalls, venueID)
	if m.ListSchedulesForVenueFunc != nil {
		return m.ListSchedulesForVenueFunc(venueID)
	}
	return nil, nil
}
