package campus

import (
	"sync"
	"time"
)

// MockStore is a mock implementation of the CampusStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateCollegeFunc    func(college *College) error
	GetCollegeFunc       func(id string) (*College, error)
	AddRestrictedDayFunc func(day *RestrictedDay) error
	GetRestrictedDayFunc func(collegeID string, dayOfWeek int) (*RestrictedDay, error)
	IsTimeRestrictedFunc func(collegeID string, t time.Time) (bool, error)
	CreateVenueFunc      func(venue *Venue) error
	GetVenueFunc         func(id string) (*Venue, error)
	AddEquipmentFunc     func(eq *Equipment) error
	ListEquipmentFunc    func(collegeID string) ([]Equipment, error)

	// Call records
	CreateCollegeCalls    []*College
	AddRestrictedDayCalls []*RestrictedDay
	IsTimeRestrictedCalls []struct {
		CollegeID string
		Time      time.Time
	}
	CreateVenueCalls  []*Venue
	AddEquipmentCalls []*Equipment
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCollegeCalls = nil
	m.AddRestrictedDayCalls = nil
	m.IsTimeRestrictedCalls = nil
	m.CreateVenueCalls = nil
	m.AddEquipmentCalls = nil
}

func (m *MockStore) CreateCollege(college *College) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCollegeCalls = append(m.CreateCollegeCalls, college)
	if m.CreateCollegeFunc != nil {
		return m.CreateCollegeFunc(college)
	}
	return nil
}

func (m *MockStore) GetCollege(id string) (*College, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetCollegeFunc != nil {
		return m.GetCollegeFunc(id)
	}
	return nil, nil
}

func (m *MockStore) AddRestrictedDay(day *RestrictedDay) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddRestrictedDayCalls = append(m.AddRestrictedDayCalls, day)
	if m.AddRestrictedDayFunc != nil {
		return m.AddRestrictedDayFunc(day)
	}
	return nil
}

func (m *MockStore) GetRestrictedDay(collegeID string, dayOfWeek int) (*RestrictedDay, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetRestrictedDayFunc != nil {
		return m.GetRestrictedDayFunc(collegeID, dayOfWeek)
	}
	return nil, nil
}

func (m *MockStore) IsTimeRestricted(collegeID string, t time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.IsTimeRestrictedCalls = append(m.IsTimeRestrictedCalls, struct {
		CollegeID string
		Time      time.Time
	}{collegeID, t})
	if m.IsTimeRestrictedFunc != nil {
		return m.IsTimeRestrictedFunc(collegeID, t)
	}
	return false, nil
}

func (m *MockStore) CreateVenue(venue *Venue) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateVenueCalls = append(m.CreateVenueCalls, venue)
	if m.CreateVenueFunc != nil {
		return m.CreateVenueFunc(venue)
	}
	return nil
}

func (m *MockStore) GetVenue(id string) (*Venue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetVenueFunc != nil {
		return m.GetVenueFunc(id)
	}
	return nil, nil
}

func (m *MockStore) AddEquipment(eq *Equipment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddEquipmentCalls = append(m.AddEquipmentCalls, eq)
	if m.AddEquipmentFunc != nil {
		return m.AddEquipmentFunc(eq)
	}
	return nil
}

func (m *MockStore) ListEquipment(collegeID string) ([]Equipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListEquipmentFunc != nil {
		return m.ListEquipmentFunc(collegeID)
	}
	return nil, nil
}
