package users

import "sync"

// MockStore is a mock implementation of the UserStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateUserFunc       func(user *User) error
	GetUserFunc          func(id string) (*User, error)
	GetUserByEmailFunc   func(email string) (*User, error)
	UpdateSkillLevelFunc func(id string, skillLevel int) error

	// Call records
	CreateUserCalls       []*User
	GetUserCalls          []string
	UpdateSkillLevelCalls []struct {
		ID         string
		SkillLevel int
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
	m.CreateUserCalls = nil
	m.GetUserCalls = nil
	m.UpdateSkillLevelCalls = nil
}

func (m *MockStore) CreateUser(user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateUserCalls = append(m.CreateUserCalls, user)
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(user)
	}
	return nil
}

func (m *MockStore) GetUser(id string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetUserCalls = append(m.GetUserCalls, id)
	if m.GetUserFunc != nil {
		return m.GetUserFunc(id)
	}
	return nil, nil
}

func (m *MockStore) GetUserByEmail(email string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(email)
	}
	return nil, nil
}

func (m *MockStore) UpdateSkillLevel(id string, skillLevel int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateSkillLevelCalls = append(m.UpdateSkillLevelCalls, struct {
		ID         string
		SkillLevel int
	}{id, skillLevel})
	if m.UpdateSkillLevelFunc != nil {
		return m.UpdateSkillLevelFunc(id, skillLevel)
	}
	return nil
}
