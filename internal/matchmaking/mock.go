package matchmaking

import "sync"

// MockStore is a mock implementation of the MatchStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateMatchFunc            func(match *Match, organizerCollegeID string) error
	GetMatchFunc               func(matchID string) (*Match, error)
	ListMatchesFunc            func() ([]*Match, error)
	UpdateMatchStatusFunc      func(matchID string, status MatchStatus) error
	CountParticipantsFunc      func(matchID string) (int, error)
	GetParticipantFunc         func(userID, matchID string) (*Participant, error)
	AvgSkillOfParticipantsFunc func(matchID string) (*float64, error)
	RegisterForMatchFunc       func(matchID, userID string) (*Participant, error)
	CreateTeamFunc             func(team *Team) error
	GetTeamFunc                func(teamID string) (*Team, error)
	JoinTeamFunc               func(teamID, userID string) (*Participant, error)
	IssueCertificateFunc       func(userID, matchID string, certType CertificateType) (*Certificate, error)

	// Call records
	CreateMatchCalls []struct {
		Match              *Match
		OrganizerCollegeID string
	}
	RegisterForMatchCalls []struct {
		MatchID string
		UserID  string
	}
	JoinTeamCalls []struct {
		TeamID string
		UserID string
	}
	CreateTeamCalls       []*Team
	UpdateMatchStatusCalls []struct {
		MatchID string
		Status  MatchStatus
	}
	IssueCertificateCalls []struct {
		UserID  string
		MatchID string
		Type    CertificateType
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
	m.CreateMatchCalls = nil
	m.RegisterForMatchCalls = nil
	m.JoinTeamCalls = nil
	m.CreateTeamCalls = nil
	m.UpdateMatchStatusCalls = nil
	m.IssueCertificateCalls = nil
}

func (m *MockStore) CreateMatch(match *Match, organizerCollegeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateMatchCalls = append(m.CreateMatchCalls, struct {
		Match              *Match
		OrganizerCollegeID string
	}{match, organizerCollegeID})
	if m.CreateMatchFunc != nil {
		return m.CreateMatchFunc(match, organizerCollegeID)
	}
	return nil
}

func (m *MockStore) GetMatch(matchID string) (*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(matchID)
	}
	return nil, nil
}

func (m *MockStore) ListMatches() ([]*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc()
	}
	return nil, nil
}

func (m *MockStore) UpdateMatchStatus(matchID string, status MatchStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateMatchStatusCalls = append(m.UpdateMatchStatusCalls, struct {
		MatchID string
		Status  MatchStatus
	}{matchID, status})
	if m.UpdateMatchStatusFunc != nil {
		return m.UpdateMatchStatusFunc(matchID, status)
	}
	return nil
}

func (m *MockStore) CountParticipants(matchID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountParticipantsFunc != nil {
		return m.CountParticipantsFunc(matchID)
	}
	return 0, nil
}

func (m *MockStore) GetParticipant(userID, matchID string) (*Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetParticipantFunc != nil {
		return m.GetParticipantFunc(userID, matchID)
	}
	return nil, nil
}

func (m *MockStore) AvgSkillOfParticipants(matchID string) (*float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AvgSkillOfParticipantsFunc != nil {
		return m.AvgSkillOfParticipantsFunc(matchID)
	}
	return nil, nil
}

func (m *MockStore) RegisterForMatch(matchID, userID string) (*Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RegisterForMatchCalls = append(m.RegisterForMatchCalls, struct {
		MatchID string
		UserID  string
	}{matchID, userID})
	if m.RegisterForMatchFunc != nil {
		return m.RegisterForMatchFunc(matchID, userID)
	}
	return nil, nil
}

func (m *MockStore) CreateTeam(team *Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateTeamCalls = append(m.CreateTeamCalls, team)
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(team)
	}
	return nil
}

func (m *MockStore) GetTeam(teamID string) (*Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(teamID)
	}
	return nil, nil
}

func (m *MockStore) JoinTeam(teamID, userID string) (*Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.JoinTeamCalls = append(m.JoinTeamCalls, struct {
		TeamID string
		UserID string
	}{teamID, userID})
	if m.JoinTeamFunc != nil {
		return m.JoinTeamFunc(teamID, userID)
	}
	return nil, nil
}

func (m *MockStore) IssueCertificate(userID, matchID string, certType CertificateType) (*Certificate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.IssueCertificateCalls = append(m.IssueCertificateCalls, struct {
		UserID  string
		MatchID string
		Type    CertificateType
	}{userID, matchID, certType})
	if m.IssueCertificateFunc != nil {
		return m.IssueCertificateFunc(userID, matchID, certType)
	}
	return nil, nil
}
