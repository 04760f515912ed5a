package matchmaking

// MatchStore handles matches, teams, registration and certificates.
type MatchStore interface {
	// CreateMatch creates a match after checking the organizer college's
	// restricted hours for the scheduled time.
	CreateMatch(match *Match, organizerCollegeID string) error

	// GetMatch retrieves a match by ID.
	GetMatch(matchID string) (*Match, error)

	// ListMatches returns all matches ordered by scheduled time.
	ListMatches() ([]*Match, error)

	// UpdateMatchStatus transitions a match to a new lifecycle state.
	UpdateMatchStatus(matchID string, status MatchStatus) error

	// CountParticipants returns the number of confirmed participants of a match.
	CountParticipants(matchID string) (int, error)

	// GetParticipant retrieves the participant row for (userID, matchID).
	GetParticipant(userID, matchID string) (*Participant, error)

	// AvgSkillOfParticipants returns the mean skill level over a match's
	// participants, or nil when the match has none.
	AvgSkillOfParticipants(matchID string) (*float64, error)

	// RegisterForMatch registers a user for a match, enforcing capacity and
	// skill compatibility. The checks and the insert run as one serialized
	// transaction.
	RegisterForMatch(matchID, userID string) (*Participant, error)

	// CreateTeam creates a team.
	CreateTeam(team *Team) error

	// GetTeam retrieves a team by ID.
	GetTeam(teamID string) (*Team, error)

	// JoinTeam registers a user for the match their team participates in.
	JoinTeam(teamID, userID string) (*Participant, error)

	// IssueCertificate issues a certificate to a participant of a completed match.
	IssueCertificate(userID, matchID string, certType CertificateType) (*Certificate, error)
}
