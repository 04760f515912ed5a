package users

// UserStore defines the interface for interacting with user accounts.
type UserStore interface {
	// CreateUser inserts a new user. Fails with a Conflict error when the
	// email is already registered.
	CreateUser(user *User) error

	// GetUser retrieves a user by id. Fails with NotFound when absent.
	GetUser(id string) (*User, error)

	// GetUserByEmail retrieves a user by email. Fails with NotFound when absent.
	GetUserByEmail(email string) (*User, error)

	// UpdateSkillLevel sets a user's skill level, bounded [1,10].
	UpdateSkillLevel(id string, skillLevel int) error
}
