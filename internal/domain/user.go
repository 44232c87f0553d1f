package domain

import (
	"strings"
	"time"
)

// Defaults for the demo user.
const (
	DefaultDisplayName = "Bobby"
	DefaultMemberSince = "1990-01-01"
)

// User is the current user of the demo. There is no authentication:
// logging in only records a display name.
type User struct {
	DisplayName string
	MemberSince time.Time
	LoggedIn    bool
}

// NewUser creates a logged-out user.
func NewUser(displayName string, memberSince time.Time) User {
	return User{
		DisplayName: displayName,
		MemberSince: memberSince,
	}
}

// LogIn returns a copy of the user with the display name replaced and
// LoggedIn set.
func (u User) LogIn(displayName string) (User, error) {
	if err := ValidateDisplayName(displayName); err != nil {
		return u, err
	}

	u.DisplayName = strings.TrimSpace(displayName)
	u.LoggedIn = true
	return u, nil
}
