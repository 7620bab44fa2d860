package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in Password field.
//
// ResetTokenHash holds the SHA-256 of an outstanding password-reset token;
// both reset fields are nil unless a reset is in flight.
type User struct {
	ID             string
	Email          string
	Password       string
	FirstName      string
	LastName       string
	IsAdmin        bool
	AvatarURL      string
	ResetTokenHash *string
	ResetTokenExp  *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName joins first and last name for display and email greetings.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// HasActiveResetToken reports whether an unexpired reset token is outstanding.
func (u *User) HasActiveResetToken(now time.Time) bool {
	return u.ResetTokenHash != nil && u.ResetTokenExp != nil && now.Before(*u.ResetTokenExp)
}

// ClearResetToken removes any outstanding reset token state.
func (u *User) ClearResetToken() {
	u.ResetTokenHash = nil
	u.ResetTokenExp = nil
}
