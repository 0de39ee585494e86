package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User represents an identity that can sign in to the control panel.
type User struct {
	ID           uuid.UUID
	Email        string
	UserName     string
	PasswordHash string
	LockoutEnd   *time.Time
	Roles        []string
	CreatedAt    time.Time
}

// IsLockedOut reports whether the user's lockout is still active at now.
func (u *User) IsLockedOut(now time.Time) bool {
	return u.LockoutEnd != nil && u.LockoutEnd.After(now)
}

// HasRole reports whether the user holds the named role.
func (u *User) HasRole(name string) bool {
	return slices.Contains(u.Roles, name)
}

// Role is a named authorization group.
type Role struct {
	ID   uuid.UUID
	Name string
}
