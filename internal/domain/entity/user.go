// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that can log in and author ads.
type User struct {
	ID           int64     // Assigned by storage at creation, never changes.
	Username     string    // Unique login name, immutable after creation.
	Email        string    // Unique contact address.
	PasswordHash string    // Digest produced by the PasswordHasher, never the plaintext.
	Token        *string   // The single live bearer token, nil when logged out.
	CreatedAt    time.Time // Timestamp of registration.
}

// HasToken reports whether the user currently holds a live bearer token.
func (u *User) HasToken() bool {
	return u.Token != nil && *u.Token != ""
}
