// Package models holds the server-side domain records.
package models

import "time"

// User is an account record. Login is the immutable lookup key; ExternalID is
// the linked Telegram account, nil while the account is unlinked.
type User struct {
	ID           string
	Login        string
	Name         string
	PasswordHash string
	ExternalID   *int64
	CreatedAt    time.Time
}

// IsLinked reports whether the user holds an external id.
func (u *User) IsLinked() bool {
	return u.ExternalID != nil
}
