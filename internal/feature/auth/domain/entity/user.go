// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User is a registered account, identified by email.
type User struct {
	// ID is the auto-assigned surrogate key.
	ID uint `gorm:"primaryKey"`

	// Email identifies the account. Compared case-sensitively as stored.
	// The unique index is the authoritative guard against duplicate signups.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the account secret.
	Password string `gorm:"size:255;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
