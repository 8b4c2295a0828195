package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a login session of a user. The token is issued by
// the authentication provider and opaque to this backend.
type Session struct {
	DefaultModel
	UserID    uuid.UUID `json:"user_id"`
	User      User      `json:"-"`
	Token     string    `json:"-" gorm:"uniqueIndex"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at the given time.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
