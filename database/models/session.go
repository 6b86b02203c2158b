package models

import "time"

// Session is one admin login. ExpiresAt is a fixed window from creation and
// is not renewed on activity.
type Session struct {
	ID            string    `gorm:"primaryKey;size:64"`
	Authenticated bool      `gorm:"not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	ExpiresAt     time.Time `gorm:"index;not null"`
}

// Expired reports whether the session is past its fixed expiry window.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
