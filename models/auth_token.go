package models

import "time"

// AuthToken backs a bearer token issued at login. The row existing is
// what makes the token valid; logout deletes it.
type AuthToken struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time
	UserID    uint      `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
}
