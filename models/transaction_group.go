package models

import "time"

// TransactionGroup is a per-user bucket for organizing transactions.
// The (user_id, name, type) unique index rejects duplicate names and
// makes default-group seeding idempotent under concurrent first reads.
type TransactionGroup struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	UserID    uint            `gorm:"not null;uniqueIndex:idx_group_owner_name" json:"user_id"`
	Name      string          `gorm:"size:255;not null;uniqueIndex:idx_group_owner_name" json:"name"`
	Type      TransactionType `gorm:"size:16;not null;uniqueIndex:idx_group_owner_name" json:"type"`
	Category  *string         `gorm:"size:32" json:"category"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
