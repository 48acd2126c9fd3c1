package models

import "time"

// User model
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Email          string    `gorm:"size:255;not null;unique" json:"email"`
	HashedPassword []byte    `gorm:"not null" json:"-"`
	Role           Role      `gorm:"size:32;not null;default:user;index" json:"role"`

	Transactions []Transaction      `gorm:"foreignKey:UserID" json:"-"`
	Groups       []TransactionGroup `gorm:"foreignKey:UserID" json:"-"`
}
