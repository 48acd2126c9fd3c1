package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee payment statuses.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusApproved = "approved"
)

// EmployeePayment is a payroll entry managed by finance. Approved
// payments can be referenced from expense transactions.
type EmployeePayment struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	EmployeeID  uint            `gorm:"index;not null" json:"employee_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"size:255" json:"description"`
	Status      string          `gorm:"size:32;not null;default:pending" json:"status"`
	PaymentDate time.Time       `gorm:"not null" json:"payment_date"`

	Employee *User `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}
