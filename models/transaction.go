package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a ledger entry. The sign is always
// carried here, never by the amount.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is income or expense.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Expense categories (only meaningful when type=expense).
const (
	ExpenseCategoryAsset       = "asset"
	ExpenseCategoryOperational = "operational"
)

// Transaction represents a single ledger entry recorded for a user.
// UserID is the owner; CreatedBy is the finance/admin actor who recorded it.
type Transaction struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	CreatedAt          time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	Description        string          `gorm:"size:255;not null" json:"description"`
	Type               TransactionType `gorm:"size:16;not null;index" json:"type"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date               time.Time       `gorm:"not null" json:"date"`
	Category           *string         `gorm:"size:100" json:"category"`
	ExpenseCategory    *string         `gorm:"size:32" json:"expense_category"`
	ExpenseSubcategory *string         `gorm:"size:100" json:"expense_subcategory"`
	TransactionGroupID *uint           `gorm:"index" json:"transaction_group_id"`
	EmployeePaymentID  *uint           `gorm:"index" json:"employee_payment_id"`
	UserID             uint            `gorm:"index;not null" json:"user_id"`
	CreatedBy          uint            `gorm:"not null" json:"created_by"`
	Notes              *string         `json:"notes"`

	User             *User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Creator          *User             `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	TransactionGroup *TransactionGroup `gorm:"foreignKey:TransactionGroupID;constraint:OnDelete:SET NULL" json:"transaction_group,omitempty"`
	EmployeePayment  *EmployeePayment  `gorm:"foreignKey:EmployeePaymentID" json:"employee_payment,omitempty"`
}
