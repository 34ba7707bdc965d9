package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountsPayable is the vendor-owed balance of an expense bought on credit.
// At most one row per expense.
type AccountsPayable struct {
	PayableID uuid.UUID `gorm:"column:payable_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payable_id"`

	PayableExpenseID uuid.UUID `gorm:"column:payable_expense_id;type:uuid;not null;uniqueIndex:uq_payable_expense" json:"payable_expense_id"`

	PayableVendorName string          `gorm:"column:payable_vendor_name;type:varchar(120);not null" json:"payable_vendor_name"`
	PayableAmount     decimal.Decimal `gorm:"column:payable_amount;type:numeric(14,2);not null" json:"payable_amount"`
	PayableDueDate    *time.Time      `gorm:"column:payable_due_date;type:date" json:"payable_due_date,omitempty"`

	PayableIsSettled bool       `gorm:"column:payable_is_settled;not null;default:false" json:"payable_is_settled"`
	PayableSettledAt *time.Time `gorm:"column:payable_settled_at" json:"payable_settled_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:payable_created_at;autoCreateTime" json:"payable_created_at"`
	UpdatedAt time.Time      `gorm:"column:payable_updated_at;autoUpdateTime" json:"payable_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:payable_deleted_at;index" json:"payable_deleted_at,omitempty"`
}

func (AccountsPayable) TableName() string { return "accounts_payable" }
