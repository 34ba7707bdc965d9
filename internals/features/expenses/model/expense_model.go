package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is the parent record. It may fan out into per-employee
// reimbursement claims and/or one accounts-payable balance; the fan-out is
// written in the same transaction as the expense itself.
type Expense struct {
	ExpenseID uuid.UUID `gorm:"column:expense_id;type:uuid;default:gen_random_uuid();primaryKey" json:"expense_id"`

	ExpenseCategoryID      uuid.UUID `gorm:"column:expense_category_id;type:uuid;not null;index" json:"expense_category_id"`
	ExpensePaymentMethodID uuid.UUID `gorm:"column:expense_payment_method_id;type:uuid;not null" json:"expense_payment_method_id"`

	ExpenseDescription string          `gorm:"column:expense_description;type:text;not null" json:"expense_description"`
	ExpenseTotalAmount decimal.Decimal `gorm:"column:expense_total_amount;type:numeric(14,2);not null" json:"expense_total_amount"`
	ExpenseDate        time.Time       `gorm:"column:expense_date;type:date;not null" json:"expense_date"`

	// Operations linkage (trip-derived fuel expense).
	ExpenseBusTripID    *uuid.UUID `gorm:"column:expense_bus_trip_id;type:uuid;index" json:"expense_bus_trip_id,omitempty"`
	ExpenseAssignmentID *uuid.UUID `gorm:"column:expense_assignment_id;type:uuid" json:"expense_assignment_id,omitempty"`

	ExpenseCreatedBy uuid.UUID `gorm:"column:expense_created_by;type:uuid;not null" json:"expense_created_by"`

	Reimbursements  []Reimbursement  `gorm:"foreignKey:ReimbursementExpenseID;references:ExpenseID" json:"reimbursements,omitempty"`
	AccountsPayable *AccountsPayable `gorm:"foreignKey:PayableExpenseID;references:ExpenseID" json:"accounts_payable,omitempty"`

	CreatedAt time.Time      `gorm:"column:expense_created_at;autoCreateTime" json:"expense_created_at"`
	UpdatedAt time.Time      `gorm:"column:expense_updated_at;autoUpdateTime" json:"expense_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:expense_deleted_at;index" json:"expense_deleted_at,omitempty"`
}

func (Expense) TableName() string { return "expenses" }
