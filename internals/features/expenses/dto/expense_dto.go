package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var Validate = validator.New()

type ReimbursementClaimDTO struct {
	EmployeeExternalID string          `json:"employee_external_id" validate:"required"`
	EmployeeName       string          `json:"employee_name" validate:"required"`
	Amount             decimal.Decimal `json:"amount"`
}

type AccountsPayableDTO struct {
	VendorName string          `json:"vendor_name" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    *time.Time      `json:"due_date,omitempty"`
}

type ExpenseCreateDTO struct {
	ExpenseCategoryID      uuid.UUID `json:"expense_category_id" validate:"required"`
	ExpensePaymentMethodID uuid.UUID `json:"expense_payment_method_id" validate:"required"`

	ExpenseDescription string          `json:"expense_description" validate:"required,min=5"`
	ExpenseTotalAmount decimal.Decimal `json:"expense_total_amount"`
	ExpenseDate        time.Time       `json:"expense_date" validate:"required"`

	ExpenseBusTripID    *uuid.UUID `json:"expense_bus_trip_id,omitempty"`
	ExpenseAssignmentID *uuid.UUID `json:"expense_assignment_id,omitempty"`

	Reimbursements  []ReimbursementClaimDTO `json:"reimbursements,omitempty" validate:"omitempty,dive"`
	AccountsPayable *AccountsPayableDTO     `json:"accounts_payable,omitempty"`
}

// ReimbursementActionDTO carries the optional PAY extras; APPROVE/REJECT/
// CANCEL ignore both fields.
type ReimbursementActionDTO struct {
	PaymentMethodName *string `json:"payment_method_name,omitempty"`
	Remarks           *string `json:"remarks,omitempty"`
}
