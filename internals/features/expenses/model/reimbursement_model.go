package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	ReimbursementStatusPending   = "PENDING"
	ReimbursementStatusApproved  = "APPROVED"
	ReimbursementStatusPaid      = "PAID"
	ReimbursementStatusRejected  = "REJECTED"
	ReimbursementStatusCancelled = "CANCELLED"
)

/* ===================== Model ===================== */

// Reimbursement is one employee's claim against a parent expense. Claim
// amounts across an expense must sum to the expense amount.
type Reimbursement struct {
	ReimbursementID uuid.UUID `gorm:"column:reimbursement_id;type:uuid;default:gen_random_uuid();primaryKey" json:"reimbursement_id"`

	ReimbursementExpenseID uuid.UUID `gorm:"column:reimbursement_expense_id;type:uuid;not null;index" json:"reimbursement_expense_id"`

	// External employee identity from the HR cache.
	ReimbursementEmployeeExternalID string `gorm:"column:reimbursement_employee_external_id;type:varchar(60);not null" json:"reimbursement_employee_external_id"`
	ReimbursementEmployeeName       string `gorm:"column:reimbursement_employee_name;type:varchar(120);not null" json:"reimbursement_employee_name"`

	ReimbursementAmount decimal.Decimal `gorm:"column:reimbursement_amount;type:numeric(14,2);not null" json:"reimbursement_amount"`
	ReimbursementStatus string          `gorm:"column:reimbursement_status;type:varchar(10);not null;default:'PENDING'" json:"reimbursement_status"`

	// Set by the PAY transition; resolved by payment-method name.
	ReimbursementPaymentMethodID *uuid.UUID `gorm:"column:reimbursement_payment_method_id;type:uuid" json:"reimbursement_payment_method_id,omitempty"`
	ReimbursementPaidAt          *time.Time `gorm:"column:reimbursement_paid_at" json:"reimbursement_paid_at,omitempty"`

	ReimbursementRemarks *string `gorm:"column:reimbursement_remarks;type:text" json:"reimbursement_remarks,omitempty"`

	CreatedAt time.Time      `gorm:"column:reimbursement_created_at;autoCreateTime" json:"reimbursement_created_at"`
	UpdatedAt time.Time      `gorm:"column:reimbursement_updated_at;autoUpdateTime" json:"reimbursement_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:reimbursement_deleted_at;index" json:"reimbursement_deleted_at,omitempty"`
}

func (Reimbursement) TableName() string { return "reimbursements" }

// IsTerminal reports whether no further transitions are defined.
func (r *Reimbursement) IsTerminal() bool {
	switch r.ReimbursementStatus {
	case ReimbursementStatusPaid, ReimbursementStatusRejected, ReimbursementStatusCancelled:
		return true
	}
	return false
}
