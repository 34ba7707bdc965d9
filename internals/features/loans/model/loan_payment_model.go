package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// A loan payment may back at most one revenue record; the revenue validator
// enforces the exclusivity, the partial unique index in migrations closes
// the race.
type LoanPayment struct {
	LoanPaymentID     uuid.UUID `gorm:"column:loan_payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"loan_payment_id"`
	LoanPaymentLoanID uuid.UUID `gorm:"column:loan_payment_loan_id;type:uuid;not null;index" json:"loan_payment_loan_id"`

	LoanPaymentAmount decimal.Decimal `gorm:"column:loan_payment_amount;type:numeric(14,2);not null" json:"loan_payment_amount"`
	LoanPaymentDate   time.Time       `gorm:"column:loan_payment_date;type:date;not null" json:"loan_payment_date"`

	CreatedAt time.Time      `gorm:"column:loan_payment_created_at;autoCreateTime" json:"loan_payment_created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:loan_payment_deleted_at;index" json:"loan_payment_deleted_at,omitempty"`
}

func (LoanPayment) TableName() string { return "loan_payments" }
