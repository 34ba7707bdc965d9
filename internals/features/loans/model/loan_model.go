package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	LoanStatusActive = "ACTIVE"
	LoanStatusClosed = "CLOSED"
)

type Loan struct {
	LoanID uuid.UUID `gorm:"column:loan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"loan_id"`

	LoanBorrowerName string          `gorm:"column:loan_borrower_name;type:varchar(120);not null" json:"loan_borrower_name"`
	LoanPrincipal    decimal.Decimal `gorm:"column:loan_principal;type:numeric(14,2);not null" json:"loan_principal"`
	LoanStatus       string          `gorm:"column:loan_status;type:varchar(20);not null;default:'ACTIVE'" json:"loan_status"`
	LoanIssuedDate   time.Time       `gorm:"column:loan_issued_date;type:date;not null" json:"loan_issued_date"`
	LoanNotes        *string         `gorm:"column:loan_notes;type:text" json:"loan_notes,omitempty"`

	Payments []LoanPayment `gorm:"foreignKey:LoanPaymentLoanID;references:LoanID" json:"payments,omitempty"`

	CreatedAt time.Time      `gorm:"column:loan_created_at;autoCreateTime" json:"loan_created_at"`
	UpdatedAt time.Time      `gorm:"column:loan_updated_at;autoUpdateTime" json:"loan_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:loan_deleted_at;index" json:"loan_deleted_at,omitempty"`
}

func (Loan) TableName() string { return "loans" }
