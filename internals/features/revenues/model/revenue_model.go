package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	ARStatusPending = "PENDING"
	ARStatusPartial = "PARTIAL"
	ARStatusPaid    = "PAID"
)

// External reference vocabulary. The *Ref types require an id.
const (
	ExternalRefBusTrip     = "BUS_TRIP"
	ExternalRefRental      = "RENTAL"
	ExternalRefLoanPayment = "LOAN_PAYMENT"
	ExternalRefOther       = "OTHER"
)

/* ===================== Model ===================== */

type RevenueRecord struct {
	RevenueID uuid.UUID `gorm:"column:revenue_id;type:uuid;default:gen_random_uuid();primaryKey" json:"revenue_id"`

	RevenueCategoryID      uuid.UUID `gorm:"column:revenue_category_id;type:uuid;not null;index" json:"revenue_category_id"`
	RevenueSourceID        uuid.UUID `gorm:"column:revenue_source_id;type:uuid;not null" json:"revenue_source_id"`
	RevenuePaymentMethodID uuid.UUID `gorm:"column:revenue_payment_method_id;type:uuid;not null" json:"revenue_payment_method_id"`
	RevenuePaymentStatusID uuid.UUID `gorm:"column:revenue_payment_status_id;type:uuid;not null" json:"revenue_payment_status_id"`

	RevenueDescription string          `gorm:"column:revenue_description;type:text;not null" json:"revenue_description"`
	RevenueTotalAmount decimal.Decimal `gorm:"column:revenue_total_amount;type:numeric(14,2);not null" json:"revenue_total_amount"`

	RevenueCollectionDate time.Time  `gorm:"column:revenue_collection_date;type:date;not null" json:"revenue_collection_date"`
	RevenueDueDate        *time.Time `gorm:"column:revenue_due_date;type:date" json:"revenue_due_date,omitempty"`

	// AR: recognized before cash collection.
	RevenueIsReceivable bool       `gorm:"column:revenue_is_receivable;not null;default:false" json:"revenue_is_receivable"`
	RevenueARStatus     *string    `gorm:"column:revenue_ar_status;type:varchar(10)" json:"revenue_ar_status,omitempty"`
	RevenuePaidDate     *time.Time `gorm:"column:revenue_paid_date;type:date" json:"revenue_paid_date,omitempty"`

	// total_amount minus linked payments, floored at zero.
	RevenueOutstandingBalance decimal.Decimal `gorm:"column:revenue_outstanding_balance;type:numeric(14,2);not null;default:0" json:"revenue_outstanding_balance"`

	// Operations linkage (trip-derived revenue).
	RevenueBusTripID    *uuid.UUID `gorm:"column:revenue_bus_trip_id;type:uuid;index" json:"revenue_bus_trip_id,omitempty"`
	RevenueAssignmentID *uuid.UUID `gorm:"column:revenue_assignment_id;type:uuid" json:"revenue_assignment_id,omitempty"`

	// A loan payment backs at most one revenue record.
	RevenueLoanPaymentID *uuid.UUID `gorm:"column:revenue_loan_payment_id;type:uuid" json:"revenue_loan_payment_id,omitempty"`

	RevenueExternalRefType *string `gorm:"column:revenue_external_ref_type;type:varchar(20)" json:"revenue_external_ref_type,omitempty"`
	RevenueExternalRefID   *string `gorm:"column:revenue_external_ref_id;type:varchar(100)" json:"revenue_external_ref_id,omitempty"`

	// Installment plan header; the amounts live in revenue_installments.
	RevenueInstallmentFrequency *string    `gorm:"column:revenue_installment_frequency;type:varchar(20)" json:"revenue_installment_frequency,omitempty"`
	RevenueInstallmentStartDate *time.Time `gorm:"column:revenue_installment_start_date;type:date" json:"revenue_installment_start_date,omitempty"`

	RevenueCreatedBy uuid.UUID `gorm:"column:revenue_created_by;type:uuid;not null" json:"revenue_created_by"`

	Installments []RevenueInstallment `gorm:"foreignKey:InstallmentRevenueID;references:RevenueID" json:"installments,omitempty"`
	Payments     []RevenuePayment     `gorm:"foreignKey:PaymentRevenueID;references:RevenueID" json:"payments,omitempty"`

	CreatedAt time.Time      `gorm:"column:revenue_created_at;autoCreateTime" json:"revenue_created_at"`
	UpdatedAt time.Time      `gorm:"column:revenue_updated_at;autoUpdateTime" json:"revenue_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:revenue_deleted_at;index" json:"revenue_deleted_at,omitempty"`
}

func (RevenueRecord) TableName() string { return "revenue_records" }

/* ===================== Helpers ===================== */

func (r *RevenueRecord) IsFromBusTrip() bool { return r.RevenueBusTripID != nil }

func (r *RevenueRecord) HasInstallmentPlan() bool {
	return r.RevenueInstallmentFrequency != nil
}
