package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cash received against a revenue record; drives the outstanding-balance
// recompute.
type RevenuePayment struct {
	PaymentID        uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentRevenueID uuid.UUID `gorm:"column:payment_revenue_id;type:uuid;not null;index" json:"payment_revenue_id"`

	PaymentAmount decimal.Decimal `gorm:"column:payment_amount;type:numeric(14,2);not null" json:"payment_amount"`
	PaymentDate   time.Time       `gorm:"column:payment_date;type:date;not null" json:"payment_date"`

	PaymentRecordedBy uuid.UUID `gorm:"column:payment_recorded_by;type:uuid;not null" json:"payment_recorded_by"`

	CreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"payment_deleted_at,omitempty"`
}

func (RevenuePayment) TableName() string { return "revenue_payments" }
