package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RevenueInstallment struct {
	InstallmentID        uuid.UUID `gorm:"column:installment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"installment_id"`
	InstallmentRevenueID uuid.UUID `gorm:"column:installment_revenue_id;type:uuid;not null;index" json:"installment_revenue_id"`

	InstallmentSeq     int             `gorm:"column:installment_seq;not null" json:"installment_seq"`
	InstallmentAmount  decimal.Decimal `gorm:"column:installment_amount;type:numeric(14,2);not null" json:"installment_amount"`
	InstallmentDueDate time.Time       `gorm:"column:installment_due_date;type:date;not null" json:"installment_due_date"`

	CreatedAt time.Time `gorm:"column:installment_created_at;autoCreateTime" json:"installment_created_at"`
}

func (RevenueInstallment) TableName() string { return "revenue_installments" }
