package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending = "Pending"
	PaymentStatusPartial = "Partial"
	PaymentStatusPaid    = "Paid"
)

// Seeded payment-status vocabulary. Trip→revenue creation hard-fails when the
// "Pending" row is missing, so the seeder must run before the Operations sync.
type GlobalPaymentStatus struct {
	PaymentStatusID uuid.UUID `gorm:"column:payment_status_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_status_id"`

	PaymentStatusName string `gorm:"column:payment_status_name;type:varchar(30);not null;uniqueIndex:uq_payment_statuses_name" json:"payment_status_name"`

	CreatedAt time.Time      `gorm:"column:payment_status_created_at;autoCreateTime" json:"payment_status_created_at"`
	UpdatedAt time.Time      `gorm:"column:payment_status_updated_at;autoUpdateTime" json:"payment_status_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:payment_status_deleted_at;index" json:"payment_status_deleted_at,omitempty"`
}

func (GlobalPaymentStatus) TableName() string { return "global_payment_statuses" }
