package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentMethodCash          = "Cash"
	PaymentMethodReimbursement = "Reimbursement"
	PaymentMethodBankTransfer  = "Bank Transfer"
	PaymentMethodCheck         = "Check"
)

type GlobalPaymentMethod struct {
	PaymentMethodID uuid.UUID `gorm:"column:payment_method_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_method_id"`

	PaymentMethodName string `gorm:"column:payment_method_name;type:varchar(60);not null;uniqueIndex:uq_payment_methods_name" json:"payment_method_name"`

	CreatedAt time.Time      `gorm:"column:payment_method_created_at;autoCreateTime" json:"payment_method_created_at"`
	UpdatedAt time.Time      `gorm:"column:payment_method_updated_at;autoUpdateTime" json:"payment_method_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:payment_method_deleted_at;index" json:"payment_method_deleted_at,omitempty"`
}

func (GlobalPaymentMethod) TableName() string { return "global_payment_methods" }
