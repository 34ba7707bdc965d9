package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BusTripCache mirrors one trip under an assignment. The two recorded flags
// are the only fields this service owns; trip financials stay authoritative
// upstream. Skip external PATCH; webhooks/refresh will align upstream state.
type BusTripCache struct {
	BusTripCacheID uuid.UUID `gorm:"column:bus_trip_cache_id;type:uuid;default:gen_random_uuid();primaryKey" json:"bus_trip_cache_id"`

	BusTripExternalID string    `gorm:"column:bus_trip_external_id;type:varchar(60);not null;uniqueIndex:uq_bus_trip_cache_external" json:"bus_trip_external_id"`
	AssignmentCacheID uuid.UUID `gorm:"column:bus_trip_assignment_cache_id;type:uuid;not null;index" json:"bus_trip_assignment_cache_id"`

	BusTripDate time.Time `gorm:"column:bus_trip_date;type:date;not null" json:"bus_trip_date"`

	TripRevenue     decimal.Decimal `gorm:"column:bus_trip_revenue;type:numeric(14,2);not null;default:0" json:"bus_trip_revenue"`
	TripFuelExpense decimal.Decimal `gorm:"column:bus_trip_fuel_expense;type:numeric(14,2);not null;default:0" json:"bus_trip_fuel_expense"`

	// Crew compensation channel for this trip ("Reimbursement", "Cash", ...).
	TripPaymentMethod string `gorm:"column:bus_trip_payment_method;type:varchar(30);not null;default:'Cash'" json:"bus_trip_payment_method"`

	IsRevenueRecorded bool `gorm:"column:bus_trip_is_revenue_recorded;not null;default:false" json:"bus_trip_is_revenue_recorded"`
	IsExpenseRecorded bool `gorm:"column:bus_trip_is_expense_recorded;not null;default:false" json:"bus_trip_is_expense_recorded"`

	BusTripIsActive bool `gorm:"column:bus_trip_is_active;not null;default:true" json:"bus_trip_is_active"`

	LastSyncedAt time.Time      `gorm:"column:bus_trip_last_synced_at" json:"bus_trip_last_synced_at"`
	CreatedAt    time.Time      `gorm:"column:bus_trip_created_at;autoCreateTime" json:"bus_trip_created_at"`
	UpdatedAt    time.Time      `gorm:"column:bus_trip_updated_at;autoUpdateTime" json:"bus_trip_updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:bus_trip_deleted_at;index" json:"bus_trip_deleted_at,omitempty"`
}

func (BusTripCache) TableName() string { return "bus_trip_cache" }
