package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */
/* Assignment types as named by the Operations system. */

const (
	AssignmentTypeBoundary   = "Boundary"
	AssignmentTypePercentage = "Percentage"
	AssignmentTypeBusRental  = "Bus Rental"
)

/* ===================== Model ===================== */

// AssignmentCache mirrors an assignment owned by the external Operations
// system. This service only upserts the projection from polls/webhooks; it
// never writes assignment data back upstream.
type AssignmentCache struct {
	AssignmentCacheID uuid.UUID `gorm:"column:assignment_cache_id;type:uuid;default:gen_random_uuid();primaryKey" json:"assignment_cache_id"`

	// Identity in the Operations system.
	AssignmentExternalID string `gorm:"column:assignment_external_id;type:varchar(60);not null;uniqueIndex:uq_assignment_cache_external" json:"assignment_external_id"`

	AssignmentBusRoute string          `gorm:"column:assignment_bus_route;type:varchar(120);not null" json:"assignment_bus_route"`
	AssignmentType     string          `gorm:"column:assignment_type;type:varchar(20);not null" json:"assignment_type"`
	AssignmentValue    decimal.Decimal `gorm:"column:assignment_value;type:numeric(14,2);not null;default:0" json:"assignment_value"`

	AssignmentDriverExternalID    *string `gorm:"column:assignment_driver_external_id;type:varchar(60)" json:"assignment_driver_external_id,omitempty"`
	AssignmentConductorExternalID *string `gorm:"column:assignment_conductor_external_id;type:varchar(60)" json:"assignment_conductor_external_id,omitempty"`

	AssignmentIsActive bool `gorm:"column:assignment_is_active;not null;default:true" json:"assignment_is_active"`

	LastSyncedAt time.Time      `gorm:"column:assignment_last_synced_at" json:"assignment_last_synced_at"`
	CreatedAt    time.Time      `gorm:"column:assignment_created_at;autoCreateTime" json:"assignment_created_at"`
	UpdatedAt    time.Time      `gorm:"column:assignment_updated_at;autoUpdateTime" json:"assignment_updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:assignment_deleted_at;index" json:"assignment_deleted_at,omitempty"`
}

func (AssignmentCache) TableName() string { return "assignment_cache" }
