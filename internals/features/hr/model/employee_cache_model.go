package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeCache is a read-only projection of the HR system's roster, used for
// reimbursement claims and payroll lookups. HR owns the data.
type EmployeeCache struct {
	EmployeeCacheID uuid.UUID `gorm:"column:employee_cache_id;type:uuid;default:gen_random_uuid();primaryKey" json:"employee_cache_id"`

	EmployeeExternalID string `gorm:"column:employee_external_id;type:varchar(60);not null;uniqueIndex:uq_employee_cache_external" json:"employee_external_id"`

	EmployeeFullName string `gorm:"column:employee_full_name;type:varchar(120);not null" json:"employee_full_name"`
	EmployeePosition string `gorm:"column:employee_position;type:varchar(80);not null;default:''" json:"employee_position"`

	EmployeeIsActive bool `gorm:"column:employee_is_active;not null;default:true" json:"employee_is_active"`

	LastSyncedAt time.Time      `gorm:"column:employee_last_synced_at" json:"employee_last_synced_at"`
	CreatedAt    time.Time      `gorm:"column:employee_created_at;autoCreateTime" json:"employee_created_at"`
	UpdatedAt    time.Time      `gorm:"column:employee_updated_at;autoUpdateTime" json:"employee_updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:employee_deleted_at;index" json:"employee_deleted_at,omitempty"`
}

func (EmployeeCache) TableName() string { return "employee_cache" }
