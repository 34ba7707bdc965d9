package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Where a revenue record came from ("Bus Trip", "Rental", "Loan Payment",
// "Other Income", ...).
type GlobalSource struct {
	SourceID uuid.UUID `gorm:"column:source_id;type:uuid;default:gen_random_uuid();primaryKey" json:"source_id"`

	SourceName string `gorm:"column:source_name;type:varchar(60);not null;uniqueIndex:uq_sources_name" json:"source_name"`

	CreatedAt time.Time      `gorm:"column:source_created_at;autoCreateTime" json:"source_created_at"`
	UpdatedAt time.Time      `gorm:"column:source_updated_at;autoUpdateTime" json:"source_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:source_deleted_at;index" json:"source_deleted_at,omitempty"`
}

func (GlobalSource) TableName() string { return "global_sources" }
