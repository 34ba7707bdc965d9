package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Revenue/expense categories ("Boundary", "Percentage", "Bus Rental",
// "Fuel", "Office Supplies", ...). Shared by both admin and staff portals.
type GlobalCategory struct {
	CategoryID uuid.UUID `gorm:"column:category_id;type:uuid;default:gen_random_uuid();primaryKey" json:"category_id"`

	CategoryName        string  `gorm:"column:category_name;type:varchar(100);not null;uniqueIndex:uq_categories_name" json:"category_name"`
	CategoryDescription *string `gorm:"column:category_description;type:text" json:"category_description,omitempty"`
	CategoryApplicableTo string `gorm:"column:category_applicable_to;type:varchar(20);not null;default:'both'" json:"category_applicable_to"` // revenue|expense|both

	CreatedAt time.Time      `gorm:"column:category_created_at;autoCreateTime" json:"category_created_at"`
	UpdatedAt time.Time      `gorm:"column:category_updated_at;autoUpdateTime" json:"category_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:category_deleted_at;index" json:"category_deleted_at,omitempty"`
}

func (GlobalCategory) TableName() string { return "global_categories" }
