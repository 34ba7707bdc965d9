package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ===================== Actions ===================== */

const (
	AuditActionCreate  = "CREATE"
	AuditActionUpdate  = "UPDATE"
	AuditActionArchive = "ARCHIVE"
	AuditActionPost    = "POST"
	AuditActionReverse = "REVERSE"
	AuditActionApprove = "APPROVE"
	AuditActionReject  = "REJECT"
	AuditActionCancel  = "CANCEL"
	AuditActionPay     = "PAY"
)

/* ===================== Model ===================== */

type AuditLog struct {
	AuditLogID uuid.UUID `gorm:"column:audit_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"audit_log_id"`

	AuditLogAction   string    `gorm:"column:audit_log_action;type:varchar(20);not null" json:"audit_log_action"`
	AuditLogEntity   string    `gorm:"column:audit_log_entity;type:varchar(40);not null;index:idx_audit_logs_entity,priority:1" json:"audit_log_entity"`
	AuditLogEntityID uuid.UUID `gorm:"column:audit_log_entity_id;type:uuid;not null;index:idx_audit_logs_entity,priority:2" json:"audit_log_entity_id"`

	AuditLogPerformedBy uuid.UUID `gorm:"column:audit_log_performed_by;type:uuid;not null" json:"audit_log_performed_by"`

	// Human-readable summary plus structured detail payload
	AuditLogDetail  string            `gorm:"column:audit_log_detail;type:text" json:"audit_log_detail"`
	AuditLogDetails datatypes.JSONMap `gorm:"column:audit_log_details;type:jsonb" json:"audit_log_details,omitempty"`

	CreatedAt time.Time `gorm:"column:audit_log_created_at;autoCreateTime" json:"audit_log_created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }
