package service

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	auditModel "ftms_backend/internals/features/audits/model"
)

// Record writes one audit row. Pass the surrounding *gorm.DB (or tx) so the
// audit entry commits/rolls back together with the mutation it describes.
func Record(tx *gorm.DB, action, entity string, entityID, performedBy uuid.UUID, detail string, details map[string]any) error {
	row := auditModel.AuditLog{
		AuditLogAction:      action,
		AuditLogEntity:      entity,
		AuditLogEntityID:    entityID,
		AuditLogPerformedBy: performedBy,
		AuditLogDetail:      detail,
	}
	if details != nil {
		row.AuditLogDetails = datatypes.JSONMap(details)
	}
	return tx.Create(&row).Error
}
