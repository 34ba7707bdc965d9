package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditController "ftms_backend/internals/features/audits/controller"
)

// Admin portal only; the trail is append-only and never exposed to staff.
func AuditAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &auditController.Handler{DB: db}
	admin.Get("/audit-logs", h.ListAuditLogs)
}
