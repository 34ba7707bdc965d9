package controller

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditModel "ftms_backend/internals/features/audits/model"
	helper "ftms_backend/internals/helpers"
)

type Handler struct {
	DB *gorm.DB
}

// GET /audit-logs — filterable by entity, entity_id, action, actor.
func (h *Handler) ListAuditLogs(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := h.DB.Model(&auditModel.AuditLog{})
	if e := c.Query("entity"); e != "" {
		q = q.Where("audit_log_entity = ?", e)
	}
	if id := c.Query("entity_id"); id != "" {
		q = q.Where("audit_log_entity_id = ?", id)
	}
	if a := c.Query("action"); a != "" {
		q = q.Where("audit_log_action = ?", a)
	}
	if by := c.Query("performed_by"); by != "" {
		q = q.Where("audit_log_performed_by = ?", by)
	}

	allowed := map[string]string{
		"created_at": "audit_log_created_at",
		"action":     "audit_log_action",
	}
	orderClause, _ := p.SafeOrderClause(allowed, "created_at")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	var list []auditModel.AuditLog
	if err := q.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "audit logs", list, helper.BuildMeta(total, p))
}
