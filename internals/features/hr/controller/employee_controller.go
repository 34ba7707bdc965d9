package controller

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	hrService "ftms_backend/internals/features/hr/service"
	helper "ftms_backend/internals/helpers"
)

type Handler struct {
	Syncer *hrService.Syncer
}

// GET /hr/employees — refreshes from HR first, then serves the cache. When
// the upstream call fails the handler degrades: the response carries the
// cached rows (possibly empty) plus an X-Sync-Degraded header instead of 5xx.
func (h *Handler) ListEmployees(c *fiber.Ctx) error {
	if h.Syncer.Client.Enabled() {
		if _, err := h.Syncer.SyncEmployees(c.Context()); err != nil {
			h.Syncer.Log.Warn().Err(err).Msg("⚠️ HR sync failed, serving cached employees")
			c.Set("X-Sync-Degraded", "hr")
		}
	} else {
		c.Set("X-Sync-Degraded", "hr-not-configured")
	}

	list, err := h.Syncer.CachedEmployees(c.Query("active") == "true")
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "employees", list)
}

// POST /hr/sync — explicit refresh; unlike the list path, failure here is a
// hard error so operators see it.
func (h *Handler) SyncNow(c *fiber.Ctx) error {
	if !h.Syncer.Client.Enabled() {
		return helper.JsonError(c, http.StatusServiceUnavailable, "HR API is not configured")
	}
	count, err := h.Syncer.SyncEmployees(c.Context())
	if err != nil {
		return helper.JsonError(c, http.StatusBadGateway, err.Error())
	}
	return helper.JsonOK(c, "employee sync complete", fiber.Map{"employees_synced": count})
}

// POST /webhooks/hr/employees
func (h *Handler) EmployeeLifecycleWebhook(c *fiber.Ctx) error {
	var in struct {
		ExternalID string `json:"external_id"`
		IsActive   bool   `json:"is_active"`
	}
	if err := c.BodyParser(&in); err != nil || in.ExternalID == "" {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := h.Syncer.SetEmployeeActive(in.ExternalID, in.IsActive); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "employee lifecycle updated", in)
}
