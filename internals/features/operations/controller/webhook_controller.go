package controller

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	helper "ftms_backend/internals/helpers"
)

// LifecyclePushDTO is the shared payload for upstream is_active flips.
type LifecyclePushDTO struct {
	ExternalID string `json:"external_id"`
	IsActive   bool   `json:"is_active"`
}

// POST /webhooks/operations/assignments — covers both bus and rental
// assignments; upstream keys them by the same external id space.
func (h *Handler) AssignmentLifecycleWebhook(c *fiber.Ctx) error {
	var in LifecyclePushDTO
	if err := c.BodyParser(&in); err != nil || in.ExternalID == "" {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := h.Syncer.SetAssignmentActive(in.ExternalID, in.IsActive); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "assignment lifecycle updated", in)
}

// POST /webhooks/operations/bus-trips
func (h *Handler) BusTripLifecycleWebhook(c *fiber.Ctx) error {
	var in LifecyclePushDTO
	if err := c.BodyParser(&in); err != nil || in.ExternalID == "" {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := h.Syncer.SetBusTripActive(in.ExternalID, in.IsActive); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "bus trip lifecycle updated", in)
}
