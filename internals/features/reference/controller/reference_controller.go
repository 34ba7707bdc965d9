package controller

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	refDTO "ftms_backend/internals/features/reference/dto"
	refModel "ftms_backend/internals/features/reference/model"
	refService "ftms_backend/internals/features/reference/service"
	helper "ftms_backend/internals/helpers"
)

type Handler struct {
	Store *refService.Store
}

/* =======================================================
   CATEGORIES
======================================================= */

// GET /reference/categories
func (h *Handler) ListCategories(c *fiber.Ctx) error {
	rows, err := h.Store.Categories()
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "categories", rows)
}

// POST /reference/categories
func (h *Handler) CreateCategory(c *fiber.Ctx) error {
	var in refDTO.CategoryCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := refDTO.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	row := refModel.GlobalCategory{
		CategoryName:         strings.TrimSpace(in.CategoryName),
		CategoryDescription:  in.CategoryDescription,
		CategoryApplicableTo: in.CategoryApplicableTo,
	}
	if row.CategoryApplicableTo == "" {
		row.CategoryApplicableTo = "both"
	}
	if err := h.Store.CreateCategory(&row); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "category created", row)
}

// DELETE /reference/categories/:id
func (h *Handler) DeleteCategory(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.Store.DeleteCategory(id); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "category deleted", fiber.Map{"category_id": id})
}

/* =======================================================
   PAYMENT METHODS
======================================================= */

// GET /reference/payment-methods
func (h *Handler) ListPaymentMethods(c *fiber.Ctx) error {
	rows, err := h.Store.PaymentMethods()
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "payment methods", rows)
}

// POST /reference/payment-methods
func (h *Handler) CreatePaymentMethod(c *fiber.Ctx) error {
	var in refDTO.PaymentMethodCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := refDTO.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	row := refModel.GlobalPaymentMethod{PaymentMethodName: strings.TrimSpace(in.PaymentMethodName)}
	if err := h.Store.CreatePaymentMethod(&row); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "payment method created", row)
}

// DELETE /reference/payment-methods/:id
func (h *Handler) DeletePaymentMethod(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.Store.DeletePaymentMethod(id); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "payment method deleted", fiber.Map{"payment_method_id": id})
}

/* =======================================================
   SOURCES
======================================================= */

// GET /reference/sources
func (h *Handler) ListSources(c *fiber.Ctx) error {
	rows, err := h.Store.Sources()
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "sources", rows)
}

// POST /reference/sources
func (h *Handler) CreateSource(c *fiber.Ctx) error {
	var in refDTO.SourceCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := refDTO.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	row := refModel.GlobalSource{SourceName: strings.TrimSpace(in.SourceName)}
	if err := h.Store.CreateSource(&row); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "source created", row)
}

// DELETE /reference/sources/:id
func (h *Handler) DeleteSource(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.Store.DeleteSource(id); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "source deleted", fiber.Map{"source_id": id})
}

/* =======================================================
   PAYMENT STATUSES (read-only, seeded)
======================================================= */

// GET /reference/payment-statuses
func (h *Handler) ListPaymentStatuses(c *fiber.Ctx) error {
	rows, err := h.Store.PaymentStatuses()
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "payment statuses", rows)
}
