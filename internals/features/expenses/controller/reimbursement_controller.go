package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditService "ftms_backend/internals/features/audits/service"
	expenseDTO "ftms_backend/internals/features/expenses/dto"
	expenseModel "ftms_backend/internals/features/expenses/model"
	expenseService "ftms_backend/internals/features/expenses/service"
	refService "ftms_backend/internals/features/reference/service"
	helper "ftms_backend/internals/helpers"
)

// auditActions maps workflow actions to audit-log verbs.
var auditActions = map[string]string{
	expenseService.ActionApprove: "APPROVE",
	expenseService.ActionReject:  "REJECT",
	expenseService.ActionCancel:  "CANCEL",
	expenseService.ActionPay:     "PAY",
}

// POST /reimbursements/:id/approve
func (h *Handler) ApproveReimbursement(c *fiber.Ctx) error {
	return h.transition(c, expenseService.ActionApprove)
}

// POST /reimbursements/:id/reject
func (h *Handler) RejectReimbursement(c *fiber.Ctx) error {
	return h.transition(c, expenseService.ActionReject)
}

// POST /reimbursements/:id/cancel
func (h *Handler) CancelReimbursement(c *fiber.Ctx) error {
	return h.transition(c, expenseService.ActionCancel)
}

// POST /reimbursements/:id/pay
func (h *Handler) PayReimbursement(c *fiber.Ctx) error {
	return h.transition(c, expenseService.ActionPay)
}

// transition loads the claim, validates the action against the persisted
// status, applies PAY extras, and writes the audit row — all in one
// transaction. A stale status is a conflict, never a silent proceed.
func (h *Handler) transition(c *fiber.Ctx, action string) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	actorID, ok := helper.UserIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, http.StatusUnauthorized, "missing actor")
	}

	var in expenseDTO.ReimbursementActionDTO
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid json")
		}
	}

	var m expenseModel.Reimbursement
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "reimbursement_id = ?", id).Error; err != nil {
			return err
		}

		next, err := expenseService.NextStatus(action, m.ReimbursementStatus)
		if err != nil {
			return err
		}

		m.ReimbursementStatus = next
		if in.Remarks != nil {
			m.ReimbursementRemarks = in.Remarks
		}

		if action == expenseService.ActionPay {
			if in.PaymentMethodName != nil {
				pm, err := h.Store.PaymentMethodByName(*in.PaymentMethodName)
				if err != nil {
					if errors.Is(err, refService.ErrNotFound) {
						return errPaymentMethodUnknown
					}
					return err
				}
				m.ReimbursementPaymentMethodID = &pm.PaymentMethodID
			}
			now := time.Now()
			m.ReimbursementPaidAt = &now
		}

		if err := tx.Save(&m).Error; err != nil {
			return err
		}

		detail := auditActions[action] + " reimbursement for " + m.ReimbursementEmployeeName +
			" (" + m.ReimbursementAmount.StringFixed(2) + ")"
		if in.Remarks != nil {
			detail += ": " + *in.Remarks
		}
		return auditService.Record(tx, auditActions[action], "reimbursement",
			m.ReimbursementID, actorID, detail, nil)
	})

	switch {
	case txErr == nil:
		return helper.JsonUpdated(c, "reimbursement "+m.ReimbursementStatus, m)
	case errors.Is(txErr, gorm.ErrRecordNotFound):
		return helper.JsonError(c, http.StatusNotFound, "reimbursement not found")
	case errors.Is(txErr, errPaymentMethodUnknown):
		return helper.JsonError(c, http.StatusNotFound, "payment method not found")
	default:
		var conflict *expenseService.StateConflictError
		if errors.As(txErr, &conflict) {
			return helper.JsonConflict(c, conflict.Error())
		}
		return helper.JsonError(c, http.StatusInternalServerError, txErr.Error())
	}
}

var errPaymentMethodUnknown = errors.New("payment method not found")

// GET /reimbursements
func (h *Handler) ListReimbursements(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&expenseModel.Reimbursement{})
	if st := c.Query("status"); st != "" {
		q = q.Where("reimbursement_status = ?", st)
	}
	if emp := c.Query("employee_external_id"); emp != "" {
		q = q.Where("reimbursement_employee_external_id = ?", emp)
	}

	allowed := map[string]string{
		"created_at": "reimbursement_created_at",
		"amount":     "reimbursement_amount",
		"status":     "reimbursement_status",
	}
	orderClause, _ := p.SafeOrderClause(allowed, "created_at")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	var list []expenseModel.Reimbursement
	if err := q.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "reimbursements", list, helper.BuildMeta(total, p))
}
