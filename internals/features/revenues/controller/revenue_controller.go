package controller

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	auditService "ftms_backend/internals/features/audits/service"
	refModel "ftms_backend/internals/features/reference/model"
	refService "ftms_backend/internals/features/reference/service"
	revenueDTO "ftms_backend/internals/features/revenues/dto"
	revenueModel "ftms_backend/internals/features/revenues/model"
	revenueService "ftms_backend/internals/features/revenues/service"
	helper "ftms_backend/internals/helpers"
)

type Handler struct {
	DB        *gorm.DB
	Store     *refService.Store
	Validator *revenueService.Validator
}

func NewHandler(db *gorm.DB, store *refService.Store) *Handler {
	return &Handler{
		DB:        db,
		Store:     store,
		Validator: revenueService.NewValidator(db, store),
	}
}

// POST /revenues
func (h *Handler) CreateRevenue(c *fiber.Ctx) error {
	actorID, ok := helper.UserIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, http.StatusUnauthorized, "missing actor")
	}

	var in revenueDTO.RevenueCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := revenueDTO.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	input := in.ToInput(actorID)
	errs, err := h.Validator.ValidateRevenueData(input, nil)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if len(errs) > 0 {
		return helper.JsonValidationErrors(c, errs)
	}

	// New records start with the full amount outstanding and the seeded
	// "Pending" payment status.
	pending, err := h.Store.PaymentStatusByName(refModel.PaymentStatusPending)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "payment status seed data missing")
	}

	m := revenueModel.RevenueRecord{
		RevenueCategoryID:      in.RevenueCategoryID,
		RevenueSourceID:        in.RevenueSourceID,
		RevenuePaymentMethodID: in.RevenuePaymentMethodID,
		RevenuePaymentStatusID: pending.PaymentStatusID,

		RevenueDescription: in.RevenueDescription,
		RevenueTotalAmount: in.RevenueTotalAmount,

		RevenueCollectionDate: in.RevenueCollectionDate,
		RevenueDueDate:        in.RevenueDueDate,

		RevenueIsReceivable: in.RevenueIsReceivable,
		RevenueARStatus:     in.RevenueARStatus,
		RevenuePaidDate:     in.RevenuePaidDate,

		RevenueOutstandingBalance: in.RevenueTotalAmount,

		RevenueBusTripID:     in.RevenueBusTripID,
		RevenueAssignmentID:  in.RevenueAssignmentID,
		RevenueLoanPaymentID: in.RevenueLoanPaymentID,

		RevenueExternalRefType: in.RevenueExternalRefType,
		RevenueExternalRefID:   in.RevenueExternalRefID,

		RevenueInstallmentFrequency: in.RevenueInstallmentFrequency,
		RevenueInstallmentStartDate: in.RevenueInstallmentStartDate,

		RevenueCreatedBy: actorID,
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for i, inst := range in.Installments {
			row := revenueModel.RevenueInstallment{
				InstallmentRevenueID: m.RevenueID,
				InstallmentSeq:       i + 1,
				InstallmentAmount:    inst.InstallmentAmount,
				InstallmentDueDate:   inst.InstallmentDueDate,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return auditService.Record(tx, "CREATE", "revenue_record", m.RevenueID, actorID,
			"created revenue record", nil)
	})
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "revenue created", m)
}

// PATCH /revenues/:id
func (h *Handler) UpdateRevenue(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	actorID, ok := helper.UserIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, http.StatusUnauthorized, "missing actor")
	}

	var in revenueDTO.RevenueUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}

	var m revenueModel.RevenueRecord
	if err := h.DB.Preload("Installments").First(&m, "revenue_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "revenue not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if in.RevenueDescription != nil {
		m.RevenueDescription = *in.RevenueDescription
	}
	if in.RevenueTotalAmount != nil {
		m.RevenueTotalAmount = *in.RevenueTotalAmount
	}
	if in.RevenueDueDate != nil {
		m.RevenueDueDate = in.RevenueDueDate
	}
	if in.RevenueARStatus != nil {
		m.RevenueARStatus = in.RevenueARStatus
	}
	if in.RevenuePaidDate != nil {
		m.RevenuePaidDate = in.RevenuePaidDate
	}

	// Re-validate the merged record, skipping itself in exclusivity checks.
	// The stored installment plan rides along so an amount edit cannot drift
	// away from what the installments sum to.
	errs, err := h.Validator.ValidateRevenueData(revenueService.InputFromRecord(m), &m.RevenueID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if len(errs) > 0 {
		return helper.JsonValidationErrors(c, errs)
	}

	// An amount edit shifts the outstanding balance too.
	if in.RevenueTotalAmount != nil {
		var rows []revenueModel.RevenuePayment
		if err := h.DB.Where("payment_revenue_id = ?", m.RevenueID).Find(&rows).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		amounts := make([]decimal.Decimal, 0, len(rows))
		for _, r := range rows {
			amounts = append(amounts, r.PaymentAmount)
		}
		m.RevenueOutstandingBalance = revenueService.RecomputeOutstanding(m.RevenueTotalAmount, amounts)
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		return auditService.Record(tx, "UPDATE", "revenue_record", m.RevenueID, actorID,
			"updated revenue record", nil)
	})
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "revenue updated", m)
}

// POST /revenues/:id/payments — records cash received and recomputes the
// outstanding balance (floored at zero). Receivables move PENDING → PARTIAL
// → PAID as the balance drains.
func (h *Handler) RecordPayment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	actorID, ok := helper.UserIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, http.StatusUnauthorized, "missing actor")
	}

	var in revenueDTO.RevenuePaymentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if !in.PaymentAmount.IsPositive() {
		return helper.JsonValidationErrors(c, []string{"payment amount must be positive"})
	}

	var m revenueModel.RevenueRecord
	if err := h.DB.First(&m, "revenue_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "revenue not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		payment := revenueModel.RevenuePayment{
			PaymentRevenueID:  m.RevenueID,
			PaymentAmount:     in.PaymentAmount,
			PaymentDate:       in.PaymentDate,
			PaymentRecordedBy: actorID,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		var rows []revenueModel.RevenuePayment
		if err := tx.Where("payment_revenue_id = ?", m.RevenueID).Find(&rows).Error; err != nil {
			return err
		}
		amounts := make([]decimal.Decimal, 0, len(rows))
		for _, r := range rows {
			amounts = append(amounts, r.PaymentAmount)
		}
		outstanding := revenueService.RecomputeOutstanding(m.RevenueTotalAmount, amounts)

		updates := map[string]any{"revenue_outstanding_balance": outstanding}
		if m.RevenueIsReceivable {
			if outstanding.IsZero() {
				updates["revenue_ar_status"] = revenueModel.ARStatusPaid
				updates["revenue_paid_date"] = in.PaymentDate
			} else {
				updates["revenue_ar_status"] = revenueModel.ARStatusPartial
			}
		}
		if err := tx.Model(&m).Updates(updates).Error; err != nil {
			return err
		}
		return auditService.Record(tx, "UPDATE", "revenue_record", m.RevenueID, actorID,
			"recorded payment of "+in.PaymentAmount.StringFixed(2),
			map[string]any{"outstanding_balance": outstanding.StringFixed(2)})
	})
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := h.DB.Preload("Payments").First(&m, "revenue_id = ?", m.RevenueID).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "payment recorded", m)
}

// GET /revenues
func (h *Handler) ListRevenues(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&revenueModel.RevenueRecord{})
	if cat := c.Query("category_id"); cat != "" {
		q = q.Where("revenue_category_id = ?", cat)
	}
	if c.Query("receivable") == "true" {
		q = q.Where("revenue_is_receivable = TRUE")
	}
	if st := c.Query("ar_status"); st != "" {
		q = q.Where("revenue_ar_status = ?", st)
	}

	allowed := map[string]string{
		"created_at": "revenue_created_at",
		"collection": "revenue_collection_date",
		"amount":     "revenue_total_amount",
	}
	orderClause, _ := p.SafeOrderClause(allowed, "created_at")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var list []revenueModel.RevenueRecord
	if err := q.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "revenues", list, helper.BuildMeta(total, p))
}

// GET /revenues/:id
func (h *Handler) GetRevenue(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	var m revenueModel.RevenueRecord
	if err := h.DB.Preload("Installments").Preload("Payments").
		First(&m, "revenue_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "revenue not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "revenue", m)
}

// DELETE /revenues/:id — soft delete.
func (h *Handler) DeleteRevenue(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	actorID, ok := helper.UserIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, http.StatusUnauthorized, "missing actor")
	}

	var m revenueModel.RevenueRecord
	if err := h.DB.First(&m, "revenue_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "revenue not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&m).Error; err != nil {
			return err
		}
		return auditService.Record(tx, "ARCHIVE", "revenue_record", m.RevenueID, actorID,
			"deleted revenue record", nil)
	})
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "revenue deleted", fiber.Map{"revenue_id": id})
}
