package controller

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditService "ftms_backend/internals/features/audits/service"
	expenseDTO "ftms_backend/internals/features/expenses/dto"
	expenseModel "ftms_backend/internals/features/expenses/model"
	expenseService "ftms_backend/internals/features/expenses/service"
	refService "ftms_backend/internals/features/reference/service"
	helper "ftms_backend/internals/helpers"
)

type Handler struct {
	DB    *gorm.DB
	Store *refService.Store
}

// POST /expenses — expense + reimbursement fan-out + accounts payable in one
// transaction; partial failures roll back entirely.
func (h *Handler) CreateExpense(c *fiber.Ctx) error {
	actorID, ok := helper.UserIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, http.StatusUnauthorized, "missing actor")
	}

	var in expenseDTO.ExpenseCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := expenseDTO.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var errs []string
	if !in.ExpenseTotalAmount.IsPositive() {
		errs = append(errs, "amount must be greater than zero")
	}
	if _, err := h.Store.CategoryByID(in.ExpenseCategoryID); err != nil {
		if errors.Is(err, refService.ErrNotFound) {
			errs = append(errs, "category does not exist or is inactive")
		} else {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
	}
	if _, err := h.Store.PaymentMethodByID(in.ExpensePaymentMethodID); err != nil {
		if errors.Is(err, refService.ErrNotFound) {
			errs = append(errs, "payment method does not exist or is inactive")
		} else {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
	}

	claims := make([]expenseService.ReimbursementClaim, 0, len(in.Reimbursements))
	for _, r := range in.Reimbursements {
		claims = append(claims, expenseService.ReimbursementClaim{
			EmployeeExternalID: r.EmployeeExternalID,
			EmployeeName:       r.EmployeeName,
			Amount:             r.Amount,
		})
	}
	errs = append(errs, expenseService.ValidateFanOut(in.ExpenseTotalAmount, claims)...)

	if in.AccountsPayable != nil && !in.AccountsPayable.Amount.IsPositive() {
		errs = append(errs, "accounts payable amount must be positive")
	}
	if len(errs) > 0 {
		return helper.JsonValidationErrors(c, errs)
	}

	m := expenseModel.Expense{
		ExpenseCategoryID:      in.ExpenseCategoryID,
		ExpensePaymentMethodID: in.ExpensePaymentMethodID,
		ExpenseDescription:     in.ExpenseDescription,
		ExpenseTotalAmount:     in.ExpenseTotalAmount,
		ExpenseDate:            in.ExpenseDate,
		ExpenseBusTripID:       in.ExpenseBusTripID,
		ExpenseAssignmentID:    in.ExpenseAssignmentID,
		ExpenseCreatedBy:       actorID,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for _, cl := range claims {
			row := expenseModel.Reimbursement{
				ReimbursementExpenseID:          m.ExpenseID,
				ReimbursementEmployeeExternalID: cl.EmployeeExternalID,
				ReimbursementEmployeeName:       cl.EmployeeName,
				ReimbursementAmount:             cl.Amount,
				ReimbursementStatus:             expenseModel.ReimbursementStatusPending,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		if in.AccountsPayable != nil {
			row := expenseModel.AccountsPayable{
				PayableExpenseID:  m.ExpenseID,
				PayableVendorName: in.AccountsPayable.VendorName,
				PayableAmount:     in.AccountsPayable.Amount,
				PayableDueDate:    in.AccountsPayable.DueDate,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return auditService.Record(tx, "CREATE", "expense", m.ExpenseID, actorID,
			"created expense of "+m.ExpenseTotalAmount.StringFixed(2), nil)
	})
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := h.DB.Preload("Reimbursements").Preload("AccountsPayable").
		First(&m, "expense_id = ?", m.ExpenseID).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "expense created", m)
}

// GET /expenses
func (h *Handler) ListExpenses(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&expenseModel.Expense{})
	if cat := c.Query("category_id"); cat != "" {
		q = q.Where("expense_category_id = ?", cat)
	}

	allowed := map[string]string{
		"created_at": "expense_created_at",
		"date":       "expense_date",
		"amount":     "expense_total_amount",
	}
	orderClause, _ := p.SafeOrderClause(allowed, "created_at")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	var list []expenseModel.Expense
	if err := q.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "expenses", list, helper.BuildMeta(total, p))
}

// GET /expenses/:id
func (h *Handler) GetExpense(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	var m expenseModel.Expense
	if err := h.DB.Preload("Reimbursements").Preload("AccountsPayable").
		First(&m, "expense_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "expense not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "expense", m)
}
