package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	loanModel "ftms_backend/internals/features/loans/model"
	helper "ftms_backend/internals/helpers"
)

var validate = validator.New()

type Handler struct {
	DB *gorm.DB
}

type loanCreateDTO struct {
	LoanBorrowerName string          `json:"loan_borrower_name" validate:"required,min=3,max=120"`
	LoanPrincipal    decimal.Decimal `json:"loan_principal" validate:"required"`
	LoanIssuedDate   time.Time       `json:"loan_issued_date" validate:"required"`
	LoanNotes        *string         `json:"loan_notes,omitempty" validate:"omitempty,max=1000"`
}

type loanPaymentCreateDTO struct {
	LoanPaymentAmount decimal.Decimal `json:"loan_payment_amount" validate:"required"`
	LoanPaymentDate   time.Time       `json:"loan_payment_date" validate:"required"`
}

// POST /loans
func (h *Handler) CreateLoan(c *fiber.Ctx) error {
	var in loanCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}
	if !in.LoanPrincipal.IsPositive() {
		return helper.JsonValidationErrors(c, []string{"loan principal must be positive"})
	}

	m := loanModel.Loan{
		LoanBorrowerName: in.LoanBorrowerName,
		LoanPrincipal:    in.LoanPrincipal,
		LoanStatus:       loanModel.LoanStatusActive,
		LoanIssuedDate:   in.LoanIssuedDate,
		LoanNotes:        in.LoanNotes,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "loan created", m)
}

// POST /loans/:id/payments
func (h *Handler) CreateLoanPayment(c *fiber.Ctx) error {
	loanID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in loanPaymentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}
	if !in.LoanPaymentAmount.IsPositive() {
		return helper.JsonValidationErrors(c, []string{"loan payment amount must be positive"})
	}

	var loan loanModel.Loan
	if err := h.DB.First(&loan, "loan_id = ?", loanID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "loan not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if loan.LoanStatus == loanModel.LoanStatusClosed {
		return helper.JsonConflict(c, "loan is closed")
	}

	m := loanModel.LoanPayment{
		LoanPaymentLoanID: loanID,
		LoanPaymentAmount: in.LoanPaymentAmount,
		LoanPaymentDate:   in.LoanPaymentDate,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "loan payment recorded", m)
}

// GET /loans
func (h *Handler) ListLoans(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&loanModel.Loan{})
	if st := c.Query("status"); st != "" {
		q = q.Where("loan_status = ?", st)
	}

	allowed := map[string]string{
		"created_at": "loan_created_at",
		"issued":     "loan_issued_date",
		"borrower":   "loan_borrower_name",
	}
	orderClause, _ := p.SafeOrderClause(allowed, "created_at")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var list []loanModel.Loan
	if err := q.Preload("Payments").Order(orderClause).
		Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "loans", list, helper.BuildMeta(total, p))
}

// GET /loans/:id
func (h *Handler) GetLoan(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	var m loanModel.Loan
	if err := h.DB.Preload("Payments").First(&m, "loan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "loan not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "loan", m)
}
