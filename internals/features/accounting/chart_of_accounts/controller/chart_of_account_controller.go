package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	coaDTO "ftms_backend/internals/features/accounting/chart_of_accounts/dto"
	coaModel "ftms_backend/internals/features/accounting/chart_of_accounts/model"
	coaService "ftms_backend/internals/features/accounting/chart_of_accounts/service"
	auditService "ftms_backend/internals/features/audits/service"
	helper "ftms_backend/internals/helpers"
)

type Handler struct {
	DB *gorm.DB
}

// POST /accounts
func (h *Handler) CreateAccount(c *fiber.Ctx) error {
	var in coaDTO.AccountCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := coaDTO.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var errs []string
	errs = append(errs, coaService.ValidateAccountCode(in.AccountCode)...)
	errs = append(errs, coaService.ValidateAccountName(in.AccountName)...)
	if !coaService.ValidAccountType(in.AccountType) {
		errs = append(errs, "invalid account type")
	}

	// Code uniqueness
	var dupes int64
	if err := h.DB.Model(&coaModel.ChartOfAccount{}).
		Where("account_code = ?", strings.TrimSpace(in.AccountCode)).
		Count(&dupes).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if dupes > 0 {
		errs = append(errs, "account code already in use")
	}

	// Parent rules need the current account list
	if in.ParentAccountID != nil {
		var accounts []coaModel.ChartOfAccount
		if err := h.DB.Find(&accounts).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		errs = append(errs, coaService.ValidateParentChild(in.ParentAccountID, in.AccountType, accounts)...)
	}

	if len(errs) > 0 {
		return helper.JsonValidationErrors(c, errs)
	}

	m := coaModel.ChartOfAccount{
		AccountCode:        strings.TrimSpace(in.AccountCode),
		AccountName:        strings.TrimSpace(in.AccountName),
		AccountType:        in.AccountType,
		NormalBalance:      coaService.GetNormalBalance(in.AccountType),
		ParentAccountID:    in.ParentAccountID,
		AccountDescription: in.AccountDescription,
		AccountNotes:       in.AccountNotes,
		IsActive:           true,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "account created", m)
}

// PATCH /accounts/:id — descriptive fields only; system and archived
// accounts are immutable.
func (h *Handler) UpdateAccount(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in coaDTO.AccountUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := coaDTO.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var m coaModel.ChartOfAccount
	if err := h.DB.First(&m, "account_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "account not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if m.IsSystemAccount {
		return helper.JsonConflict(c, "system accounts cannot be edited")
	}
	if !m.IsActive {
		return helper.JsonConflict(c, "archived accounts cannot be edited")
	}

	coaDTO.ApplyAccountUpdate(&m, in)
	if nameErrs := coaService.ValidateAccountName(m.AccountName); len(nameErrs) > 0 {
		return helper.JsonValidationErrors(c, nameErrs)
	}

	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "account updated", m)
}

// POST /accounts/:id/archive — soft archive (is_active=false). Blocked for
// system accounts and accounts with children; historical journal lines only
// produce warnings.
func (h *Handler) ArchiveAccount(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	actorID, ok := helper.UserIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, http.StatusUnauthorized, "missing actor")
	}

	var m coaModel.ChartOfAccount
	if err := h.DB.First(&m, "account_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "account not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if !m.IsActive {
		return helper.JsonConflict(c, "account is already archived")
	}

	var childCount int64
	if err := h.DB.Model(&coaModel.ChartOfAccount{}).
		Where("parent_account_id = ?", id).
		Count(&childCount).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var txnCount int64
	if err := h.DB.Table("journal_entry_lines").
		Where("line_account_id = ?", id).
		Count(&txnCount).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	res := coaService.ValidateArchival(txnCount, childCount, m.IsSystemAccount)
	if !res.Valid() {
		return helper.JsonValidationErrors(c, res.BlockingErrors)
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&m).Update("account_is_active", false).Error; err != nil {
			return err
		}
		return auditService.Record(tx, "ARCHIVE", "chart_of_account", m.AccountID, actorID,
			"archived account "+m.AccountCode+" "+m.AccountName,
			map[string]any{"warnings": res.Warnings})
	})
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "account archived", coaDTO.AccountArchiveResponse{
		AccountID: m.AccountID,
		IsActive:  false,
		Warnings:  res.Warnings,
	})
}

// GET /accounts
func (h *Handler) ListAccounts(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "code", "asc", helper.AdminOpts)

	q := h.DB.Model(&coaModel.ChartOfAccount{})
	if t := c.Query("type"); t != "" {
		q = q.Where("account_type = ?", strings.ToUpper(t))
	}
	if c.Query("active") == "true" {
		q = q.Where("account_is_active = TRUE")
	}
	if pid := c.Query("parent_id"); pid != "" {
		q = q.Where("parent_account_id = ?", pid)
	}

	allowed := map[string]string{
		"code":       "account_code",
		"name":       "account_name",
		"type":       "account_type",
		"created_at": "account_created_at",
	}
	orderClause, _ := p.SafeOrderClause(allowed, "code")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var list []coaModel.ChartOfAccount
	if err := q.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "accounts", list, helper.BuildMeta(total, p))
}

// GET /accounts/:id
func (h *Handler) GetAccount(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	var m coaModel.ChartOfAccount
	if err := h.DB.First(&m, "account_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "account not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "account", m)
}
