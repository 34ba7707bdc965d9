package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	coaModel "ftms_backend/internals/features/accounting/chart_of_accounts/model"
	journalDTO "ftms_backend/internals/features/accounting/journal/dto"
	journalModel "ftms_backend/internals/features/accounting/journal/model"
	journalService "ftms_backend/internals/features/accounting/journal/service"
	auditService "ftms_backend/internals/features/audits/service"
	helper "ftms_backend/internals/helpers"
)

type Handler struct {
	DB *gorm.DB
}

// POST /journal-entries — creates a DRAFT entry. Unbalanced input is
// rejected outright; the caller gets the full violation list.
func (h *Handler) CreateEntry(c *fiber.Ctx) error {
	actorID, ok := helper.UserIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, http.StatusUnauthorized, "missing actor")
	}

	var in journalDTO.JournalEntryCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := journalDTO.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	// Resolve referenced accounts in one query.
	accountIDs := make([]uuid.UUID, 0, len(in.Lines))
	for _, l := range in.Lines {
		accountIDs = append(accountIDs, l.LineAccountID)
	}
	var accounts []coaModel.ChartOfAccount
	if err := h.DB.Where("account_id IN ?", accountIDs).Find(&accounts).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	byID := make(map[uuid.UUID]*coaModel.ChartOfAccount, len(accounts))
	for i := range accounts {
		byID[accounts[i].AccountID] = &accounts[i]
	}

	lineInputs := make([]journalService.LineInput, 0, len(in.Lines))
	for _, l := range in.Lines {
		li := journalService.LineInput{
			AccountID: l.LineAccountID.String(),
			Debit:     l.LineDebitAmount,
			Credit:    l.LineCreditAmount,
		}
		if acc, found := byID[l.LineAccountID]; found {
			li.AccountKnown = true
			li.AccountActive = acc.IsActive
		}
		lineInputs = append(lineInputs, li)
	}

	if errs := journalService.ValidateLines(lineInputs); len(errs) > 0 {
		return helper.JsonValidationErrors(c, errs)
	}

	entry := journalModel.JournalEntry{
		EntryDate:        in.EntryDate,
		EntryDescription: in.EntryDescription,
		EntryType:        journalModel.EntryTypeManual,
		EntryStatus:      journalModel.EntryStatusDraft,
		IsBalanced:       true,
		EntryCreatedBy:   actorID,
	}
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		for i, l := range in.Lines {
			line := journalModel.JournalEntryLine{
				LineEntryID:      entry.EntryID,
				LineOrder:        i,
				LineAccountID:    l.LineAccountID,
				LineDebitAmount:  l.LineDebitAmount,
				LineCreditAmount: l.LineCreditAmount,
				LineDescription:  l.LineDescription,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}
		return auditService.Record(tx, "CREATE", "journal_entry", entry.EntryID, actorID,
			"created draft journal entry", nil)
	})
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "journal entry created", h.loadEntry(entry.EntryID))
}

// POST /journal-entries/:id/post — DRAFT → POSTED.
func (h *Handler) PostEntry(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	actorID, ok := helper.UserIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, http.StatusUnauthorized, "missing actor")
	}

	var entry journalModel.JournalEntry
	if err := h.DB.First(&entry, "entry_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "journal entry not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := journalService.CanPost(&entry); err != nil {
		return helper.JsonConflict(c, err.Error())
	}

	now := time.Now()
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entry).Updates(map[string]any{
			"entry_status":    journalModel.EntryStatusPosted,
			"entry_posted_at": now,
		}).Error; err != nil {
			return err
		}
		return auditService.Record(tx, "POST", "journal_entry", entry.EntryID, actorID,
			"posted journal entry", nil)
	})
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "journal entry posted", h.loadEntry(entry.EntryID))
}

// POST /journal-entries/:id/reverse — POSTED → REVERSED. Creates a mirror
// entry (debits and credits swapped) and posts it immediately.
func (h *Handler) ReverseEntry(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	actorID, ok := helper.UserIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, http.StatusUnauthorized, "missing actor")
	}

	var entry journalModel.JournalEntry
	if err := h.DB.Preload("Lines").First(&entry, "entry_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "journal entry not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := journalService.CanReverse(&entry); err != nil {
		return helper.JsonConflict(c, err.Error())
	}

	now := time.Now()
	var reversal journalModel.JournalEntry
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		reversal = journalModel.JournalEntry{
			EntryDate:        now,
			EntryDescription: "Reversal of: " + entry.EntryDescription,
			EntryType:        entry.EntryType,
			EntryStatus:      journalModel.EntryStatusPosted,
			IsBalanced:       true,
			ReversesEntryID:  &entry.EntryID,
			EntryCreatedBy:   actorID,
			EntryPostedAt:    &now,
		}
		if err := tx.Create(&reversal).Error; err != nil {
			return err
		}
		for _, l := range entry.Lines {
			mirror := journalModel.JournalEntryLine{
				LineEntryID:      reversal.EntryID,
				LineOrder:        l.LineOrder,
				LineAccountID:    l.LineAccountID,
				LineDebitAmount:  l.LineCreditAmount,
				LineCreditAmount: l.LineDebitAmount,
				LineDescription:  l.LineDescription,
			}
			if err := tx.Create(&mirror).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&entry).Update("entry_status", journalModel.EntryStatusReversed).Error; err != nil {
			return err
		}
		return auditService.Record(tx, "REVERSE", "journal_entry", entry.EntryID, actorID,
			"reversed journal entry", map[string]any{"reversal_entry_id": reversal.EntryID})
	})
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "journal entry reversed", h.loadEntry(reversal.EntryID))
}

// GET /journal-entries
func (h *Handler) ListEntries(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&journalModel.JournalEntry{})
	if st := c.Query("status"); st != "" {
		q = q.Where("entry_status = ?", st)
	}
	if et := c.Query("type"); et != "" {
		q = q.Where("entry_type = ?", et)
	}

	allowed := map[string]string{
		"created_at": "entry_created_at",
		"date":       "entry_date",
		"status":     "entry_status",
	}
	orderClause, _ := p.SafeOrderClause(allowed, "created_at")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var list []journalModel.JournalEntry
	if err := q.Preload("Lines").Order(orderClause).
		Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "journal entries", list, helper.BuildMeta(total, p))
}

// GET /journal-entries/:id
func (h *Handler) GetEntry(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	entry := h.loadEntry(id)
	if entry == nil {
		return helper.JsonError(c, http.StatusNotFound, "journal entry not found")
	}
	return helper.JsonOK(c, "journal entry", entry)
}

func (h *Handler) loadEntry(id uuid.UUID) *journalModel.JournalEntry {
	var entry journalModel.JournalEntry
	if err := h.DB.Preload("Lines", func(db *gorm.DB) *gorm.DB {
		return db.Order("line_order ASC")
	}).First(&entry, "entry_id = ?", id).Error; err != nil {
		return nil
	}
	return &entry
}
