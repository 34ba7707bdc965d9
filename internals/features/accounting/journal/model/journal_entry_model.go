package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	EntryStatusDraft    = "DRAFT"
	EntryStatusPosted   = "POSTED"
	EntryStatusReversed = "REVERSED"
)

const (
	EntryTypeManual           = "MANUAL"
	EntryTypeAutoRevenue      = "AUTO_REVENUE"
	EntryTypeAutoExpense      = "AUTO_EXPENSE"
	EntryTypeAutoReimbursement = "AUTO_REIMBURSEMENT"
)

/* ===================== Models ===================== */

type JournalEntry struct {
	EntryID uuid.UUID `gorm:"column:entry_id;type:uuid;default:gen_random_uuid();primaryKey" json:"entry_id"`

	EntryDate        time.Time `gorm:"column:entry_date;type:date;not null" json:"entry_date"`
	EntryDescription string    `gorm:"column:entry_description;type:text;not null" json:"entry_description"`

	EntryType   string `gorm:"column:entry_type;type:journal_entry_type;not null;default:'MANUAL'" json:"entry_type"`
	EntryStatus string `gorm:"column:entry_status;type:journal_entry_status;not null;default:'DRAFT'" json:"entry_status"`

	// sum(debits) == sum(credits) across lines; persisted for list views.
	IsBalanced bool `gorm:"column:entry_is_balanced;not null;default:false" json:"entry_is_balanced"`

	// Reversal linkage: the reversing entry points back at the original.
	ReversesEntryID *uuid.UUID `gorm:"column:entry_reverses_entry_id;type:uuid" json:"entry_reverses_entry_id,omitempty"`

	// Optional source record for AUTO_* entries.
	EntrySourceRef *uuid.UUID `gorm:"column:entry_source_ref;type:uuid" json:"entry_source_ref,omitempty"`

	EntryCreatedBy uuid.UUID  `gorm:"column:entry_created_by;type:uuid;not null" json:"entry_created_by"`
	EntryPostedAt  *time.Time `gorm:"column:entry_posted_at" json:"entry_posted_at,omitempty"`

	Lines []JournalEntryLine `gorm:"foreignKey:LineEntryID;references:EntryID" json:"lines,omitempty"`

	CreatedAt time.Time      `gorm:"column:entry_created_at;autoCreateTime" json:"entry_created_at"`
	UpdatedAt time.Time      `gorm:"column:entry_updated_at;autoUpdateTime" json:"entry_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:entry_deleted_at;index" json:"entry_deleted_at,omitempty"`
}

func (JournalEntry) TableName() string { return "journal_entries" }

type JournalEntryLine struct {
	LineID      uuid.UUID `gorm:"column:line_id;type:uuid;default:gen_random_uuid();primaryKey" json:"line_id"`
	LineEntryID uuid.UUID `gorm:"column:line_entry_id;type:uuid;not null;index" json:"line_entry_id"`

	// Keeps form ordering stable for the UI.
	LineOrder int `gorm:"column:line_order;not null;default:0" json:"line_order"`

	LineAccountID uuid.UUID `gorm:"column:line_account_id;type:uuid;not null;index" json:"line_account_id"`

	// At most one of debit/credit is non-zero per line.
	LineDebitAmount  decimal.Decimal `gorm:"column:line_debit_amount;type:numeric(14,2);not null;default:0" json:"line_debit_amount"`
	LineCreditAmount decimal.Decimal `gorm:"column:line_credit_amount;type:numeric(14,2);not null;default:0" json:"line_credit_amount"`

	LineDescription *string `gorm:"column:line_description;type:text" json:"line_description,omitempty"`

	CreatedAt time.Time `gorm:"column:line_created_at;autoCreateTime" json:"line_created_at"`
}

func (JournalEntryLine) TableName() string { return "journal_entry_lines" }

/* ===================== Helpers ===================== */

func (e *JournalEntry) IsDraft() bool  { return e.EntryStatus == EntryStatusDraft }
func (e *JournalEntry) IsPosted() bool { return e.EntryStatus == EntryStatusPosted }
