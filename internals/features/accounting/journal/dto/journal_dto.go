package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var Validate = validator.New()

type JournalLineDTO struct {
	LineAccountID   uuid.UUID       `json:"line_account_id" validate:"required"`
	LineDebitAmount decimal.Decimal `json:"line_debit_amount"`
	LineCreditAmount decimal.Decimal `json:"line_credit_amount"`
	LineDescription *string         `json:"line_description,omitempty" validate:"omitempty,max=500"`
}

type JournalEntryCreateDTO struct {
	EntryDate        time.Time        `json:"entry_date" validate:"required"`
	EntryDescription string           `json:"entry_description" validate:"required,min=3,max=1000"`
	Lines            []JournalLineDTO `json:"lines" validate:"required,min=2,dive"`
}

type JournalEntryActionDTO struct {
	Remarks *string `json:"remarks,omitempty" validate:"omitempty,max=500"`
}
