package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	coaModel "ftms_backend/internals/features/accounting/chart_of_accounts/model"
)

var Validate = validator.New()

// Create
type AccountCreateDTO struct {
	AccountCode string               `json:"account_code" validate:"required,len=4"`
	AccountName string               `json:"account_name" validate:"required,min=3,max=100"`
	AccountType coaModel.AccountType `json:"account_type" validate:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`

	ParentAccountID    *uuid.UUID `json:"parent_account_id,omitempty"`
	AccountDescription *string    `json:"account_description,omitempty" validate:"omitempty,max=500"`
	AccountNotes       *string    `json:"account_notes,omitempty" validate:"omitempty,max=1000"`
}

// Update (partial): only descriptive fields are mutable. Code, type, parent
// and normal balance are fixed after creation.
type AccountUpdateDTO struct {
	AccountName        *string `json:"account_name,omitempty" validate:"omitempty,min=3,max=100"`
	AccountDescription *string `json:"account_description,omitempty" validate:"omitempty,max=500"`
	AccountNotes       *string `json:"account_notes,omitempty" validate:"omitempty,max=1000"`
}

func ApplyAccountUpdate(m *coaModel.ChartOfAccount, in AccountUpdateDTO) {
	if in.AccountName != nil {
		m.AccountName = *in.AccountName
	}
	if in.AccountDescription != nil {
		m.AccountDescription = in.AccountDescription
	}
	if in.AccountNotes != nil {
		m.AccountNotes = in.AccountNotes
	}
}

// Archive response includes the advisory warnings from the archival rules.
type AccountArchiveResponse struct {
	AccountID uuid.UUID `json:"account_id"`
	IsActive  bool      `json:"account_is_active"`
	Warnings  []string  `json:"warnings,omitempty"`
}
