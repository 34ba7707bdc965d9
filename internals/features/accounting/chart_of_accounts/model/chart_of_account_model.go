package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Enums (string) ===================== */
/* Aligned with the account_type / normal_balance ENUMs in PostgreSQL. */

type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

type NormalBalance string

const (
	NormalBalanceDebit  NormalBalance = "DEBIT"
	NormalBalanceCredit NormalBalance = "CREDIT"
)

/* ===================== Model ===================== */

// ChartOfAccount rows are archived via account_is_active, not deleted;
// archived accounts stay visible for historical journal lines.
type ChartOfAccount struct {
	AccountID uuid.UUID `gorm:"column:account_id;type:uuid;default:gen_random_uuid();primaryKey" json:"account_id"`

	AccountCode string      `gorm:"column:account_code;type:varchar(4);not null;uniqueIndex:uq_accounts_code" json:"account_code"`
	AccountName string      `gorm:"column:account_name;type:varchar(100);not null" json:"account_name"`
	AccountType AccountType `gorm:"column:account_type;type:account_type;not null" json:"account_type"`

	// Derived from AccountType, never set independently.
	NormalBalance NormalBalance `gorm:"column:normal_balance;type:normal_balance;not null" json:"normal_balance"`

	// Two-level hierarchy: a child can never itself be a parent.
	ParentAccountID *uuid.UUID `gorm:"column:parent_account_id;type:uuid;index" json:"parent_account_id,omitempty"`

	AccountDescription *string `gorm:"column:account_description;type:text" json:"account_description,omitempty"`
	AccountNotes       *string `gorm:"column:account_notes;type:text" json:"account_notes,omitempty"`

	IsSystemAccount bool `gorm:"column:account_is_system;not null;default:false" json:"account_is_system"`
	IsActive        bool `gorm:"column:account_is_active;not null;default:true" json:"account_is_active"`

	CreatedAt time.Time `gorm:"column:account_created_at;autoCreateTime" json:"account_created_at"`
	UpdatedAt time.Time `gorm:"column:account_updated_at;autoUpdateTime" json:"account_updated_at"`
}

func (ChartOfAccount) TableName() string { return "chart_of_accounts" }

/* ===================== Helpers ===================== */

func (a *ChartOfAccount) IsChild() bool { return a.ParentAccountID != nil }

func (a *ChartOfAccount) IsDebitNormal() bool {
	return a.NormalBalance == NormalBalanceDebit
}
