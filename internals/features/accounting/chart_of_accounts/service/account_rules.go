package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	coaModel "ftms_backend/internals/features/accounting/chart_of_accounts/model"
)

/* =======================================================
   PURE ACCOUNT RULES
   Every validator accumulates and returns the full error
   list; callers get one complete report per round trip.
======================================================= */

// ValidateAccountCode requires exactly 4 numeric digits.
func ValidateAccountCode(code string) []string {
	var errs []string
	code = strings.TrimSpace(code)
	if len(code) != 4 {
		errs = append(errs, "account code must be exactly 4 digits")
		return errs
	}
	for _, r := range code {
		if !unicode.IsDigit(r) {
			errs = append(errs, "account code must contain only digits")
			break
		}
	}
	return errs
}

// ValidateAccountName requires length in [3,100].
func ValidateAccountName(name string) []string {
	var errs []string
	n := len(strings.TrimSpace(name))
	if n < 3 {
		errs = append(errs, "account name must be at least 3 characters")
	}
	if n > 100 {
		errs = append(errs, "account name must be at most 100 characters")
	}
	return errs
}

// GetNormalBalance is total over the 5-member account type enum:
// ASSET/EXPENSE increase on debit, LIABILITY/EQUITY/REVENUE on credit.
func GetNormalBalance(t coaModel.AccountType) coaModel.NormalBalance {
	switch t {
	case coaModel.AccountTypeAsset, coaModel.AccountTypeExpense:
		return coaModel.NormalBalanceDebit
	default:
		return coaModel.NormalBalanceCredit
	}
}

// ValidAccountType reports whether t is one of the 5 enum members.
func ValidAccountType(t coaModel.AccountType) bool {
	switch t {
	case coaModel.AccountTypeAsset, coaModel.AccountTypeLiability,
		coaModel.AccountTypeEquity, coaModel.AccountTypeRevenue,
		coaModel.AccountTypeExpense:
		return true
	}
	return false
}

// ValidateParentChild checks a proposed parent link against the in-memory
// account list. Trivially valid without a parent. Hierarchy depth is capped
// at 2: an account that already has a parent cannot become one.
func ValidateParentChild(parentID *uuid.UUID, childType coaModel.AccountType, accounts []coaModel.ChartOfAccount) []string {
	if parentID == nil {
		return nil
	}

	var parent *coaModel.ChartOfAccount
	for i := range accounts {
		if accounts[i].AccountID == *parentID {
			parent = &accounts[i]
			break
		}
	}

	var errs []string
	if parent == nil {
		errs = append(errs, "parent account not found")
		return errs
	}
	if !parent.IsActive {
		errs = append(errs, "parent account is archived")
	}
	if parent.AccountType != childType {
		errs = append(errs, fmt.Sprintf("parent account type %s does not match child type %s", parent.AccountType, childType))
	}
	if parent.ParentAccountID != nil {
		errs = append(errs, "parent account already has a parent (max hierarchy depth is 2)")
	}
	return errs
}

/* =======================================================
   ARCHIVAL
======================================================= */

// ArchivalResult separates hard blockers from advisory warnings: existing
// transactions warn but never block, per finance team sign-off.
type ArchivalResult struct {
	BlockingErrors []string `json:"blocking_errors"`
	Warnings       []string `json:"warnings"`
}

func (r ArchivalResult) Valid() bool { return len(r.BlockingErrors) == 0 }

// ValidateArchival: system accounts and accounts with children can never be
// archived; historical transactions only produce a warning.
func ValidateArchival(hasTransactions int64, childCount int64, isSystemAccount bool) ArchivalResult {
	var res ArchivalResult
	if isSystemAccount {
		res.BlockingErrors = append(res.BlockingErrors, "system accounts cannot be archived")
	}
	if childCount > 0 {
		res.BlockingErrors = append(res.BlockingErrors, fmt.Sprintf("account has %d child account(s); archive or reassign them first", childCount))
	}
	if hasTransactions > 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("account has %d historical journal line(s); balances remain reported under this account", hasTransactions))
	}
	return res
}
