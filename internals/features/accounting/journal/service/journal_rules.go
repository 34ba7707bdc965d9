package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	journalModel "ftms_backend/internals/features/accounting/journal/model"
)

// LineInput is the validation view of one journal line before persistence.
type LineInput struct {
	AccountID     string
	Debit         decimal.Decimal
	Credit        decimal.Decimal
	AccountKnown  bool
	AccountActive bool
}

// Totals sums debit and credit sides.
func Totals(lines []LineInput) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// IsBalanced reports sum(debits) == sum(credits).
func IsBalanced(lines []LineInput) bool {
	d, c := Totals(lines)
	return d.Equal(c)
}

// ValidateLines accumulates every violation:
//   - at least two lines
//   - each line carries exactly one of debit/credit, positive, max 2dp
//   - every referenced account exists and is active
//   - entry balances
func ValidateLines(lines []LineInput) []string {
	var errs []string

	if len(lines) < 2 {
		errs = append(errs, "a journal entry needs at least 2 lines")
	}

	hundred := decimal.NewFromInt(100)
	for i, l := range lines {
		hasDebit := !l.Debit.IsZero()
		hasCredit := !l.Credit.IsZero()
		if hasDebit == hasCredit {
			errs = append(errs, fmt.Sprintf("line %d must have exactly one of debit or credit", i+1))
		}
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			errs = append(errs, fmt.Sprintf("line %d amounts must be positive", i+1))
		}
		if !l.Debit.Mul(hundred).Equal(l.Debit.Mul(hundred).Floor()) ||
			!l.Credit.Mul(hundred).Equal(l.Credit.Mul(hundred).Floor()) {
			errs = append(errs, fmt.Sprintf("line %d amounts cannot have more than 2 decimal places", i+1))
		}
		if !l.AccountKnown {
			errs = append(errs, fmt.Sprintf("line %d references an unknown account %s", i+1, l.AccountID))
		} else if !l.AccountActive {
			errs = append(errs, fmt.Sprintf("line %d references an archived account %s", i+1, l.AccountID))
		}
	}

	if d, c := Totals(lines); !d.Equal(c) {
		errs = append(errs, fmt.Sprintf("entry is not balanced: debits %s != credits %s", d.StringFixed(2), c.StringFixed(2)))
	}
	return errs
}

// CanPost: DRAFT → POSTED only.
func CanPost(e *journalModel.JournalEntry) error {
	if e.EntryStatus != journalModel.EntryStatusDraft {
		return fmt.Errorf("only DRAFT entries can be posted (current status %s)", e.EntryStatus)
	}
	if !e.IsBalanced {
		return fmt.Errorf("unbalanced entries cannot be posted")
	}
	return nil
}

// CanReverse: POSTED → REVERSED only.
func CanReverse(e *journalModel.JournalEntry) error {
	if e.EntryStatus != journalModel.EntryStatusPosted {
		return fmt.Errorf("only POSTED entries can be reversed (current status %s)", e.EntryStatus)
	}
	return nil
}
