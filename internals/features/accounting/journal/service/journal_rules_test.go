package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	journalModel "ftms_backend/internals/features/accounting/journal/model"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func validLine(debit, credit string) LineInput {
	return LineInput{
		AccountID:     "acc",
		Debit:         d(debit),
		Credit:        d(credit),
		AccountKnown:  true,
		AccountActive: true,
	}
}

func TestIsBalanced(t *testing.T) {
	assert.True(t, IsBalanced([]LineInput{
		validLine("100.00", "0"),
		validLine("0", "100.00"),
	}))
	assert.False(t, IsBalanced([]LineInput{
		validLine("100.00", "0"),
		validLine("0", "99.99"),
	}))
}

func TestValidateLines(t *testing.T) {
	t.Run("balanced entry passes", func(t *testing.T) {
		errs := ValidateLines([]LineInput{
			validLine("250.00", "0"),
			validLine("0", "150.00"),
			validLine("0", "100.00"),
		})
		assert.Empty(t, errs)
	})

	t.Run("single line rejected", func(t *testing.T) {
		errs := ValidateLines([]LineInput{validLine("10.00", "0")})
		assert.NotEmpty(t, errs)
	})

	t.Run("both sides on one line rejected", func(t *testing.T) {
		errs := ValidateLines([]LineInput{
			validLine("10.00", "10.00"),
			validLine("0", "10.00"),
		})
		require.NotEmpty(t, errs)
		assert.Contains(t, errs[0], "exactly one")
	})

	t.Run("more than 2dp rejected", func(t *testing.T) {
		errs := ValidateLines([]LineInput{
			validLine("10.005", "0"),
			validLine("0", "10.005"),
		})
		assert.NotEmpty(t, errs)
	})

	t.Run("unknown and archived accounts rejected", func(t *testing.T) {
		unknown := validLine("10.00", "0")
		unknown.AccountKnown = false
		archived := validLine("0", "10.00")
		archived.AccountActive = false

		errs := ValidateLines([]LineInput{unknown, archived})
		require.Len(t, errs, 2)
		assert.Contains(t, errs[0], "unknown account")
		assert.Contains(t, errs[1], "archived account")
	})

	t.Run("unbalanced entry accumulates with other errors", func(t *testing.T) {
		bad := validLine("10.005", "0")
		errs := ValidateLines([]LineInput{bad, validLine("0", "20.00")})
		// 2dp violation AND imbalance reported together, no short-circuit
		assert.GreaterOrEqual(t, len(errs), 2)
	})
}

func TestCanPost(t *testing.T) {
	draft := &journalModel.JournalEntry{EntryStatus: journalModel.EntryStatusDraft, IsBalanced: true}
	assert.NoError(t, CanPost(draft))

	unbalanced := &journalModel.JournalEntry{EntryStatus: journalModel.EntryStatusDraft, IsBalanced: false}
	assert.Error(t, CanPost(unbalanced))

	posted := &journalModel.JournalEntry{EntryStatus: journalModel.EntryStatusPosted, IsBalanced: true}
	assert.Error(t, CanPost(posted))

	reversed := &journalModel.JournalEntry{EntryStatus: journalModel.EntryStatusReversed, IsBalanced: true}
	assert.Error(t, CanPost(reversed))
}

func TestCanReverse(t *testing.T) {
	posted := &journalModel.JournalEntry{EntryStatus: journalModel.EntryStatusPosted}
	assert.NoError(t, CanReverse(posted))

	draft := &journalModel.JournalEntry{EntryStatus: journalModel.EntryStatusDraft}
	assert.Error(t, CanReverse(draft))

	reversed := &journalModel.JournalEntry{EntryStatus: journalModel.EntryStatusReversed}
	assert.Error(t, CanReverse(reversed))
}
