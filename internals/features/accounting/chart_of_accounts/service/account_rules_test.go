package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coaModel "ftms_backend/internals/features/accounting/chart_of_accounts/model"
)

func TestValidateAccountCode(t *testing.T) {
	assert.Empty(t, ValidateAccountCode("1000"))
	assert.Empty(t, ValidateAccountCode(" 4200 "))

	assert.NotEmpty(t, ValidateAccountCode("100"))
	assert.NotEmpty(t, ValidateAccountCode("10000"))
	assert.NotEmpty(t, ValidateAccountCode("10a0"))
	assert.NotEmpty(t, ValidateAccountCode(""))
}

func TestValidateAccountName(t *testing.T) {
	assert.Empty(t, ValidateAccountName("Cash"))
	assert.NotEmpty(t, ValidateAccountName("ab"))
	assert.NotEmpty(t, ValidateAccountName(strings.Repeat("x", 101)))
	assert.Empty(t, ValidateAccountName(strings.Repeat("x", 100)))
}

func TestGetNormalBalanceIsTotal(t *testing.T) {
	cases := map[coaModel.AccountType]coaModel.NormalBalance{
		coaModel.AccountTypeAsset:     coaModel.NormalBalanceDebit,
		coaModel.AccountTypeExpense:   coaModel.NormalBalanceDebit,
		coaModel.AccountTypeLiability: coaModel.NormalBalanceCredit,
		coaModel.AccountTypeEquity:    coaModel.NormalBalanceCredit,
		coaModel.AccountTypeRevenue:   coaModel.NormalBalanceCredit,
	}
	for typ, want := range cases {
		assert.Equal(t, want, GetNormalBalance(typ), "type %s", typ)
	}
}

func TestValidateParentChild(t *testing.T) {
	parentID := uuid.New()
	grandparentID := uuid.New()
	accounts := []coaModel.ChartOfAccount{
		{AccountID: parentID, AccountType: coaModel.AccountTypeAsset, IsActive: true},
		{AccountID: grandparentID, AccountType: coaModel.AccountTypeAsset, IsActive: true},
	}

	t.Run("no parent is trivially valid", func(t *testing.T) {
		assert.Empty(t, ValidateParentChild(nil, coaModel.AccountTypeAsset, accounts))
	})

	t.Run("valid link", func(t *testing.T) {
		assert.Empty(t, ValidateParentChild(&parentID, coaModel.AccountTypeAsset, accounts))
	})

	t.Run("parent not found", func(t *testing.T) {
		unknown := uuid.New()
		errs := ValidateParentChild(&unknown, coaModel.AccountTypeAsset, accounts)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "not found")
	})

	t.Run("type mismatch", func(t *testing.T) {
		errs := ValidateParentChild(&parentID, coaModel.AccountTypeRevenue, accounts)
		require.NotEmpty(t, errs)
		assert.Contains(t, errs[0], "does not match")
	})

	t.Run("archived parent", func(t *testing.T) {
		archived := []coaModel.ChartOfAccount{
			{AccountID: parentID, AccountType: coaModel.AccountTypeAsset, IsActive: false},
		}
		errs := ValidateParentChild(&parentID, coaModel.AccountTypeAsset, archived)
		require.NotEmpty(t, errs)
		assert.Contains(t, errs[0], "archived")
	})

	t.Run("depth guard", func(t *testing.T) {
		withParent := []coaModel.ChartOfAccount{
			{AccountID: parentID, AccountType: coaModel.AccountTypeAsset, IsActive: true, ParentAccountID: &grandparentID},
		}
		errs := ValidateParentChild(&parentID, coaModel.AccountTypeAsset, withParent)
		require.NotEmpty(t, errs)
		assert.Contains(t, errs[0], "already has a parent")
	})
}

func TestValidateArchival(t *testing.T) {
	t.Run("clean account archives", func(t *testing.T) {
		res := ValidateArchival(0, 0, false)
		assert.True(t, res.Valid())
		assert.Empty(t, res.Warnings)
	})

	t.Run("system account blocks", func(t *testing.T) {
		res := ValidateArchival(0, 0, true)
		assert.False(t, res.Valid())
	})

	t.Run("children block", func(t *testing.T) {
		res := ValidateArchival(0, 3, false)
		assert.False(t, res.Valid())
	})

	// The mixed contract: history warns but the archival still proceeds.
	t.Run("transactions warn without blocking", func(t *testing.T) {
		res := ValidateArchival(42, 0, false)
		assert.True(t, res.Valid())
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "42")
	})

	t.Run("system account with transactions blocks and warns", func(t *testing.T) {
		res := ValidateArchival(5, 0, true)
		assert.False(t, res.Valid())
		assert.Len(t, res.Warnings, 1)
	})
}
