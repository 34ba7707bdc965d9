package service

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	expenseModel "ftms_backend/internals/features/expenses/model"
)

func TestNextStatus(t *testing.T) {
	cases := []struct {
		action  string
		current string
		want    string
	}{
		{ActionApprove, expenseModel.ReimbursementStatusPending, expenseModel.ReimbursementStatusApproved},
		{ActionReject, expenseModel.ReimbursementStatusPending, expenseModel.ReimbursementStatusRejected},
		{ActionCancel, expenseModel.ReimbursementStatusPending, expenseModel.ReimbursementStatusCancelled},
		{ActionPay, expenseModel.ReimbursementStatusApproved, expenseModel.ReimbursementStatusPaid},
	}
	for _, tc := range cases {
		got, err := NextStatus(tc.action, tc.current)
		require.NoError(t, err, "%s from %s", tc.action, tc.current)
		assert.Equal(t, tc.want, got)
	}
}

func TestNextStatusConflicts(t *testing.T) {
	// PAY from PENDING is the canonical stale-status case.
	_, err := NextStatus(ActionPay, expenseModel.ReimbursementStatusPending)
	var conflict *StateConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, ActionPay, conflict.Action)
	assert.Equal(t, expenseModel.ReimbursementStatusPending, conflict.Current)

	// Terminal states accept nothing.
	for _, terminal := range []string{
		expenseModel.ReimbursementStatusPaid,
		expenseModel.ReimbursementStatusRejected,
		expenseModel.ReimbursementStatusCancelled,
	} {
		for _, action := range []string{ActionApprove, ActionReject, ActionCancel, ActionPay} {
			_, err := NextStatus(action, terminal)
			assert.Error(t, err, "%s from %s must fail", action, terminal)
		}
	}

	// APPROVED only accepts PAY.
	for _, action := range []string{ActionApprove, ActionReject, ActionCancel} {
		_, err := NextStatus(action, expenseModel.ReimbursementStatusApproved)
		require.Error(t, err)
		assert.True(t, errors.As(err, &conflict))
	}
}

func TestNextStatusUnknownAction(t *testing.T) {
	_, err := NextStatus("ESCALATE", expenseModel.ReimbursementStatusPending)
	require.Error(t, err)
	var conflict *StateConflictError
	assert.False(t, errors.As(err, &conflict), "unknown action is not a state conflict")
}

func TestValidateFanOut(t *testing.T) {
	amount := decimal.RequireFromString("100.00")

	claim := func(id string, amt string) ReimbursementClaim {
		return ReimbursementClaim{
			EmployeeExternalID: id,
			EmployeeName:       "Employee " + id,
			Amount:             decimal.RequireFromString(amt),
		}
	}

	t.Run("no fan-out is valid", func(t *testing.T) {
		assert.Empty(t, ValidateFanOut(amount, nil))
	})

	t.Run("claims summing to the amount pass", func(t *testing.T) {
		assert.Empty(t, ValidateFanOut(amount, []ReimbursementClaim{
			claim("E1", "60.00"),
			claim("E2", "40.00"),
		}))
	})

	t.Run("sum mismatch rejected", func(t *testing.T) {
		errs := ValidateFanOut(amount, []ReimbursementClaim{
			claim("E1", "60.00"),
			claim("E2", "39.99"),
		})
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "sum")
	})

	t.Run("missing employee and non-positive amount accumulate", func(t *testing.T) {
		errs := ValidateFanOut(amount, []ReimbursementClaim{
			claim("", "100.00"),
			claim("E2", "-1.00"),
		})
		// missing employee, negative amount, sum mismatch
		assert.Len(t, errs, 3)
	})
}
