package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	expenseModel "ftms_backend/internals/features/expenses/model"
)

/* =======================================================
   STATE MACHINE
   PENDING → APPROVED → PAID
   PENDING → REJECTED
   PENDING → CANCELLED
   PAID / REJECTED / CANCELLED are terminal.
======================================================= */

const (
	ActionApprove = "APPROVE"
	ActionReject  = "REJECT"
	ActionCancel  = "CANCEL"
	ActionPay     = "PAY"
)

// transitions maps action → required current status → next status.
var transitions = map[string]struct {
	from string
	to   string
}{
	ActionApprove: {expenseModel.ReimbursementStatusPending, expenseModel.ReimbursementStatusApproved},
	ActionReject:  {expenseModel.ReimbursementStatusPending, expenseModel.ReimbursementStatusRejected},
	ActionCancel:  {expenseModel.ReimbursementStatusPending, expenseModel.ReimbursementStatusCancelled},
	ActionPay:     {expenseModel.ReimbursementStatusApproved, expenseModel.ReimbursementStatusPaid},
}

// StateConflictError signals a transition attempted from an illegal persisted
// status. Handlers map it to a conflict response, never a silent proceed.
type StateConflictError struct {
	Action  string
	Current string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("cannot %s a reimbursement with status %s", e.Action, e.Current)
}

// NextStatus validates action against the current persisted status and
// returns the resulting status.
func NextStatus(action, current string) (string, error) {
	t, ok := transitions[action]
	if !ok {
		return "", fmt.Errorf("unknown reimbursement action %q", action)
	}
	if current != t.from {
		return "", &StateConflictError{Action: action, Current: current}
	}
	return t.to, nil
}

/* =======================================================
   FAN-OUT RULES
======================================================= */

type ReimbursementClaim struct {
	EmployeeExternalID string
	EmployeeName       string
	Amount             decimal.Decimal
}

// ValidateFanOut checks the per-employee claims against the parent expense:
// every claim positive with an employee, and amounts summing exactly to the
// expense amount. An empty claim list is a valid expense with no fan-out.
func ValidateFanOut(expenseAmount decimal.Decimal, claims []ReimbursementClaim) []string {
	if len(claims) == 0 {
		return nil
	}

	var errs []string
	sum := decimal.Zero
	for i, c := range claims {
		if c.EmployeeExternalID == "" {
			errs = append(errs, fmt.Sprintf("reimbursement %d is missing an employee", i+1))
		}
		if !c.Amount.IsPositive() {
			errs = append(errs, fmt.Sprintf("reimbursement %d amount must be positive", i+1))
		}
		sum = sum.Add(c.Amount)
	}
	if !sum.Equal(expenseAmount) {
		errs = append(errs, fmt.Sprintf("reimbursement amounts (%s) must sum to the expense amount (%s)",
			sum.StringFixed(2), expenseAmount.StringFixed(2)))
	}
	return errs
}
