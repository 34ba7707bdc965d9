package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	revenueModel "ftms_backend/internals/features/revenues/model"
)

// AmountTolerance is the exclusive tolerance for amount matching: a
// difference of 0.01 or more is a mismatch.
var AmountTolerance = decimal.New(1, -2)

// WithinTolerance reports |a-b| < 0.01.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(AmountTolerance)
}

/* =======================================================
   VALIDATION INPUT
======================================================= */

type InstallmentInput struct {
	Amount  decimal.Decimal
	DueDate time.Time
}

// RevenueInput is the validation view of a create/update request.
type RevenueInput struct {
	SourceID        uuid.UUID
	CategoryID      uuid.UUID
	Description     string
	TotalAmount     decimal.Decimal
	PaymentMethodID uuid.UUID
	CreatedBy       uuid.UUID

	CollectionDate time.Time
	IsReceivable   bool
	DueDate        *time.Time
	ARStatus       *string
	PaidDate       *time.Time

	BusTripID     *uuid.UUID
	LoanPaymentID *uuid.UUID

	ExternalRefType *string
	ExternalRefID   *string

	InstallmentFrequency *string
	InstallmentStartDate *time.Time
	Installments         []InstallmentInput
}

// InputFromRecord rebuilds the validation input from a persisted record,
// installment plan included, so edits are re-checked against the full stored
// state. The record's Installments association must be loaded.
func InputFromRecord(rec revenueModel.RevenueRecord) RevenueInput {
	in := RevenueInput{
		SourceID:        rec.RevenueSourceID,
		CategoryID:      rec.RevenueCategoryID,
		Description:     rec.RevenueDescription,
		TotalAmount:     rec.RevenueTotalAmount,
		PaymentMethodID: rec.RevenuePaymentMethodID,
		CreatedBy:       rec.RevenueCreatedBy,

		CollectionDate: rec.RevenueCollectionDate,
		IsReceivable:   rec.RevenueIsReceivable,
		DueDate:        rec.RevenueDueDate,
		ARStatus:       rec.RevenueARStatus,
		PaidDate:       rec.RevenuePaidDate,

		BusTripID:     rec.RevenueBusTripID,
		LoanPaymentID: rec.RevenueLoanPaymentID,

		ExternalRefType: rec.RevenueExternalRefType,
		ExternalRefID:   rec.RevenueExternalRefID,

		InstallmentFrequency: rec.RevenueInstallmentFrequency,
		InstallmentStartDate: rec.RevenueInstallmentStartDate,
	}
	for _, inst := range rec.Installments {
		in.Installments = append(in.Installments, InstallmentInput{
			Amount:  inst.InstallmentAmount,
			DueDate: inst.InstallmentDueDate,
		})
	}
	return in
}

/* =======================================================
   PURE SUB-VALIDATORS
   Each returns a partial error list; the aggregator
   concatenates them all — no short-circuit.
======================================================= */

// ValidateRequiredFields: presence checks that need no lookups.
func ValidateRequiredFields(in RevenueInput) []string {
	var errs []string
	if in.SourceID == uuid.Nil {
		errs = append(errs, "source is required")
	}
	if len(strings.TrimSpace(in.Description)) < 5 {
		errs = append(errs, "description must be at least 5 characters")
	}
	if !in.TotalAmount.IsPositive() {
		errs = append(errs, "amount must be greater than zero")
	}
	if in.PaymentMethodID == uuid.Nil {
		errs = append(errs, "payment method is required")
	}
	if in.CreatedBy == uuid.Nil {
		errs = append(errs, "creator is required")
	}
	return errs
}

// ValidateARRules: receivable records need a due date after the collection
// date and a valid AR status; non-receivable records cannot be collected in
// the future.
func ValidateARRules(in RevenueInput, now time.Time) []string {
	var errs []string

	if in.IsReceivable {
		if in.DueDate == nil {
			errs = append(errs, "due date is required for receivable revenue")
		} else if !in.DueDate.After(in.CollectionDate) {
			errs = append(errs, "due date must be after the collection date")
		}
		if in.ARStatus == nil {
			errs = append(errs, "AR status is required for receivable revenue")
		} else {
			switch *in.ARStatus {
			case revenueModel.ARStatusPending, revenueModel.ARStatusPartial, revenueModel.ARStatusPaid:
			default:
				errs = append(errs, fmt.Sprintf("AR status %q must be one of PENDING, PARTIAL, PAID", *in.ARStatus))
			}
			if *in.ARStatus == revenueModel.ARStatusPaid && in.PaidDate == nil {
				errs = append(errs, "paid date is required when AR status is PAID")
			}
		}
	} else {
		// day-granularity comparison; collection_date is a DATE column
		today := now.Truncate(24 * time.Hour)
		if in.CollectionDate.After(today.Add(24*time.Hour - time.Nanosecond)) {
			errs = append(errs, "collection date cannot be in the future for non-receivable revenue")
		}
	}
	return errs
}

// ValidateInstallments: a plan needs ≥2 positive installments whose sum
// matches the revenue amount within tolerance, a frequency, and a start date
// on/after the transaction date.
func ValidateInstallments(in RevenueInput) []string {
	if len(in.Installments) == 0 && in.InstallmentFrequency == nil && in.InstallmentStartDate == nil {
		return nil // no plan requested
	}

	var errs []string
	if len(in.Installments) < 2 {
		errs = append(errs, "an installment plan needs at least 2 payments")
	}
	sum := decimal.Zero
	for i, inst := range in.Installments {
		if !inst.Amount.IsPositive() {
			errs = append(errs, fmt.Sprintf("installment %d amount must be positive", i+1))
		}
		sum = sum.Add(inst.Amount)
	}
	if in.InstallmentFrequency == nil || strings.TrimSpace(*in.InstallmentFrequency) == "" {
		errs = append(errs, "installment frequency is required")
	}
	if in.InstallmentStartDate == nil {
		errs = append(errs, "installment start date is required")
	} else if in.InstallmentStartDate.Before(in.CollectionDate) {
		errs = append(errs, "installment start date must be on or after the transaction date")
	}
	if len(in.Installments) >= 2 && !WithinTolerance(sum, in.TotalAmount) {
		errs = append(errs, fmt.Sprintf("installment amounts (%s) must sum to the revenue amount (%s)",
			sum.StringFixed(2), in.TotalAmount.StringFixed(2)))
	}
	return errs
}

// refTypesRequiringID: subset of the whitelist that must carry a reference id.
var refTypesRequiringID = map[string]bool{
	revenueModel.ExternalRefBusTrip:     true,
	revenueModel.ExternalRefRental:      true,
	revenueModel.ExternalRefLoanPayment: true,
}

// ValidateExternalRef: whitelist plus conditional reference-id requirement.
func ValidateExternalRef(in RevenueInput) []string {
	if in.ExternalRefType == nil {
		return nil
	}

	var errs []string
	t := strings.ToUpper(strings.TrimSpace(*in.ExternalRefType))
	switch t {
	case revenueModel.ExternalRefBusTrip, revenueModel.ExternalRefRental,
		revenueModel.ExternalRefLoanPayment, revenueModel.ExternalRefOther:
	default:
		errs = append(errs, fmt.Sprintf("external reference type %q is not recognized", *in.ExternalRefType))
		return errs
	}
	if refTypesRequiringID[t] && (in.ExternalRefID == nil || strings.TrimSpace(*in.ExternalRefID) == "") {
		errs = append(errs, fmt.Sprintf("external reference id is required for type %s", t))
	}
	return errs
}

/* =======================================================
   OUTSTANDING BALANCE
======================================================= */

// RecomputeOutstanding: total minus payments, floored at zero.
func RecomputeOutstanding(total decimal.Decimal, payments []decimal.Decimal) decimal.Decimal {
	out := total
	for _, p := range payments {
		out = out.Sub(p)
	}
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}
