package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	opsModel "ftms_backend/internals/features/operations/model"
	refService "ftms_backend/internals/features/reference/service"
	revenueModel "ftms_backend/internals/features/revenues/model"
)

// Validator aggregates every revenue rule, pure and lookup-backed, into one
// accumulated error list. Checks never short-circuit: the caller gets the
// complete report in a single round trip. A non-nil error return means an
// infrastructure failure, not a validation outcome.
type Validator struct {
	DB    *gorm.DB
	Store *refService.Store
	Now   func() time.Time
}

func NewValidator(db *gorm.DB, store *refService.Store) *Validator {
	return &Validator{DB: db, Store: store, Now: time.Now}
}

// ValidateRevenueData runs, in order: required fields, source lookup,
// payment-method lookup, bus-trip amount match, loan-payment exclusivity,
// AR rules, installment rules, external-reference whitelist.
// excludeID skips the record being edited in exclusivity checks.
func (v *Validator) ValidateRevenueData(in RevenueInput, excludeID *uuid.UUID) ([]string, error) {
	var errs []string

	errs = append(errs, ValidateRequiredFields(in)...)

	// Source must exist and be active (soft-deleted rows are filtered by the
	// store's GORM scope).
	if in.SourceID != uuid.Nil {
		if _, err := v.Store.SourceByID(in.SourceID); err != nil {
			if errors.Is(err, refService.ErrNotFound) {
				errs = append(errs, "source does not exist or is inactive")
			} else {
				return nil, err
			}
		}
	}

	// Payment method must exist and be active.
	if in.PaymentMethodID != uuid.Nil {
		if _, err := v.Store.PaymentMethodByID(in.PaymentMethodID); err != nil {
			if errors.Is(err, refService.ErrNotFound) {
				errs = append(errs, "payment method does not exist or is inactive")
			} else {
				return nil, err
			}
		}
	}

	// Trip-linked revenue must match the cached trip revenue. Here the trip
	// amount is essential to correctness, so a missing trip is a hard
	// validation failure rather than a degraded pass.
	if in.BusTripID != nil {
		var trip opsModel.BusTripCache
		err := v.DB.First(&trip, "bus_trip_cache_id = ?", *in.BusTripID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			errs = append(errs, "linked bus trip not found")
		case err != nil:
			return nil, err
		default:
			if !WithinTolerance(in.TotalAmount, trip.TripRevenue) {
				errs = append(errs, fmt.Sprintf("amount %s does not match the trip revenue %s",
					in.TotalAmount.StringFixed(2), trip.TripRevenue.StringFixed(2)))
			}
		}
	}

	// A loan payment backs at most one revenue record.
	if in.LoanPaymentID != nil {
		q := v.DB.Model(&revenueModel.RevenueRecord{}).
			Where("revenue_loan_payment_id = ?", *in.LoanPaymentID)
		if excludeID != nil {
			q = q.Where("revenue_id <> ?", *excludeID)
		}
		var count int64
		if err := q.Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			errs = append(errs, "loan payment is already linked to another revenue record")
		}
	}

	errs = append(errs, ValidateARRules(in, v.Now())...)
	errs = append(errs, ValidateInstallments(in)...)
	errs = append(errs, ValidateExternalRef(in)...)

	return errs, nil
}
