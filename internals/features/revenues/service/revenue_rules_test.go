package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	revenueModel "ftms_backend/internals/features/revenues/model"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func baseInput() RevenueInput {
	return RevenueInput{
		SourceID:        uuid.New(),
		CategoryID:      uuid.New(),
		Description:     "Daily boundary collection",
		TotalAmount:     d("500.00"),
		PaymentMethodID: uuid.New(),
		CreatedBy:       uuid.New(),
		CollectionDate:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestWithinTolerance(t *testing.T) {
	// The tolerance is exclusive: a difference of exactly 0.01 fails.
	assert.True(t, WithinTolerance(d("500.00"), d("500.00")))
	assert.True(t, WithinTolerance(d("500.005"), d("500.00")))
	assert.True(t, WithinTolerance(d("499.995"), d("500.00")))

	assert.False(t, WithinTolerance(d("500.01"), d("500.00")))
	assert.False(t, WithinTolerance(d("500.02"), d("500.00")))
	assert.False(t, WithinTolerance(d("499.99"), d("500.00")))
}

func TestValidateRequiredFields(t *testing.T) {
	assert.Empty(t, ValidateRequiredFields(baseInput()))

	t.Run("accumulates every missing field", func(t *testing.T) {
		errs := ValidateRequiredFields(RevenueInput{Description: "abc", TotalAmount: decimal.Zero})
		// source, description length, amount, payment method, creator
		assert.Len(t, errs, 5)
	})

	t.Run("short description", func(t *testing.T) {
		in := baseInput()
		in.Description = "abcd"
		assert.Len(t, ValidateRequiredFields(in), 1)
	})

	t.Run("negative amount", func(t *testing.T) {
		in := baseInput()
		in.TotalAmount = d("-1.00")
		assert.Len(t, ValidateRequiredFields(in), 1)
	})
}

func TestValidateARRules(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	t.Run("receivable needs due date after collection", func(t *testing.T) {
		in := baseInput()
		in.IsReceivable = true
		status := revenueModel.ARStatusPending
		in.ARStatus = &status

		errs := ValidateARRules(in, now)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "due date is required")

		due := in.CollectionDate // equal, not after
		in.DueDate = &due
		errs = ValidateARRules(in, now)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "after the collection date")

		later := in.CollectionDate.AddDate(0, 1, 0)
		in.DueDate = &later
		assert.Empty(t, ValidateARRules(in, now))
	})

	t.Run("AR status whitelist", func(t *testing.T) {
		in := baseInput()
		in.IsReceivable = true
		due := in.CollectionDate.AddDate(0, 1, 0)
		in.DueDate = &due
		bad := "OVERDUE"
		in.ARStatus = &bad

		errs := ValidateARRules(in, now)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "must be one of")
	})

	t.Run("PAID requires paid date", func(t *testing.T) {
		in := baseInput()
		in.IsReceivable = true
		due := in.CollectionDate.AddDate(0, 1, 0)
		in.DueDate = &due
		paid := revenueModel.ARStatusPaid
		in.ARStatus = &paid

		errs := ValidateARRules(in, now)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "paid date")

		paidDate := in.CollectionDate.AddDate(0, 0, 10)
		in.PaidDate = &paidDate
		assert.Empty(t, ValidateARRules(in, now))
	})

	t.Run("non-receivable cannot collect in the future", func(t *testing.T) {
		in := baseInput()
		in.CollectionDate = now.AddDate(0, 0, 2)
		errs := ValidateARRules(in, now)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "future")
	})

	t.Run("non-receivable today is fine", func(t *testing.T) {
		in := baseInput()
		in.CollectionDate = time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
		assert.Empty(t, ValidateARRules(in, now))
	})
}

func TestValidateInstallments(t *testing.T) {
	freq := "monthly"
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	plan := func(amounts ...string) RevenueInput {
		in := baseInput()
		in.InstallmentFrequency = &freq
		in.InstallmentStartDate = &start
		for _, a := range amounts {
			in.Installments = append(in.Installments, InstallmentInput{
				Amount:  d(a),
				DueDate: start,
			})
		}
		return in
	}

	t.Run("no plan requested", func(t *testing.T) {
		assert.Empty(t, ValidateInstallments(baseInput()))
	})

	t.Run("valid plan", func(t *testing.T) {
		assert.Empty(t, ValidateInstallments(plan("250.00", "250.00")))
	})

	t.Run("sum within tolerance passes", func(t *testing.T) {
		assert.Empty(t, ValidateInstallments(plan("250.00", "250.005")))
	})

	t.Run("single installment rejected", func(t *testing.T) {
		errs := ValidateInstallments(plan("500.00"))
		assert.NotEmpty(t, errs)
	})

	t.Run("sum mismatch rejected", func(t *testing.T) {
		errs := ValidateInstallments(plan("250.00", "250.02"))
		require.NotEmpty(t, errs)
		assert.Contains(t, errs[0], "sum")
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		errs := ValidateInstallments(plan("500.00", "0"))
		assert.NotEmpty(t, errs)
	})

	t.Run("start before transaction date rejected", func(t *testing.T) {
		in := plan("250.00", "250.00")
		early := in.CollectionDate.AddDate(0, 0, -1)
		in.InstallmentStartDate = &early
		errs := ValidateInstallments(in)
		require.NotEmpty(t, errs)
		assert.Contains(t, errs[0], "on or after")
	})
}

func TestValidateExternalRef(t *testing.T) {
	refID := "TRIP-001"

	t.Run("nil type passes", func(t *testing.T) {
		assert.Empty(t, ValidateExternalRef(baseInput()))
	})

	t.Run("whitelisted type with id passes", func(t *testing.T) {
		in := baseInput()
		typ := revenueModel.ExternalRefBusTrip
		in.ExternalRefType = &typ
		in.ExternalRefID = &refID
		assert.Empty(t, ValidateExternalRef(in))
	})

	t.Run("OTHER needs no id", func(t *testing.T) {
		in := baseInput()
		typ := revenueModel.ExternalRefOther
		in.ExternalRefType = &typ
		assert.Empty(t, ValidateExternalRef(in))
	})

	t.Run("BUS_TRIP without id rejected", func(t *testing.T) {
		in := baseInput()
		typ := revenueModel.ExternalRefBusTrip
		in.ExternalRefType = &typ
		errs := ValidateExternalRef(in)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "reference id is required")
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		in := baseInput()
		typ := "INVOICE"
		in.ExternalRefType = &typ
		errs := ValidateExternalRef(in)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "not recognized")
	})
}

func TestRecomputeOutstanding(t *testing.T) {
	total := d("500.00")

	assert.True(t, RecomputeOutstanding(total, nil).Equal(total))
	assert.True(t, RecomputeOutstanding(total, []decimal.Decimal{d("200.00")}).Equal(d("300.00")))
	assert.True(t, RecomputeOutstanding(total, []decimal.Decimal{d("200.00"), d("300.00")}).Equal(decimal.Zero))

	// Overpayment floors at zero instead of going negative.
	assert.True(t, RecomputeOutstanding(total, []decimal.Decimal{d("600.00")}).Equal(decimal.Zero))
}

func TestInputFromRecordCarriesInstallmentPlan(t *testing.T) {
	freq := "MONTHLY"
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	rec := revenueModel.RevenueRecord{
		RevenueSourceID:        uuid.New(),
		RevenueCategoryID:      uuid.New(),
		RevenueDescription:     "Charter receivable",
		RevenueTotalAmount:     d("900.00"), // edited away from the plan's 500.00
		RevenuePaymentMethodID: uuid.New(),
		RevenueCreatedBy:       uuid.New(),
		RevenueCollectionDate:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),

		RevenueInstallmentFrequency: &freq,
		RevenueInstallmentStartDate: &start,
		Installments: []revenueModel.RevenueInstallment{
			{InstallmentAmount: d("250.00"), InstallmentDueDate: start},
			{InstallmentAmount: d("250.00"), InstallmentDueDate: start.AddDate(0, 1, 0)},
		},
	}

	in := InputFromRecord(rec)
	require.Len(t, in.Installments, 2)
	require.NotNil(t, in.InstallmentFrequency)
	require.NotNil(t, in.InstallmentStartDate)

	// An amount edit cannot silently orphan the stored plan: re-validating
	// the rebuilt input reports the sum mismatch.
	errs := ValidateInstallments(in)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "must sum to the revenue amount")
}
