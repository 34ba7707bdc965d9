package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	revenueService "ftms_backend/internals/features/revenues/service"
)

var Validate = validator.New()

type InstallmentDTO struct {
	InstallmentAmount  decimal.Decimal `json:"installment_amount"`
	InstallmentDueDate time.Time       `json:"installment_due_date" validate:"required"`
}

type RevenueCreateDTO struct {
	RevenueCategoryID      uuid.UUID `json:"revenue_category_id" validate:"required"`
	RevenueSourceID        uuid.UUID `json:"revenue_source_id"`
	RevenuePaymentMethodID uuid.UUID `json:"revenue_payment_method_id"`

	RevenueDescription string          `json:"revenue_description"`
	RevenueTotalAmount decimal.Decimal `json:"revenue_total_amount"`

	RevenueCollectionDate time.Time  `json:"revenue_collection_date" validate:"required"`
	RevenueDueDate        *time.Time `json:"revenue_due_date,omitempty"`

	RevenueIsReceivable bool       `json:"revenue_is_receivable"`
	RevenueARStatus     *string    `json:"revenue_ar_status,omitempty"`
	RevenuePaidDate     *time.Time `json:"revenue_paid_date,omitempty"`

	RevenueBusTripID     *uuid.UUID `json:"revenue_bus_trip_id,omitempty"`
	RevenueAssignmentID  *uuid.UUID `json:"revenue_assignment_id,omitempty"`
	RevenueLoanPaymentID *uuid.UUID `json:"revenue_loan_payment_id,omitempty"`

	RevenueExternalRefType *string `json:"revenue_external_ref_type,omitempty"`
	RevenueExternalRefID   *string `json:"revenue_external_ref_id,omitempty"`

	RevenueInstallmentFrequency *string          `json:"revenue_installment_frequency,omitempty"`
	RevenueInstallmentStartDate *time.Time       `json:"revenue_installment_start_date,omitempty"`
	Installments                []InstallmentDTO `json:"installments,omitempty" validate:"omitempty,dive"`
}

// ToInput maps the request body to the validator's view. The creator comes
// from the authenticated session, never the body.
func (d RevenueCreateDTO) ToInput(createdBy uuid.UUID) revenueService.RevenueInput {
	in := revenueService.RevenueInput{
		SourceID:        d.RevenueSourceID,
		CategoryID:      d.RevenueCategoryID,
		Description:     d.RevenueDescription,
		TotalAmount:     d.RevenueTotalAmount,
		PaymentMethodID: d.RevenuePaymentMethodID,
		CreatedBy:       createdBy,

		CollectionDate: d.RevenueCollectionDate,
		IsReceivable:   d.RevenueIsReceivable,
		DueDate:        d.RevenueDueDate,
		ARStatus:       d.RevenueARStatus,
		PaidDate:       d.RevenuePaidDate,

		BusTripID:     d.RevenueBusTripID,
		LoanPaymentID: d.RevenueLoanPaymentID,

		ExternalRefType: d.RevenueExternalRefType,
		ExternalRefID:   d.RevenueExternalRefID,

		InstallmentFrequency: d.RevenueInstallmentFrequency,
		InstallmentStartDate: d.RevenueInstallmentStartDate,
	}
	for _, inst := range d.Installments {
		in.Installments = append(in.Installments, revenueService.InstallmentInput{
			Amount:  inst.InstallmentAmount,
			DueDate: inst.InstallmentDueDate,
		})
	}
	return in
}

// Update (partial): descriptive and AR fields only; linkage fields are fixed.
type RevenueUpdateDTO struct {
	RevenueDescription *string         `json:"revenue_description,omitempty"`
	RevenueTotalAmount *decimal.Decimal `json:"revenue_total_amount,omitempty"`

	RevenueDueDate  *time.Time `json:"revenue_due_date,omitempty"`
	RevenueARStatus *string    `json:"revenue_ar_status,omitempty"`
	RevenuePaidDate *time.Time `json:"revenue_paid_date,omitempty"`
}

type RevenuePaymentCreateDTO struct {
	PaymentAmount decimal.Decimal `json:"payment_amount"`
	PaymentDate   time.Time       `json:"payment_date" validate:"required"`
}
