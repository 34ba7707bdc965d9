package dto

import "github.com/go-playground/validator/v10"

// Shared validator instance for reference DTOs.
var Validate = validator.New()

type CategoryCreateDTO struct {
	CategoryName         string  `json:"category_name" validate:"required,min=2,max=100"`
	CategoryDescription  *string `json:"category_description,omitempty" validate:"omitempty,max=500"`
	CategoryApplicableTo string  `json:"category_applicable_to" validate:"omitempty,oneof=revenue expense both"`
}

type PaymentMethodCreateDTO struct {
	PaymentMethodName string `json:"payment_method_name" validate:"required,min=2,max=60"`
}

type SourceCreateDTO struct {
	SourceName string `json:"source_name" validate:"required,min=2,max=60"`
}
