package dto

import "github.com/go-playground/validator/v10"

var Validate = validator.New()

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
