package handler

import "github.com/go-playground/validator/v10"

// Validator adapts go-playground/validator to echo's Validator interface.
// Failures are returned raw so the central error handler can render them.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
