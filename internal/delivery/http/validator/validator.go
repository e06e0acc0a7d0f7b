// Package validator adapts go-playground validation to echo's Validator hook.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a single shared validate instance.
type Validator struct {
	validate *playground.Validate
}

// New creates the echo request validator.
func New() *Validator {
	return &Validator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
