package utils

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// RequestValidator wraps a validator instance for request DTO struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

var (
	validatorOnce    sync.Once
	requestValidator *RequestValidator
)

// GetValidator returns the shared request validator.
func GetValidator() *RequestValidator {
	validatorOnce.Do(func() {
		requestValidator = &RequestValidator{validate: validator.New()}
	})
	return requestValidator
}

// Validate checks struct tags and returns a readable error on violation.
func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}
