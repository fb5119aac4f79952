package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validator checks the validate tags carried by the service request structs.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Struct validates every tagged field of s and returns the first failure.
func (v *Validator) Struct(s interface{}) error {
	if err := v.v.Struct(s); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
