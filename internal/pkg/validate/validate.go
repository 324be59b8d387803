// Package validate holds the shared struct validator used by the services.
package validate

import (
	"github.com/go-playground/validator/v10"
	"github.com/modelmart/core/internal/pkg/apperr"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates dto tags and converts failures into a ValidationError.
func Struct(dto interface{}) error {
	if err := v.Struct(dto); err != nil {
		return apperr.Validation("invalid input: %v", err)
	}
	return nil
}
