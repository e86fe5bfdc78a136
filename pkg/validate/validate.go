// Package validate wraps go-playground/validator as the single schema
// validation layer used by every entity service.
package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"pm-ajay/monitoring-backend/pkg/apperr"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so envelope errors match the payload.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return val
}

// Struct validates a request struct and converts validator failures into
// an apperr.Validation with per-field messages.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Internal("validation failed", err)
	}
	fields := make(map[string]string, len(verrs))
	for _, ve := range verrs {
		fields[ve.Field()] = message(ve)
	}
	return apperr.Validation("request validation failed", fields)
}

func message(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + ve.Param()
	case "gt":
		return "must be greater than " + ve.Param()
	case "gte":
		return "must be at least " + ve.Param()
	case "lte":
		return "must be at most " + ve.Param()
	case "email":
		return "must be a valid email address"
	case "alphanum":
		return "must be alphanumeric"
	default:
		return "failed " + ve.Tag() + " validation"
	}
}
