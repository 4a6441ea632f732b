package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"quest-tracker/internal/domain"
)

// Validator checks tagged structs (request bodies, configuration) with go-playground/validator
// and reports failures as a ValidationError. It registers the quest-specific tags
// "weekday" and "timeofday".
type Validator struct {
	validate *validator.Validate
}

var (
	defaultValidator *Validator
	defaultOnce      sync.Once
)

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json/mapstructure names rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "mapstructure"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseWeekday(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseTimeOfDay(fl.Field().String())
		return err == nil
	})

	return &Validator{validate: v}
}

// Default returns a shared Validator. go-playground caches struct metadata per instance.
func Default() *Validator {
	defaultOnce.Do(func() {
		defaultValidator = NewValidator()
	})
	return defaultValidator
}

// Struct validates s and converts tag failures into a ValidationError.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return err
	}

	ve := NewValidationError()
	for _, fe := range fieldErrs {
		field := fieldPath(fe.Namespace())
		switch fe.Tag() {
		case "required", "required_if":
			ve.AddRequiredError(field)
		case "max":
			var max int
			fmt.Sscanf(fe.Param(), "%d", &max)
			ve.AddInvalidLengthError(field, fe.Value(), max)
		case "weekday":
			ve.AddInvalidFormatError(field, fe.Value(), "MONDAY..SUNDAY")
		case "timeofday":
			ve.AddInvalidFormatError(field, fe.Value(), "HH:MM or HH:MM:SS")
		case "url":
			ve.AddInvalidFormatError(field, fe.Value(), "absolute URL")
		default:
			ve.AddInvalidValueError(field, fe.Value(), fmt.Sprintf("failed %q check", tagWithParam(fe)))
		}
	}
	return ve
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func tagWithParam(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
