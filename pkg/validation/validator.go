package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tapanbhakhar27/inventory-service/pkg/errs"
)

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// Validator wraps go-playground/validator so echo can run struct-tag rules
// through c.Validate.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New()

	// Report fields by their json names so violations match the wire format.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return objectIDPattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: validate}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// Violations converts validator errors into field violations, one entry per
// violated rule in declaration order. Messages come from the supplied
// "field.tag" map, with generic fallbacks for unmapped rules. Violations on
// slice elements collapse onto the slice field.
func Violations(err error, messages map[string]string) errs.FieldViolations {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.FieldViolations{{Field: "request", Message: err.Error()}}
	}

	violations := errs.FieldViolations{}
	seen := map[string]bool{}

	for _, fieldError := range validationErrors {
		field := fieldError.Field()
		if idx := strings.Index(field, "["); idx != -1 {
			field = field[:idx]
		}

		key := field + "." + fieldError.Tag()
		if seen[key] {
			continue
		}
		seen[key] = true

		message, found := messages[key]
		if !found {
			message = fallbackMessage(fieldError)
		}

		violations = append(violations, errs.FieldViolation{Field: field, Message: message})
	}

	return violations
}

func fallbackMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	case "gte":
		return "Value must be greater than or equal to " + fieldError.Param()
	case "lte":
		return "Value must be less than or equal to " + fieldError.Param()
	case "objectid":
		return "Invalid ID format"
	default:
		return "Invalid value"
	}
}
