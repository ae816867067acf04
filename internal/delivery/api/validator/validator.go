// Package validator adapts go-playground/validator to echo's Validator.
package validator

import (
	"reflect"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator validates bound request bodies. Besides the built-in tags it
// understands "size", which accepts only labels of the size catalog.
type CustomValidator struct {
	validate *playground.Validate
}

// New builds a validator whose "size" tag checks against sizes.
func New(sizes *entity.SizeCatalog) *CustomValidator {
	v := playground.New(playground.WithRequiredStructEnabled())

	// Report json names so messages match what the client sent.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	_ = v.RegisterValidation("size", func(fl playground.FieldLevel) bool {
		if sizes == nil {
			return false
		}
		_, ok := sizes.Normalize(fl.Field().String())

		return ok
	})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator. Failures come back as ErrValidationFailed
// listing each offending field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(messages, "; "))
}

func describe(fe playground.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "uuid", "uuid4":
		return field + " must be a uuid"
	case "size":
		return field + " is not a known size"
	case "oneof":
		return field + " must be one of " + fe.Param()
	default:
		return field + " failed " + fe.Tag()
	}
}
