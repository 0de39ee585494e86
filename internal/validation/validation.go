// Package validation wraps go-playground/validator and converts its errors
// into *domain.ValidationError with API-style field paths.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/bankpanel-backend/internal/domain"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Field paths follow the `field` tag so errors read like the JSON payload.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("field"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})

		if err := v.RegisterValidation("sex", validateSex); err != nil {
			panic(fmt.Sprintf("validation: register sex: %v", err))
		}

		instance = v
	})
	return instance
}

func validateSex(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() == reflect.Pointer {
		if f.IsNil() {
			return false
		}
		f = f.Elem()
	}
	switch f.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return domain.Sex(f.Int()).IsValid()
	}
	return false
}

// Struct validates s and returns nil or a *domain.ValidationError listing
// every failing field.
func Struct(s any) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation: %w", err)
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: message(fe),
		})
	}
	return domain.NewValidationErrors(fields)
}

// fieldPath drops the root struct name: "ClientInput.address.city" -> "address.city".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "invalid email format"
	case "max":
		return "too long (max " + fe.Param() + ")"
	case "min":
		return "too short (min " + fe.Param() + ")"
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "sex":
		return "must be 0 (Male) or 1 (Female)"
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return "invalid"
}
