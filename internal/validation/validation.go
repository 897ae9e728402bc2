// Package validation checks request bodies against their binding tags
// without going through gin, so the same rules run client-side.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"skillswap/internal/biddingerrors"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.SetTagName("binding")
		UseJSONNames(validate)
	})
	return validate
}

// UseJSONNames makes v report fields by their json name. The service applies
// it to gin's binding engine so both sides word failures the same way.
func UseJSONNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
}

// Struct validates v and returns an error wrapping ErrValidation that lists
// every failed field in readable form.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	if msg, ok := Explain(err); ok {
		return fmt.Errorf("%w: %s", biddingerrors.ErrValidation, msg)
	}
	return fmt.Errorf("%w: %v", biddingerrors.ErrValidation, err)
}

// Explain renders field failures in err as readable text. It reports false
// when err carries no validator field errors.
func Explain(err error) (string, bool) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return "", false
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return strings.Join(msgs, "; "), true
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	isText := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		if isText {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if isText {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s check", field, fe.Tag())
	}
}
