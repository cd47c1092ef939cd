package shared

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the process-wide struct validator. Decimal fields use
// the dgte and dlte tags, which compare exactly against a decimal parameter.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		mustRegister(v, "notblank", validators.NotBlank)
		mustRegister(v, "dgte", decimalBound(decimal.Decimal.GreaterThanOrEqual))
		mustRegister(v, "dlte", decimalBound(decimal.Decimal.LessThanOrEqual))
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// decimalBound compares a decimal.Decimal field against the tag parameter.
// A malformed parameter is a programming error and panics, as the built-in
// numeric tags do.
func decimalBound(cmp func(d, bound decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		if !ok {
			return false
		}
		bound, err := decimal.NewFromString(fl.Param())
		if err != nil {
			panic(fmt.Sprintf("decimal bound %q: %v", fl.Param(), err))
		}
		return cmp(d, bound)
	}
}

// ValidateStruct checks the validate tags of v. Any violation is reported as
// ErrInvalidArgument listing the offending fields.
func ValidateStruct(v interface{}) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fieldErr.Field(), fieldErr.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidArgument, strings.Join(msgs, ", "))
}
