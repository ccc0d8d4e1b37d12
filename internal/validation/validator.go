package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"finledger/internal/models"
)

// Validator wraps go-playground/validator with the engine's custom rules
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a validator with all custom rules registered
func NewValidator() *Validator {
	validate := validator.New()

	// report struct field names by their json tag so validation details match the wire
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("transaction_type", validateTransactionType)
	_ = validate.RegisterValidation("calendar_date", validateCalendarDate)
	_ = validate.RegisterValidation("month_anchor", validateMonthAnchor)
	_ = validate.RegisterValidation("sort_key", validateSortKey)
	_ = validate.RegisterValidation("positive_amount", validatePositiveAmount)

	return &Validator{validate: validate}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateTransactionType accepts the known transaction types
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(strings.ToLower(fl.Field().String()))
}

// validateCalendarDate accepts YYYY-MM-DD strings
func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}

// validateMonthAnchor accepts YYYY-MM-DD strings pointing at the first of a month
func validateMonthAnchor(fl validator.FieldLevel) bool {
	date, err := models.ParseDate(fl.Field().String())
	if err != nil {
		return false
	}
	return date.Time().Day() == 1
}

// validateSortKey accepts the history view sort keys
func validateSortKey(fl validator.FieldLevel) bool {
	return models.IsValidSortKey(fl.Field().String())
}

// validatePositiveAmount accepts strictly positive decimal amounts
func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && amount.IsPositive()
}

// FormatErrors flattens validator errors into "field: rule" detail strings for
// the error envelope.
func FormatErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		details = append(details, fmt.Sprintf("%s: failed %s validation", fieldError.Field(), fieldError.Tag()))
	}
	return details
}
