package models

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/desertthunder/registrar/internal/shared"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by [Person.Set] and [Course.Set].
const (
	FieldID    = "id"
	FieldName  = "name"
	FieldAge   = "age"
	FieldEmail = "email"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("email_address", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("failed to register email validation: %v", err))
	}
	return v
}

// ValidationError describes a single rejected field value.
//
// It matches [shared.ErrValidation] with [errors.Is].
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s %q %s", shared.ErrValidation, e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return shared.ErrValidation
}

// ValidateAge accepts non-negative ages and returns them unchanged.
func ValidateAge(age int) (int, error) {
	if err := check(FieldAge, strconv.Itoa(age), age, "gte=0"); err != nil {
		return 0, err
	}
	return age, nil
}

// ParseAge converts raw form text to an age.
//
// Surrounding whitespace is ignored; anything that is not a whole number, or is negative, is rejected.
func ParseAge(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	age, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &ValidationError{Field: FieldAge, Value: raw, Reason: "must be a whole number"}
	}
	return ValidateAge(age)
}

// ValidateEmail accepts addresses shaped like local@domain.tld and returns them unchanged.
func ValidateEmail(email string) (string, error) {
	if err := check(FieldEmail, email, email, "required,email_address"); err != nil {
		return "", err
	}
	return email, nil
}

// ValidateName rejects empty or blank names and returns the name with surrounding whitespace removed.
func ValidateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if err := check(FieldName, name, trimmed, "required"); err != nil {
		return "", err
	}
	return trimmed, nil
}

// ValidateID rejects empty or blank identifiers.
func ValidateID(id string) (string, error) {
	trimmed := strings.TrimSpace(id)
	if err := check(FieldID, id, trimmed, "required"); err != nil {
		return "", err
	}
	return trimmed, nil
}

// check runs a validator tag against value and converts failures to a [ValidationError].
func check(field, raw string, value any, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Field: field, Value: raw, Reason: err.Error()}
	}
	return &ValidationError{Field: field, Value: raw, Reason: reason(fieldErrs[0])}
}

func reason(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return "is required"
	case "gte":
		return "must be at least " + fe.Param()
	case "email_address":
		return "must look like name@domain.tld"
	default:
		return "is invalid"
	}
}
