package portal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	mu       sync.Mutex
	instance *validator.Validate
	errors   map[string]any
}

var (
	defaultValidator *Validator
	defaultOnce      sync.Once
)

func GetDefaultValidator() *Validator {
	defaultOnce.Do(func() {
		defaultValidator = MakeValidatorFrom(
			validator.New(validator.WithRequiredStructEnabled()),
		)
	})

	return defaultValidator
}

func MakeValidatorFrom(abstract *validator.Validate) *Validator {
	registerCustomValidations(abstract)

	return &Validator{
		instance: abstract,
		errors:   make(map[string]any),
	}
}

func (v *Validator) Passes(data any) (bool, error) {
	_, err := v.Check(data)

	return err == nil, err
}

// Check validates data and returns the field errors of this call only, so
// concurrent callers sharing the default validator never see each other's errors.
func (v *Validator) Check(data any) (map[string]any, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.errors = make(map[string]any)

	if err := v.instance.Struct(data); err != nil {
		v.parseError(err)

		out := make(map[string]any, len(v.errors))
		for field, message := range v.errors {
			out[field] = message
		}

		return out, fmt.Errorf("validator: invalid data: %w", err)
	}

	return map[string]any{}, nil
}

func (v *Validator) Rejects(data any) (bool, error) {
	passes, err := v.Passes(data)

	return !passes, err
}

func (v *Validator) GetErrors() map[string]any {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make(map[string]any, len(v.errors))
	for field, message := range v.errors {
		out[field] = message
	}

	return out
}

func (v *Validator) GetErrorsAsJson() string {
	value, err := json.Marshal(v.GetErrors())

	if err != nil {
		return ""
	}

	return string(value)
}

func (v *Validator) parseError(err error) {
	var validationErrors validator.ValidationErrors

	if !errors.As(err, &validationErrors) {
		v.errors["_"] = err.Error()

		return
	}

	for _, current := range validationErrors {
		field := strings.ToLower(current.Field())

		v.errors[field] = describeFieldError(current)
	}
}

func describeFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "email":
		return "Please enter a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid [%s]", e.Field(), e.Tag())
	}
}
