package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	commonerrors "github.com/flannelman48/whirly-rentals-website/internal/common/errors"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every rejected field of one input, in schema order.
// It unwraps to commonerrors.ErrValidationFailed.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return commonerrors.ErrValidationFailed
}

func NewValidationError(fields []FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Messages maps a json field name to the message reported for any rule it breaks.
type Messages map[string]string

type Engine struct {
	validate *validator.Validate
}

func NewEngine() *Engine {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Engine{validate: v}
}

// Struct runs the struct tags of s and returns the failures keyed by json field name.
// Only the first failing rule of each field is reported.
func (e *Engine) Struct(s any, messages Messages) (map[string]FieldError, error) {
	err := e.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, fmt.Errorf("failed to validate: %w", err)
	}

	result := make(map[string]FieldError, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := result[field]; seen {
			continue
		}
		msg, ok := messages[field]
		if !ok {
			msg = defaultMessage(fe)
		}
		result[field] = FieldError{Field: field, Message: msg}
	}
	return result, nil
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email"
	case "oneof":
		return "Invalid option"
	case "max":
		return fmt.Sprintf("Must be %s characters or less", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	default:
		return "Invalid value"
	}
}

// TypeName names the JSON type of a decoded value the way error messages report it.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// String reads key from raw as a string. A missing or null value yields "" and no error.
func String(raw map[string]any, key string) (string, *FieldError) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldError{Field: key, Message: "Expected string, received " + TypeName(v)}
	}
	return s, nil
}

// Bool reads key from raw as a boolean. Anything that is not a JSON boolean yields false.
func Bool(raw map[string]any, key string) bool {
	b, ok := raw[key].(bool)
	return ok && b
}
