package validation

import (
	"errors"
	"testing"

	commonerrors "github.com/flannelman48/whirly-rentals-website/internal/common/errors"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Note  string `json:"note" validate:"max=5"`
}

func TestEngine_Struct_Valid(t *testing.T) {
	e := NewEngine()
	fields, err := e.Struct(sample{Name: "a", Email: "a@b.co"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fields) != 0 {
		t.Errorf("expected no field errors, got %v", fields)
	}
}

func TestEngine_Struct_UsesJSONNamesAndMessages(t *testing.T) {
	e := NewEngine()
	fields, err := e.Struct(sample{Email: "nope", Note: "too long"}, Messages{"name": "Name please"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]string{
		"name":  "Name please",
		"email": "Invalid email",
		"note":  "Must be 5 characters or less",
	}
	for field, want := range tests {
		t.Run(field, func(t *testing.T) {
			got, ok := fields[field]
			if !ok {
				t.Fatalf("expected error for %s", field)
			}
			if got.Message != want {
				t.Errorf("expected %q, got %q", want, got.Message)
			}
			if got.Field != field {
				t.Errorf("expected field %q, got %q", field, got.Field)
			}
		})
	}
}

func TestValidationError_UnwrapsToValidationFailed(t *testing.T) {
	err := error(NewValidationError([]FieldError{{Field: "x", Message: "bad"}}))

	if !errors.Is(err, commonerrors.ErrValidationFailed) {
		t.Error("expected error to match ErrValidationFailed")
	}
	ve, ok := AsValidationError(err)
	if !ok || len(ve.Fields) != 1 {
		t.Fatalf("expected validation error with one field, got %v", ve)
	}
	if ve.Error() != "validation failed: x: bad" {
		t.Errorf("unexpected message %q", ve.Error())
	}
}

func TestString(t *testing.T) {
	raw := map[string]any{
		"s":    "hello",
		"n":    float64(3),
		"b":    true,
		"null": nil,
	}

	tests := []struct {
		key     string
		want    string
		wantErr string
	}{
		{key: "s", want: "hello"},
		{key: "missing"},
		{key: "null"},
		{key: "n", wantErr: "Expected string, received number"},
		{key: "b", wantErr: "Expected string, received boolean"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, fe := String(raw, tt.key)
			if tt.wantErr != "" {
				if fe == nil {
					t.Fatalf("expected error %q", tt.wantErr)
				}
				if fe.Message != tt.wantErr {
					t.Errorf("expected %q, got %q", tt.wantErr, fe.Message)
				}
				return
			}
			if fe != nil {
				t.Fatalf("unexpected error %v", fe)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBool(t *testing.T) {
	raw := map[string]any{"yes": true, "no": false, "str": "true"}

	if !Bool(raw, "yes") {
		t.Error("expected true for boolean true")
	}
	if Bool(raw, "no") {
		t.Error("expected false for boolean false")
	}
	if Bool(raw, "str") {
		t.Error("expected false for string \"true\"")
	}
	if Bool(raw, "missing") {
		t.Error("expected false for missing key")
	}
}
