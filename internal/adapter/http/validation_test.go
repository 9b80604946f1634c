package http

import (
	"errors"
	"strings"
	"testing"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestRUTValidation(t *testing.T) {
	type P struct {
		NationalID string `json:"national_id" validate:"rut"`
	}
	cv := NewValidator()

	for _, s := range []string{
		"12.345.678-5",
		"12345678-5",
		"11.111.111-1",
		"7.654.321-6",
		"10.000.013-k", // lowercase verifier
		"10000013-K",
	} {
		if err := cv.Validate(P{NationalID: s}); err != nil {
			t.Fatalf("expected %q to be a valid RUT, got err: %v", s, err)
		}
	}

	for _, s := range []string{
		"",
		"12.345.678-4", // wrong verifier
		"12345678",     // no verifier
		"123456-0",     // too short
		"1A345678-5",
		"12345678-55",
	} {
		err := cv.Validate(P{NationalID: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "national_id", "valid RUT") {
			t.Fatalf("expected rut message for %q, got: %+v", s, fe)
		}
	}
}

func TestISODateValidation(t *testing.T) {
	type P struct {
		DueDate string `json:"due_date" validate:"isodate"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{DueDate: "2025-01-31"}); err != nil {
		t.Fatalf("expected valid date, got %v", err)
	}
	for _, s := range []string{"", "2025-02-30", "31-01-2025", "2025-01-31T00:00:00Z"} {
		err := cv.Validate(P{DueDate: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "due_date", "YYYY-MM-DD") {
			t.Fatalf("expected date message for %q, got: %+v", s, fe)
		}
	}
}

func TestToFieldErrors_MapsMessagesByJSONName(t *testing.T) {
	type P struct {
		Name  string `json:"name" validate:"required"`
		Value int64  `json:"replacement_value" validate:"gte=1"`
		Email string `json:"email" validate:"omitempty,email"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Value: 0, Email: "nope"})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	fe := ToFieldErrors(err)
	if !containsFieldMsg(fe, "name", "is required") {
		t.Fatalf("missing required message: %+v", fe)
	}
	if !containsFieldMsg(fe, "replacement_value", "greater than or equal to 1") {
		t.Fatalf("missing gte message: %+v", fe)
	}
	if !containsFieldMsg(fe, "email", "valid email") {
		t.Fatalf("missing email message: %+v", fe)
	}
}

func TestToFieldErrors_NonValidationError(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 || fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected: %+v", fe)
	}
}
