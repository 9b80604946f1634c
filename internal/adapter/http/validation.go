package http

import (
	"reflect"
	"strings"

	"toolrental-backend/pkg/dates"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Code    string       `json:"code"`
	Details []FieldError `json:"details,omitempty"`
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// report fields by their json name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	// Chilean RUT with check digit, dots optional: 12.345.678-5
	_ = v.RegisterValidation("rut", func(fl validator.FieldLevel) bool {
		return validRUT(fl.Field().String())
	})
	// calendar day as YYYY-MM-DD
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := dates.Parse(fl.Field().String())
		return err == nil
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// validRUT checks the modulo-11 verifier digit.
func validRUT(s string) bool {
	s = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), ".", ""))
	body, dv, ok := strings.Cut(s, "-")
	if !ok || len(body) < 7 || len(body) > 8 || len(dv) != 1 {
		return false
	}
	sum, mul := 0, 2
	for i := len(body) - 1; i >= 0; i-- {
		ch := body[i]
		if ch < '0' || ch > '9' {
			return false
		}
		sum += int(ch-'0') * mul
		if mul++; mul > 7 {
			mul = 2
		}
	}
	var want byte
	switch r := 11 - sum%11; r {
	case 11:
		want = '0'
	case 10:
		want = 'K'
	default:
		want = byte('0' + r)
	}
	return dv[0] == want
}

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "rut":
			out = append(out, FieldError{Field: field, Message: "must be a valid RUT"})
		case "isodate":
			out = append(out, FieldError{Field: field, Message: "must be a date in YYYY-MM-DD format"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " characters"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
