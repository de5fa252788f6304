package http

import (
	"math"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

// ValidOwnerID reports whether s is a well-formed owner id (32-char
// lowercase hex, the same convention request ids use).
func ValidOwnerID(s string) bool { return reHex32.MatchString(s) }

// CustomValidator plugs go-playground/validator into echo for
// request-shape checks. Domain rules (bounds, steps) live in the engine;
// this layer only rejects bodies the engine should never see.
type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// owner/request id = 32-char lowercase hex
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return reHex32.MatchString(fl.Field().String())
	})
	// max 2 decimal places on money amounts
	_ = v.RegisterValidation("dec2", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-9
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ToFieldErrors maps validator.ValidationErrors to readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: e.Field(), Message: "is required"})
		case "hex32":
			out = append(out, FieldError{Field: e.Field(), Message: "must be 32-char lowercase hex"})
		case "dec2":
			out = append(out, FieldError{Field: e.Field(), Message: "must have at most 2 decimal places"})
		default:
			out = append(out, FieldError{Field: e.Field(), Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
