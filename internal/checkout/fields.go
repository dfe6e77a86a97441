package checkout

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zaiqaeats/storefront/pkg/enums"
	pkgerrors "github.com/zaiqaeats/storefront/pkg/errors"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z ]{3,50}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[\d\s+\-()]{9,15}$`)
)

// Fields is the checkout form as submitted by the customer.
type Fields struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

// FieldError reports the first field that failed validation, with a message
// fit to show the customer.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements error.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the form fields in display order and stops at the first
// failure, mirroring how the storefront walks the form top to bottom.
func (f Fields) Validate(addressMinLen int) *FieldError {
	name := strings.TrimSpace(f.Name)
	if !nameRe.MatchString(name) {
		return &FieldError{Field: "name", Message: "Name must be 3-50 letters and spaces only"}
	}

	email := strings.TrimSpace(f.Email)
	if !emailRe.MatchString(email) {
		return &FieldError{Field: "email", Message: "Enter a valid email address"}
	}

	phone := strings.TrimSpace(f.Phone)
	if !phoneRe.MatchString(phone) {
		return &FieldError{Field: "phone", Message: "Enter a valid phone number"}
	}

	if len(strings.TrimSpace(f.Address)) < addressMinLen {
		return &FieldError{Field: "address", Message: fmt.Sprintf("Address must be at least %d characters", addressMinLen)}
	}

	if _, err := enums.ParsePaymentMethod(f.PaymentMethod); err != nil {
		return &FieldError{Field: "payment_method", Message: "Select a payment method"}
	}
	return nil
}

// Normalized returns a copy with whitespace trimmed off every field.
func (f Fields) Normalized() Fields {
	return Fields{
		Name:          strings.TrimSpace(f.Name),
		Email:         strings.TrimSpace(f.Email),
		Phone:         strings.TrimSpace(f.Phone),
		Address:       strings.TrimSpace(f.Address),
		PaymentMethod: strings.TrimSpace(f.PaymentMethod),
	}
}

func validationError(fieldErr *FieldError) error {
	return pkgerrors.New(pkgerrors.CodeValidation, fieldErr.Message).
		WithDetails(fieldErr)
}
