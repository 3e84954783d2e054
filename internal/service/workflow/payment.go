package workflow

import (
	"strings"

	"github.com/Domenick1991/skyward/internal/domain"
)

// Display-formatting helpers for the payment step. They shape user input
// and never touch workflow state; format problems surface as field-level
// validation errors.

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCardNumber groups the digits in blocks of four separated by
// spaces, truncated to 16 digits.
func FormatCardNumber(s string) string {
	digits := digitsOnly(s)
	if len(digits) > 16 {
		digits = digits[:16]
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry renders MM/YY, truncated to 4 digits.
func FormatExpiry(s string) string {
	digits := digitsOnly(s)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) > 2 {
		return digits[:2] + "/" + digits[2:]
	}
	return digits
}

// FormatCVV keeps at most 3 digits.
func FormatCVV(s string) string {
	digits := digitsOnly(s)
	if len(digits) > 3 {
		digits = digits[:3]
	}
	return digits
}

func validateCard(card CardForm) error {
	verr := domain.NewValidationError()

	if len(digitsOnly(card.CardNumber)) != 16 {
		verr.Add("cardNumber", "card number must have 16 digits")
	}

	expiry := digitsOnly(card.ExpiryDate)
	if len(expiry) != 4 {
		verr.Add("expiryDate", "expiry date must be MM/YY")
	} else if expiry[:2] < "01" || expiry[:2] > "12" {
		verr.Add("expiryDate", "expiry month must be between 01 and 12")
	}

	if len(digitsOnly(card.CVV)) != 3 {
		verr.Add("cvv", "cvv must have 3 digits")
	}
	if strings.TrimSpace(card.NameOnCard) == "" {
		verr.Add("nameOnCard", "name on card is required")
	}

	return verr.OrNil()
}
