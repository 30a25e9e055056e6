package cpf

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Valid returns a validation rule that checks a CPF field fully:
// format, check digits and denylist. Nil and empty values are skipped,
// following the ozzo-validation convention; pair with
// validation.Required for mandatory fields:
//
//	validation.Field(&req.TaxpayerID, validation.Required, cpf.Valid())
func Valid() validation.Rule {
	return validRule{}
}

// ValidAllowMissingCheckDigits is like Valid but also accepts 9-digit
// numbers without their check digits.
func ValidAllowMissingCheckDigits() validation.Rule {
	return validRule{allowMissingCheckDigits: true}
}

type validRule struct {
	allowMissingCheckDigits bool
}

// Validate implements validation.Rule for string, *string and CPF
// fields.
func (r validRule) Validate(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		raw = v
	case *string:
		if v == nil {
			return nil
		}
		raw = *v
	case CPF:
		if v.IsZero() {
			return nil
		}
		raw = v.DigitsOnly()
	case *CPF:
		if v == nil || v.IsZero() {
			return nil
		}
		raw = v.DigitsOnly()
	default:
		return fmt.Errorf("must be a string or cpf.CPF, got %T", value)
	}
	if raw == "" {
		return nil
	}
	return RequireValid(raw, r.allowMissingCheckDigits)
}
