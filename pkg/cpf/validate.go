package cpf

import (
	"fmt"
	"strings"
	"unicode"
)

// StripSymbols removes spaces, dots and dashes from s. Other characters
// are kept as-is so that format validation can reject them. The function
// is idempotent.
func StripSymbols(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '.' || r == '-' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isDigits returns true if s is non-empty and all ASCII decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// RequireFormat checks that digits is a well-formed CPF digit string:
// decimal digits only, exactly 11 of them. With allowMissingCheckDigits,
// 9 digits (a number without its check digits) are also accepted.
//
// The input is expected to be already stripped; use RequireValid for raw
// user input.
func RequireFormat(digits string, allowMissingCheckDigits bool) error {
	if !isDigits(digits) {
		return ErrInvalidCharacters
	}
	if len(digits) != 11 {
		if !allowMissingCheckDigits {
			return fmt.Errorf("%w: want 11 digits, got %d", ErrInvalidLength, len(digits))
		}
		if len(digits) != 9 {
			return fmt.Errorf("%w: want 9 or 11 digits, got %d", ErrInvalidLength, len(digits))
		}
	}
	return nil
}

// ComputeCheckDigits computes the two CPF check digits for the first
// nine digits of a number. Longer input is truncated to nine digits;
// the input must be all digits.
//
// The first check digit is the weighted sum of the nine digits with
// weights 1..9, reduced mod 11 then mod 10. The second repeats the
// process over the nine digits plus the first check digit, with weights
// 0..9.
func ComputeCheckDigits(digits string) string {
	if len(digits) > 9 {
		digits = digits[:9]
	}

	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (i + 1)
	}
	dv1 := sum % 11 % 10

	sum = 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * i
	}
	sum += dv1 * 9
	dv2 := sum % 11 % 10

	return string([]byte{'0' + byte(dv1), '0' + byte(dv2)})
}

// HasCorrectCheckDigits reports whether the last two digits of an
// 11-digit CPF string match the checksum of its first nine digits.
func HasCorrectCheckDigits(digits string) bool {
	if len(digits) != 11 {
		return false
	}
	return ComputeCheckDigits(digits[:9]) == digits[9:]
}

// IsDenylisted reports whether digits is one of the repeated-digit
// numbers (00000000000 through 99999999999). These pass the checksum by
// construction but are administratively invalid.
//
// See item V, sub-item b1 of
// http://www3.tesouro.gov.br/spb/downloads/arquivos/protocolo_arrecadacao_DARF.pdf
func IsDenylisted(digits string) bool {
	if len(digits) < 9 {
		return false
	}
	for i := 1; i < 9; i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

// RequireValid validates a raw CPF string, returning the most specific
// error from the package taxonomy, or nil if the number is valid.
// Checks run in order: characters, length, check digits, denylist; the
// first failure wins.
//
// With allowMissingCheckDigits, a 9-digit number is accepted on format
// grounds alone: without check digits there is nothing to verify, so a
// 9-digit input can only fail by format, never by value. An 11-digit
// input is always fully verified.
func RequireValid(raw string, allowMissingCheckDigits bool) error {
	digits := StripSymbols(raw)
	if err := RequireFormat(digits, allowMissingCheckDigits); err != nil {
		return err
	}
	if len(digits) == 11 {
		if !HasCorrectCheckDigits(digits) {
			return ErrInvalidCheckDigit
		}
		if IsDenylisted(digits) {
			return ErrInvalidDenylisted
		}
	}
	return nil
}

// IsValid reports whether a raw CPF string is valid. All failure modes
// collapse to false; use RequireValid to learn the reason.
func IsValid(raw string, allowMissingCheckDigits bool) bool {
	return RequireValid(raw, allowMissingCheckDigits) == nil
}
