package cpf

import (
	"fmt"
)

// CPF is an immutable CPF number holding the canonical 11-digit string.
//
// The zero value is not a usable number; construct values with Parse or
// MustParse. CPF is comparable, so values can be used directly as map
// keys or set members: two values compare equal iff their digit strings
// are equal, independent of how the original inputs were punctuated.
type CPF struct {
	digits string
	valid  bool
}

// Parse creates a CPF from a raw string.
//
// Spaces, dots and dashes are stripped before processing. Any other
// non-digit character fails with ErrInvalidCharacters. The stripped
// input must have 9 or 11 digits, else ErrInvalidLength. Given 9
// digits, the two check digits are computed and appended; given 11,
// the digits are stored as supplied.
//
// Incorrect check digits do not fail Parse: validity is recorded and
// reported by IsValid, not required for construction.
func Parse(raw string) (CPF, error) {
	digits := StripSymbols(raw)
	if err := RequireFormat(digits, true); err != nil {
		return CPF{}, err
	}

	if len(digits) == 9 {
		digits += ComputeCheckDigits(digits)
		return CPF{digits: digits, valid: !IsDenylisted(digits)}, nil
	}

	valid := HasCorrectCheckDigits(digits) && !IsDenylisted(digits)
	return CPF{digits: digits, valid: valid}, nil
}

// MustParse parses a CPF from a raw string, panicking on error.
// This is useful for test fixtures and constants where the input is
// known well-formed.
func MustParse(raw string) CPF {
	c, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("invalid CPF: %s: %v", raw, err))
	}
	return c
}

// IsZero returns true if this is the zero CPF.
func (c CPF) IsZero() bool {
	return c.digits == ""
}

// IsValid reports whether the number has correct check digits and is
// not administratively disallowed. Computed once at construction.
func (c CPF) IsValid() bool {
	return c.valid
}

// DigitsOnly returns the canonical 11-digit string without formatting.
func (c CPF) DigitsOnly() string {
	return c.digits
}

// RandomDigits returns the first 8 digits of the number.
func (c CPF) RandomDigits() string {
	if c.IsZero() {
		return ""
	}
	return c.digits[0:8]
}

// RegionDigit returns the 9th digit, which identifies the issuing
// fiscal region.
func (c CPF) RegionDigit() string {
	if c.IsZero() {
		return ""
	}
	return c.digits[8:9]
}

// CheckDigits returns the last two digits of the number.
func (c CPF) CheckDigits() string {
	if c.IsZero() {
		return ""
	}
	return c.digits[9:11]
}

// Region returns the issuing fiscal region number, 1 through 10.
// This matches RegionDigit except that digit zero identifies the tenth
// region. Returns 0 for the zero CPF.
func (c CPF) Region() int {
	if c.IsZero() {
		return 0
	}
	region := int(c.digits[8] - '0')
	if region == 0 {
		return 10
	}
	return region
}

// Equal returns true if two CPF values hold the same digits.
func (c CPF) Equal(other CPF) bool {
	return c.digits == other.digits
}

// EqualString reports whether the CPF is the same number as the one in
// a raw string. Returns false, never an error, when the string is
// malformed.
func (c CPF) EqualString(raw string) bool {
	other, err := Parse(raw)
	if err != nil {
		return false
	}
	return c.Equal(other)
}

// CompareStrings reports whether two raw strings name the same CPF.
// Returns false, never an error, when either string is malformed.
func CompareStrings(a, b string) bool {
	cpfA, err := Parse(a)
	if err != nil {
		return false
	}
	cpfB, err := Parse(b)
	if err != nil {
		return false
	}
	return cpfA.Equal(cpfB)
}

// String returns the canonical formatted form, AAA.AAA.AAB-ZZ.
// The zero CPF renders as "". Use DigitsOnly for the bare digits.
func (c CPF) String() string {
	if c.IsZero() {
		return ""
	}
	return c.digits[0:3] + "." + c.digits[3:6] + "." + c.digits[6:9] + "-" + c.digits[9:11]
}

// GoString implements fmt.GoStringer for diagnostics and logs.
// Format: cpf.CPF("123.456.789-10")
func (c CPF) GoString() string {
	return fmt.Sprintf("cpf.CPF(%q)", c.String())
}
