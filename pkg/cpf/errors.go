package cpf

import (
	"errors"
	"fmt"
)

// Validation errors form a two-level taxonomy so callers can match with
// errors.Is at either granularity:
//
//	ErrInvalidID
//	├── ErrInvalidFormat
//	│   ├── ErrInvalidCharacters
//	│   └── ErrInvalidLength
//	└── ErrInvalidValue
//	    ├── ErrInvalidCheckDigit
//	    └── ErrInvalidDenylisted
var (
	// ErrInvalidID is the root of the taxonomy; every validation
	// failure matches it.
	ErrInvalidID = errors.New("invalid CPF")

	// ErrInvalidFormat matches inputs that cannot be parsed into a
	// 9- or 11-digit candidate at all.
	ErrInvalidFormat = fmt.Errorf("%w: malformed input", ErrInvalidID)

	// ErrInvalidCharacters matches inputs that still contain non-digit
	// characters after spaces, dots and dashes are stripped.
	ErrInvalidCharacters = fmt.Errorf("%w: non-digit characters", ErrInvalidFormat)

	// ErrInvalidLength matches inputs whose stripped digit count is not
	// 11 (or 9, when missing check digits are allowed).
	ErrInvalidLength = fmt.Errorf("%w: wrong digit count", ErrInvalidFormat)

	// ErrInvalidValue matches well-formed inputs that name an invalid
	// number.
	ErrInvalidValue = fmt.Errorf("%w: invalid number", ErrInvalidID)

	// ErrInvalidCheckDigit matches numbers whose trailing check digits
	// do not match the checksum of the first nine digits.
	ErrInvalidCheckDigit = fmt.Errorf("%w: incorrect check digits", ErrInvalidValue)

	// ErrInvalidDenylisted matches repeated-digit numbers such as
	// 111.111.111-11. Their check digits are arithmetically correct but
	// the numbers are administratively disallowed.
	ErrInvalidDenylisted = fmt.Errorf("%w: administratively disallowed", ErrInvalidValue)
)
