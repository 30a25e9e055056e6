// Package cpf provides a type-safe value representation of the CPF, the
// Brazilian individual taxpayer registry number.
//
// A CPF is an 11-digit identifier whose last two digits are check digits
// computed from the first nine. The ninth digit identifies the fiscal
// region that issued the number.
//
// Format: AAA.AAA.AAB-ZZ
//   - A: random digits
//   - B: fiscal region digit
//   - Z: check digits
//
// # Core Concepts
//
//  1. CPF: Immutable value type holding the canonical 11-digit string.
//     Two CPF values are equal iff their digit strings are equal,
//     regardless of how the original inputs were punctuated, so CPF
//     values work as map keys with expected deduplication.
//
//  2. Parsing: Parse strips spaces, dots and dashes, then requires 9 or
//     11 digits. A 9-digit input has its check digits computed and
//     appended. Parsing fails only on malformed input; a well-formed
//     number with wrong check digits still parses, with IsValid
//     reporting false.
//
//  3. Validation: IsValid and RequireValid operate on raw strings
//     without constructing a value. RequireValid reports the most
//     specific failure, selectable with errors.Is against the package
//     sentinel errors at either coarse (ErrInvalidFormat,
//     ErrInvalidValue) or fine granularity.
//
// # Usage Examples
//
//	id, err := cpf.Parse("123.456.789-10")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	id.Region()      // 9
//	id.DigitsOnly()  // "12345678910"
//	id.String()      // "123.456.789-10"
//
//	cpf.IsValid("111.111.111-11", false) // false: denylisted
//
//	err = cpf.RequireValid(userInput, false)
//	switch {
//	case errors.Is(err, cpf.ErrInvalidFormat):
//	    // not even a 9/11-digit candidate
//	case errors.Is(err, cpf.ErrInvalidValue):
//	    // well-formed but not a real number
//	}
//
// # Integration
//
// CPF implements encoding.TextMarshaler/TextUnmarshaler,
// json.Marshaler/Unmarshaler, sql.Scanner and driver.Valuer, and the
// package exposes ozzo-validation rules (Valid,
// ValidAllowMissingCheckDigits) for struct field validation.
package cpf
