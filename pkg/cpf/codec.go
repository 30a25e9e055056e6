package cpf

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler.
// The CPF is rendered in the canonical formatted form.
func (c CPF) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Accepts any form Parse accepts; empty input yields the zero CPF.
func (c *CPF) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = CPF{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
// CPF values are serialized as formatted strings: "123.456.789-10".
func (c CPF) MarshalJSON() ([]byte, error) {
	if c.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *CPF) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("CPF must be a string: %w", err)
	}
	if s == "" || s == "null" {
		*c = CPF{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Scan implements sql.Scanner for database reading.
// Supports string and []byte input from database.
func (c *CPF) Scan(value interface{}) error {
	if value == nil {
		*c = CPF{}
		return nil
	}

	switch v := value.(type) {
	case string:
		if v == "" {
			*c = CPF{}
			return nil
		}
		parsed, err := Parse(v)
		if err != nil {
			return fmt.Errorf("cannot scan string into CPF: %w", err)
		}
		*c = parsed
		return nil
	case []byte:
		if len(v) == 0 {
			*c = CPF{}
			return nil
		}
		parsed, err := Parse(string(v))
		if err != nil {
			return fmt.Errorf("cannot scan bytes into CPF: %w", err)
		}
		*c = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into CPF", value)
	}
}

// Value implements driver.Valuer for database writing.
// Returns nil for the zero CPF, the 11-digit string otherwise.
func (c CPF) Value() (driver.Value, error) {
	if c.IsZero() {
		return nil, nil
	}
	return c.DigitsOnly(), nil
}
