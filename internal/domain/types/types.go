// Package types contains common types used across the application
package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// NotAvailableText is how a missing value is rendered and serialized.
const NotAvailableText = "N/A"

// ErrInvalidValue is returned when decoding a Value from unsupported JSON.
var ErrInvalidValue = errors.New("invalid value")

// Value is either a number or "not available". The zero value is NotAvailable.
type Value struct {
	num   float64
	valid bool
}

// Numeric wraps v as an available value.
func Numeric(v float64) Value { return Value{num: v, valid: true} }

// NotAvailable returns the empty value.
func NotAvailable() Value { return Value{} }

// Get returns the number and whether it is available.
func (v Value) Get() (float64, bool) { return v.num, v.valid }

// Available reports whether v carries a number.
func (v Value) Available() bool { return v.valid }

// Float returns the number, or 0 when not available.
func (v Value) Float() float64 {
	if !v.valid {
		return 0
	}
	return v.num
}

// String formats with one decimal place, or "N/A".
func (v Value) String() string {
	if !v.valid {
		return NotAvailableText
	}
	return strconv.FormatFloat(v.num, 'f', 1, 64)
}

// MarshalJSON encodes a number or the "N/A" string.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.valid {
		return json.Marshal(NotAvailableText)
	}
	return json.Marshal(v.num)
}

// UnmarshalJSON accepts a number, "N/A" or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = NotAvailable()
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != NotAvailableText {
			return ErrInvalidValue
		}
		*v = NotAvailable()
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return ErrInvalidValue
	}
	*v = Numeric(f)
	return nil
}
