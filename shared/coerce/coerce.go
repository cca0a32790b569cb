// Package coerce implements best-effort conversion of loosely typed request
// input into strict scalar values. Conversions never fail: numbers default to
// 0 and booleans to false instead of rejecting malformed input, mirroring how
// the registration forms have always behaved.
package coerce

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CleanString returns the trimmed string if input is a string, otherwise it
// returns the input unchanged.
func CleanString(input any) any {
	if s, ok := input.(string); ok {
		return strings.TrimSpace(s)
	}

	return input
}

// ToBool returns true iff value is the string "true" or the boolean true.
func ToBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

// ToNumber parses value as a number, returning 0 when it cannot be parsed.
func ToNumber(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		num, err := v.Float64()
		if err != nil {
			return 0
		}

		return num
	case string:
		num, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}

		return num
	default:
		return 0
	}
}

// String is a JSON scalar that trims surrounding whitespace and accepts
// non-string values by stringifying them.
type String string

func (s *String) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("coerce: invalid string value: %w", err)
	}

	switch v := value.(type) {
	case string:
		*s = String(strings.TrimSpace(v))
	case nil:
		*s = ""
	default:
		*s = String(fmt.Sprint(v))
	}

	return nil
}

// Bool is a JSON scalar that accepts both booleans and the strings
// "true"/"false"; anything but true/"true" yields false.
type Bool bool

func (b *Bool) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("coerce: invalid bool value: %w", err)
	}

	*b = Bool(ToBool(value))

	return nil
}

// Number is a JSON scalar that accepts numbers and numeric strings,
// defaulting to 0 when the value cannot be parsed.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("coerce: invalid number value: %w", err)
	}

	*n = Number(ToNumber(value))

	return nil
}
