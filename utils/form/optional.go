// Package form parses optional form fields. The rules are shared by car
// payloads and search filters: empty or non-numeric input means "not
// provided" and maps to nil; a valid number maps to a pointer, so zero is
// a real value.
package form

import (
	"strconv"
	"strings"
)

// OptionalInt returns nil for empty or non-numeric input. Car payloads use
// this: invalid numeric input is normalized to NULL, never rejected.
func OptionalInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// OptionalFloat returns nil for empty or non-numeric input.
func OptionalFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
