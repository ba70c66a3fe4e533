package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Fields is the raw field bag for one operation. JSON bodies bind into it
// directly; multipart/form submissions arrive with every value as a string
// and go through Coerce first so both paths validate identically.
type Fields map[string]any

// Result is the outcome of a validator. IsValid is true iff Errors is empty.
type Result struct {
	Errors  map[string]string
	IsValid bool
}

func result(errors map[string]string) Result {
	return Result{Errors: errors, IsValid: len(errors) == 0}
}

// Coerce returns a copy of fields with the named numeric and boolean fields
// opportunistically parsed from their string representation. A failed parse
// leaves the original value in place, which then fails type validation.
func Coerce(fields Fields, numeric []string, boolean []string) Fields {
	out := make(Fields, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	for _, key := range numeric {
		if s, ok := out[key].(string); ok {
			if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
				out[key] = f
			}
		}
	}
	for _, key := range boolean {
		if s, ok := out[key].(string); ok {
			switch strings.TrimSpace(s) {
			case "true":
				out[key] = true
			case "false":
				out[key] = false
			}
		}
	}
	return out
}

// isEmpty reports whether a field is absent, nil, or a blank string.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asNumber accepts the numeric types a JSON decoder or Coerce may produce.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// lengthBetween checks the trimmed length of s, in characters rather than
// bytes, against an inclusive range.
func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n >= min && n <= max
}
