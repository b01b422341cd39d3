package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Float coerces a decoded JSON value to a float64. nil, blank strings and
// anything unparseable or non-finite yield nil.
func Float(v any) *float64 {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case json.Number:
		p, err := x.Float64()
		if err != nil {
			return nil
		}
		f = p
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return nil
		}
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		f = p
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// Count coerces a decoded JSON value to a slot count. Fractions are
// truncated; nil is returned for values that are not numbers.
func Count(v any) *int64 {
	if b, ok := v.(bool); ok {
		var n int64
		if b {
			n = 1
		}
		return &n
	}
	f := Float(v)
	if f == nil {
		return nil
	}
	n := int64(*f)
	return &n
}

// Bool coerces a decoded JSON value to a boolean. Strings accept the forms
// strconv.ParseBool understands; numbers are true when non-zero.
func Bool(v any) *bool {
	var b bool
	switch x := v.(type) {
	case bool:
		b = x
	case string:
		p, err := strconv.ParseBool(strings.TrimSpace(x))
		if err != nil {
			return nil
		}
		b = p
	default:
		f := Float(v)
		if f == nil {
			return nil
		}
		b = *f != 0
	}
	return &b
}

// Text coerces a decoded JSON value to a string pointer. Numbers are
// formatted without exponent; nil stays nil.
func Text(v any) *string {
	var s string
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		s = x
	case json.Number:
		s = x.String()
	case float64:
		s = strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(x)
	default:
		return nil
	}
	return &s
}

// NonNegative dereferences a count, clamping nil and negatives to zero.
func NonNegative(v *int64) int {
	if v == nil || *v < 0 {
		return 0
	}
	return int(*v)
}
