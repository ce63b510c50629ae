package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseInt coerces a decoded JSON value into an int. Numbers are truncated,
// numeric strings are parsed; anything else is an error.
func ParseInt(v any) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, fmt.Errorf("invalid number %v", val)
		}
		return int(val), nil
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return int(n), nil
		}
		f, err := val.Float64()
		if err != nil {
			return 0, err
		}
		return int(f), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, fmt.Errorf("invalid integer %q", val)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("invalid integer %v", v)
	}
}

// ParseFloat coerces a decoded JSON value into a float64.
func ParseFloat(v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, fmt.Errorf("invalid number %v", val)
		}
		return val, nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case json.Number:
		return val.Float64()
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("invalid number %q", val)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("invalid number %v", v)
	}
}
