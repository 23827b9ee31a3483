package rowset

import (
	"fmt"
	"strconv"
	"strings"
)

// Row is one record of a named dataset. Values arrive from the provider
// loosely typed; accessors perform the numeric coercion the allocation
// pipeline relies on (null and unparseable values become zero).
type Row map[string]any

// Float returns the value of col coerced to float64. Missing columns,
// nulls and non-numeric strings yield 0.
func (r Row) Float(col string) float64 {
	v, ok := r[col]
	if !ok || v == nil {
		return 0
	}
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(x, ",", ""))
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Int returns the value of col coerced to int, truncating fractional
// values. Missing columns, nulls and non-numeric strings yield 0.
func (r Row) Int(col string) int {
	return int(r.Float(col))
}

// String returns the value of col as a string. Missing columns and nulls
// yield the empty string.
func (r Row) String(col string) string {
	v, ok := r[col]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Has reports whether the row carries a non-nil value for col.
func (r Row) Has(col string) bool {
	v, ok := r[col]
	return ok && v != nil
}

// Clone creates a shallow copy of the row.
func (r Row) Clone() Row {
	clone := make(Row, len(r))
	for k, v := range r {
		clone[k] = v
	}
	return clone
}
