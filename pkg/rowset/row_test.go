package rowset

import (
	"testing"
)

func TestRowFloatCoercion(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected float64
	}{
		{"float64", 42.5, 42.5},
		{"float32", float32(2), 2},
		{"int", 7, 7},
		{"int64", int64(100), 100},
		{"string decimal", "123.45", 123.45},
		{"string with separators", "1,234.5", 1234.5},
		{"string with spaces", " 10 ", 10},
		{"empty string", "", 0},
		{"non-numeric string", "n/a", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := Row{"col": tt.value}
			if got := row.Float("col"); got != tt.expected {
				t.Errorf("Float() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRowFloatMissingColumn(t *testing.T) {
	row := Row{"other": 5.0}
	if got := row.Float("col"); got != 0 {
		t.Errorf("Float() on missing column = %v, want 0", got)
	}
}

func TestRowInt(t *testing.T) {
	row := Row{"qty": "12", "tat": 7.9}
	if got := row.Int("qty"); got != 12 {
		t.Errorf("Int() = %d, want 12", got)
	}
	if got := row.Int("tat"); got != 7 {
		t.Errorf("Int() truncation = %d, want 7", got)
	}
	if got := row.Int("missing"); got != 0 {
		t.Errorf("Int() on missing column = %d, want 0", got)
	}
}

func TestRowString(t *testing.T) {
	row := Row{"name": "ICU", "count": 3, "gone": nil}

	if got := row.String("name"); got != "ICU" {
		t.Errorf("String() = %q, want ICU", got)
	}
	if got := row.String("count"); got != "3" {
		t.Errorf("String() on int = %q, want 3", got)
	}
	if got := row.String("gone"); got != "" {
		t.Errorf("String() on nil = %q, want empty", got)
	}
	if got := row.String("missing"); got != "" {
		t.Errorf("String() on missing = %q, want empty", got)
	}
}

func TestRowHas(t *testing.T) {
	row := Row{"a": 1, "b": nil}
	if !row.Has("a") {
		t.Error("Has(a) = false, want true")
	}
	if row.Has("b") {
		t.Error("Has(b) = true for nil value, want false")
	}
	if row.Has("c") {
		t.Error("Has(c) = true for missing column, want false")
	}
}

func TestRowClone(t *testing.T) {
	row := Row{"a": 1}
	clone := row.Clone()
	clone["a"] = 2
	if row.Float("a") != 1 {
		t.Error("mutating a clone changed the original row")
	}
}
