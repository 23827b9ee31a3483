package rowset

// Table is a named, ordered collection of uniform rows.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// Group is one partition of a table keyed by a column value. Groups
// preserve the order in which keys first appear in the table.
type Group struct {
	Key  string
	Rows []Row
}

// NewTable creates an empty table with the given name and column order.
func NewTable(name string, columns ...string) *Table {
	return &Table{Name: name, Columns: columns, Rows: make([]Row, 0)}
}

// Append adds a row to the table.
func (t *Table) Append(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Empty reports whether the table is nil or has no rows.
func (t *Table) Empty() bool {
	return t.Len() == 0
}

// Sum returns the sum of a numeric column across all rows.
func (t *Table) Sum(col string) float64 {
	if t == nil {
		return 0
	}
	var total float64
	for _, row := range t.Rows {
		total += row.Float(col)
	}
	return total
}

// GroupBy partitions the rows by the string value of col, preserving
// first-appearance order of the keys.
func (t *Table) GroupBy(col string) []Group {
	if t == nil {
		return nil
	}
	index := make(map[string]int)
	groups := make([]Group, 0)
	for _, row := range t.Rows {
		key := row.String(col)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups
}

// Filter returns a new table containing the rows for which pred is true.
// The name and column order carry over.
func (t *Table) Filter(pred func(Row) bool) *Table {
	if t == nil {
		return nil
	}
	out := &Table{Name: t.Name, Columns: t.Columns}
	for _, row := range t.Rows {
		if pred(row) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// HasColumn reports whether the table declares the column.
func (t *Table) HasColumn(col string) bool {
	if t == nil {
		return false
	}
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}
