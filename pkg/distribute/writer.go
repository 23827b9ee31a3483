package distribute

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/avikara/costflow/pkg/rowset"
)

// header returns the output columns present in at least one record,
// preserving the documented order.
func header(records []rowset.Row) []string {
	cols := make([]string, 0, len(OutputColumns))
	for _, col := range OutputColumns {
		for _, r := range records {
			if _, ok := r[col]; ok {
				cols = append(cols, col)
				break
			}
		}
	}
	return cols
}

// WriteCSV writes the record set as CSV. Cells for columns a record does
// not carry stay empty.
func WriteCSV(w io.Writer, records []rowset.Row) error {
	cw := csv.NewWriter(w)
	cols := header(records)
	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	cells := make([]string, len(cols))
	for _, record := range records {
		for i, col := range cols {
			v, ok := record[col]
			if !ok || v == nil {
				cells[i] = ""
				continue
			}
			switch x := v.(type) {
			case float64:
				cells[i] = strconv.FormatFloat(x, 'f', -1, 64)
			case string:
				cells[i] = x
			default:
				cells[i] = fmt.Sprint(x)
			}
		}
		if err := cw.Write(cells); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the record set as a JSON array.
func WriteJSON(w io.Writer, records []rowset.Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("writing JSON output: %w", err)
	}
	return nil
}
