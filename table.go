package journal

import "strings"

// Table is the raw remote sheet content: a header row naming the columns and
// the data rows below it, every cell as text. It is the unit of exchange with
// the Store: one Read returns a Table, one ReplaceAll overwrites the whole
// sheet with a Table.
type Table struct {
	Header []string
	Rows   [][]string
}

// columnIndex maps column names to their position in the header,
// case-insensitively. An absent header falls back to the canonical Columns
// order.
func (t Table) columnIndex() map[string]int {
	header := t.Header
	if len(header) == 0 {
		header = Columns
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return idx
}

// isBlank reports whether every cell of the row is empty or whitespace.
// Fully blank rows are stripped on load, silently.
func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
