package journal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// this file contains functions to handle the import/export format.
// It is a single human-readable JSON document, lossless with respect to the
// sheet: dumping a snapshot and re-importing the dump yields the same rows.

// DumpJSON exports the snapshot in the import/export format: a JSON array
// with one object per record, keys exactly the sheet column names in
// canonical order. Numeric cells are exported as JSON numbers, empty cells
// as null, and text is kept as UTF-8 without escaping to ASCII, so the dump
// can be pasted as-is into any downstream analysis tool.
func DumpJSON(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, r := range s.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		obj, err := dumpRecord(r)
		if err != nil {
			return nil, fmt.Errorf("cannot export record %q: %w", r.RawID, err)
		}
		buf.WriteString("\n  ")
		buf.Write(obj)
	}
	if s.Len() > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func dumpRecord(r Record) ([]byte, error) {
	w := &jsonObjectWriter{}
	// The id is a JSON number only when the cell is its canonical decimal
	// form: Atoi also accepts "007" or "+5", which are not valid JSON tokens.
	if id, err := strconv.Atoi(r.RawID); err == nil && strconv.Itoa(id) == r.RawID {
		w.RawField("id", r.RawID)
	} else {
		// a stray hand-edited id is preserved verbatim, as text.
		w.Field("id", r.RawID)
	}
	w.Field("time", r.RawTime)
	w.Field("direction", string(r.Direction))
	w.Field("timeframe", string(r.Timeframe))
	rawNumber := func(name, text string) {
		if text == "" {
			w.RawField(name, "null")
		} else {
			w.RawField(name, text)
		}
	}
	rawNumber("target_rr", nullText(r.TargetRR))
	rawNumber("actual_rr", nullText(r.ActualRR))
	rawNumber("profit", r.Profit.text())
	w.Field("outcome", string(r.Outcome))
	w.Field("setup", r.Setup)
	w.Field("screenshot_path", r.Screenshot)
	w.Field("notes", r.Notes)
	return w.Close()
}

// TableFromDump parses a DumpJSON document back into raw sheet rows, ready
// for FromTable or for a replace write. It is the import half of the
// import/export format.
func TableFromDump(data []byte) (Table, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var objects []map[string]any
	if err := dec.Decode(&objects); err != nil {
		return Table{}, fmt.Errorf("cannot parse import format: %w", err)
	}

	t := Table{Header: append([]string(nil), Columns...)}
	for _, obj := range objects {
		row := make([]string, len(Columns))
		for i, name := range Columns {
			row[i] = cellText(obj[name])
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// cellText renders a decoded JSON value back into sheet cell text.
func cellText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
