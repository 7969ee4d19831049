package journal

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter helps construct a JSON object with a specific field order.
// Its zero value is ready to use.
//
// The standard json.Marshal on a map loses the column order of the sheet,
// and on a struct it escapes to ASCII-safe HTML entities; this writer keeps
// the canonical field order and preserves UTF-8 text untouched.
type jsonObjectWriter struct {
	bytes.Buffer
	fields int
	err    error
}

// Field appends a name/value pair, encoding the value as JSON.
func (w *jsonObjectWriter) Field(name string, v any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	w.separate()
	w.encode(name)
	w.WriteByte(':')
	w.encode(v)
	return w
}

// RawField appends a name and a value that is already valid JSON text.
func (w *jsonObjectWriter) RawField(name, raw string) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	w.separate()
	w.encode(name)
	w.WriteByte(':')
	w.WriteString(raw)
	return w
}

func (w *jsonObjectWriter) separate() {
	if w.fields == 0 {
		w.WriteByte('{')
	} else {
		w.WriteByte(',')
	}
	w.fields++
}

func (w *jsonObjectWriter) encode(v any) {
	enc := json.NewEncoder(&w.Buffer)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		w.err = fmt.Errorf("failed to encode json field: %w", err)
		return
	}
	// Encode terminates with a newline, which does not belong inside an object.
	if b := w.Bytes(); len(b) > 0 && b[len(b)-1] == '\n' {
		w.Truncate(len(b) - 1)
	}
}

// Close terminates the object and returns its bytes.
func (w *jsonObjectWriter) Close() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if w.fields == 0 {
		return []byte("{}"), nil
	}
	w.WriteByte('}')
	return w.Bytes(), nil
}
