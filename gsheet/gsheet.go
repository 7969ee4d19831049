// Package gsheet implements the journal.Store capability on top of the
// Google Sheets v4 values REST API.
//
// A spreadsheet only offers whole-range reads and whole-range overwrites,
// which is exactly the Store contract: Read fetches every row of the sheet,
// ReplaceAll clears the sheet and writes the full table back. There is no
// response caching of any kind: the sheet is the sole source of truth and a
// stale read would be written straight back on the next replace.
package gsheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/cloudfx/journal"
)

// DefaultBaseURL is the production Sheets API endpoint.
const DefaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// Client accesses one worksheet of one spreadsheet.
type Client struct {
	SpreadsheetID string
	Sheet         string // worksheet name, e.g. "Sheet1"

	// Token is an OAuth2 bearer token, required for writes. APIKey grants
	// read access to public sheets and is used when Token is empty.
	Token  string
	APIKey string

	// BaseURL overrides DefaultBaseURL, for tests.
	BaseURL string
	// HTTP overrides http.DefaultClient.
	HTTP *http.Client
}

var spreadsheetURL = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// SpreadsheetID extracts the spreadsheet id from a full Google Sheets URL,
// or returns the input unchanged when it already is a bare id.
func SpreadsheetID(s string) string {
	if m := spreadsheetURL.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}

// Read fetches the whole sheet. The first row is the header, the rest are
// data rows. Any transport or API failure wraps journal.ErrRemoteUnavailable.
func (c *Client) Read(ctx context.Context) (journal.Table, error) {
	addr := fmt.Sprintf("%s/%s/values/%s?majorDimension=ROWS", c.base(), url.PathEscape(c.SpreadsheetID), url.PathEscape(c.Sheet))

	var jobj any
	if err := c.call(ctx, http.MethodGet, addr, nil, &jobj); err != nil {
		return journal.Table{}, err
	}

	// The payload is {"range":..., "majorDimension":"ROWS", "values":[[...]]}.
	// values is omitted entirely for an empty sheet.
	jval, err := jsonpath.Get("$.values", jobj)
	if err != nil {
		return journal.Table{}, nil
	}
	rows, ok := jval.([]any)
	if !ok {
		return journal.Table{}, fmt.Errorf("%w: unexpected values payload", journal.ErrRemoteUnavailable)
	}

	var t journal.Table
	for i, jrow := range rows {
		cells, ok := jrow.([]any)
		if !ok {
			return journal.Table{}, fmt.Errorf("%w: unexpected row payload", journal.ErrRemoteUnavailable)
		}
		row := make([]string, 0, len(cells))
		for _, cell := range cells {
			row = append(row, cellString(cell))
		}
		if i == 0 {
			t.Header = row
		} else {
			t.Rows = append(t.Rows, row)
		}
	}
	return t, nil
}

// ReplaceAll overwrites the whole sheet with the table: a clear call
// followed by one update call writing the header and every row. The sheet's
// own atomicity is assumed; a failure between the two calls surfaces as an
// error and the caller must reload.
func (c *Client) ReplaceAll(ctx context.Context, t journal.Table) error {
	sheet := url.PathEscape(c.Sheet)
	clearAddr := fmt.Sprintf("%s/%s/values/%s:clear", c.base(), url.PathEscape(c.SpreadsheetID), sheet)
	if err := c.call(ctx, http.MethodPost, clearAddr, strings.NewReader("{}"), nil); err != nil {
		return err
	}

	values := make([][]string, 0, len(t.Rows)+1)
	values = append(values, t.Header)
	values = append(values, t.Rows...)
	body, err := json.Marshal(map[string]any{
		"range":          c.Sheet,
		"majorDimension": "ROWS",
		"values":         values,
	})
	if err != nil {
		return fmt.Errorf("cannot encode sheet values: %w", err)
	}

	updateAddr := fmt.Sprintf("%s/%s/values/%s?valueInputOption=RAW", c.base(), url.PathEscape(c.SpreadsheetID), sheet)
	return c.call(ctx, http.MethodPut, updateAddr, bytes.NewReader(body), nil)
}

func (c *Client) base() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}

func (c *Client) client() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// call performs one API request and unmarshals the JSON response into data
// when data is non-nil. Every failure wraps journal.ErrRemoteUnavailable so
// callers only have one error kind to handle.
func (c *Client) call(ctx context.Context, method, addr string, body io.Reader, data any) error {
	if c.Token == "" && c.APIKey != "" {
		sep := "?"
		if strings.Contains(addr, "?") {
			sep = "&"
		}
		addr += sep + "key=" + url.QueryEscape(c.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, method, addr, body)
	if err != nil {
		return fmt.Errorf("%w: %v", journal.ErrRemoteUnavailable, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.client().Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", journal.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s %s: %s", journal.ErrRemoteUnavailable, method, req.URL.Path, resp.Status)
	}
	if data == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return fmt.Errorf("%w: %v", journal.ErrRemoteUnavailable, err)
	}
	if err := json.Unmarshal(buf.Bytes(), data); err != nil {
		return fmt.Errorf("%w: %v", journal.ErrRemoteUnavailable, err)
	}
	return nil
}

// cellString renders an API cell value as text. With valueRenderOption
// defaults the API returns formatted strings, but numbers can come back as
// JSON numbers depending on the sheet formatting.
func cellString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		// %v keeps integral values free of a trailing ".0".
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprint(v)
	}
}
