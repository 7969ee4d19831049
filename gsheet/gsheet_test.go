package gsheet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cloudfx/journal"
)

func TestSpreadsheetID(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"https://docs.google.com/spreadsheets/d/1cRHmM9wPughGNmLboM844Hr4SiULdQrP53vAG_h5e8Q", "1cRHmM9wPughGNmLboM844Hr4SiULdQrP53vAG_h5e8Q"},
		{"https://docs.google.com/spreadsheets/d/abc-123/edit#gid=0", "abc-123"},
		{"already-an-id", "already-an-id"},
	}
	for _, tc := range testCases {
		if got := SpreadsheetID(tc.in); got != tc.want {
			t.Errorf("SpreadsheetID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClient_Read(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sheet-1/values/Sheet1" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"range":          "Sheet1!A1:K3",
			"majorDimension": "ROWS",
			"values": [][]any{
				{"id", "time", "direction", "timeframe", "target_rr", "actual_rr", "profit", "outcome", "setup", "screenshot_path", "notes"},
				{"1", "2024-03-01 09:30:00", "Buy", "H1", 2, 1.5, 120.5, "win", "breakout", "", "突破"},
			},
		})
	}))
	defer server.Close()

	c := &Client{SpreadsheetID: "sheet-1", Sheet: "Sheet1", BaseURL: server.URL}
	table, err := c.Read(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Header) != 11 {
		t.Fatalf("header has %d cells, want 11", len(table.Header))
	}
	if len(table.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(table.Rows))
	}
	// numeric cells come back as JSON numbers and must turn into plain text.
	if got := table.Rows[0][6]; got != "120.5" {
		t.Errorf("profit cell = %q, want %q", got, "120.5")
	}
	if got := table.Rows[0][4]; got != "2" {
		t.Errorf("target_rr cell = %q, want %q", got, "2")
	}
}

func TestClient_ReadEmptySheet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the API omits "values" entirely for an empty sheet.
		json.NewEncoder(w).Encode(map[string]any{"range": "Sheet1", "majorDimension": "ROWS"})
	}))
	defer server.Close()

	c := &Client{SpreadsheetID: "s", Sheet: "Sheet1", BaseURL: server.URL}
	table, err := c.Read(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Header) != 0 || len(table.Rows) != 0 {
		t.Errorf("empty sheet returned %d header cells, %d rows", len(table.Header), len(table.Rows))
	}
}

func TestClient_ReadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "permission denied", http.StatusForbidden)
	}))
	defer server.Close()

	c := &Client{SpreadsheetID: "s", Sheet: "Sheet1", BaseURL: server.URL}
	if _, err := c.Read(context.Background()); !errors.Is(err, journal.ErrRemoteUnavailable) {
		t.Errorf("err = %v, want ErrRemoteUnavailable", err)
	}
}

func TestClient_ReplaceAll(t *testing.T) {
	var cleared bool
	var written [][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/sheet-1/values/Sheet1:clear":
			cleared = true
			w.Write([]byte("{}"))
		case r.Method == http.MethodPut && r.URL.Path == "/sheet-1/values/Sheet1":
			if !cleared {
				t.Error("update arrived before clear")
			}
			var body struct {
				Values [][]string `json:"values"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("cannot decode update body: %v", err)
			}
			written = body.Values
			w.Write([]byte("{}"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := &Client{SpreadsheetID: "sheet-1", Sheet: "Sheet1", BaseURL: server.URL, Token: "tok"}
	err := c.ReplaceAll(context.Background(), journal.Table{
		Header: journal.Columns,
		Rows:   [][]string{{"1", "2024-03-01 09:30:00", "Buy", "H1", "", "", "10", "win", "", "", ""}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(written) != 2 {
		t.Fatalf("wrote %d value rows, want header + 1 data row", len(written))
	}
	if written[0][0] != "id" || written[1][0] != "1" {
		t.Errorf("unexpected written values: %v", written)
	}
}

func TestClient_ReplaceAllFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend error", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := &Client{SpreadsheetID: "s", Sheet: "Sheet1", BaseURL: server.URL}
	err := c.ReplaceAll(context.Background(), journal.Table{Header: journal.Columns})
	if !errors.Is(err, journal.ErrRemoteUnavailable) {
		t.Errorf("err = %v, want ErrRemoteUnavailable", err)
	}
}
