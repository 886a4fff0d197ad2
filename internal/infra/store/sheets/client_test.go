package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charlesw/alexandria-crm/internal/infra/store"
)

func TestGetAllRowsParsesValues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q, want Bearer tok", got)
		}
		json.NewEncoder(w).Encode(valueRange{Values: [][]string{
			{"Contact ID", "Name"},
			{"1", "Jane Doe"},
			{"2"}, // short row, Name padded to empty
		}})
	}))
	defer server.Close()

	c := NewClient(server.URL, "doc1", "tok")

	rows, err := c.GetAllRows(context.Background(), "Contacts", []string{"Contact ID", "Name"})
	if err != nil {
		t.Fatalf("GetAllRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["Name"] != "Jane Doe" {
		t.Errorf("rows[0][Name] = %q", rows[0]["Name"])
	}
	if rows[1]["Name"] != "" {
		t.Errorf("short row not padded: %q", rows[1]["Name"])
	}
}

func TestGetAllRowsSchemaMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(valueRange{Values: [][]string{
			{"Wrong", "Header"},
			{"1", "Jane Doe"},
		}})
	}))
	defer server.Close()

	c := NewClient(server.URL, "doc1", "tok")

	_, err := c.GetAllRows(context.Background(), "Contacts", []string{"Contact ID", "Name"})
	if !errors.Is(err, store.ErrSchemaMismatch) {
		t.Fatalf("err = %v, want ErrSchemaMismatch", err)
	}
}

func TestGetAllRowsEmptySheetIsSchemaMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(valueRange{})
	}))
	defer server.Close()

	c := NewClient(server.URL, "doc1", "tok")

	_, err := c.GetAllRows(context.Background(), "Contacts", []string{"Contact ID"})
	if !errors.Is(err, store.ErrSchemaMismatch) {
		t.Fatalf("err = %v, want ErrSchemaMismatch", err)
	}
}

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, store.ErrAuth},
		{http.StatusForbidden, store.ErrAuth},
		{http.StatusNotFound, store.ErrTableNotFound},
		{http.StatusInternalServerError, store.ErrTransport},
	}
	for _, tt := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))

		c := NewClient(server.URL, "doc1", "tok")
		_, err := c.GetAllRows(context.Background(), "Contacts", []string{"Contact ID"})
		if !errors.Is(err, tt.want) {
			t.Errorf("status %d: err = %v, want %v", tt.status, err, tt.want)
		}
		server.Close()
	}
}

func TestAppendRowSendsRawValues(t *testing.T) {
	var got valueRange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Query().Get("valueInputOption") != "RAW" {
			t.Errorf("valueInputOption = %q, want RAW", r.URL.Query().Get("valueInputOption"))
		}
		json.NewDecoder(r.Body).Decode(&got)
	}))
	defer server.Close()

	c := NewClient(server.URL, "doc1", "tok")

	err := c.AppendRow(context.Background(), "Contacts", []string{"1", "Jane Doe"})
	if err != nil {
		t.Fatalf("AppendRow: %v", err)
	}
	if len(got.Values) != 1 || got.Values[0][1] != "Jane Doe" {
		t.Errorf("payload values = %v", got.Values)
	}
}

func TestUpdateRangeTargetsRow(t *testing.T) {
	var gotPath string
	var got valueRange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&got)
	}))
	defer server.Close()

	c := NewClient(server.URL, "doc1", "tok")

	err := c.UpdateRange(context.Background(), "Contacts", "A5:I5", []string{"4", "Jane Smith"})
	if err != nil {
		t.Fatalf("UpdateRange: %v", err)
	}
	if gotPath != "/v4/spreadsheets/doc1/values/Contacts!A5:I5" {
		t.Errorf("path = %q", gotPath)
	}
	if got.Range != "Contacts!A5:I5" {
		t.Errorf("range = %q", got.Range)
	}
}

func TestEnsureTableSkipsExisting(t *testing.T) {
	batchUpdates := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			batchUpdates++
			w.WriteHeader(http.StatusOK)
			return
		}
		json.NewEncoder(w).Encode(spreadsheetMeta{Sheets: []sheetMeta{
			{Properties: sheetProperties{Title: "Contacts"}},
		}})
	}))
	defer server.Close()

	c := NewClient(server.URL, "doc1", "tok")

	if err := c.EnsureTable(context.Background(), "Contacts", []string{"Contact ID"}); err != nil {
		t.Fatalf("EnsureTable: %v", err)
	}
	if batchUpdates != 0 {
		t.Errorf("batchUpdate called %d times for an existing sheet", batchUpdates)
	}
}

func TestEnsureTableCreatesMissingSheet(t *testing.T) {
	var sawAddSheet, sawHeaderAppend bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(spreadsheetMeta{})
		case r.URL.Path == "/v4/spreadsheets/doc1:batchUpdate":
			var payload batchUpdateRequest
			json.NewDecoder(r.Body).Decode(&payload)
			if len(payload.Requests) == 1 && payload.Requests[0].AddSheet != nil &&
				payload.Requests[0].AddSheet.Properties.Title == "Notes" {
				sawAddSheet = true
			}
		default:
			sawHeaderAppend = true
		}
	}))
	defer server.Close()

	c := NewClient(server.URL, "doc1", "tok")

	if err := c.EnsureTable(context.Background(), "Notes", []string{"Note ID"}); err != nil {
		t.Fatalf("EnsureTable: %v", err)
	}
	if !sawAddSheet {
		t.Error("addSheet request never sent")
	}
	if !sawHeaderAppend {
		t.Error("header row never appended")
	}
}
