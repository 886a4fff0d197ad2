package store

import (
	"context"
	"errors"
	"testing"
)

var testHeaders = []string{"ID", "Name", "Email"}

func TestMemStore_EnsureTableIdempotent(t *testing.T) {
	ctx := context.Background()
	ms := NewMemStore()

	if err := ms.EnsureTable(ctx, "Contacts", testHeaders); err != nil {
		t.Fatalf("EnsureTable failed: %v", err)
	}
	if err := ms.AppendRow(ctx, "Contacts", []string{"1", "Jane", "jane@x.com"}); err != nil {
		t.Fatalf("AppendRow failed: %v", err)
	}

	// Ensuring again must not wipe existing rows.
	if err := ms.EnsureTable(ctx, "Contacts", testHeaders); err != nil {
		t.Fatalf("second EnsureTable failed: %v", err)
	}

	rows, err := ms.GetAllRows(ctx, "Contacts", testHeaders)
	if err != nil {
		t.Fatalf("GetAllRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0]["Name"] != "Jane" {
		t.Errorf("expected Jane, got %q", rows[0]["Name"])
	}
}

func TestMemStore_GetAllRowsSchemaMismatch(t *testing.T) {
	ctx := context.Background()
	ms := NewMemStore()
	ms.EnsureTable(ctx, "Contacts", testHeaders)

	_, err := ms.GetAllRows(ctx, "Contacts", []string{"ID", "FullName", "Email"})
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Errorf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestMemStore_TableNotFound(t *testing.T) {
	ctx := context.Background()
	ms := NewMemStore()

	if _, err := ms.GetAllRows(ctx, "Missing", testHeaders); !errors.Is(err, ErrTableNotFound) {
		t.Errorf("expected ErrTableNotFound on read, got %v", err)
	}
	if err := ms.AppendRow(ctx, "Missing", []string{"1"}); !errors.Is(err, ErrTableNotFound) {
		t.Errorf("expected ErrTableNotFound on append, got %v", err)
	}
}

func TestMemStore_UpdateRange(t *testing.T) {
	ctx := context.Background()
	ms := NewMemStore()
	ms.EnsureTable(ctx, "Contacts", testHeaders)
	ms.AppendRow(ctx, "Contacts", []string{"1", "Jane", "jane@x.com"})
	ms.AppendRow(ctx, "Contacts", []string{"2", "Bob", "bob@x.com"})

	// Data row 2 sits at sheet row 3.
	if err := ms.UpdateRange(ctx, "Contacts", "A3:C3", []string{"2", "Robert", "bob@x.com"}); err != nil {
		t.Fatalf("UpdateRange failed: %v", err)
	}

	rows, _ := ms.GetAllRows(ctx, "Contacts", testHeaders)
	if rows[1]["Name"] != "Robert" {
		t.Errorf("expected Robert, got %q", rows[1]["Name"])
	}
	if rows[0]["Name"] != "Jane" {
		t.Errorf("row 1 should be untouched, got %q", rows[0]["Name"])
	}
}

func TestMemStore_ShortRowsPadded(t *testing.T) {
	ctx := context.Background()
	ms := NewMemStore()
	ms.EnsureTable(ctx, "Contacts", testHeaders)
	ms.AppendRow(ctx, "Contacts", []string{"1", "Jane"})

	rows, err := ms.GetAllRows(ctx, "Contacts", testHeaders)
	if err != nil {
		t.Fatalf("GetAllRows failed: %v", err)
	}
	if rows[0]["Email"] != "" {
		t.Errorf("missing trailing cell should read empty, got %q", rows[0]["Email"])
	}
}

func TestRowRange(t *testing.T) {
	cases := []struct {
		row, cols int
		want      string
	}{
		{2, 9, "A2:I2"},
		{5, 5, "A5:E5"},
		{10, 6, "A10:F10"},
		{3, 27, "A3:AA3"},
	}
	for _, c := range cases {
		if got := RowRange(c.row, c.cols); got != c.want {
			t.Errorf("RowRange(%d, %d) = %q, want %q", c.row, c.cols, got, c.want)
		}
	}
}
