package store

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrSchemaMismatch means a table's header row does not match the expected
	// column contract.
	ErrSchemaMismatch = errors.New("store: header row does not match expected schema")

	// ErrTableNotFound means the named table does not exist in the store.
	ErrTableNotFound = errors.New("store: table not found")

	// ErrAuth means the store rejected our credentials.
	ErrAuth = errors.New("store: authentication failed")

	// ErrTransport covers network and non-auth service failures. Callers do
	// not retry; the error surfaces verbatim.
	ErrTransport = errors.New("store: transport error")
)

// Row is one data row keyed by header name. Every value is text; the store has
// no column types.
type Row map[string]string

// TableStore is the contract against the external row-oriented record store.
// The store owns all data: there is no cache between calls, every read
// re-fetches the full table.
type TableStore interface {
	// EnsureTable creates the table with a header row if it does not exist.
	EnsureTable(ctx context.Context, table string, headers []string) error

	// GetAllRows fetches every data row. The header row is validated against
	// expectedHeaders first; any mismatch fails with ErrSchemaMismatch.
	GetAllRows(ctx context.Context, table string, expectedHeaders []string) ([]Row, error)

	// AppendRow appends one row after the last data row.
	AppendRow(ctx context.Context, table string, values []string) error

	// UpdateRange overwrites the cells addressed by rangeSpec (A1 notation,
	// e.g. "A5:I5") with values.
	UpdateRange(ctx context.Context, table string, rangeSpec string, values []string) error
}

// RowRange builds the A1-notation range covering one full data row.
// Row 1 is the header row, so the first data row is row 2.
func RowRange(row, cols int) string {
	return fmt.Sprintf("A%d:%s%d", row, columnLetter(cols), row)
}

// columnLetter converts a 1-based column count to its A1 column label.
func columnLetter(col int) string {
	label := ""
	for col > 0 {
		col--
		label = string(rune('A'+col%26)) + label
		col /= 26
	}
	return label
}
