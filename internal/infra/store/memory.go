package store

import (
	"context"
	"strings"
	"sync"
)

// MemStore is a thread-safe in-memory TableStore. It backs local runs and the
// repository tests; semantics mirror the hosted store, header row included.
type MemStore struct {
	mu     sync.RWMutex
	tables map[string][][]string // table -> rows, row 0 is the header row
}

func NewMemStore() *MemStore {
	return &MemStore{
		tables: make(map[string][][]string),
	}
}

func (m *MemStore) EnsureTable(ctx context.Context, table string, headers []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tables[table]; ok {
		return nil
	}
	header := make([]string, len(headers))
	copy(header, headers)
	m.tables[table] = [][]string{header}
	return nil
}

func (m *MemStore) GetAllRows(ctx context.Context, table string, expectedHeaders []string) ([]Row, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows, ok := m.tables[table]
	if !ok {
		return nil, ErrTableNotFound
	}
	if err := checkHeaders(rows[0], expectedHeaders); err != nil {
		return nil, err
	}

	records := make([]Row, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		rec := make(Row, len(expectedHeaders))
		for i, h := range expectedHeaders {
			if i < len(raw) {
				rec[h] = raw[i]
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func (m *MemStore) AppendRow(ctx context.Context, table string, values []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, ok := m.tables[table]
	if !ok {
		return ErrTableNotFound
	}
	row := make([]string, len(values))
	copy(row, values)
	m.tables[table] = append(rows, row)
	return nil
}

func (m *MemStore) UpdateRange(ctx context.Context, table string, rangeSpec string, values []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, ok := m.tables[table]
	if !ok {
		return ErrTableNotFound
	}

	rowIdx, err := rangeStartRow(rangeSpec)
	if err != nil {
		return err
	}
	if rowIdx < 1 || rowIdx > len(rows) {
		return ErrTransport
	}
	row := make([]string, len(values))
	copy(row, values)
	m.tables[table][rowIdx-1] = row
	return nil
}

func checkHeaders(got, expected []string) error {
	if len(got) < len(expected) {
		return ErrSchemaMismatch
	}
	for i, h := range expected {
		if got[i] != h {
			return ErrSchemaMismatch
		}
	}
	return nil
}

// rangeStartRow extracts the 1-based row number from an A1 range like "A5:I5".
func rangeStartRow(rangeSpec string) (int, error) {
	start := rangeSpec
	if i := strings.IndexByte(rangeSpec, ':'); i >= 0 {
		start = rangeSpec[:i]
	}
	row := 0
	for _, r := range start {
		if r >= '0' && r <= '9' {
			row = row*10 + int(r-'0')
		}
	}
	if row == 0 {
		return 0, ErrTransport
	}
	return row, nil
}
