package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charlesw/alexandria-crm/internal/infra/store"
)

// Client talks to the hosted spreadsheet service over its values API. It
// implements store.TableStore; each table is one sheet inside a single
// spreadsheet document.
//
// The client never caches and never retries: every read hits the service, and
// failures surface to the caller as-is.
type Client struct {
	baseURL       string
	spreadsheetID string
	token         string
	http          *http.Client
}

func NewClient(baseURL, spreadsheetID, token string) *Client {
	return &Client{
		baseURL:       baseURL,
		spreadsheetID: spreadsheetID,
		token:         token,
		http:          &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) EnsureTable(ctx context.Context, table string, headers []string) error {
	metaURL := fmt.Sprintf("%s/v4/spreadsheets/%s?fields=sheets.properties.title", c.baseURL, c.spreadsheetID)

	var meta spreadsheetMeta
	if err := c.do(ctx, http.MethodGet, metaURL, nil, &meta); err != nil {
		return err
	}

	for _, s := range meta.Sheets {
		if s.Properties.Title == table {
			return nil
		}
	}

	// Sheet missing: create it, then write the header row.
	updateURL := fmt.Sprintf("%s/v4/spreadsheets/%s:batchUpdate", c.baseURL, c.spreadsheetID)
	payload := batchUpdateRequest{
		Requests: []request{{AddSheet: &addSheetRequest{Properties: sheetProperties{Title: table}}}},
	}
	if err := c.do(ctx, http.MethodPost, updateURL, payload, nil); err != nil {
		return err
	}

	return c.AppendRow(ctx, table, headers)
}

func (c *Client) GetAllRows(ctx context.Context, table string, expectedHeaders []string) ([]store.Row, error) {
	getURL := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?majorDimension=ROWS",
		c.baseURL, c.spreadsheetID, url.PathEscape(table))

	var vr valueRange
	if err := c.do(ctx, http.MethodGet, getURL, nil, &vr); err != nil {
		return nil, err
	}

	if len(vr.Values) == 0 {
		return nil, store.ErrSchemaMismatch
	}
	if err := checkHeaders(vr.Values[0], expectedHeaders); err != nil {
		return nil, err
	}

	records := make([]store.Row, 0, len(vr.Values)-1)
	for _, raw := range vr.Values[1:] {
		rec := make(store.Row, len(expectedHeaders))
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

func (c *Client) AppendRow(ctx context.Context, table string, values []string) error {
	appendURL := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s:append?valueInputOption=RAW&insertDataOption=INSERT_ROWS",
		c.baseURL, c.spreadsheetID, url.PathEscape(table))

	payload := valueRange{Values: [][]string{values}}
	return c.do(ctx, http.MethodPost, appendURL, payload, nil)
}

func (c *Client) UpdateRange(ctx context.Context, table string, rangeSpec string, values []string) error {
	fullRange := fmt.Sprintf("%s!%s", table, rangeSpec)
	putURL := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?valueInputOption=RAW",
		c.baseURL, c.spreadsheetID, url.PathEscape(fullRange))

	payload := valueRange{Range: fullRange, Values: [][]string{values}}
	return c.do(ctx, http.MethodPut, putURL, payload, nil)
}

// do runs one JSON request/response cycle against the service and maps HTTP
// failures onto the store error taxonomy.
func (c *Client) do(ctx context.Context, method, rawURL string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("sheets: marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrTransport, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", store.ErrAuth, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", store.ErrTableNotFound, rawURL)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", store.ErrTransport, resp.StatusCode, string(msg))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", store.ErrTransport, err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
}

func checkHeaders(got, expected []string) error {
	if len(got) < len(expected) {
		return store.ErrSchemaMismatch
	}
	for i, h := range expected {
		if got[i] != h {
			return store.ErrSchemaMismatch
		}
	}
	return nil
}
