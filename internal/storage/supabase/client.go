// Package supabase is a minimal client for the hosted PostgREST interface
// the portfolio data lives behind. Every call is one HTTP round-trip; the
// backend owns durability, ids and schema.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// From starts a query against a table.
func (c *Client) From(table string) *Query {
	return &Query{
		client:     c,
		table:      table,
		selectCols: "*",
	}
}

type filter struct {
	column string
	value  string
}

type Query struct {
	client     *Client
	table      string
	selectCols string
	filters    []filter
	order      string
}

// Select sets the column list returned by reads. Defaults to "*".
func (q *Query) Select(cols string) *Query {
	q.selectCols = cols
	return q
}

// Eq adds an equality filter on column.
func (q *Query) Eq(column, value string) *Query {
	q.filters = append(q.filters, filter{column: column, value: value})
	return q
}

// OrderDesc sorts results by column, newest first.
func (q *Query) OrderDesc(column string) *Query {
	q.order = column + ".desc"
	return q
}

// Get fetches the matching rows.
func (q *Query) Get(ctx context.Context) ([]map[string]any, error) {
	return q.do(ctx, http.MethodGet, nil)
}

// Insert creates a row and returns the backend's representation of it.
func (q *Query) Insert(ctx context.Context, record map[string]any) ([]map[string]any, error) {
	return q.do(ctx, http.MethodPost, record)
}

// Update applies a partial update to the matching rows and returns them.
// An empty result means nothing matched.
func (q *Query) Update(ctx context.Context, patch map[string]any) ([]map[string]any, error) {
	return q.do(ctx, http.MethodPatch, patch)
}

// Delete removes the matching rows.
func (q *Query) Delete(ctx context.Context) ([]map[string]any, error) {
	return q.do(ctx, http.MethodDelete, nil)
}

func (q *Query) do(ctx context.Context, method string, body map[string]any) ([]map[string]any, error) {
	reqURL := q.client.baseURL + "/rest/v1/" + q.table + "?" + q.encodeParams(method)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("apikey", q.client.apiKey)
	req.Header.Set("Authorization", "Bearer "+q.client.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		// Writes must echo the affected rows so handlers can detect
		// "no row matched" and return the representation to callers.
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := q.client.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read backend response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("backend returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		// PostgREST returns a bare object for single-row responses.
		var row map[string]any
		if err2 := json.Unmarshal(raw, &row); err2 == nil {
			return []map[string]any{row}, nil
		}
		return nil, fmt.Errorf("decode backend response: %w", err)
	}
	return rows, nil
}

func (q *Query) encodeParams(method string) string {
	params := url.Values{}
	if method == http.MethodGet {
		params.Set("select", q.selectCols)
	}
	for _, f := range q.filters {
		params.Set(f.column, "eq."+f.value)
	}
	if q.order != "" {
		params.Set("order", q.order)
	}
	return params.Encode()
}
