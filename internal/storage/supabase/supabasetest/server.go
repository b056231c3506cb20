// Package supabasetest is an in-memory stand-in for the hosted PostgREST
// backend, covering just what the handlers exercise: eq filters, ordering,
// inserts with server-assigned ids, partial updates and deletes.
package supabasetest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/andrefarias-dev/portfolio-backend/internal/storage/supabase"
)

type Server struct {
	srv    *httptest.Server
	mu     sync.Mutex
	tables map[string][]map[string]any
	nextID int
}

func New(t *testing.T) *Server {
	s := &Server{
		tables: map[string][]map[string]any{},
		nextID: 1,
	}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.srv.Close)
	return s
}

// Client returns a supabase client pointed at this server.
func (s *Server) Client() *supabase.Client {
	return supabase.New(s.srv.URL, "test-key")
}

// Seed inserts rows directly, assigning ids to rows without one.
func (s *Server) Seed(table string, rows ...map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range rows {
		if _, ok := row["id"]; !ok {
			row["id"] = float64(s.nextID)
			s.nextID++
		}
		s.tables[table] = append(s.tables[table], row)
	}
}

// Rows returns the current contents of table.
func (s *Server) Rows(table string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, len(s.tables[table]))
	copy(out, s.tables[table])
	return out
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	table := strings.TrimPrefix(r.URL.Path, "/rest/v1/")
	if table == r.URL.Path || strings.Contains(table, "/") {
		http.Error(w, `{"message":"unknown path"}`, http.StatusNotFound)
		return
	}

	filters := map[string]string{}
	order := ""
	for key, vals := range r.URL.Query() {
		switch key {
		case "select":
		case "order":
			order = vals[0]
		default:
			filters[key] = strings.TrimPrefix(vals[0], "eq.")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		rows := s.match(table, filters)
		if col, ok := strings.CutSuffix(order, ".desc"); ok {
			sort.SliceStable(rows, func(i, j int) bool {
				return fmt.Sprint(rows[i][col]) > fmt.Sprint(rows[j][col])
			})
		}
		writeJSON(w, http.StatusOK, rows)

	case http.MethodPost:
		var row map[string]any
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			http.Error(w, `{"message":"invalid body"}`, http.StatusBadRequest)
			return
		}
		row["id"] = float64(s.nextID)
		s.nextID++
		s.tables[table] = append(s.tables[table], row)
		writeJSON(w, http.StatusCreated, []map[string]any{row})

	case http.MethodPatch:
		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, `{"message":"invalid body"}`, http.StatusBadRequest)
			return
		}
		matched := s.match(table, filters)
		for _, row := range matched {
			for k, v := range patch {
				row[k] = v
			}
		}
		writeJSON(w, http.StatusOK, matched)

	case http.MethodDelete:
		matched := s.match(table, filters)
		kept := s.tables[table][:0]
		for _, row := range s.tables[table] {
			if !rowMatches(row, filters) {
				kept = append(kept, row)
			}
		}
		s.tables[table] = kept
		writeJSON(w, http.StatusOK, matched)

	default:
		http.Error(w, `{"message":"method not allowed"}`, http.StatusMethodNotAllowed)
	}
}

func (s *Server) match(table string, filters map[string]string) []map[string]any {
	out := []map[string]any{}
	for _, row := range s.tables[table] {
		if rowMatches(row, filters) {
			out = append(out, row)
		}
	}
	return out
}

func rowMatches(row map[string]any, filters map[string]string) bool {
	for col, want := range filters {
		got, ok := row[col]
		if !ok {
			return false
		}
		if formatValue(got) != want {
			return false
		}
	}
	return true
}

// formatValue renders decoded JSON numbers without a trailing ".0" so
// "id=eq.7" matches a stored float64(7).
func formatValue(v any) string {
	if f, ok := v.(float64); ok && f == float64(int(f)) {
		return fmt.Sprint(int(f))
	}
	return fmt.Sprint(v)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
