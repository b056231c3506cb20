package visits

import (
	"context"
	"strconv"

	"github.com/andrefarias-dev/portfolio-backend/internal/storage/supabase"
)

const table = "visitas"

// Repo wraps the singleton visit-counter row.
type Repo struct {
	db *supabase.Client
}

func NewRepo(db *supabase.Client) *Repo {
	return &Repo{db: db}
}

// Total returns the stored counter, zero when no row exists yet.
func (r *Repo) Total(ctx context.Context) (int, error) {
	rows, err := r.db.From(table).Select("total").Get(ctx)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return asInt(rows[0]["total"]), nil
}

// Increment bumps the counter and reports the new total, plus whether the
// row had to be created. Known defect kept on purpose: this is a
// read-then-write over two backend calls with no isolation, so concurrent
// increments can lose updates.
func (r *Repo) Increment(ctx context.Context) (total int, created bool, err error) {
	rows, err := r.db.From(table).Select("*").Get(ctx)
	if err != nil {
		return 0, false, err
	}

	if len(rows) == 0 {
		if _, err := r.db.From(table).Insert(ctx, map[string]any{"total": 1}); err != nil {
			return 0, false, err
		}
		return 1, true, nil
	}

	newTotal := asInt(rows[0]["total"]) + 1
	id := strconv.Itoa(asInt(rows[0]["id"]))
	if _, err := r.db.From(table).Eq("id", id).Update(ctx, map[string]any{"total": newTotal}); err != nil {
		return 0, false, err
	}
	return newTotal, false, nil
}

// asInt narrows a decoded JSON number. Anything else counts as zero.
func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}
