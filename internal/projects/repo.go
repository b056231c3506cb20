package projects

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/andrefarias-dev/portfolio-backend/internal/storage/supabase"
)

const table = "projetos"

var ErrNotFound = errors.New("project not found")

// RequiredFields must all be present in a create payload.
var RequiredFields = []string{"titulo", "descricao", "tecnologias"}

type Repo struct {
	db *supabase.Client
}

func NewRepo(db *supabase.Client) *Repo {
	return &Repo{db: db}
}

func (r *Repo) List(ctx context.Context) ([]map[string]any, error) {
	return r.db.From(table).Select("*").Get(ctx)
}

// ListRecent returns all projects newest first, for the admin panel.
func (r *Repo) ListRecent(ctx context.Context) ([]map[string]any, error) {
	return r.db.From(table).Select("*").OrderDesc("created_at").Get(ctx)
}

func (r *Repo) Get(ctx context.Context, id int) (map[string]any, error) {
	rows, err := r.db.From(table).Select("*").Eq("id", strconv.Itoa(id)).Get(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

// Create stamps created_at and inserts. The backend assigns the id and
// echoes the stored record back.
func (r *Repo) Create(ctx context.Context, data map[string]any) ([]map[string]any, error) {
	data["created_at"] = time.Now().UTC().Format(time.RFC3339)
	return r.db.From(table).Insert(ctx, data)
}

// Update applies a partial update and stamps updated_at.
func (r *Repo) Update(ctx context.Context, id int, data map[string]any) (map[string]any, error) {
	data["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	rows, err := r.db.From(table).Eq("id", strconv.Itoa(id)).Update(ctx, data)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

func (r *Repo) Delete(ctx context.Context, id int) error {
	_, err := r.db.From(table).Eq("id", strconv.Itoa(id)).Delete(ctx)
	return err
}
