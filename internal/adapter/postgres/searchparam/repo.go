// Package searchparam implements the append-only log of client list queries.
package searchparam

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/bankpanel-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bankpanel-backend/internal/domain"
)

// Repo provides search parameter persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new search parameter repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends p and fills in its generated ID and CreatedAt.
func (r *Repo) Create(ctx context.Context, p *domain.SearchParameter) error {
	query, args, err := postgres.Builder.
		Insert("search_parameters").
		Columns("search", "sort", "page", "page_size").
		Values(p.Search, p.Sort, p.Page, p.PageSize).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert search parameter: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := q.QueryRow(ctx, query, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		return postgres.MapError(err, "search_parameter", nil)
	}
	return nil
}

// ListRecent returns up to limit entries, newest first.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.SearchParameter, error) {
	query, args, err := postgres.Builder.
		Select("id", "search", "sort", "page", "page_size", "created_at").
		From("search_parameters").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list search parameters: %w", err)
	}

	var rows []paramRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "search_parameter", nil)
	}

	out := make([]domain.SearchParameter, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.SearchParameter{
			ID:        row.ID,
			Search:    row.Search,
			Sort:      row.Sort,
			Page:      row.Page,
			PageSize:  row.PageSize,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

type paramRow struct {
	ID        int64     `db:"id"`
	Search    string    `db:"search"`
	Sort      string    `db:"sort"`
	Page      int       `db:"page"`
	PageSize  int       `db:"page_size"`
	CreatedAt time.Time `db:"created_at"`
}
