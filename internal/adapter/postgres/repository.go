package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-desk/internal/core/port"
)

var _ port.Repository = (*Repository)(nil)

// Repository implements port.Repository using pgxpool. Every create, update
// and delete is a single statement, so it is atomic on its own; no operation
// spans a transaction.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository returns a new repository instance.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// collect scans every row of rows with scan.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
}

// one scans a single row, mapping pgx.ErrNoRows to nil, nil.
func one[T any](row pgx.Row, scan func(pgx.Row) (T, error)) (*T, error) {
	v, err := scan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// update accumulates the SET clause of a partial update. Only columns for
// fields present in a patch are written.
type update struct {
	sets []string
	args []any
}

func (u *update) set(column string, value any) {
	u.args = append(u.args, value)
	u.sets = append(u.sets, fmt.Sprintf("%s = $%d", column, len(u.args)))
}

// build renders the statement for the row with the given id, returning the
// listed columns.
func (u *update) build(table string, id int64, returning string) (string, []any) {
	args := append(u.args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(u.sets, ", "), len(args), returning)
	return query, args
}
