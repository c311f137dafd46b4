package reports

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository runs the grouped income and expense queries.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) queryRows(ctx context.Context, query string, year, monthFrom, monthTo int) ([]AggregateRow, error) {
	rows, err := r.pool.Query(ctx, query, year, monthFrom, monthTo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []AggregateRow
	for rows.Next() {
		var row AggregateRow
		if err := rows.Scan(&row.Category, &row.Month, &row.Amount); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// IncomeRows sums payments by due type and month inside the year's month
// range. Rows come back ordered by category then month.
func (r *Repository) IncomeRows(ctx context.Context, year, monthFrom, monthTo int) ([]AggregateRow, error) {
	return r.queryRows(ctx, `SELECT dt.name, EXTRACT(MONTH FROM p.paid_at)::int AS month, COALESCE(SUM(p.amount), 0)
FROM payments p
JOIN dues d ON p.due_id = d.id
JOIN due_types dt ON d.due_type_id = dt.id
WHERE EXTRACT(YEAR FROM p.paid_at)::int = $1
  AND EXTRACT(MONTH FROM p.paid_at)::int BETWEEN $2 AND $3
GROUP BY dt.name, month
ORDER BY dt.name, month`, year, monthFrom, monthTo)
}

// ExpenseRows sums expenses by expense type and month inside the year's
// month range. Rows come back ordered by category then month.
func (r *Repository) ExpenseRows(ctx context.Context, year, monthFrom, monthTo int) ([]AggregateRow, error) {
	return r.queryRows(ctx, `SELECT g.expense_type, EXTRACT(MONTH FROM g.expense_date)::int AS month, COALESCE(SUM(g.amount), 0)
FROM expenses g
WHERE EXTRACT(YEAR FROM g.expense_date)::int = $1
  AND EXTRACT(MONTH FROM g.expense_date)::int BETWEEN $2 AND $3
GROUP BY g.expense_type, month
ORDER BY g.expense_type, month`, year, monthFrom, monthTo)
}
