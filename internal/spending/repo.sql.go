package spending

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/altozano/altozano/internal/platform/httpx"
	"github.com/altozano/altozano/internal/shared"
)

// Repository provides PostgreSQL backed persistence for expenses.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListExpenses returns all expenses ordered by id.
func (r *Repository) ListExpenses(ctx context.Context) ([]Expense, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, condominium_id, vendor_id, description, amount, expense_date, expense_type FROM expenses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var expenses []Expense
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.CondominiumID, &e.VendorID, &e.Description, &e.Amount, &e.Date, &e.Type); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return expenses, nil
}

// GetExpense returns one expense by id.
func (r *Repository) GetExpense(ctx context.Context, id int64) (*Expense, error) {
	var e Expense
	err := r.pool.QueryRow(ctx, `SELECT id, condominium_id, vendor_id, description, amount, expense_date, expense_type FROM expenses WHERE id = $1`, id).
		Scan(&e.ID, &e.CondominiumID, &e.VendorID, &e.Description, &e.Amount, &e.Date, &e.Type)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, httpx.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateExpense inserts an expense and returns it with its id.
func (r *Repository) CreateExpense(ctx context.Context, input ExpenseInput) (*Expense, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `INSERT INTO expenses (condominium_id, vendor_id, description, amount, expense_date, expense_type)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		input.CondominiumID, input.VendorID, input.Description, input.Amount, input.Date, input.Type).Scan(&id)
	if err != nil {
		return nil, err
	}
	return &Expense{
		ID:            id,
		CondominiumID: input.CondominiumID,
		VendorID:      input.VendorID,
		Description:   input.Description,
		Amount:        input.Amount,
		Date:          input.Date,
		Type:          input.Type,
	}, nil
}

// UpdateExpense updates an expense in place.
func (r *Repository) UpdateExpense(ctx context.Context, id int64, input ExpenseInput) error {
	tag, err := r.pool.Exec(ctx, `UPDATE expenses SET condominium_id=$1, vendor_id=$2, description=$3, amount=$4, expense_date=$5, expense_type=$6 WHERE id=$7`,
		input.CondominiumID, input.VendorID, input.Description, input.Amount, input.Date, input.Type, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// DeleteExpense removes an expense by id.
func (r *Repository) DeleteExpense(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// DetailRows returns the expense rows inside the filter's month window.
// The window compares year and month as a single year*100+month value so
// ranges crossing a year boundary stay contiguous.
func (r *Repository) DetailRows(ctx context.Context, filter DetailFilter) ([]ExpenseDetail, error) {
	conditions := []string{
		"(EXTRACT(YEAR FROM g.expense_date)::int * 100 + EXTRACT(MONTH FROM g.expense_date)::int) BETWEEN $1 AND $2",
	}
	args := []any{
		shared.YearMonth(filter.FromYear, filter.FromMonth),
		shared.YearMonth(filter.ToYear, filter.ToMonth),
	}
	argPos := 3

	if filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("UPPER(g.expense_type) = UPPER($%d)", argPos))
		args = append(args, filter.Type)
		argPos++
	}
	if filter.VendorName != "" {
		conditions = append(conditions, fmt.Sprintf("p.name ILIKE $%d", argPos))
		args = append(args, "%"+filter.VendorName+"%")
		argPos++
	}

	query := fmt.Sprintf(`SELECT g.expense_date, g.expense_type, g.description, g.amount, p.name, p.nit
FROM expenses g
JOIN vendors p ON g.vendor_id = p.id
WHERE %s
ORDER BY g.expense_date, g.expense_type`, strings.Join(conditions, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var details []ExpenseDetail
	for rows.Next() {
		var det ExpenseDetail
		if err := rows.Scan(&det.Date, &det.Type, &det.Description, &det.Amount, &det.VendorName, &det.VendorNIT); err != nil {
			return nil, err
		}
		details = append(details, det)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

// ExpenseTypes returns the distinct expense type names in use.
func (r *Repository) ExpenseTypes(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT expense_type FROM expenses ORDER BY expense_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return types, nil
}
