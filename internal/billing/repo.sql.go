package billing

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/altozano/altozano/internal/platform/httpx"
)

// Repository provides PostgreSQL backed persistence for billing.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListDues returns all dues ordered by id.
func (r *Repository) ListDues(ctx context.Context) ([]Due, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, residence_id, due_type_id, period, amount, generated_at, status, due_limit FROM dues ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var dues []Due
	for rows.Next() {
		var d Due
		if err := rows.Scan(&d.ID, &d.ResidenceID, &d.DueTypeID, &d.Period, &d.Amount, &d.GeneratedAt, &d.Status, &d.DueLimit); err != nil {
			return nil, err
		}
		dues = append(dues, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dues, nil
}

// GetDue returns one due by id.
func (r *Repository) GetDue(ctx context.Context, id int64) (*Due, error) {
	var d Due
	err := r.pool.QueryRow(ctx, `SELECT id, residence_id, due_type_id, period, amount, generated_at, status, due_limit FROM dues WHERE id = $1`, id).
		Scan(&d.ID, &d.ResidenceID, &d.DueTypeID, &d.Period, &d.Amount, &d.GeneratedAt, &d.Status, &d.DueLimit)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, httpx.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateDue inserts a due and returns it with its id.
func (r *Repository) CreateDue(ctx context.Context, input DueInput) (*Due, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `INSERT INTO dues (residence_id, due_type_id, period, amount, generated_at, status, due_limit)
VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		input.ResidenceID, input.DueTypeID, input.Period, input.Amount, input.GeneratedAt, input.Status, input.DueLimit).Scan(&id)
	if err != nil {
		return nil, err
	}
	return &Due{
		ID:          id,
		ResidenceID: input.ResidenceID,
		DueTypeID:   input.DueTypeID,
		Period:      input.Period,
		Amount:      input.Amount,
		GeneratedAt: input.GeneratedAt,
		Status:      input.Status,
		DueLimit:    input.DueLimit,
	}, nil
}

// UpdateDue updates a due in place.
func (r *Repository) UpdateDue(ctx context.Context, id int64, input DueInput) error {
	tag, err := r.pool.Exec(ctx, `UPDATE dues SET residence_id=$1, due_type_id=$2, period=$3, amount=$4, generated_at=$5, status=$6, due_limit=$7 WHERE id=$8`,
		input.ResidenceID, input.DueTypeID, input.Period, input.Amount, input.GeneratedAt, input.Status, input.DueLimit, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// DeleteDue removes a due by id.
func (r *Repository) DeleteDue(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM dues WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// ListPayments returns all payments ordered by id.
func (r *Repository) ListPayments(ctx context.Context) ([]Payment, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, due_id, payment_method_id, paid_at, amount, reference FROM payments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var payments []Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.DueID, &p.PaymentMethodID, &p.PaidAt, &p.Amount, &p.Reference); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return payments, nil
}

// GetPayment returns one payment by id.
func (r *Repository) GetPayment(ctx context.Context, id int64) (*Payment, error) {
	var p Payment
	err := r.pool.QueryRow(ctx, `SELECT id, due_id, payment_method_id, paid_at, amount, reference FROM payments WHERE id = $1`, id).
		Scan(&p.ID, &p.DueID, &p.PaymentMethodID, &p.PaidAt, &p.Amount, &p.Reference)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, httpx.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePayment inserts a payment and returns it with its id.
func (r *Repository) CreatePayment(ctx context.Context, input PaymentInput) (*Payment, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `INSERT INTO payments (due_id, payment_method_id, paid_at, amount, reference)
VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		input.DueID, input.PaymentMethodID, input.PaidAt, input.Amount, input.Reference).Scan(&id)
	if err != nil {
		return nil, err
	}
	return &Payment{
		ID:              id,
		DueID:           input.DueID,
		PaymentMethodID: input.PaymentMethodID,
		PaidAt:          input.PaidAt,
		Amount:          input.Amount,
		Reference:       input.Reference,
	}, nil
}

// UpdatePayment updates a payment in place.
func (r *Repository) UpdatePayment(ctx context.Context, id int64, input PaymentInput) error {
	tag, err := r.pool.Exec(ctx, `UPDATE payments SET due_id=$1, payment_method_id=$2, paid_at=$3, amount=$4, reference=$5 WHERE id=$6`,
		input.DueID, input.PaymentMethodID, input.PaidAt, input.Amount, input.Reference, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// DeletePayment removes a payment by id.
func (r *Repository) DeletePayment(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// ListFines returns all fines ordered by id.
func (r *Repository) ListFines(ctx context.Context) ([]Fine, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, due_id, description, amount, generated_at, status FROM fines ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var fines []Fine
	for rows.Next() {
		var f Fine
		if err := rows.Scan(&f.ID, &f.DueID, &f.Description, &f.Amount, &f.GeneratedAt, &f.Status); err != nil {
			return nil, err
		}
		fines = append(fines, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return fines, nil
}

// GetFine returns one fine by id.
func (r *Repository) GetFine(ctx context.Context, id int64) (*Fine, error) {
	var f Fine
	err := r.pool.QueryRow(ctx, `SELECT id, due_id, description, amount, generated_at, status FROM fines WHERE id = $1`, id).
		Scan(&f.ID, &f.DueID, &f.Description, &f.Amount, &f.GeneratedAt, &f.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, httpx.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// CreateFine inserts a fine and returns it with its id.
func (r *Repository) CreateFine(ctx context.Context, input FineInput) (*Fine, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `INSERT INTO fines (due_id, description, amount, generated_at, status)
VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		input.DueID, input.Description, input.Amount, input.GeneratedAt, input.Status).Scan(&id)
	if err != nil {
		return nil, err
	}
	return &Fine{
		ID:          id,
		DueID:       input.DueID,
		Description: input.Description,
		Amount:      input.Amount,
		GeneratedAt: input.GeneratedAt,
		Status:      input.Status,
	}, nil
}

// UpdateFine updates a fine in place.
func (r *Repository) UpdateFine(ctx context.Context, id int64, input FineInput) error {
	tag, err := r.pool.Exec(ctx, `UPDATE fines SET due_id=$1, description=$2, amount=$3, generated_at=$4, status=$5 WHERE id=$6`,
		input.DueID, input.Description, input.Amount, input.GeneratedAt, input.Status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// DeleteFine removes a fine by id.
func (r *Repository) DeleteFine(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM fines WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// ResidenceName returns the display name for a residence.
func (r *Repository) ResidenceName(ctx context.Context, residenceID int64) (string, error) {
	var name string
	err := r.pool.QueryRow(ctx, `SELECT name FROM residences WHERE id = $1`, residenceID).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", httpx.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return name, nil
}

// PendingDues returns a residence's dues with status Pendiente, each with
// its due type name.
func (r *Repository) PendingDues(ctx context.Context, residenceID int64) ([]PendingDue, error) {
	rows, err := r.pool.Query(ctx, `SELECT d.id, dt.name, d.amount
FROM dues d
JOIN due_types dt ON d.due_type_id = dt.id
WHERE d.residence_id = $1 AND d.status = $2
ORDER BY d.id`, residenceID, DueStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var dues []PendingDue
	for rows.Next() {
		var pd PendingDue
		if err := rows.Scan(&pd.ID, &pd.DueType, &pd.Amount); err != nil {
			return nil, err
		}
		dues = append(dues, pd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dues, nil
}

// ResidenceFilteredDues returns the residence's Pendiente dues with their
// due type names, periods and limit dates.
func (r *Repository) ResidenceFilteredDues(ctx context.Context, residenceID int64) ([]FilteredDue, error) {
	rows, err := r.pool.Query(ctx, `SELECT d.id, dt.name, d.period, d.amount, d.due_limit
FROM dues d
JOIN due_types dt ON d.due_type_id = dt.id
WHERE d.residence_id = $1 AND d.status = $2
ORDER BY d.id`, residenceID, DueStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var dues []FilteredDue
	for rows.Next() {
		var fd FilteredDue
		if err := rows.Scan(&fd.ID, &fd.DueType, &fd.Period, &fd.Amount, &fd.DueLimit); err != nil {
			return nil, err
		}
		dues = append(dues, fd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dues, nil
}

// ResidenceOverdueTotal sums the residence's Vencida due amounts.
func (r *Repository) ResidenceOverdueTotal(ctx context.Context, residenceID int64) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0)
FROM dues
WHERE residence_id = $1 AND status = $2`, residenceID, DueStatusOverdue).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// PendingFines returns the pending fines whose parent due belongs to the
// residence.
func (r *Repository) PendingFines(ctx context.Context, residenceID int64) ([]PendingFine, error) {
	rows, err := r.pool.Query(ctx, `SELECT f.id, f.description, f.amount, d.id
FROM fines f
JOIN dues d ON f.due_id = d.id
WHERE d.residence_id = $1 AND f.status = $2
ORDER BY f.id`, residenceID, FineStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var fines []PendingFine
	for rows.Next() {
		var pf PendingFine
		if err := rows.Scan(&pf.ID, &pf.Description, &pf.Amount, &pf.DueID); err != nil {
			return nil, err
		}
		fines = append(fines, pf)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return fines, nil
}

// ResidencePayments returns every payment recorded against the residence's
// dues, ordered by payment date.
func (r *Repository) ResidencePayments(ctx context.Context, residenceID int64) ([]IncomeDetail, error) {
	rows, err := r.pool.Query(ctx, `SELECT d.id, dt.name, pm.name, p.amount
FROM payments p
JOIN dues d ON p.due_id = d.id
JOIN due_types dt ON d.due_type_id = dt.id
JOIN payment_methods pm ON p.payment_method_id = pm.id
WHERE d.residence_id = $1
ORDER BY p.paid_at`, residenceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var details []IncomeDetail
	for rows.Next() {
		var det IncomeDetail
		if err := rows.Scan(&det.DueID, &det.DueType, &det.PaymentMethod, &det.Amount); err != nil {
			return nil, err
		}
		details = append(details, det)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

// GenerateMonthlyDues invokes the stored procedure that materializes the
// current period's dues for every residence. The procedure owns the
// duplicate-generation guard.
func (r *Repository) GenerateMonthlyDues(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `CALL generar_cuotas_del_mes()`)
	return err
}
