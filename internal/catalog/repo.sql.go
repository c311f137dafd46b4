package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/altozano/altozano/internal/platform/httpx"
)

// Repository provides PostgreSQL backed persistence for master data.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint errors.
const uniqueViolation = "23505"

func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return httpx.ErrDuplicate
	}
	return err
}

// ListCondominiums returns all condominiums ordered by id.
func (r *Repository) ListCondominiums(ctx context.Context) ([]Condominium, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, address FROM condominiums ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var condominiums []Condominium
	for rows.Next() {
		var c Condominium
		if err := rows.Scan(&c.ID, &c.Name, &c.Address); err != nil {
			return nil, err
		}
		condominiums = append(condominiums, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return condominiums, nil
}

// GetCondominium returns one condominium by id.
func (r *Repository) GetCondominium(ctx context.Context, id int64) (*Condominium, error) {
	var c Condominium
	err := r.pool.QueryRow(ctx, `SELECT id, name, address FROM condominiums WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Address)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, httpx.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCondominium inserts a condominium and returns it with its id.
func (r *Repository) CreateCondominium(ctx context.Context, input CondominiumInput) (*Condominium, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `INSERT INTO condominiums (name, address) VALUES ($1, $2) RETURNING id`,
		input.Name, input.Address).Scan(&id)
	if err != nil {
		return nil, err
	}
	return &Condominium{ID: id, Name: input.Name, Address: input.Address}, nil
}

// UpdateCondominium updates a condominium in place.
func (r *Repository) UpdateCondominium(ctx context.Context, id int64, input CondominiumInput) error {
	tag, err := r.pool.Exec(ctx, `UPDATE condominiums SET name=$1, address=$2 WHERE id=$3`,
		input.Name, input.Address, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// DeleteCondominium removes a condominium by id.
func (r *Repository) DeleteCondominium(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM condominiums WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// ListResidences returns all residences ordered by id.
func (r *Repository) ListResidences(ctx context.Context) ([]Residence, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, name, address, email, phone, condominium_id FROM residences ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var residences []Residence
	for rows.Next() {
		var res Residence
		if err := rows.Scan(&res.ID, &res.UserID, &res.Name, &res.Address, &res.Email, &res.Phone, &res.CondominiumID); err != nil {
			return nil, err
		}
		residences = append(residences, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return residences, nil
}

// GetResidence returns one residence by id.
func (r *Repository) GetResidence(ctx context.Context, id int64) (*Residence, error) {
	var res Residence
	err := r.pool.QueryRow(ctx, `SELECT id, user_id, name, address, email, phone, condominium_id FROM residences WHERE id = $1`, id).
		Scan(&res.ID, &res.UserID, &res.Name, &res.Address, &res.Email, &res.Phone, &res.CondominiumID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, httpx.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateResidence inserts a residence and returns it with its id.
func (r *Repository) CreateResidence(ctx context.Context, input ResidenceInput) (*Residence, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `INSERT INTO residences (user_id, name, address, email, phone, condominium_id)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		input.UserID, input.Name, input.Address, input.Email, input.Phone, input.CondominiumID).Scan(&id)
	if err != nil {
		return nil, err
	}
	return &Residence{
		ID:            id,
		UserID:        input.UserID,
		Name:          input.Name,
		Address:       input.Address,
		Email:         input.Email,
		Phone:         input.Phone,
		CondominiumID: input.CondominiumID,
	}, nil
}

// UpdateResidence updates a residence in place.
func (r *Repository) UpdateResidence(ctx context.Context, id int64, input ResidenceInput) error {
	tag, err := r.pool.Exec(ctx, `UPDATE residences SET user_id=$1, name=$2, address=$3, email=$4, phone=$5, condominium_id=$6 WHERE id=$7`,
		input.UserID, input.Name, input.Address, input.Email, input.Phone, input.CondominiumID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// DeleteResidence removes a residence by id.
func (r *Repository) DeleteResidence(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM residences WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// ListDueTypes returns all due types ordered by id.
func (r *Repository) ListDueTypes(ctx context.Context) ([]DueType, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, description FROM due_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var types []DueType
	for rows.Next() {
		var dt DueType
		if err := rows.Scan(&dt.ID, &dt.Name, &dt.Description); err != nil {
			return nil, err
		}
		types = append(types, dt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return types, nil
}

// GetDueType returns one due type by id.
func (r *Repository) GetDueType(ctx context.Context, id int64) (*DueType, error) {
	var dt DueType
	err := r.pool.QueryRow(ctx, `SELECT id, name, description FROM due_types WHERE id = $1`, id).
		Scan(&dt.ID, &dt.Name, &dt.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, httpx.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dt, nil
}

// CreateDueType inserts a due type.
func (r *Repository) CreateDueType(ctx context.Context, input DueTypeInput) (*DueType, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `INSERT INTO due_types (name, description) VALUES ($1, $2) RETURNING id`,
		input.Name, input.Description).Scan(&id)
	if err != nil {
		return nil, err
	}
	return &DueType{ID: id, Name: input.Name, Description: input.Description}, nil
}

// UpdateDueType updates a due type in place.
func (r *Repository) UpdateDueType(ctx context.Context, id int64, input DueTypeInput) error {
	tag, err := r.pool.Exec(ctx, `UPDATE due_types SET name=$1, description=$2 WHERE id=$3`, input.Name, input.Description, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// DeleteDueType removes a due type by id.
func (r *Repository) DeleteDueType(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM due_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// ListPaymentMethods returns all payment methods ordered by id.
func (r *Repository) ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM payment_methods ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var methods []PaymentMethod
	for rows.Next() {
		var pm PaymentMethod
		if err := rows.Scan(&pm.ID, &pm.Name); err != nil {
			return nil, err
		}
		methods = append(methods, pm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return methods, nil
}

// GetPaymentMethod returns one payment method by id.
func (r *Repository) GetPaymentMethod(ctx context.Context, id int64) (*PaymentMethod, error) {
	var pm PaymentMethod
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM payment_methods WHERE id = $1`, id).Scan(&pm.ID, &pm.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, httpx.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pm, nil
}

// CreatePaymentMethod inserts a payment method.
func (r *Repository) CreatePaymentMethod(ctx context.Context, input PaymentMethodInput) (*PaymentMethod, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `INSERT INTO payment_methods (name) VALUES ($1) RETURNING id`, input.Name).Scan(&id)
	if err != nil {
		return nil, err
	}
	return &PaymentMethod{ID: id, Name: input.Name}, nil
}

// UpdatePaymentMethod updates a payment method in place.
func (r *Repository) UpdatePaymentMethod(ctx context.Context, id int64, input PaymentMethodInput) error {
	tag, err := r.pool.Exec(ctx, `UPDATE payment_methods SET name=$1 WHERE id=$2`, input.Name, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// DeletePaymentMethod removes a payment method by id.
func (r *Repository) DeletePaymentMethod(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM payment_methods WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// ListVendors returns all vendors ordered by id.
func (r *Repository) ListVendors(ctx context.Context) ([]Vendor, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, contact_name, phone, nit FROM vendors ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var vendors []Vendor
	for rows.Next() {
		var v Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.ContactName, &v.Phone, &v.NIT); err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return vendors, nil
}

// GetVendor returns one vendor by id.
func (r *Repository) GetVendor(ctx context.Context, id int64) (*Vendor, error) {
	var v Vendor
	err := r.pool.QueryRow(ctx, `SELECT id, name, contact_name, phone, nit FROM vendors WHERE id = $1`, id).
		Scan(&v.ID, &v.Name, &v.ContactName, &v.Phone, &v.NIT)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, httpx.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateVendor inserts a vendor. A taken NIT surfaces as a duplicate error.
func (r *Repository) CreateVendor(ctx context.Context, input VendorInput) (*Vendor, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `INSERT INTO vendors (name, contact_name, phone, nit) VALUES ($1, $2, $3, $4) RETURNING id`,
		input.Name, input.ContactName, input.Phone, input.NIT).Scan(&id)
	if err != nil {
		return nil, translateConstraint(err)
	}
	return &Vendor{ID: id, Name: input.Name, ContactName: input.ContactName, Phone: input.Phone, NIT: input.NIT}, nil
}

// UpdateVendor updates a vendor in place. A taken NIT surfaces as a duplicate error.
func (r *Repository) UpdateVendor(ctx context.Context, id int64, input VendorInput) error {
	tag, err := r.pool.Exec(ctx, `UPDATE vendors SET name=$1, contact_name=$2, phone=$3, nit=$4 WHERE id=$5`,
		input.Name, input.ContactName, input.Phone, input.NIT, id)
	if err != nil {
		return translateConstraint(err)
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// DeleteVendor removes a vendor by id.
func (r *Repository) DeleteVendor(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// ListNotifications returns all notifications ordered by sent date descending.
func (r *Repository) ListNotifications(ctx context.Context) ([]Notification, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, residence_id, message, sent_at, kind FROM notifications ORDER BY sent_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var notifications []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.ResidenceID, &n.Message, &n.SentAt, &n.Kind); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notifications, nil
}

// GetNotification returns one notification by id.
func (r *Repository) GetNotification(ctx context.Context, id int64) (*Notification, error) {
	var n Notification
	err := r.pool.QueryRow(ctx, `SELECT id, residence_id, message, sent_at, kind FROM notifications WHERE id = $1`, id).
		Scan(&n.ID, &n.ResidenceID, &n.Message, &n.SentAt, &n.Kind)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, httpx.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// CreateNotification inserts a notification.
func (r *Repository) CreateNotification(ctx context.Context, input NotificationInput) (*Notification, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `INSERT INTO notifications (residence_id, message, sent_at, kind) VALUES ($1, $2, $3, $4) RETURNING id`,
		input.ResidenceID, input.Message, input.SentAt, input.Kind).Scan(&id)
	if err != nil {
		return nil, err
	}
	return &Notification{ID: id, ResidenceID: input.ResidenceID, Message: input.Message, SentAt: input.SentAt, Kind: input.Kind}, nil
}

// DeleteNotification removes a notification by id.
func (r *Repository) DeleteNotification(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}
