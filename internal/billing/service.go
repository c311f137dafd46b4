package billing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/altozano/altozano/internal/platform/httpx"
	"github.com/altozano/altozano/internal/shared"
)

// RepositoryPort defines data access methods for billing.
type RepositoryPort interface {
	ListDues(ctx context.Context) ([]Due, error)
	GetDue(ctx context.Context, id int64) (*Due, error)
	CreateDue(ctx context.Context, input DueInput) (*Due, error)
	UpdateDue(ctx context.Context, id int64, input DueInput) error
	DeleteDue(ctx context.Context, id int64) error

	ListPayments(ctx context.Context) ([]Payment, error)
	GetPayment(ctx context.Context, id int64) (*Payment, error)
	CreatePayment(ctx context.Context, input PaymentInput) (*Payment, error)
	UpdatePayment(ctx context.Context, id int64, input PaymentInput) error
	DeletePayment(ctx context.Context, id int64) error

	ListFines(ctx context.Context) ([]Fine, error)
	GetFine(ctx context.Context, id int64) (*Fine, error)
	CreateFine(ctx context.Context, input FineInput) (*Fine, error)
	UpdateFine(ctx context.Context, id int64, input FineInput) error
	DeleteFine(ctx context.Context, id int64) error

	ResidenceName(ctx context.Context, residenceID int64) (string, error)
	PendingDues(ctx context.Context, residenceID int64) ([]PendingDue, error)
	ResidenceFilteredDues(ctx context.Context, residenceID int64) ([]FilteredDue, error)
	ResidenceOverdueTotal(ctx context.Context, residenceID int64) (float64, error)
	PendingFines(ctx context.Context, residenceID int64) ([]PendingFine, error)
	ResidencePayments(ctx context.Context, residenceID int64) ([]IncomeDetail, error)
	GenerateMonthlyDues(ctx context.Context) error
}

// Service handles billing business logic.
type Service struct {
	repo    RepositoryPort
	redis   *redis.Client
	lockTTL time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

// NewService builds a Service instance. The redis client may be nil, in
// which case dues generation runs unguarded.
func NewService(repo RepositoryPort, redisClient *redis.Client, lockTTL time.Duration, logger *slog.Logger) *Service {
	if lockTTL <= 0 {
		lockTTL = 10 * time.Minute
	}
	return &Service{repo: repo, redis: redisClient, lockTTL: lockTTL, logger: logger, now: time.Now}
}

// WithNow overrides the service clock for testing.
func (s *Service) WithNow(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

func validDueStatus(status DueStatus) bool {
	switch status {
	case DueStatusPending, DueStatusPaid, DueStatusOverdue:
		return true
	}
	return false
}

func validFineStatus(status FineStatus) bool {
	switch status {
	case FineStatusPending, FineStatusPaid, FineStatusAnnulled:
		return true
	}
	return false
}

func (s *Service) validateDue(input *DueInput) error {
	if input.ResidenceID == 0 {
		return fmt.Errorf("%w: residence id is required", httpx.ErrValidation)
	}
	if input.DueTypeID == 0 {
		return fmt.Errorf("%w: due type id is required", httpx.ErrValidation)
	}
	if strings.TrimSpace(input.Period) == "" {
		return fmt.Errorf("%w: period is required", httpx.ErrValidation)
	}
	if input.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", httpx.ErrValidation)
	}
	if input.Status == "" {
		input.Status = DueStatusPending
	}
	if !validDueStatus(input.Status) {
		return fmt.Errorf("%w: unknown due status %q", httpx.ErrValidation, input.Status)
	}
	return nil
}

// ListDues returns all dues.
func (s *Service) ListDues(ctx context.Context) ([]Due, error) {
	return s.repo.ListDues(ctx)
}

// GetDue returns one due.
func (s *Service) GetDue(ctx context.Context, id int64) (*Due, error) {
	return s.repo.GetDue(ctx, id)
}

// CreateDue validates and stores a new due.
func (s *Service) CreateDue(ctx context.Context, input DueInput) (*Due, error) {
	if err := s.validateDue(&input); err != nil {
		return nil, err
	}
	return s.repo.CreateDue(ctx, input)
}

// UpdateDue validates and updates an existing due.
func (s *Service) UpdateDue(ctx context.Context, id int64, input DueInput) error {
	if err := s.validateDue(&input); err != nil {
		return err
	}
	return s.repo.UpdateDue(ctx, id, input)
}

// DeleteDue removes a due.
func (s *Service) DeleteDue(ctx context.Context, id int64) error {
	return s.repo.DeleteDue(ctx, id)
}

// ListPayments returns all payments.
func (s *Service) ListPayments(ctx context.Context) ([]Payment, error) {
	return s.repo.ListPayments(ctx)
}

// GetPayment returns one payment.
func (s *Service) GetPayment(ctx context.Context, id int64) (*Payment, error) {
	return s.repo.GetPayment(ctx, id)
}

func (s *Service) validatePayment(input *PaymentInput) error {
	if input.DueID == 0 {
		return fmt.Errorf("%w: due id is required", httpx.ErrValidation)
	}
	if input.PaymentMethodID == 0 {
		return fmt.Errorf("%w: payment method id is required", httpx.ErrValidation)
	}
	if input.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", httpx.ErrValidation)
	}
	if input.PaidAt.IsZero() {
		input.PaidAt = s.now()
	}
	if strings.TrimSpace(input.Reference) == "" {
		input.Reference = uuid.NewString()
	}
	return nil
}

// RegisterPayment validates and stores a new payment. A reference code is
// generated when the caller supplies none.
func (s *Service) RegisterPayment(ctx context.Context, input PaymentInput) (*Payment, error) {
	if err := s.validatePayment(&input); err != nil {
		return nil, err
	}
	return s.repo.CreatePayment(ctx, input)
}

// UpdatePayment validates and updates an existing payment.
func (s *Service) UpdatePayment(ctx context.Context, id int64, input PaymentInput) error {
	if err := s.validatePayment(&input); err != nil {
		return err
	}
	return s.repo.UpdatePayment(ctx, id, input)
}

// DeletePayment removes a payment.
func (s *Service) DeletePayment(ctx context.Context, id int64) error {
	return s.repo.DeletePayment(ctx, id)
}

// ListFines returns all fines.
func (s *Service) ListFines(ctx context.Context) ([]Fine, error) {
	return s.repo.ListFines(ctx)
}

// GetFine returns one fine.
func (s *Service) GetFine(ctx context.Context, id int64) (*Fine, error) {
	return s.repo.GetFine(ctx, id)
}

func (s *Service) validateFine(input *FineInput) error {
	if input.DueID == 0 {
		return fmt.Errorf("%w: due id is required", httpx.ErrValidation)
	}
	if strings.TrimSpace(input.Description) == "" {
		return fmt.Errorf("%w: description is required", httpx.ErrValidation)
	}
	if input.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", httpx.ErrValidation)
	}
	if input.GeneratedAt.IsZero() {
		input.GeneratedAt = s.now()
	}
	if input.Status == "" {
		input.Status = FineStatusPending
	}
	if !validFineStatus(input.Status) {
		return fmt.Errorf("%w: unknown fine status %q", httpx.ErrValidation, input.Status)
	}
	return nil
}

// CreateFine validates and stores a new fine.
func (s *Service) CreateFine(ctx context.Context, input FineInput) (*Fine, error) {
	if err := s.validateFine(&input); err != nil {
		return nil, err
	}
	return s.repo.CreateFine(ctx, input)
}

// UpdateFine validates and updates an existing fine.
func (s *Service) UpdateFine(ctx context.Context, id int64, input FineInput) error {
	if err := s.validateFine(&input); err != nil {
		return err
	}
	return s.repo.UpdateFine(ctx, id, input)
}

// DeleteFine removes a fine.
func (s *Service) DeleteFine(ctx context.Context, id int64) error {
	return s.repo.DeleteFine(ctx, id)
}

// ResidenceIncome returns the payment detail for one residence.
func (s *Service) ResidenceIncome(ctx context.Context, residenceID int64) ([]IncomeDetail, error) {
	return s.repo.ResidencePayments(ctx, residenceID)
}

// FilteredDuesByResidence returns a residence's Pendiente dues along with
// the total amount of its Vencida dues.
func (s *Service) FilteredDuesByResidence(ctx context.Context, residenceID int64) (*FilteredDues, error) {
	dues, err := s.repo.ResidenceFilteredDues(ctx, residenceID)
	if err != nil {
		return nil, err
	}
	overdue, err := s.repo.ResidenceOverdueTotal(ctx, residenceID)
	if err != nil {
		return nil, err
	}
	if dues == nil {
		dues = []FilteredDue{}
	}
	return &FilteredDues{Dues: dues, OverdueTotal: overdue}, nil
}

// ErrGenerationRunning indicates another dues generation holds the lock.
var ErrGenerationRunning = fmt.Errorf("dues generation already in progress")

// GenerateMonthlyDues triggers the stored procedure that materializes the
// current period's dues. A redis lock keyed by period prevents overlapping
// runs; beyond that the procedure's own guard is the only idempotency check.
func (s *Service) GenerateMonthlyDues(ctx context.Context) error {
	period := s.now().Format("2006-01")
	if s.redis != nil {
		key := shared.DuesGenerationLockKey(period)
		acquired, err := s.redis.SetNX(ctx, key, "1", s.lockTTL).Result()
		if err != nil {
			return fmt.Errorf("billing: acquire generation lock: %w", err)
		}
		if !acquired {
			return ErrGenerationRunning
		}
		defer func() {
			if err := s.redis.Del(context.WithoutCancel(ctx), key).Err(); err != nil && s.logger != nil {
				s.logger.Warn("release generation lock", slog.Any("error", err))
			}
		}()
	}
	if err := s.repo.GenerateMonthlyDues(ctx); err != nil {
		return fmt.Errorf("billing: generate dues for %s: %w", period, err)
	}
	if s.logger != nil {
		s.logger.Info("monthly dues generated", slog.String("period", period))
	}
	return nil
}
