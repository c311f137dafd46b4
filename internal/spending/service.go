package spending

import (
	"context"
	"fmt"
	"strings"

	"github.com/altozano/altozano/internal/platform/httpx"
	"github.com/altozano/altozano/internal/shared"
)

// RepositoryPort defines data access methods for expenses.
type RepositoryPort interface {
	ListExpenses(ctx context.Context) ([]Expense, error)
	GetExpense(ctx context.Context, id int64) (*Expense, error)
	CreateExpense(ctx context.Context, input ExpenseInput) (*Expense, error)
	UpdateExpense(ctx context.Context, id int64, input ExpenseInput) error
	DeleteExpense(ctx context.Context, id int64) error

	DetailRows(ctx context.Context, filter DetailFilter) ([]ExpenseDetail, error)
	ExpenseTypes(ctx context.Context) ([]string, error)
}

// Service handles expense business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

func (s *Service) validateExpense(input *ExpenseInput) error {
	if input.CondominiumID == 0 {
		return fmt.Errorf("%w: condominium id is required", httpx.ErrValidation)
	}
	if input.VendorID == 0 {
		return fmt.Errorf("%w: vendor id is required", httpx.ErrValidation)
	}
	if strings.TrimSpace(input.Description) == "" {
		return fmt.Errorf("%w: description is required", httpx.ErrValidation)
	}
	if input.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", httpx.ErrValidation)
	}
	if input.Date.IsZero() {
		return fmt.Errorf("%w: expense date is required", httpx.ErrValidation)
	}
	if strings.TrimSpace(input.Type) == "" {
		return fmt.Errorf("%w: expense type is required", httpx.ErrValidation)
	}
	return nil
}

// ListExpenses returns all expenses.
func (s *Service) ListExpenses(ctx context.Context) ([]Expense, error) {
	return s.repo.ListExpenses(ctx)
}

// GetExpense returns one expense.
func (s *Service) GetExpense(ctx context.Context, id int64) (*Expense, error) {
	return s.repo.GetExpense(ctx, id)
}

// CreateExpense validates and persists a new expense.
func (s *Service) CreateExpense(ctx context.Context, input ExpenseInput) (*Expense, error) {
	if err := s.validateExpense(&input); err != nil {
		return nil, err
	}
	return s.repo.CreateExpense(ctx, input)
}

// UpdateExpense validates and updates an expense.
func (s *Service) UpdateExpense(ctx context.Context, id int64, input ExpenseInput) error {
	if err := s.validateExpense(&input); err != nil {
		return err
	}
	return s.repo.UpdateExpense(ctx, id, input)
}

// DeleteExpense removes an expense.
func (s *Service) DeleteExpense(ctx context.Context, id int64) error {
	return s.repo.DeleteExpense(ctx, id)
}

// ExpenseTypes lists the distinct expense type names in use.
func (s *Service) ExpenseTypes(ctx context.Context) ([]string, error) {
	return s.repo.ExpenseTypes(ctx)
}

func validateDetailFilter(filter DetailFilter) error {
	if filter.FromMonth < 1 || filter.FromMonth > 12 || filter.ToMonth < 1 || filter.ToMonth > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", httpx.ErrValidation)
	}
	if filter.FromYear <= 0 || filter.ToYear <= 0 {
		return fmt.Errorf("%w: year must be positive", httpx.ErrValidation)
	}
	if shared.YearMonth(filter.FromYear, filter.FromMonth) > shared.YearMonth(filter.ToYear, filter.ToMonth) {
		return fmt.Errorf("%w: range start is after range end", httpx.ErrValidation)
	}
	return nil
}

// DetailReport builds the filtered expense detail report. The range is
// checked before any query runs; an inverted range is a validation error,
// never an empty report.
func (s *Service) DetailReport(ctx context.Context, filter DetailFilter) (*DetailReport, error) {
	if err := validateDetailFilter(filter); err != nil {
		return nil, err
	}
	rows, err := s.repo.DetailRows(ctx, filter)
	if err != nil {
		return nil, err
	}
	var total float64
	for _, row := range rows {
		total += row.Amount
	}
	return &DetailReport{Expenses: rows, Total: total}, nil
}
