package spending

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/altozano/altozano/internal/platform/httpx"
	"github.com/altozano/altozano/internal/shared"
)

type memorySpendingRepo struct {
	expenses    map[int64]*Expense
	vendorNames map[int64]string
	vendorNITs  map[int64]string
	nextID      int64
	detailCalls int
}

func newMemorySpendingRepo() *memorySpendingRepo {
	return &memorySpendingRepo{
		expenses:    make(map[int64]*Expense),
		vendorNames: make(map[int64]string),
		vendorNITs:  make(map[int64]string),
	}
}

func (r *memorySpendingRepo) ListExpenses(ctx context.Context) ([]Expense, error) {
	var out []Expense
	for _, e := range r.expenses {
		out = append(out, *e)
	}
	return out, nil
}

func (r *memorySpendingRepo) GetExpense(ctx context.Context, id int64) (*Expense, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, httpx.ErrNotFound
	}
	return e, nil
}

func (r *memorySpendingRepo) CreateExpense(ctx context.Context, input ExpenseInput) (*Expense, error) {
	r.nextID++
	e := &Expense{
		ID:            r.nextID,
		CondominiumID: input.CondominiumID,
		VendorID:      input.VendorID,
		Description:   input.Description,
		Amount:        input.Amount,
		Date:          input.Date,
		Type:          input.Type,
	}
	r.expenses[e.ID] = e
	return e, nil
}

func (r *memorySpendingRepo) UpdateExpense(ctx context.Context, id int64, input ExpenseInput) error {
	e, ok := r.expenses[id]
	if !ok {
		return httpx.ErrNotFound
	}
	e.Description = input.Description
	e.Amount = input.Amount
	e.Date = input.Date
	e.Type = input.Type
	return nil
}

func (r *memorySpendingRepo) DeleteExpense(ctx context.Context, id int64) error {
	if _, ok := r.expenses[id]; !ok {
		return httpx.ErrNotFound
	}
	delete(r.expenses, id)
	return nil
}

func (r *memorySpendingRepo) DetailRows(ctx context.Context, filter DetailFilter) ([]ExpenseDetail, error) {
	r.detailCalls++
	from := shared.YearMonth(filter.FromYear, filter.FromMonth)
	to := shared.YearMonth(filter.ToYear, filter.ToMonth)
	var out []ExpenseDetail
	for id := int64(1); id <= r.nextID; id++ {
		e, ok := r.expenses[id]
		if !ok {
			continue
		}
		ym := shared.YearMonth(e.Date.Year(), int(e.Date.Month()))
		if ym < from || ym > to {
			continue
		}
		if filter.Type != "" && !strings.EqualFold(filter.Type, e.Type) {
			continue
		}
		vendor := r.vendorNames[e.VendorID]
		if filter.VendorName != "" && !strings.Contains(strings.ToLower(vendor), strings.ToLower(filter.VendorName)) {
			continue
		}
		out = append(out, ExpenseDetail{
			Date:        e.Date,
			Type:        e.Type,
			Description: e.Description,
			Amount:      e.Amount,
			VendorName:  vendor,
			VendorNIT:   r.vendorNITs[e.VendorID],
		})
	}
	return out, nil
}

func (r *memorySpendingRepo) ExpenseTypes(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for id := int64(1); id <= r.nextID; id++ {
		e, ok := r.expenses[id]
		if !ok || seen[e.Type] {
			continue
		}
		seen[e.Type] = true
		out = append(out, e.Type)
	}
	return out, nil
}

func seedExpenses(t *testing.T, repo *memorySpendingRepo) {
	t.Helper()
	ctx := context.Background()
	repo.vendorNames[1] = "Servicios Garcia"
	repo.vendorNITs[1] = "1234567-8"
	repo.vendorNames[2] = "Limpieza Lopez"
	repo.vendorNITs[2] = "8765432-1"

	fixtures := []ExpenseInput{
		{CondominiumID: 1, VendorID: 1, Description: "Poda mensual", Amount: 300, Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Type: "Jardineria"},
		{CondominiumID: 1, VendorID: 2, Description: "Limpieza areas comunes", Amount: 450, Date: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), Type: "Limpieza"},
		{CondominiumID: 1, VendorID: 1, Description: "Fumigacion", Amount: 200, Date: time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC), Type: "Jardineria"},
	}
	for _, f := range fixtures {
		_, err := repo.CreateExpense(ctx, f)
		require.NoError(t, err)
	}
}

func TestDetailReportRange(t *testing.T) {
	ctx := context.Background()
	repo := newMemorySpendingRepo()
	seedExpenses(t, repo)
	svc := NewService(repo)

	report, err := svc.DetailReport(ctx, DetailFilter{FromYear: 2024, FromMonth: 1, ToYear: 2024, ToMonth: 2})
	require.NoError(t, err)
	require.Len(t, report.Expenses, 2)
	require.Equal(t, 750.0, report.Total)
}

func TestDetailReportCrossYearRange(t *testing.T) {
	ctx := context.Background()
	repo := newMemorySpendingRepo()
	seedExpenses(t, repo)
	svc := NewService(repo)

	report, err := svc.DetailReport(ctx, DetailFilter{FromYear: 2023, FromMonth: 12, ToYear: 2024, ToMonth: 1})
	require.NoError(t, err)
	require.Len(t, report.Expenses, 2)
	require.Equal(t, 500.0, report.Total)
}

func TestDetailReportFilters(t *testing.T) {
	ctx := context.Background()
	repo := newMemorySpendingRepo()
	seedExpenses(t, repo)
	svc := NewService(repo)

	report, err := svc.DetailReport(ctx, DetailFilter{
		FromYear: 2023, FromMonth: 1, ToYear: 2024, ToMonth: 12,
		Type:       "jardineria",
		VendorName: "garcia",
	})
	require.NoError(t, err)
	require.Len(t, report.Expenses, 2)
	for _, row := range report.Expenses {
		require.Equal(t, "Jardineria", row.Type)
		require.Equal(t, "Servicios Garcia", row.VendorName)
	}
	require.Equal(t, 500.0, report.Total)
}

func TestDetailReportInvertedRange(t *testing.T) {
	ctx := context.Background()
	repo := newMemorySpendingRepo()
	svc := NewService(repo)

	_, err := svc.DetailReport(ctx, DetailFilter{FromYear: 2024, FromMonth: 5, ToYear: 2024, ToMonth: 2})
	require.ErrorIs(t, err, httpx.ErrValidation)
	require.Equal(t, 0, repo.detailCalls)
}

func TestDetailReportInvertedYear(t *testing.T) {
	ctx := context.Background()
	repo := newMemorySpendingRepo()
	svc := NewService(repo)

	_, err := svc.DetailReport(ctx, DetailFilter{FromYear: 2025, FromMonth: 1, ToYear: 2024, ToMonth: 12})
	require.ErrorIs(t, err, httpx.ErrValidation)
	require.Equal(t, 0, repo.detailCalls)
}

func TestDetailReportInvalidMonth(t *testing.T) {
	ctx := context.Background()
	repo := newMemorySpendingRepo()
	svc := NewService(repo)

	_, err := svc.DetailReport(ctx, DetailFilter{FromYear: 2024, FromMonth: 0, ToYear: 2024, ToMonth: 2})
	require.ErrorIs(t, err, httpx.ErrValidation)
	_, err = svc.DetailReport(ctx, DetailFilter{FromYear: 2024, FromMonth: 1, ToYear: 2024, ToMonth: 13})
	require.ErrorIs(t, err, httpx.ErrValidation)
	require.Equal(t, 0, repo.detailCalls)
}

func TestCreateExpenseValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemorySpendingRepo())

	_, err := svc.CreateExpense(ctx, ExpenseInput{VendorID: 1, Description: "x", Amount: 10, Date: time.Now(), Type: "Limpieza"})
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.CreateExpense(ctx, ExpenseInput{CondominiumID: 1, VendorID: 1, Description: "x", Amount: 0, Date: time.Now(), Type: "Limpieza"})
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.CreateExpense(ctx, ExpenseInput{CondominiumID: 1, VendorID: 1, Description: "x", Amount: 10, Date: time.Now()})
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestExpenseTypes(t *testing.T) {
	ctx := context.Background()
	repo := newMemorySpendingRepo()
	seedExpenses(t, repo)
	svc := NewService(repo)

	types, err := svc.ExpenseTypes(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Jardineria", "Limpieza"}, types)
}
