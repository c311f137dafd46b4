package reports

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/altozano/altozano/internal/platform/httpx"
	"github.com/altozano/altozano/internal/shared"
)

// RepositoryPort defines the grouped queries the assembler consumes.
type RepositoryPort interface {
	IncomeRows(ctx context.Context, year, monthFrom, monthTo int) ([]AggregateRow, error)
	ExpenseRows(ctx context.Context, year, monthFrom, monthTo int) ([]AggregateRow, error)
}

// Service assembles the income and expense matrix report.
type Service struct {
	repo     RepositoryPort
	collator *collate.Collator
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, collator: collate.New(language.Spanish)}
}

// reshape pivots grouped rows into one matrix row per category. Every
// month label in the range is pre-seeded to zero; categories without rows
// in the range never appear. Rows are sorted with Spanish collation so
// accented labels order deterministically.
func (s *Service) reshape(rows []AggregateRow, months []string, monthFrom int) []CategoryRow {
	byCategory := make(map[string]*CategoryRow)
	var order []string
	for _, row := range rows {
		cr, ok := byCategory[row.Category]
		if !ok {
			cells := make(map[string]float64, len(months))
			for _, label := range months {
				cells[label] = 0
			}
			cr = &CategoryRow{Category: row.Category, Months: months, Cells: cells}
			byCategory[row.Category] = cr
			order = append(order, row.Category)
		}
		idx := row.Month - monthFrom
		if idx < 0 || idx >= len(months) {
			continue
		}
		cr.Cells[months[idx]] += row.Amount
		cr.Total += row.Amount
	}

	sort.Slice(order, func(i, j int) bool {
		return s.collator.CompareString(order[i], order[j]) < 0
	})
	out := make([]CategoryRow, 0, len(order))
	for _, category := range order {
		out = append(out, *byCategory[category])
	}
	return out
}

// BuildReport runs the income and expense aggregations for the range and
// assembles the matrix report. The range is validated before any query
// runs. The two aggregations are independent reads and run concurrently.
func (s *Service) BuildReport(ctx context.Context, year, monthFrom, monthTo int) (*Report, error) {
	if year <= 0 {
		return nil, fmt.Errorf("%w: year must be positive", httpx.ErrValidation)
	}
	months, err := shared.MonthRange(monthFrom, monthTo)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", httpx.ErrValidation, err)
	}

	var incomeRows, expenseRows []AggregateRow
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomeRows, err = s.repo.IncomeRows(gctx, year, monthFrom, monthTo)
		return err
	})
	g.Go(func() error {
		var err error
		expenseRows, err = s.repo.ExpenseRows(gctx, year, monthFrom, monthTo)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	income := s.reshape(incomeRows, months, monthFrom)
	expenses := s.reshape(expenseRows, months, monthFrom)

	report := &Report{Months: months, Income: income, Expenses: expenses}
	for _, row := range income {
		report.TotalIncome += row.Total
	}
	for _, row := range expenses {
		report.TotalExpenses += row.Total
	}
	report.NetBalance = report.TotalIncome - report.TotalExpenses
	return report, nil
}
