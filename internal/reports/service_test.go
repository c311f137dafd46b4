package reports

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/altozano/altozano/internal/platform/httpx"
)

type memoryReportsRepo struct {
	income     []AggregateRow
	expenses   []AggregateRow
	incomeErr  error
	expenseErr error
	calls      int
}

func (r *memoryReportsRepo) IncomeRows(ctx context.Context, year, monthFrom, monthTo int) ([]AggregateRow, error) {
	r.calls++
	if r.incomeErr != nil {
		return nil, r.incomeErr
	}
	return r.income, nil
}

func (r *memoryReportsRepo) ExpenseRows(ctx context.Context, year, monthFrom, monthTo int) ([]AggregateRow, error) {
	r.calls++
	if r.expenseErr != nil {
		return nil, r.expenseErr
	}
	return r.expenses, nil
}

func TestBuildReportMatrix(t *testing.T) {
	ctx := context.Background()
	repo := &memoryReportsRepo{
		income: []AggregateRow{
			{Category: "Mantenimiento", Month: 1, Amount: 100},
			{Category: "Mantenimiento", Month: 2, Amount: 200},
		},
	}
	svc := NewService(repo)

	report, err := svc.BuildReport(ctx, 2024, 1, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"Ene", "Feb"}, report.Months)
	require.Len(t, report.Income, 1)

	row := report.Income[0]
	require.Equal(t, "Mantenimiento", row.Category)
	require.Equal(t, 100.0, row.Cells["Ene"])
	require.Equal(t, 200.0, row.Cells["Feb"])
	require.Equal(t, 300.0, row.Total)
	require.Equal(t, 300.0, report.TotalIncome)
	require.Equal(t, 0.0, report.TotalExpenses)
	require.Equal(t, 300.0, report.NetBalance)
}

func TestBuildReportZeroFillsInactiveMonths(t *testing.T) {
	ctx := context.Background()
	repo := &memoryReportsRepo{
		income: []AggregateRow{{Category: "Agua", Month: 3, Amount: 50}},
	}
	svc := NewService(repo)

	report, err := svc.BuildReport(ctx, 2024, 1, 4)
	require.NoError(t, err)
	require.Len(t, report.Income, 1)

	row := report.Income[0]
	require.Len(t, row.Cells, 4)
	require.Equal(t, 0.0, row.Cells["Ene"])
	require.Equal(t, 0.0, row.Cells["Feb"])
	require.Equal(t, 50.0, row.Cells["Mar"])
	require.Equal(t, 0.0, row.Cells["Abr"])
}

func TestBuildReportTriangularConsistency(t *testing.T) {
	ctx := context.Background()
	repo := &memoryReportsRepo{
		income: []AggregateRow{
			{Category: "Agua", Month: 1, Amount: 30},
			{Category: "Agua", Month: 2, Amount: 20},
			{Category: "Mantenimiento", Month: 1, Amount: 100},
		},
		expenses: []AggregateRow{
			{Category: "Jardineria", Month: 2, Amount: 40},
		},
	}
	svc := NewService(repo)

	report, err := svc.BuildReport(ctx, 2024, 1, 2)
	require.NoError(t, err)

	var incomeTotal float64
	for _, row := range report.Income {
		var cellSum float64
		for _, label := range report.Months {
			cellSum += row.Cells[label]
		}
		require.Equal(t, row.Total, cellSum)
		incomeTotal += row.Total
	}
	require.Equal(t, report.TotalIncome, incomeTotal)
	require.Equal(t, 150.0, report.TotalIncome)
	require.Equal(t, 40.0, report.TotalExpenses)
	require.Equal(t, 110.0, report.NetBalance)
}

func TestBuildReportSingleMonth(t *testing.T) {
	ctx := context.Background()
	repo := &memoryReportsRepo{
		income: []AggregateRow{{Category: "Agua", Month: 7, Amount: 10}},
	}
	svc := NewService(repo)

	report, err := svc.BuildReport(ctx, 2024, 7, 7)
	require.NoError(t, err)
	require.Equal(t, []string{"Jul"}, report.Months)
	require.Equal(t, 10.0, report.Income[0].Cells["Jul"])
}

func TestBuildReportInvertedRange(t *testing.T) {
	ctx := context.Background()
	repo := &memoryReportsRepo{}
	svc := NewService(repo)

	_, err := svc.BuildReport(ctx, 2024, 5, 2)
	require.ErrorIs(t, err, httpx.ErrValidation)
	require.Equal(t, 0, repo.calls)
}

func TestBuildReportInvalidInputs(t *testing.T) {
	ctx := context.Background()
	repo := &memoryReportsRepo{}
	svc := NewService(repo)

	_, err := svc.BuildReport(ctx, 0, 1, 2)
	require.ErrorIs(t, err, httpx.ErrValidation)
	_, err = svc.BuildReport(ctx, 2024, 0, 2)
	require.ErrorIs(t, err, httpx.ErrValidation)
	_, err = svc.BuildReport(ctx, 2024, 1, 13)
	require.ErrorIs(t, err, httpx.ErrValidation)
	require.Equal(t, 0, repo.calls)
}

func TestBuildReportQueryFailure(t *testing.T) {
	ctx := context.Background()
	repo := &memoryReportsRepo{incomeErr: errors.New("relation missing")}
	svc := NewService(repo)

	report, err := svc.BuildReport(ctx, 2024, 1, 2)
	require.Error(t, err)
	require.Nil(t, report)
}

func TestBuildReportCategoryOrdering(t *testing.T) {
	ctx := context.Background()
	repo := &memoryReportsRepo{
		income: []AggregateRow{
			{Category: "Mantenimiento", Month: 1, Amount: 1},
			{Category: "Agua", Month: 1, Amount: 1},
		},
	}
	svc := NewService(repo)

	report, err := svc.BuildReport(ctx, 2024, 1, 1)
	require.NoError(t, err)
	require.Len(t, report.Income, 2)
	require.Equal(t, "Agua", report.Income[0].Category)
	require.Equal(t, "Mantenimiento", report.Income[1].Category)
}

func TestCategoryRowMarshalJSON(t *testing.T) {
	row := CategoryRow{
		Category: "Mantenimiento",
		Months:   []string{"Ene", "Feb"},
		Cells:    map[string]float64{"Ene": 100, "Feb": 200},
		Total:    300,
	}

	data, err := json.Marshal(row)
	require.NoError(t, err)
	require.JSONEq(t, `{"rubro":"Mantenimiento","Ene":100,"Feb":200,"total":300}`, string(data))
	// month keys stay in range order between rubro and total
	require.Equal(t, `{"rubro":"Mantenimiento","Ene":100,"Feb":200,"total":300}`, string(data))
}
