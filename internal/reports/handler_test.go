package reports

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	_ "github.com/altozano/altozano/testing"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(repo RepositoryPort) http.Handler {
	h := NewHandler(newTestLogger(), NewService(repo))
	r := chi.NewRouter()
	h.MountRootRoutes(r)
	return r
}

func TestIncomeExpenseReportEndpoint(t *testing.T) {
	repo := &memoryReportsRepo{
		income: []AggregateRow{
			{Category: "Mantenimiento", Month: 1, Amount: 100},
			{Category: "Mantenimiento", Month: 2, Amount: 200},
		},
		expenses: []AggregateRow{
			{Category: "Jardineria", Month: 1, Amount: 40},
		},
	}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/income-expense-report?year=2024&monthDesde=1&monthHasta=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		MesesReporte  []string          `json:"mesesReporte"`
		Ingresos      []json.RawMessage `json:"ingresos"`
		Egresos       []json.RawMessage `json:"egresos"`
		TotalIngresos float64           `json:"totalIngresos"`
		TotalEgresos  float64           `json:"totalEgresos"`
		BalanceNeto   float64           `json:"balanceNeto"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, []string{"Ene", "Feb"}, body.MesesReporte)
	require.Len(t, body.Ingresos, 1)
	require.JSONEq(t, `{"rubro":"Mantenimiento","Ene":100,"Feb":200,"total":300}`, string(body.Ingresos[0]))
	require.Len(t, body.Egresos, 1)
	require.JSONEq(t, `{"rubro":"Jardineria","Ene":40,"Feb":0,"total":40}`, string(body.Egresos[0]))
	require.Equal(t, 300.0, body.TotalIngresos)
	require.Equal(t, 40.0, body.TotalEgresos)
	require.Equal(t, 260.0, body.BalanceNeto)
}

func TestIncomeExpenseReportEndpointEmptyStore(t *testing.T) {
	router := newTestRouter(&memoryReportsRepo{})

	req := httptest.NewRequest(http.MethodGet, "/income-expense-report?year=2024&monthDesde=1&monthHasta=3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		MesesReporte []string          `json:"mesesReporte"`
		Ingresos     []json.RawMessage `json:"ingresos"`
		Egresos      []json.RawMessage `json:"egresos"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.MesesReporte, 3)
	require.Empty(t, body.Ingresos)
	require.NotNil(t, body.Ingresos)
}

func TestIncomeExpenseReportEndpointInvertedRange(t *testing.T) {
	repo := &memoryReportsRepo{}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/income-expense-report?year=2024&monthDesde=5&monthHasta=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, 0, repo.calls)
}

func TestIncomeExpenseReportEndpointNonNumeric(t *testing.T) {
	repo := &memoryReportsRepo{}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/income-expense-report?year=abc&monthDesde=1&monthHasta=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, 0, repo.calls)
}
