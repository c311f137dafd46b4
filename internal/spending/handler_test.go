package spending

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
	r.Route("/api", h.MountCrudRoutes)
	return r
}

func TestExpenseReportEndpoint(t *testing.T) {
	repo := newMemorySpendingRepo()
	seedExpenses(t, repo)
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/expense-report?yearDesde=2024&monthDesde=1&yearHasta=2024&monthHasta=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Gastos []struct {
			FechaGasto      string  `json:"fechaGasto"`
			TipoGasto       string  `json:"tipoGasto"`
			Concepto        string  `json:"concepto"`
			Monto           float64 `json:"monto"`
			ProveedorNombre string  `json:"proveedorNombre"`
			ProveedorNit    string  `json:"proveedorNit"`
		} `json:"gastos"`
		TotalGastos float64 `json:"totalGastos"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Gastos, 2)
	require.Equal(t, "10-Ene-2024", body.Gastos[0].FechaGasto)
	require.Equal(t, "Jardineria", body.Gastos[0].TipoGasto)
	require.Equal(t, "Servicios Garcia", body.Gastos[0].ProveedorNombre)
	require.Equal(t, "1234567-8", body.Gastos[0].ProveedorNit)
	require.Equal(t, 750.0, body.TotalGastos)
}

func TestExpenseReportEndpointFilters(t *testing.T) {
	repo := newMemorySpendingRepo()
	seedExpenses(t, repo)
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/expense-report?yearDesde=2023&monthDesde=1&yearHasta=2024&monthHasta=12&tipoGastoId=JARDINERIA&nombreProveedor=garcia", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Gastos      []map[string]any `json:"gastos"`
		TotalGastos float64          `json:"totalGastos"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Gastos, 2)
	require.Equal(t, 500.0, body.TotalGastos)
}

func TestExpenseReportEndpointInvertedRange(t *testing.T) {
	repo := newMemorySpendingRepo()
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/expense-report?yearDesde=2024&monthDesde=5&yearHasta=2024&monthHasta=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, 0, repo.detailCalls)
}

func TestExpenseReportEndpointMalformedParams(t *testing.T) {
	repo := newMemorySpendingRepo()
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/expense-report?yearDesde=x&monthDesde=1&yearHasta=2024&monthHasta=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, 0, repo.detailCalls)
}

func TestExpenseTypesEndpoint(t *testing.T) {
	repo := newMemorySpendingRepo()
	seedExpenses(t, repo)
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/expense-report/types", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body []struct {
		ID     string `json:"id"`
		Nombre string `json:"nombre"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	for _, entry := range body {
		require.Equal(t, entry.Nombre, entry.ID)
	}
}
