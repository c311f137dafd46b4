package billing

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	_ "github.com/altozano/altozano/testing"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(repo RepositoryPort) http.Handler {
	svc := NewService(repo, nil, 0, nil)
	h := NewHandler(newTestLogger(), svc)
	r := chi.NewRouter()
	h.MountRootRoutes(r)
	r.Route("/api", h.MountCrudRoutes)
	return r
}

func TestPendingBalanceEndpoint(t *testing.T) {
	repo := newMemoryBillingRepo()
	seedPendingResidence(t, repo)
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/pending-balance/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success          bool    `json:"success"`
		ResidenceID      int64   `json:"residenceId"`
		NombreResidencia string  `json:"nombreResidencia"`
		CuotasPendientes []struct {
			ID        int64   `json:"id"`
			TipoCobro string  `json:"tipoCobro"`
			Monto     float64 `json:"monto"`
		} `json:"cuotasPendientes"`
		MultasPendientes []struct {
			ID          int64   `json:"id"`
			Descripcion string  `json:"descripcion"`
			Monto       float64 `json:"monto"`
			CuotaID     int64   `json:"cuotaId"`
		} `json:"multasPendientes"`
		SaldoPendiente float64 `json:"saldoPendiente"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Equal(t, int64(7), body.ResidenceID)
	require.Equal(t, "Casa 7", body.NombreResidencia)
	require.Len(t, body.CuotasPendientes, 1)
	require.Equal(t, 150.0, body.CuotasPendientes[0].Monto)
	require.Len(t, body.MultasPendientes, 1)
	require.Equal(t, int64(1), body.MultasPendientes[0].CuotaID)
	require.Equal(t, 200.0, body.SaldoPendiente)
}

func TestPendingBalanceEndpointUnknownResidence(t *testing.T) {
	repo := newMemoryBillingRepo()
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/pending-balance/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, true, body["success"])
	require.Equal(t, UnknownResidenceName, body["nombreResidencia"])
	require.Equal(t, 0.0, body["saldoPendiente"])
}

func TestPendingBalanceEndpointBadID(t *testing.T) {
	router := newTestRouter(newMemoryBillingRepo())

	req := httptest.NewRequest(http.MethodGet, "/pending-balance/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPendingBalanceEndpointQueryFailure(t *testing.T) {
	repo := newMemoryBillingRepo()
	repo.residenceNames[7] = "Casa 7"
	repo.failErr = errors.New("boom")
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/pending-balance/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, false, body["success"])
}

func TestFilteredDuesEndpoint(t *testing.T) {
	repo := newMemoryBillingRepo()
	seedPendingResidence(t, repo)
	limit := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	_, err := repo.CreateDue(context.Background(), DueInput{
		ResidenceID: 7, DueTypeID: 1, Period: "2023-11", Amount: 120, Status: DueStatusOverdue, DueLimit: &limit,
	})
	require.NoError(t, err)
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/cuotas/pendientes/residencia/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Success    bool `json:"success"`
		Pendientes []struct {
			ID          int64   `json:"id"`
			TipoCobro   string  `json:"tipoCobro"`
			Periodo     string  `json:"periodo"`
			Monto       float64 `json:"monto"`
			FechaLimite string  `json:"fechaLimite"`
		} `json:"pendientes"`
		TotalVencido float64 `json:"totalVencido"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Len(t, body.Pendientes, 1)
	require.Equal(t, "2024-01", body.Pendientes[0].Periodo)
	require.Equal(t, 150.0, body.Pendientes[0].Monto)
	require.Equal(t, 120.0, body.TotalVencido)
}

func TestFilteredDuesEndpointBadID(t *testing.T) {
	router := newTestRouter(newMemoryBillingRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/cuotas/pendientes/residencia/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFilteredDuesEndpointQueryFailure(t *testing.T) {
	repo := newMemoryBillingRepo()
	repo.failErr = errors.New("boom")
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/cuotas/pendientes/residencia/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, false, body["success"])
}

func TestResidenceIncomeEndpoint(t *testing.T) {
	repo := newMemoryBillingRepo()
	seedPendingResidence(t, repo)
	_, err := repo.CreatePayment(context.Background(), PaymentInput{DueID: 1, PaymentMethodID: 1, PaidAt: time.Now(), Amount: 80, Reference: "r1"})
	require.NoError(t, err)
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/residence-income/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Success  bool `json:"success"`
		Ingresos []struct {
			IDCuota   int64   `json:"idCuota"`
			TipoCobro string  `json:"tipoCobro"`
			TipoPago  string  `json:"tipoPago"`
			Monto     float64 `json:"monto"`
		} `json:"ingresos"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Len(t, body.Ingresos, 1)
	require.Equal(t, int64(1), body.Ingresos[0].IDCuota)
	require.Equal(t, 80.0, body.Ingresos[0].Monto)
}

func TestGenerateDuesEndpoint(t *testing.T) {
	repo := newMemoryBillingRepo()
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/fees/generate", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, repo.generateCalls)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body["message"])
}

func TestGenerateDuesEndpointFailure(t *testing.T) {
	repo := newMemoryBillingRepo()
	repo.generateErr = errors.New("procedimiento fallido")
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/fees/generate", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body["message"])
	require.Contains(t, body["error"], "procedimiento fallido")
}

func TestDueCrudEndpoints(t *testing.T) {
	repo := newMemoryBillingRepo()
	router := newTestRouter(repo)

	payload := `{"residenciaId":7,"tipoCobroId":1,"periodo":"2024-01","monto":150,"estado":"Pendiente"}`
	req := httptest.NewRequest(http.MethodPost, "/api/cuotas/", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/cuotas/1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "2024-01", body["periodo"])
	require.Equal(t, 150.0, body["monto"])

	req = httptest.NewRequest(http.MethodGet, "/api/cuotas/99", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
