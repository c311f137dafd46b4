package reports

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/altozano/altozano/internal/platform/httpx"
)

// Handler exposes the income and expense matrix report endpoint.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRootRoutes registers the report route.
func (h *Handler) MountRootRoutes(r chi.Router) {
	r.Get("/income-expense-report", h.incomeExpenseReport)
}

type matrixReportResponse struct {
	MesesReporte  []string      `json:"mesesReporte"`
	Ingresos      []CategoryRow `json:"ingresos"`
	Egresos       []CategoryRow `json:"egresos"`
	TotalIngresos float64       `json:"totalIngresos"`
	TotalEgresos  float64       `json:"totalEgresos"`
	BalanceNeto   float64       `json:"balanceNeto"`
}

func (h *Handler) incomeExpenseReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, err1 := strconv.Atoi(q.Get("year"))
	monthFrom, err2 := strconv.Atoi(q.Get("monthDesde"))
	monthTo, err3 := strconv.Atoi(q.Get("monthHasta"))
	if err1 != nil || err2 != nil || err3 != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed report parameters")
		return
	}

	report, err := h.service.BuildReport(r.Context(), year, monthFrom, monthTo)
	if err != nil {
		if !httpx.IsValidation(err) {
			h.logger.Error("income expense report", slog.Any("error", err),
				slog.Int("year", year), slog.Int("month_from", monthFrom), slog.Int("month_to", monthTo))
		}
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, matrixReportResponse{
		MesesReporte:  report.Months,
		Ingresos:      report.Income,
		Egresos:       report.Expenses,
		TotalIngresos: report.TotalIncome,
		TotalEgresos:  report.TotalExpenses,
		BalanceNeto:   report.NetBalance,
	})
}
