package spending

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/altozano/altozano/internal/platform/httpx"
	"github.com/altozano/altozano/internal/shared"
)

const dateLayout = "2006-01-02"

// Handler exposes the expense endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountCrudRoutes registers the expense CRUD routes.
func (h *Handler) MountCrudRoutes(r chi.Router) {
	r.Route("/gastos", func(r chi.Router) {
		r.Get("/", h.listExpenses)
		r.Post("/", h.createExpense)
		r.Get("/{id}", h.getExpense)
		r.Put("/{id}", h.updateExpense)
		r.Delete("/{id}", h.deleteExpense)
	})
}

// MountRootRoutes registers the expense report endpoints.
func (h *Handler) MountRootRoutes(r chi.Router) {
	r.Get("/expense-report", h.detailReport)
	r.Get("/expense-report/types", h.expenseTypes)
}

type expenseDetailJSON struct {
	FechaGasto      string  `json:"fechaGasto"`
	TipoGasto       string  `json:"tipoGasto"`
	Concepto        string  `json:"concepto"`
	Monto           float64 `json:"monto"`
	ProveedorNombre string  `json:"proveedorNombre"`
	ProveedorNit    string  `json:"proveedorNit"`
}

func (h *Handler) detailReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fromYear, err1 := strconv.Atoi(q.Get("yearDesde"))
	fromMonth, err2 := strconv.Atoi(q.Get("monthDesde"))
	toYear, err3 := strconv.Atoi(q.Get("yearHasta"))
	toMonth, err4 := strconv.Atoi(q.Get("monthHasta"))
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed date range parameters")
		return
	}

	filter := DetailFilter{
		FromMonth:  fromMonth,
		FromYear:   fromYear,
		ToMonth:    toMonth,
		ToYear:     toYear,
		Type:       q.Get("tipoGastoId"),
		VendorName: q.Get("nombreProveedor"),
	}

	report, err := h.service.DetailReport(r.Context(), filter)
	if err != nil {
		if !httpx.IsValidation(err) {
			h.logger.Error("expense detail report", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}

	gastos := make([]expenseDetailJSON, 0, len(report.Expenses))
	for _, det := range report.Expenses {
		gastos = append(gastos, expenseDetailJSON{
			FechaGasto:      shared.FormatShortDate(det.Date),
			TipoGasto:       det.Type,
			Concepto:        det.Description,
			Monto:           det.Amount,
			ProveedorNombre: det.VendorName,
			ProveedorNit:    det.VendorNIT,
		})
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"gastos":      gastos,
		"totalGastos": report.Total,
	})
}

type expenseTypeJSON struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// Expense types are free-form strings on each expense row, so the type
// name doubles as its identifier.
func (h *Handler) expenseTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.ExpenseTypes(r.Context())
	if err != nil {
		h.logger.Error("expense types", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	out := make([]expenseTypeJSON, 0, len(types))
	for _, t := range types {
		out = append(out, expenseTypeJSON{ID: t, Nombre: t})
	}
	httpx.JSON(w, http.StatusOK, out)
}

type expensePayload struct {
	CondominioID int64   `json:"condominioId" validate:"required"`
	ProveedorID  int64   `json:"proveedorId" validate:"required"`
	Concepto     string  `json:"concepto" validate:"required"`
	Monto        float64 `json:"monto" validate:"required,gt=0"`
	FechaGasto   string  `json:"fechaGasto" validate:"required,datetime=2006-01-02"`
	TipoGasto    string  `json:"tipoGasto" validate:"required"`
}

type expenseResponse struct {
	ID           int64   `json:"id"`
	CondominioID int64   `json:"condominioId"`
	ProveedorID  int64   `json:"proveedorId"`
	Concepto     string  `json:"concepto"`
	Monto        float64 `json:"monto"`
	FechaGasto   string  `json:"fechaGasto"`
	TipoGasto    string  `json:"tipoGasto"`
}

func toExpenseResponse(e Expense) expenseResponse {
	return expenseResponse{
		ID:           e.ID,
		CondominioID: e.CondominiumID,
		ProveedorID:  e.VendorID,
		Concepto:     e.Description,
		Monto:        e.Amount,
		FechaGasto:   e.Date.Format(dateLayout),
		TipoGasto:    e.Type,
	}
}

func (p expensePayload) toInput() ExpenseInput {
	date, _ := time.Parse(dateLayout, p.FechaGasto)
	return ExpenseInput{
		CondominiumID: p.CondominioID,
		VendorID:      p.ProveedorID,
		Description:   p.Concepto,
		Amount:        p.Monto,
		Date:          date,
		Type:          p.TipoGasto,
	}
}

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.ListExpenses(r.Context())
	if err != nil {
		h.logger.Error("list expenses", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	out := make([]expenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) getExpense(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid expense id")
		return
	}
	e, err := h.service.GetExpense(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toExpenseResponse(*e))
}

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	var payload expensePayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	e, err := h.service.CreateExpense(r.Context(), payload.toInput())
	if err != nil {
		h.logger.Error("create expense", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toExpenseResponse(*e))
}

func (h *Handler) updateExpense(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid expense id")
		return
	}
	var payload expensePayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	if err := h.service.UpdateExpense(r.Context(), id, payload.toInput()); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "gasto actualizado"})
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid expense id")
		return
	}
	if err := h.service.DeleteExpense(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "gasto eliminado"})
}
