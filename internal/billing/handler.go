package billing

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/altozano/altozano/internal/platform/httpx"
)

const dateLayout = "2006-01-02"

// Handler exposes the billing endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountCrudRoutes registers the dues, payments and fines CRUD routes.
func (h *Handler) MountCrudRoutes(r chi.Router) {
	r.Route("/cuotas", func(r chi.Router) {
		r.Get("/", h.listDues)
		r.Post("/", h.createDue)
		r.Get("/pendientes/residencia/{residenceId}", h.filteredDues)
		r.Get("/{id}", h.getDue)
		r.Put("/{id}", h.updateDue)
		r.Delete("/{id}", h.deleteDue)
	})
	r.Route("/pagos", func(r chi.Router) {
		r.Get("/", h.listPayments)
		r.Post("/", h.createPayment)
		r.Get("/{id}", h.getPayment)
		r.Put("/{id}", h.updatePayment)
		r.Delete("/{id}", h.deletePayment)
	})
	r.Route("/multas", func(r chi.Router) {
		r.Get("/", h.listFines)
		r.Post("/", h.createFine)
		r.Get("/{id}", h.getFine)
		r.Put("/{id}", h.updateFine)
		r.Delete("/{id}", h.deleteFine)
	})
}

// MountRootRoutes registers the balance, income detail and fee generation
// endpoints.
func (h *Handler) MountRootRoutes(r chi.Router) {
	r.Get("/pending-balance/{residenceId}", h.pendingBalance)
	r.Get("/residence-income/{residenceId}", h.residenceIncome)
	r.Post("/fees/generate", h.generateDues)
}

type pendingDueJSON struct {
	ID        int64   `json:"id"`
	TipoCobro string  `json:"tipoCobro"`
	Monto     float64 `json:"monto"`
}

type pendingFineJSON struct {
	ID          int64   `json:"id"`
	Descripcion string  `json:"descripcion"`
	Monto       float64 `json:"monto"`
	CuotaID     int64   `json:"cuotaId"`
}

type pendingBalanceResponse struct {
	Success          bool              `json:"success"`
	ResidenciaID     int64             `json:"residenceId"`
	NombreResidencia string            `json:"nombreResidencia"`
	CuotasPendientes []pendingDueJSON  `json:"cuotasPendientes"`
	MultasPendientes []pendingFineJSON `json:"multasPendientes"`
	SaldoPendiente   float64           `json:"saldoPendiente"`
}

func (h *Handler) pendingBalance(w http.ResponseWriter, r *http.Request) {
	residenceID, err := strconv.ParseInt(chi.URLParam(r, "residenceId"), 10, 64)
	if err != nil || residenceID <= 0 {
		httpx.JSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Identificador de residencia inválido."})
		return
	}

	balance, err := h.service.ComputePendingBalance(r.Context(), residenceID)
	if err != nil {
		h.logger.Error("compute pending balance", slog.Any("error", err), slog.Int64("residence_id", residenceID))
		httpx.JSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Error al calcular saldo pendiente."})
		return
	}

	dues := make([]pendingDueJSON, 0, len(balance.Dues))
	for _, d := range balance.Dues {
		dues = append(dues, pendingDueJSON{ID: d.ID, TipoCobro: d.DueType, Monto: d.Amount})
	}
	fines := make([]pendingFineJSON, 0, len(balance.Fines))
	for _, f := range balance.Fines {
		fines = append(fines, pendingFineJSON{ID: f.ID, Descripcion: f.Description, Monto: f.Amount, CuotaID: f.DueID})
	}

	httpx.JSON(w, http.StatusOK, pendingBalanceResponse{
		Success:          true,
		ResidenciaID:     balance.ResidenceID,
		NombreResidencia: balance.ResidenceName,
		CuotasPendientes: dues,
		MultasPendientes: fines,
		SaldoPendiente:   balance.Total,
	})
}

type filteredDueJSON struct {
	ID          int64   `json:"id"`
	TipoCobro   string  `json:"tipoCobro"`
	Periodo     string  `json:"periodo"`
	Monto       float64 `json:"monto"`
	FechaLimite string  `json:"fechaLimite,omitempty"`
}

func (h *Handler) filteredDues(w http.ResponseWriter, r *http.Request) {
	residenceID, err := strconv.ParseInt(chi.URLParam(r, "residenceId"), 10, 64)
	if err != nil || residenceID <= 0 {
		httpx.JSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Identificador de residencia inválido."})
		return
	}

	filtered, err := h.service.FilteredDuesByResidence(r.Context(), residenceID)
	if err != nil {
		h.logger.Error("filter dues by residence", slog.Any("error", err), slog.Int64("residence_id", residenceID))
		httpx.JSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Error al filtrar las cuotas"})
		return
	}

	pendientes := make([]filteredDueJSON, 0, len(filtered.Dues))
	for _, d := range filtered.Dues {
		pendientes = append(pendientes, filteredDueJSON{
			ID:          d.ID,
			TipoCobro:   d.DueType,
			Periodo:     d.Period,
			Monto:       d.Amount,
			FechaLimite: formatDatePtr(d.DueLimit),
		})
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"pendientes":   pendientes,
		"totalVencido": filtered.OverdueTotal,
	})
}

type incomeDetailJSON struct {
	IDCuota   int64   `json:"idCuota"`
	TipoCobro string  `json:"tipoCobro"`
	TipoPago  string  `json:"tipoPago"`
	Monto     float64 `json:"monto"`
}

func (h *Handler) residenceIncome(w http.ResponseWriter, r *http.Request) {
	residenceID, err := strconv.ParseInt(chi.URLParam(r, "residenceId"), 10, 64)
	if err != nil || residenceID <= 0 {
		httpx.JSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Identificador de residencia inválido."})
		return
	}

	details, err := h.service.ResidenceIncome(r.Context(), residenceID)
	if err != nil {
		h.logger.Error("residence income", slog.Any("error", err), slog.Int64("residence_id", residenceID))
		httpx.JSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Error al obtener detalles de pagos."})
		return
	}

	ingresos := make([]incomeDetailJSON, 0, len(details))
	for _, det := range details {
		ingresos = append(ingresos, incomeDetailJSON{IDCuota: det.DueID, TipoCobro: det.DueType, TipoPago: det.PaymentMethod, Monto: det.Amount})
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true, "ingresos": ingresos})
}

func (h *Handler) generateDues(w http.ResponseWriter, r *http.Request) {
	if err := h.service.GenerateMonthlyDues(r.Context()); err != nil {
		h.logger.Error("generate dues", slog.Any("error", err))
		httpx.JSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Error al generar cuotas",
			"error":   err.Error(),
		})
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Cuotas generadas exitosamente"})
}

type duePayload struct {
	ResidenciaID    int64   `json:"residenciaId" validate:"required"`
	TipoCobroID     int64   `json:"tipoCobroId" validate:"required"`
	Periodo         string  `json:"periodo" validate:"required"`
	Monto           float64 `json:"monto" validate:"required,gt=0"`
	FechaGeneracion string  `json:"fechaGeneracion" validate:"omitempty,datetime=2006-01-02"`
	Estado          string  `json:"estado"`
	FechaLimite     string  `json:"fechaLimite" validate:"omitempty,datetime=2006-01-02"`
}

type dueResponse struct {
	ID              int64   `json:"id"`
	ResidenciaID    int64   `json:"residenciaId"`
	TipoCobroID     int64   `json:"tipoCobroId"`
	Periodo         string  `json:"periodo"`
	Monto           float64 `json:"monto"`
	FechaGeneracion string  `json:"fechaGeneracion,omitempty"`
	Estado          string  `json:"estado"`
	FechaLimite     string  `json:"fechaLimite,omitempty"`
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func parseDatePtr(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil
	}
	return &t
}

func toDueResponse(d Due) dueResponse {
	return dueResponse{
		ID:              d.ID,
		ResidenciaID:    d.ResidenceID,
		TipoCobroID:     d.DueTypeID,
		Periodo:         d.Period,
		Monto:           d.Amount,
		FechaGeneracion: formatDatePtr(d.GeneratedAt),
		Estado:          string(d.Status),
		FechaLimite:     formatDatePtr(d.DueLimit),
	}
}

func (p duePayload) toInput() DueInput {
	return DueInput{
		ResidenceID: p.ResidenciaID,
		DueTypeID:   p.TipoCobroID,
		Period:      p.Periodo,
		Amount:      p.Monto,
		GeneratedAt: parseDatePtr(p.FechaGeneracion),
		Status:      DueStatus(p.Estado),
		DueLimit:    parseDatePtr(p.FechaLimite),
	}
}

func (h *Handler) listDues(w http.ResponseWriter, r *http.Request) {
	dues, err := h.service.ListDues(r.Context())
	if err != nil {
		h.logger.Error("list dues", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	out := make([]dueResponse, 0, len(dues))
	for _, d := range dues {
		out = append(out, toDueResponse(d))
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) getDue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid due id")
		return
	}
	d, err := h.service.GetDue(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toDueResponse(*d))
}

func (h *Handler) createDue(w http.ResponseWriter, r *http.Request) {
	var payload duePayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	d, err := h.service.CreateDue(r.Context(), payload.toInput())
	if err != nil {
		h.logger.Error("create due", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toDueResponse(*d))
}

func (h *Handler) updateDue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid due id")
		return
	}
	var payload duePayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	if err := h.service.UpdateDue(r.Context(), id, payload.toInput()); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "cuota actualizada"})
}

func (h *Handler) deleteDue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid due id")
		return
	}
	if err := h.service.DeleteDue(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "cuota eliminada"})
}

type paymentPayload struct {
	CuotaID     int64   `json:"cuotaId" validate:"required"`
	FormaPagoID int64   `json:"formaPagoId" validate:"required"`
	FechaPago   string  `json:"fechaPago" validate:"omitempty,datetime=2006-01-02"`
	Monto       float64 `json:"monto" validate:"required,gt=0"`
	Referencia  string  `json:"referencia"`
}

type paymentResponse struct {
	ID          int64   `json:"id"`
	CuotaID     int64   `json:"cuotaId"`
	FormaPagoID int64   `json:"formaPagoId"`
	FechaPago   string  `json:"fechaPago"`
	Monto       float64 `json:"monto"`
	Referencia  string  `json:"referencia"`
}

func toPaymentResponse(p Payment) paymentResponse {
	return paymentResponse{
		ID:          p.ID,
		CuotaID:     p.DueID,
		FormaPagoID: p.PaymentMethodID,
		FechaPago:   p.PaidAt.Format(dateLayout),
		Monto:       p.Amount,
		Referencia:  p.Reference,
	}
}

func (p paymentPayload) toInput() PaymentInput {
	var paidAt time.Time
	if p.FechaPago != "" {
		paidAt, _ = time.Parse(dateLayout, p.FechaPago)
	}
	return PaymentInput{
		DueID:           p.CuotaID,
		PaymentMethodID: p.FormaPagoID,
		PaidAt:          paidAt,
		Amount:          p.Monto,
		Reference:       p.Referencia,
	}
}

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.ListPayments(r.Context())
	if err != nil {
		h.logger.Error("list payments", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	out := make([]paymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentResponse(p))
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) getPayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid payment id")
		return
	}
	p, err := h.service.GetPayment(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toPaymentResponse(*p))
}

func (h *Handler) createPayment(w http.ResponseWriter, r *http.Request) {
	var payload paymentPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	p, err := h.service.RegisterPayment(r.Context(), payload.toInput())
	if err != nil {
		h.logger.Error("register payment", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toPaymentResponse(*p))
}

func (h *Handler) updatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid payment id")
		return
	}
	var payload paymentPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	if err := h.service.UpdatePayment(r.Context(), id, payload.toInput()); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "pago actualizado"})
}

func (h *Handler) deletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid payment id")
		return
	}
	if err := h.service.DeletePayment(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "pago eliminado"})
}

type finePayload struct {
	CuotaID         int64   `json:"cuotaId" validate:"required"`
	Descripcion     string  `json:"descripcion" validate:"required"`
	Monto           float64 `json:"monto" validate:"required,gt=0"`
	FechaGeneracion string  `json:"fechaGeneracion" validate:"omitempty,datetime=2006-01-02"`
	Estado          string  `json:"estado"`
}

type fineResponse struct {
	ID              int64   `json:"id"`
	CuotaID         int64   `json:"cuotaId"`
	Descripcion     string  `json:"descripcion"`
	Monto           float64 `json:"monto"`
	FechaGeneracion string  `json:"fechaGeneracion"`
	Estado          string  `json:"estado"`
}

func toFineResponse(f Fine) fineResponse {
	return fineResponse{
		ID:              f.ID,
		CuotaID:         f.DueID,
		Descripcion:     f.Description,
		Monto:           f.Amount,
		FechaGeneracion: f.GeneratedAt.Format(dateLayout),
		Estado:          string(f.Status),
	}
}

func (p finePayload) toInput() FineInput {
	var generatedAt time.Time
	if p.FechaGeneracion != "" {
		generatedAt, _ = time.Parse(dateLayout, p.FechaGeneracion)
	}
	return FineInput{
		DueID:       p.CuotaID,
		Description: p.Descripcion,
		Amount:      p.Monto,
		GeneratedAt: generatedAt,
		Status:      FineStatus(p.Estado),
	}
}

func (h *Handler) listFines(w http.ResponseWriter, r *http.Request) {
	fines, err := h.service.ListFines(r.Context())
	if err != nil {
		h.logger.Error("list fines", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	out := make([]fineResponse, 0, len(fines))
	for _, f := range fines {
		out = append(out, toFineResponse(f))
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) getFine(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid fine id")
		return
	}
	f, err := h.service.GetFine(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toFineResponse(*f))
}

func (h *Handler) createFine(w http.ResponseWriter, r *http.Request) {
	var payload finePayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	f, err := h.service.CreateFine(r.Context(), payload.toInput())
	if err != nil {
		h.logger.Error("create fine", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toFineResponse(*f))
}

func (h *Handler) updateFine(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid fine id")
		return
	}
	var payload finePayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	if err := h.service.UpdateFine(r.Context(), id, payload.toInput()); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "multa actualizada"})
}

func (h *Handler) deleteFine(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid fine id")
		return
	}
	if err := h.service.DeleteFine(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "multa eliminada"})
}
