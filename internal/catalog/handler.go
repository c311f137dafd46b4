package catalog

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/altozano/altozano/internal/platform/httpx"
)

// Handler exposes the master data CRUD endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers the catalog routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/condominios", func(r chi.Router) {
		r.Get("/", h.listCondominiums)
		r.Post("/", h.createCondominium)
		r.Get("/{id}", h.getCondominium)
		r.Put("/{id}", h.updateCondominium)
		r.Delete("/{id}", h.deleteCondominium)
	})
	r.Route("/residencias", func(r chi.Router) {
		r.Get("/", h.listResidences)
		r.Post("/", h.createResidence)
		r.Get("/{id}", h.getResidence)
		r.Put("/{id}", h.updateResidence)
		r.Delete("/{id}", h.deleteResidence)
	})
	r.Route("/tiposcobro", func(r chi.Router) {
		r.Get("/", h.listDueTypes)
		r.Post("/", h.createDueType)
		r.Get("/{id}", h.getDueType)
		r.Put("/{id}", h.updateDueType)
		r.Delete("/{id}", h.deleteDueType)
	})
	r.Route("/formaspago", func(r chi.Router) {
		r.Get("/", h.listPaymentMethods)
		r.Post("/", h.createPaymentMethod)
		r.Get("/{id}", h.getPaymentMethod)
		r.Put("/{id}", h.updatePaymentMethod)
		r.Delete("/{id}", h.deletePaymentMethod)
	})
	r.Route("/proveedores", func(r chi.Router) {
		r.Get("/", h.listVendors)
		r.Post("/", h.createVendor)
		r.Get("/{id}", h.getVendor)
		r.Put("/{id}", h.updateVendor)
		r.Delete("/{id}", h.deleteVendor)
	})
	r.Route("/notificaciones", func(r chi.Router) {
		r.Get("/", h.listNotifications)
		r.Post("/", h.createNotification)
		r.Get("/{id}", h.getNotification)
		r.Delete("/{id}", h.deleteNotification)
	})
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

type condominiumPayload struct {
	Nombre    string `json:"nombre" validate:"required"`
	Direccion string `json:"direccion"`
}

type condominiumResponse struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
}

func toCondominiumResponse(c Condominium) condominiumResponse {
	return condominiumResponse{ID: c.ID, Nombre: c.Name, Direccion: c.Address}
}

func (h *Handler) listCondominiums(w http.ResponseWriter, r *http.Request) {
	condominiums, err := h.service.ListCondominiums(r.Context())
	if err != nil {
		h.logger.Error("list condominiums", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	out := make([]condominiumResponse, 0, len(condominiums))
	for _, c := range condominiums {
		out = append(out, toCondominiumResponse(c))
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) getCondominium(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid condominium id")
		return
	}
	c, err := h.service.GetCondominium(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toCondominiumResponse(*c))
}

func (h *Handler) createCondominium(w http.ResponseWriter, r *http.Request) {
	var payload condominiumPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	c, err := h.service.CreateCondominium(r.Context(), CondominiumInput{
		Name:    payload.Nombre,
		Address: payload.Direccion,
	})
	if err != nil {
		h.logger.Error("create condominium", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toCondominiumResponse(*c))
}

func (h *Handler) updateCondominium(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid condominium id")
		return
	}
	var payload condominiumPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	err := h.service.UpdateCondominium(r.Context(), id, CondominiumInput{
		Name:    payload.Nombre,
		Address: payload.Direccion,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "condominio actualizado"})
}

func (h *Handler) deleteCondominium(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid condominium id")
		return
	}
	if err := h.service.DeleteCondominium(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "condominio eliminado"})
}

type residencePayload struct {
	UsuarioID     int64  `json:"usuarioId" validate:"required"`
	Nombre        string `json:"nombre" validate:"required"`
	Direccion     string `json:"direccion"`
	Correo        string `json:"correo" validate:"omitempty,email"`
	Telefono      string `json:"telefono"`
	CondominioID  int64  `json:"condominioId" validate:"required"`
}

type residenceResponse struct {
	ID           int64  `json:"id"`
	UsuarioID    int64  `json:"usuarioId"`
	Nombre       string `json:"nombre"`
	Direccion    string `json:"direccion"`
	Correo       string `json:"correo"`
	Telefono     string `json:"telefono"`
	CondominioID int64  `json:"condominioId"`
}

func toResidenceResponse(res Residence) residenceResponse {
	return residenceResponse{
		ID:           res.ID,
		UsuarioID:    res.UserID,
		Nombre:       res.Name,
		Direccion:    res.Address,
		Correo:       res.Email,
		Telefono:     res.Phone,
		CondominioID: res.CondominiumID,
	}
}

func (h *Handler) listResidences(w http.ResponseWriter, r *http.Request) {
	residences, err := h.service.ListResidences(r.Context())
	if err != nil {
		h.logger.Error("list residences", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	out := make([]residenceResponse, 0, len(residences))
	for _, res := range residences {
		out = append(out, toResidenceResponse(res))
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) getResidence(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid residence id")
		return
	}
	res, err := h.service.GetResidence(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResidenceResponse(*res))
}

func (h *Handler) createResidence(w http.ResponseWriter, r *http.Request) {
	var payload residencePayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	res, err := h.service.CreateResidence(r.Context(), ResidenceInput{
		UserID:        payload.UsuarioID,
		Name:          payload.Nombre,
		Address:       payload.Direccion,
		Email:         payload.Correo,
		Phone:         payload.Telefono,
		CondominiumID: payload.CondominioID,
	})
	if err != nil {
		h.logger.Error("create residence", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toResidenceResponse(*res))
}

func (h *Handler) updateResidence(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid residence id")
		return
	}
	var payload residencePayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	err := h.service.UpdateResidence(r.Context(), id, ResidenceInput{
		UserID:        payload.UsuarioID,
		Name:          payload.Nombre,
		Address:       payload.Direccion,
		Email:         payload.Correo,
		Phone:         payload.Telefono,
		CondominiumID: payload.CondominioID,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "residencia actualizada"})
}

func (h *Handler) deleteResidence(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid residence id")
		return
	}
	if err := h.service.DeleteResidence(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "residencia eliminada"})
}

type dueTypePayload struct {
	Nombre      string `json:"nombre" validate:"required"`
	Descripcion string `json:"descripcion"`
}

type dueTypeResponse struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

func (h *Handler) listDueTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.ListDueTypes(r.Context())
	if err != nil {
		h.logger.Error("list due types", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	out := make([]dueTypeResponse, 0, len(types))
	for _, dt := range types {
		out = append(out, dueTypeResponse{ID: dt.ID, Nombre: dt.Name, Descripcion: dt.Description})
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) getDueType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid due type id")
		return
	}
	dt, err := h.service.GetDueType(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dueTypeResponse{ID: dt.ID, Nombre: dt.Name, Descripcion: dt.Description})
}

func (h *Handler) createDueType(w http.ResponseWriter, r *http.Request) {
	var payload dueTypePayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	dt, err := h.service.CreateDueType(r.Context(), DueTypeInput{Name: payload.Nombre, Description: payload.Descripcion})
	if err != nil {
		h.logger.Error("create due type", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, dueTypeResponse{ID: dt.ID, Nombre: dt.Name, Descripcion: dt.Description})
}

func (h *Handler) updateDueType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid due type id")
		return
	}
	var payload dueTypePayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	if err := h.service.UpdateDueType(r.Context(), id, DueTypeInput{Name: payload.Nombre, Description: payload.Descripcion}); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "tipo de cobro actualizado"})
}

func (h *Handler) deleteDueType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid due type id")
		return
	}
	if err := h.service.DeleteDueType(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "tipo de cobro eliminado"})
}

type paymentMethodPayload struct {
	Nombre string `json:"nombre" validate:"required"`
}

type paymentMethodResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

func (h *Handler) listPaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.service.ListPaymentMethods(r.Context())
	if err != nil {
		h.logger.Error("list payment methods", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	out := make([]paymentMethodResponse, 0, len(methods))
	for _, pm := range methods {
		out = append(out, paymentMethodResponse{ID: pm.ID, Nombre: pm.Name})
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) getPaymentMethod(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid payment method id")
		return
	}
	pm, err := h.service.GetPaymentMethod(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, paymentMethodResponse{ID: pm.ID, Nombre: pm.Name})
}

func (h *Handler) createPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var payload paymentMethodPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	pm, err := h.service.CreatePaymentMethod(r.Context(), PaymentMethodInput{Name: payload.Nombre})
	if err != nil {
		h.logger.Error("create payment method", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, paymentMethodResponse{ID: pm.ID, Nombre: pm.Name})
}

func (h *Handler) updatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid payment method id")
		return
	}
	var payload paymentMethodPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	if err := h.service.UpdatePaymentMethod(r.Context(), id, PaymentMethodInput{Name: payload.Nombre}); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "forma de pago actualizada"})
}

func (h *Handler) deletePaymentMethod(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid payment method id")
		return
	}
	if err := h.service.DeletePaymentMethod(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "forma de pago eliminada"})
}

type vendorPayload struct {
	Nombre         string `json:"nombre" validate:"required"`
	NombreContacto string `json:"nombreContacto"`
	Telefono       string `json:"telefono"`
	NIT            string `json:"nit"`
}

type vendorResponse struct {
	ID             int64  `json:"id"`
	Nombre         string `json:"nombre"`
	NombreContacto string `json:"nombreContacto"`
	Telefono       string `json:"telefono"`
	NIT            string `json:"nit"`
}

func toVendorResponse(v Vendor) vendorResponse {
	return vendorResponse{ID: v.ID, Nombre: v.Name, NombreContacto: v.ContactName, Telefono: v.Phone, NIT: v.NIT}
}

func (h *Handler) listVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.service.ListVendors(r.Context())
	if err != nil {
		h.logger.Error("list vendors", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	out := make([]vendorResponse, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, toVendorResponse(v))
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) getVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid vendor id")
		return
	}
	v, err := h.service.GetVendor(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toVendorResponse(*v))
}

func (h *Handler) createVendor(w http.ResponseWriter, r *http.Request) {
	var payload vendorPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	v, err := h.service.CreateVendor(r.Context(), VendorInput{
		Name:        payload.Nombre,
		ContactName: payload.NombreContacto,
		Phone:       payload.Telefono,
		NIT:         payload.NIT,
	})
	if err != nil {
		h.logger.Error("create vendor", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toVendorResponse(*v))
}

func (h *Handler) updateVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid vendor id")
		return
	}
	var payload vendorPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	err := h.service.UpdateVendor(r.Context(), id, VendorInput{
		Name:        payload.Nombre,
		ContactName: payload.NombreContacto,
		Phone:       payload.Telefono,
		NIT:         payload.NIT,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "proveedor actualizado"})
}

func (h *Handler) deleteVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid vendor id")
		return
	}
	if err := h.service.DeleteVendor(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "proveedor eliminado"})
}

type notificationPayload struct {
	ResidenciaID int64  `json:"residenciaId" validate:"required"`
	Mensaje      string `json:"mensaje" validate:"required"`
	Fecha        string `json:"fecha" validate:"omitempty,datetime=2006-01-02 15:04:05"`
	Tipo         string `json:"tipo"`
}

type notificationResponse struct {
	ID           int64  `json:"id"`
	ResidenciaID int64  `json:"residenciaId"`
	Mensaje      string `json:"mensaje"`
	Fecha        string `json:"fecha"`
	Tipo         string `json:"tipo"`
}

func toNotificationResponse(n Notification) notificationResponse {
	return notificationResponse{
		ID:           n.ID,
		ResidenciaID: n.ResidenceID,
		Mensaje:      n.Message,
		Fecha:        n.SentAt.Format("2006-01-02 15:04:05"),
		Tipo:         n.Kind,
	}
}

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.service.ListNotifications(r.Context())
	if err != nil {
		h.logger.Error("list notifications", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	out := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, toNotificationResponse(n))
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) getNotification(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid notification id")
		return
	}
	n, err := h.service.GetNotification(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toNotificationResponse(*n))
}

func (h *Handler) createNotification(w http.ResponseWriter, r *http.Request) {
	var payload notificationPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	var sentAt time.Time
	if payload.Fecha != "" {
		sentAt, _ = time.Parse("2006-01-02 15:04:05", payload.Fecha)
	}
	n, err := h.service.CreateNotification(r.Context(), NotificationInput{
		ResidenceID: payload.ResidenciaID,
		Message:     payload.Mensaje,
		SentAt:      sentAt,
		Kind:        payload.Tipo,
	})
	if err != nil {
		h.logger.Error("create notification", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toNotificationResponse(*n))
}

func (h *Handler) deleteNotification(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid notification id")
		return
	}
	if err := h.service.DeleteNotification(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "notificación eliminada"})
}
