package handlers

import (
	"net/http"
	"strconv"

	"ecodeli-delivery/internal/logx"
)

// CourierHandler serves the read-only courier directory.
type CourierHandler struct {
	uc     courierUsecase
	logger logx.Logger
}

// NewCourierHandler wires a courierUsecase into HTTP handlers.
func NewCourierHandler(logger logx.Logger, uc courierUsecase) *CourierHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &CourierHandler{uc: uc, logger: logger}
}

// GetByID handles GET /couriers/{id}.
func (h *CourierHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	c, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, courierToDTO(*c))
}

// List handles GET /couriers?limit=&offset=.
func (h *CourierHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, ok := h.optionalNonNegative(w, r, q.Get("limit"), "invalid limit")
	if !ok {
		return
	}
	offset, ok := h.optionalNonNegative(w, r, q.Get("offset"), "invalid offset")
	if !ok {
		return
	}

	list, err := h.uc.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, couriersToDTO(list))
}

func (h *CourierHandler) optionalNonNegative(w http.ResponseWriter, r *http.Request, raw, msg string) (*int, bool) {
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		writeError(h.logger, w, r, http.StatusBadRequest, msg)
		return nil, false
	}
	return &v, true
}
