package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"ecodeli-delivery/internal/apperr"
	"ecodeli-delivery/internal/domain"
	"ecodeli-delivery/internal/logx"
	"ecodeli-delivery/internal/service/delivery"
	"ecodeli-delivery/internal/service/transfer"
)

// PackageHandler serves courier-facing package endpoints.
type PackageHandler struct {
	deliveries deliveryUsecase
	transfers  transferUsecase
	logger     logx.Logger
}

// NewPackageHandler creates a PackageHandler.
func NewPackageHandler(logger logx.Logger, deliveries deliveryUsecase, transfers transferUsecase) *PackageHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &PackageHandler{deliveries: deliveries, transfers: transfers, logger: logger}
}

// PendingTransfers handles GET /packages/pending-transfers?userId=.
func (h *PackageHandler) PendingTransfers(w http.ResponseWriter, r *http.Request) {
	courierID, err := userFromQuery(r)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	list, err := h.deliveries.PendingTransfers(r.Context(), courierID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, packagesToDTO(list))
}

// MyDeliveries handles GET /packages/mydeliveries?userId=.
func (h *PackageHandler) MyDeliveries(w http.ResponseWriter, r *http.Request) {
	courierID, err := userFromQuery(r)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	list, err := h.deliveries.MyDeliveries(r.Context(), courierID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, packagesToDTO(list))
}

// UpdateStatus handles PATCH /packages/{id}/status.
func (h *PackageHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	packageID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateStatusRequest
	if !decodeJSON(h.logger, w, r, &req) {
		return
	}
	courierID, err := actingAs(r, req.CourierID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}

	cmd := delivery.UpdateStatusCommand{
		PackageID: packageID,
		CourierID: courierID,
		Status:    domain.DeliveryStatus(strings.TrimSpace(req.Status)),
	}
	if cmd.Status == domain.StatusTransferred && req.ToCourierID != nil {
		drop, err := req.dropFields.toDomain()
		if err != nil {
			writeServiceError(h.logger, w, r, err)
			return
		}
		cmd.Transfer = &delivery.TransferTarget{ToCourierID: *req.ToCourierID, Drop: drop}
	}

	res, err := h.deliveries.UpdateStatus(r.Context(), cmd)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	out := statusResponse{PackageID: res.PackageID, Status: string(res.Status)}
	if res.Transfer != nil {
		dto := transferToDTO(*res.Transfer, true)
		out.Transfer = &dto
	}
	writeJSON(h.logger, w, r, http.StatusOK, out)
}

// Transfer handles POST /packages/{id}/transfer.
func (h *PackageHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	packageID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req transferRequest
	if !decodeJSON(h.logger, w, r, &req) {
		return
	}
	from, err := actingAs(r, req.FromCourierID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	drop, err := req.dropFields.toDomain()
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}

	rec, err := h.transfers.Initiate(r.Context(), transfer.InitiateCommand{
		PackageID:     packageID,
		FromCourierID: from,
		ToCourierID:   req.ToCourierID,
		Drop:          drop,
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/transfer-history/progress/%d", packageID))
	writeJSON(h.logger, w, r, http.StatusCreated, transferToDTO(rec, true))
}

// ConfirmTransfer handles POST /packages/{id}/confirm-transfer.
func (h *PackageHandler) ConfirmTransfer(w http.ResponseWriter, r *http.Request) {
	packageID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req confirmTransferRequest
	if !decodeJSON(h.logger, w, r, &req) {
		return
	}
	to, err := actingAs(r, req.ToCourierID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		writeServiceError(h.logger, w, r, fmt.Errorf("code is required: %w", apperr.ErrInvalidInput))
		return
	}

	rec, err := h.transfers.Confirm(r.Context(), transfer.ConfirmCommand{
		PackageID:   packageID,
		ToCourierID: to,
		Code:        req.Code,
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, transferToDTO(rec, false))
}

// Progress handles GET /transfer-history/progress/{packageId}.
func (h *PackageHandler) Progress(w http.ResponseWriter, r *http.Request) {
	packageID, err := idFromURL(r, "packageId")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	rec, err := h.transfers.Progress(r.Context(), packageID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, progressToDTO(rec))
}
