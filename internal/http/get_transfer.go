package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"transfers/internal/core"
)

func (h Handler) GetTransfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid transfer id")
		return
	}

	transfer, err := h.transferGetter.GetTransfer(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Not Found")
			return
		}

		h.logger.ErrorContext(ctx, "Failed to get transfer", "transfer_id", id, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to get transfer")
		return
	}

	writeJSON(w, http.StatusOK, TransferEnvelope{Data: NewTransferResponse(transfer)})
}
