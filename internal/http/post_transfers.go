package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"transfers/internal/core"
)

func (h Handler) PostTransfers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	draft, err := req.ToDomain()
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	transfer, err := h.transferCreator.CreateTransfer(ctx, draft)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrMissingSourceAccount):
			writeMessage(w, http.StatusNotFound, "Source account not found")
		case errors.Is(err, core.ErrInvalidTargetIBANOrBIC):
			writeMessage(w, http.StatusBadRequest, "Invalid target IBAN or BIC")
		case errors.Is(err, core.ErrInsufficientFunds):
			writeMessage(w, http.StatusUnprocessableEntity, "Insufficient funds")
		case errors.Is(err, core.ErrNonPositiveAmount):
			writeMessage(w, http.StatusBadRequest, "Amount must be positive")
		default:
			h.logger.ErrorContext(ctx, "Failed to create transfer", "error", err)
			writeMessage(w, http.StatusInternalServerError, "Failed to create transfer")
		}
		return
	}

	writeJSON(w, http.StatusCreated, TransferEnvelope{Data: NewTransferResponse(transfer)})
}
