package http

import (
	"net/http"
)

func (h Handler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := ParseAccountFilter(r.URL.Query())
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.accountSearcher.SearchAccounts(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to search accounts", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to search accounts")
		return
	}

	writeJSON(w, http.StatusOK, NewSearchAccountsResponse(result))
}
