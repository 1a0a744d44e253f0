package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nahidhasan98/standup-summarizer/internal/errors"
	"github.com/nahidhasan98/standup-summarizer/internal/models"
)

// writeJSON writes a JSON response with the given status code
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("Failed to encode JSON response", err)
	}
}

// writeEnvelope writes a use-case envelope. The HTTP status is 200 for
// success and fail envelopes alike; only routing-layer rejections get
// non-200 codes.
func (h *Handler) writeEnvelope(w http.ResponseWriter, resp *models.APIResponse) {
	h.writeJSON(w, resp, http.StatusOK)
}

// writeAppError writes a routing-layer error response
func (h *Handler) writeAppError(w http.ResponseWriter, appErr *errors.AppError) {
	response := &models.ErrorResponse{
		Error:   appErr.Message,
		Code:    string(appErr.Code),
		Details: appErr.Details,
	}

	h.log.With("error_code", appErr.Code).
		With("status_code", appErr.StatusCode).
		Error(appErr.Message, appErr.Err)

	h.writeJSON(w, response, appErr.StatusCode)
}
