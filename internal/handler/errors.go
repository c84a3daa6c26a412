package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// Error codes of the published contract. Every one of them is delivered with
// HTTP 200: the error_code field in the body, not the status line, is how
// callers discriminate outcomes. Existing consumers depend on this, so the
// handlers never map these to 4xx/5xx.
const (
	codeValidationError = "VALIDATION_ERROR"
	codeRidesNotFound   = "RIDES_NOT_FOUND_ERROR"
	codeServerError     = "SERVER_ERROR"
)

// errorResponse is the wire shape for every error kind.
type errorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

// validationBody returns an errorResponse carrying the exact contract message
// extracted from a wrapped domain.ErrValidation error.
func validationBody(err error) errorResponse {
	return errorResponse{ErrorCode: codeValidationError, Message: unwrapMessage(err)}
}

// notFoundBody returns the fixed RIDES_NOT_FOUND_ERROR payload.
// The message is identical for an empty list and a missing ride.
func notFoundBody() errorResponse {
	return errorResponse{ErrorCode: codeRidesNotFound, Message: "Could not find any rides"}
}

// serverErrorBody returns the fixed SERVER_ERROR payload. Store-level detail
// is logged server-side, never leaked to the caller.
func serverErrorBody() errorResponse {
	return errorResponse{ErrorCode: codeServerError, Message: "Unknown error"}
}

// unwrapMessage extracts the contract message from a wrapped sentinel error.
// e.g. "validation error: Rider name must be a non empty string"
// → "Rider name must be a non empty string"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, "validation error: "); i >= 0 {
		return msg[i+len("validation error: "):]
	}
	return msg
}

// writeJSON serializes v to the response with the given status code.
// An encode failure at this point means the response is already partially
// written, so it is logged and not otherwise recoverable.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}
