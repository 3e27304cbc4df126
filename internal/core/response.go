// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write response", "error", err)
	}
}

func OK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func BadRequest(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: message})
}

// ValidationFailed writes the per-field error map as the response body,
// so clients see every violation keyed by the field that caused it.
func ValidationFailed(w http.ResponseWriter, fields map[string]string) {
	WriteJSON(w, http.StatusBadRequest, fields)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "authentication required"
	}
	WriteJSON(w, http.StatusUnauthorized, MessageResponse{Message: message})
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "insufficient permissions"
	}
	WriteJSON(w, http.StatusForbidden, MessageResponse{Message: message})
}

func NotFound(w http.ResponseWriter, resource string) {
	WriteJSON(
		w,
		http.StatusNotFound,
		MessageResponse{Message: resource + " not found"},
	)
}

// NotFoundWith writes a 404 with a caller-supplied field-keyed payload,
// for endpoints whose contract names the missing thing explicitly.
func NotFoundWith(w http.ResponseWriter, payload any) {
	WriteJSON(w, http.StatusNotFound, payload)
}

// InternalServerError logs the underlying failure and returns a generic
// message. Persistence and other unexpected errors never leak to clients.
func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("internal server error", "error", err)
	WriteJSON(
		w,
		http.StatusInternalServerError,
		MessageResponse{Message: "internal server error"},
	)
}

// JSONError renders any error according to its type: AppErrors carry
// their own status, validation errors become field maps, everything
// else degrades to a 500.
func JSONError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		WriteJSON(w, appErr.Status, MessageResponse{Message: appErr.Message})
		return
	}

	if vErr, ok := AsValidationError(err); ok {
		ValidationFailed(w, vErr.Fields)
		return
	}

	InternalServerError(w, err)
}
