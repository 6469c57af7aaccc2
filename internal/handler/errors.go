package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"challengeHub/internal/service"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// WriteError sends an error body whose error field is the status text.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeErrorDetail(w, message, http.StatusText(statusCode), statusCode)
}

func writeErrorDetail(w http.ResponseWriter, message, detail string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Message: message, Error: detail})
}

func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError maps a service error kind onto its HTTP status.
func writeServiceError(w http.ResponseWriter, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		writeErrorDetail(w, "Internal server error", err.Error(), http.StatusInternalServerError)
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	}

	// error carries the underlying failure when there is one
	detail := svcErr.Error()
	if svcErr.Err != nil {
		detail = svcErr.Err.Error()
	}

	writeErrorDetail(w, svcErr.Message, detail, status)
}

func writeValidationError(w http.ResponseWriter, err error) {
	writeErrorDetail(w, "Invalid request data", err.Error(), http.StatusBadRequest)
}
