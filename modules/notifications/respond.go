package notifications

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/notifykit/pkg/notification"
	"github.com/dmitrymomot/notifykit/pkg/validate"
)

// envelope is the standard JSON response structure.
type envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *errorDetail `json:"error,omitempty"`
}

// errorDetail contains error information returned to clients.
type errorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Data: data})
}

func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	detail := &errorDetail{Code: "internal_error", Message: "internal server error"}

	switch {
	case validate.IsValidationError(err):
		status = http.StatusUnprocessableEntity
		detail = &errorDetail{
			Code:    "validation_error",
			Message: "validation failed",
			Details: validate.Extract(err).Details(),
		}
	case errors.Is(err, notification.ErrNotFound):
		status = http.StatusNotFound
		detail = &errorDetail{Code: "not_found", Message: "notification not found"}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Error: detail})
}

func respondBadRequest(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(envelope{Error: &errorDetail{Code: "bad_request", Message: message}})
}
