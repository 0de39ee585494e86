package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bankpanel-backend/internal/domain"
)

// Response messages shared by handlers.
const (
	msgConcurrency = "A concurrency error occurred. Please try again."
	msgUnexpected  = "An unexpected error occurred. Please try again later."
	msgBadBody     = "invalid request body"
)

type errorResponse struct {
	Error  string       `json:"error"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps a service error to a response. notFound is the message
// used for domain.ErrNotFound.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var (
		ve *domain.ValidationError
		ae *domain.AlreadyExistsError
	)
	switch {
	case errors.As(err, &ve):
		resp := errorResponse{Error: "validation failed", Fields: make([]fieldError, 0, len(ve.Errors))}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		if len(ve.Errors) == 1 {
			resp.Error = ve.Errors[0].Message
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.As(err, &ae):
		writeError(w, http.StatusBadRequest, ae.Message)
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusBadRequest, "already exists")
	case errors.Is(err, domain.ErrNotFound):
		if notFound == "" {
			notFound = "not found"
		}
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrConflict):
		log.ErrorContext(r.Context(), "concurrency error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, msgConcurrency)
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, msgUnexpected)
	}
}
