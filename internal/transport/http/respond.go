package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"millionaire-service/internal/bank"
	"millionaire-service/internal/domain"
)

var errUnauthenticated = errors.New("login required")

type errorPayload struct {
	Message string `json:"message"`
}

// statusFor maps domain and bank errors onto HTTP status codes.
func statusFor(err error) int {
	var bad *badRequestError
	switch {
	case errors.As(err, &bad):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrQuizNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrOptionOutOfRange),
		errors.Is(err, domain.ErrUnknownCommand),
		errors.Is(err, bank.ErrInvalidAmount),
		errors.Is(err, bank.ErrMissingRecipient),
		errors.Is(err, bank.ErrIncompleteDetails):
		return http.StatusBadRequest
	case errors.Is(err, bank.ErrInvalidPIN),
		errors.Is(err, errUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidPhase),
		errors.Is(err, domain.ErrNoSelection),
		errors.Is(err, domain.ErrAnswerLocked),
		errors.Is(err, domain.ErrNoFinalAnswer),
		errors.Is(err, domain.ErrAdvancePending),
		errors.Is(err, domain.ErrNoAdvancePending),
		errors.Is(err, domain.ErrGameNotFinished),
		errors.Is(err, domain.ErrWinningsClaimed),
		errors.Is(err, domain.ErrNothingWon),
		errors.Is(err, bank.ErrInsufficientFunds):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
		msg = "internal error"
	}
	writeJSON(w, status, errorPayload{Message: msg})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &badRequestError{err: err}
	}
	return nil
}

type badRequestError struct {
	err error
}

func (e *badRequestError) Error() string { return "invalid request body: " + e.err.Error() }
func (e *badRequestError) Unwrap() error { return e.err }
