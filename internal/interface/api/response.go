package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/pkg/logger"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// Error codes let clients map responses back onto domain errors
const (
	codeValidation      = "validation"
	codeNotFound        = "not_found"
	codeFlightCancelled = "flight_cancelled"
	codeAlreadyExists   = "already_exists"
)

func respondCode(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, map[string]string{"error": message, "code": code})
}

// writeError is the single mapping from domain errors to HTTP status codes
func writeError(w http.ResponseWriter, log logger.Logger, op string, err error) {
	var ve *entity.ValidationError
	switch {
	case errors.As(err, &ve):
		body := map[string]string{"error": ve.Message, "code": codeValidation}
		if ve.Field != "" {
			body["field"] = ve.Field
		}
		respondJSON(w, http.StatusBadRequest, body)
	case errors.Is(err, entity.ErrNotFound):
		respondCode(w, http.StatusNotFound, codeNotFound, err.Error())
	case errors.Is(err, entity.ErrFlightCancelled):
		respondCode(w, http.StatusConflict, codeFlightCancelled, err.Error())
	case errors.Is(err, entity.ErrAlreadyExists):
		respondCode(w, http.StatusConflict, codeAlreadyExists, err.Error())
	default:
		log.Error("Request failed", "operation", op, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
