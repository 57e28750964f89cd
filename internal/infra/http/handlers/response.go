package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/xavierca1/leadqual/internal/usecase"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondUseCaseError maps the usecase error taxonomy onto HTTP statuses.
func respondUseCaseError(w http.ResponseWriter, err error) {
	switch {
	case usecase.IsDomainError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case usecase.IsTechnicalError(err):
		log.Printf("❌ api: %v", err)
		respondError(w, http.StatusInternalServerError, err.Error())
	default:
		if _, ok := err.(usecase.ValidationError); ok {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("❌ api: %v", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
