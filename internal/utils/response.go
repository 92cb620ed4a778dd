package utils

import (
	"encoding/json"
	"net/http"

	"github.com/Leganyst/booking-platform/internal/dto"
)

// WriteJSON пишет JSON-ответ с указанным статусом.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteError пишет конверт ошибки.
func WriteError(w http.ResponseWriter, status int, message, detail string) {
	WriteJSON(w, status, dto.ErrorResponse{Error: message, Detail: detail})
}
