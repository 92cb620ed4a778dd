package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/Leganyst/booking-platform/internal/utils"
)

// HealthHandler отвечает на проверки живости.
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Healthz — GET /healthz, проверяет и соединение с БД.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		utils.WriteError(w, http.StatusServiceUnavailable, "Unhealthy", err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
