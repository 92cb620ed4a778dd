package handlers

import (
	"errors"
	"net/http"

	"github.com/Leganyst/booking-platform/internal/calendar"
	"github.com/Leganyst/booking-platform/internal/service"
	"github.com/Leganyst/booking-platform/internal/utils"
)

// writeServiceError переводит доменную ошибку в HTTP-статус.
// Каждый вид отказа стабилен: клиент может отличить конфликт брони
// (повторять с той же парой бессмысленно) от ошибки валидации.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrCalendarNotFound),
		errors.Is(err, service.ErrSlotNotFound),
		errors.Is(err, service.ErrBookingNotFound):
		utils.WriteError(w, http.StatusNotFound, "Not found", err.Error())

	case errors.Is(err, service.ErrDuplicateBooking):
		utils.WriteError(w, http.StatusConflict, "Conflict", err.Error())

	case errors.Is(err, service.ErrPasswordMismatch):
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized", err.Error())

	case errors.Is(err, service.ErrNotHost):
		utils.WriteError(w, http.StatusForbidden, "Forbidden", err.Error())

	case errors.Is(err, service.ErrDuplicatedUsername),
		errors.Is(err, service.ErrDuplicatedEmail),
		errors.Is(err, service.ErrCalendarExists),
		errors.Is(err, service.ErrInvalidUsername),
		errors.Is(err, service.ErrInvalidDisplayName),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidPassword),
		errors.Is(err, service.ErrPasswordsNotEqual),
		errors.Is(err, service.ErrWeekdayNotAllowed),
		errors.Is(err, service.ErrPastDate),
		errors.Is(err, service.ErrInvalidSlotRange),
		errors.Is(err, service.ErrInvalidSlotWeekdays),
		errors.Is(err, calendar.ErrInvalidMonth),
		errors.Is(err, calendar.ErrInvalidYear):
		utils.WriteError(w, http.StatusUnprocessableEntity, "Validation error", err.Error())

	default:
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error", "")
	}
}
