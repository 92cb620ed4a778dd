package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"gorm.io/datatypes"

	"github.com/Leganyst/booking-platform/internal/dto"
	"github.com/Leganyst/booking-platform/internal/middleware"
	"github.com/Leganyst/booking-platform/internal/model"
	"github.com/Leganyst/booking-platform/internal/service"
	"github.com/Leganyst/booking-platform/internal/utils"
	"github.com/google/uuid"
)

// CalendarHandler обслуживает календарь хоста и его слоты.
type CalendarHandler struct {
	calendars *service.CalendarService
}

func NewCalendarHandler(calendars *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendars: calendars}
}

func formatTimeOfDay(t datatypes.Time) string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

func parseTimeOfDay(s string) (datatypes.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return datatypes.NewTime(t.Hour(), t.Minute(), 0, 0), nil
}

func slotResponse(slot *model.TimeSlot) dto.SlotResponse {
	return dto.SlotResponse{
		ID:        slot.ID.String(),
		StartTime: formatTimeOfDay(slot.StartTime),
		EndTime:   formatTimeOfDay(slot.EndTime),
		Weekdays:  slot.Weekdays,
	}
}

// MonthView — GET /api/calendars/{username}/month?year=&month=
// Просмотр анонимный; хост, пришедший со своим токеном, получает
// полную версию с внешним идентификатором календаря.
func (h *CalendarHandler) MonthView(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid year", "year must be an integer")
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid month", "month must be an integer")
		return
	}

	var viewerID *uuid.UUID
	if id, ok := middleware.UserIDFromContext(r.Context()); ok {
		viewerID = &id
	}

	view, err := h.calendars.HostMonthView(r.Context(), username, year, month, viewerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := dto.MonthViewResponse{
		Year:             view.Year,
		Month:            view.Month,
		Grid:             view.Grid,
		HostUsername:     view.HostUsername,
		HostDisplayName:  view.HostDisplayName,
		Topics:           view.Topics,
		Description:      view.Description,
		GoogleCalendarID: view.GoogleCalendarID,
		IsOwner:          view.IsOwner,
		Slots:            make([]dto.SlotResponse, 0, len(view.Slots)),
		Candidates:       make([]dto.CandidateResponse, 0, len(view.Candidates)),
	}
	for i := range view.Slots {
		resp.Slots = append(resp.Slots, slotResponse(&view.Slots[i]))
	}
	for _, c := range view.Candidates {
		resp.Candidates = append(resp.Candidates, dto.CandidateResponse{
			Date:   c.Date.Format("2006-01-02"),
			SlotID: c.SlotID.String(),
		})
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// CreateCalendar — POST /api/calendars
func (h *CalendarHandler) CreateCalendar(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var req dto.CreateCalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	cal, err := h.calendars.CreateCalendar(r.Context(), hostID, req.Topics, req.Description, req.GoogleCalendarID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, dto.CalendarResponse{
		ID:               cal.ID.String(),
		Topics:           cal.Topics,
		Description:      cal.Description,
		GoogleCalendarID: cal.GoogleCalendarID,
	})
}

// UpdateCalendar — PATCH /api/calendars/me
func (h *CalendarHandler) UpdateCalendar(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var req dto.UpdateCalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	cal, err := h.calendars.UpdateCalendar(r.Context(), hostID, req.Topics, req.Description, req.GoogleCalendarID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.CalendarResponse{
		ID:               cal.ID.String(),
		Topics:           cal.Topics,
		Description:      cal.Description,
		GoogleCalendarID: cal.GoogleCalendarID,
	})
}

// CreateSlot — POST /api/calendars/slots
func (h *CalendarHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var req dto.CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	start, err := parseTimeOfDay(req.StartTime)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid start_time", "use HH:MM format")
		return
	}
	end, err := parseTimeOfDay(req.EndTime)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid end_time", "use HH:MM format")
		return
	}

	slot, err := h.calendars.AddTimeSlot(r.Context(), hostID, start, end, req.Weekdays)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, slotResponse(slot))
}

// DeleteSlot — DELETE /api/calendars/slots/{id}
func (h *CalendarHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	slotID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid slot id", "")
		return
	}

	if err := h.calendars.RemoveTimeSlot(r.Context(), hostID, slotID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
