package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Leganyst/booking-platform/internal/dto"
	"github.com/Leganyst/booking-platform/internal/middleware"
	"github.com/Leganyst/booking-platform/internal/model"
	"github.com/Leganyst/booking-platform/internal/service"
	"github.com/Leganyst/booking-platform/internal/utils"
	"github.com/google/uuid"
)

// BookingHandler обслуживает бронирования гостя.
type BookingHandler struct {
	bookings *service.BookingService
}

func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

func bookingResponse(b *model.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:          b.ID.String(),
		TimeSlotID:  b.TimeSlotID.String(),
		When:        time.Time(b.When).Format("2006-01-02"),
		Topic:       b.Topic,
		Description: b.Description,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

// Reserve — POST /api/bookings
func (h *BookingHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	guestID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var req dto.ReserveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	slotID, err := uuid.Parse(req.TimeSlotID)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid time_slot_id", "")
		return
	}
	when, err := time.ParseInLocation("2006-01-02", req.When, time.UTC)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid when", "use YYYY-MM-DD format")
		return
	}

	booking, err := h.bookings.Reserve(r.Context(), slotID, guestID, when, req.Topic, req.Description)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, bookingResponse(booking))
}

// MyBookings — GET /api/bookings?page=&page_size=
func (h *BookingHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	guestID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	result, err := h.bookings.GuestBookings(r.Context(), guestID, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := dto.BookingListResponse{
		Items:    make([]dto.BookingResponse, 0, len(result.Items)),
		Page:     result.Page,
		PageSize: result.PageSize,
		Total:    result.Total,
		HasNext:  result.HasNext,
		HasPrev:  result.HasPrev,
	}
	for i := range result.Items {
		resp.Items = append(resp.Items, bookingResponse(&result.Items[i]))
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// BookingHistory — GET /api/bookings/{id}/history
func (h *BookingHandler) BookingHistory(w http.ResponseWriter, r *http.Request) {
	guestID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	bookingID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid booking id", "")
		return
	}

	events, err := h.bookings.BookingHistory(r.Context(), bookingID, guestID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, ev := range events {
		resp = append(resp, dto.EventResponse{
			EventType: string(ev.EventType),
			CreatedAt: ev.CreatedAt.Format(time.RFC3339),
			Details:   ev.Details,
		})
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// BookingDetail — GET /api/bookings/{id}
func (h *BookingHandler) BookingDetail(w http.ResponseWriter, r *http.Request) {
	guestID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	bookingID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid booking id", "")
		return
	}

	booking, err := h.bookings.BookingDetail(r.Context(), bookingID, guestID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, bookingResponse(booking))
}
