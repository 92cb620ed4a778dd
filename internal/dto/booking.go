package dto

// ReserveRequest — команда бронирования слота на дату.
type ReserveRequest struct {
	TimeSlotID  string `json:"time_slot_id"`
	When        string `json:"when"` // "2006-01-02"
	Topic       string `json:"topic"`
	Description string `json:"description"`
}

// BookingResponse — представление бронирования.
type BookingResponse struct {
	ID          string `json:"id"`
	TimeSlotID  string `json:"time_slot_id"`
	When        string `json:"when"`
	Topic       string `json:"topic"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// EventResponse — запись аудита по бронированию.
type EventResponse struct {
	EventType string `json:"event_type"`
	CreatedAt string `json:"created_at"`
	Details   string `json:"details"`
}

// BookingListResponse — страница бронирований гостя.
type BookingListResponse struct {
	Items    []BookingResponse `json:"items"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Total    int               `json:"total"`
	HasNext  bool              `json:"has_next"`
	HasPrev  bool              `json:"has_prev"`
}
