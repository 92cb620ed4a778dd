package dto

// CreateCalendarRequest — создание календаря хостом.
type CreateCalendarRequest struct {
	Topics           []string `json:"topics"`
	Description      string   `json:"description"`
	GoogleCalendarID string   `json:"google_calendar_id"`
}

// UpdateCalendarRequest — полная замена настроек календаря хостом.
type UpdateCalendarRequest struct {
	Topics           []string `json:"topics"`
	Description      string   `json:"description"`
	GoogleCalendarID string   `json:"google_calendar_id"`
}

// CalendarResponse — представление календаря. GoogleCalendarID
// заполняется только для самого хоста.
type CalendarResponse struct {
	ID               string   `json:"id"`
	Topics           []string `json:"topics"`
	Description      string   `json:"description"`
	GoogleCalendarID string   `json:"google_calendar_id,omitempty"`
}

// CreateSlotRequest — добавление недельного окна доступности.
// Время в формате "15:04", дни недели 0 (понедельник) … 6 (воскресенье).
type CreateSlotRequest struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Weekdays  []int  `json:"weekdays"`
}

// SlotResponse — представление слота.
type SlotResponse struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Weekdays  []int  `json:"weekdays"`
}

// CandidateResponse — доступная для брони пара (дата, слот).
type CandidateResponse struct {
	Date   string `json:"date"` // "2006-01-02"
	SlotID string `json:"slot_id"`
}

// MonthViewResponse — месячная сетка календаря хоста.
type MonthViewResponse struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Grid  []int `json:"grid"`

	HostUsername    string `json:"host_username"`
	HostDisplayName string `json:"host_display_name"`

	Topics           []string `json:"topics"`
	Description      string   `json:"description"`
	GoogleCalendarID string   `json:"google_calendar_id,omitempty"`
	IsOwner          bool     `json:"is_owner"`

	Slots      []SlotResponse      `json:"slots"`
	Candidates []CandidateResponse `json:"candidates"`
}
