package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Leganyst/booking-platform/internal/calendar"
	"github.com/Leganyst/booking-platform/internal/model"
	"github.com/Leganyst/booking-platform/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CalendarService собирает месячное представление календаря хоста
// и управляет календарём и его слотами.
type CalendarService struct {
	userRepo     repository.UserRepository
	calendarRepo repository.CalendarRepository
	slotRepo     repository.SlotRepository
	bookingRepo  repository.BookingRepository

	// Подменяется в тестах для фиксированного "сейчас".
	now func() time.Time
}

func NewCalendarService(
	userRepo repository.UserRepository,
	calendarRepo repository.CalendarRepository,
	slotRepo repository.SlotRepository,
	bookingRepo repository.BookingRepository,
) *CalendarService {
	return &CalendarService{
		userRepo:     userRepo,
		calendarRepo: calendarRepo,
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		now:          time.Now,
	}
}

// MonthView — месячная сетка календаря с доступными для брони парами.
type MonthView struct {
	Year  int
	Month int
	Grid  []int

	HostUsername    string
	HostDisplayName string

	Topics      []string
	Description string
	// Заполняется только когда смотрит сам хост.
	GoogleCalendarID string
	IsOwner          bool

	Slots      []model.TimeSlot
	Candidates []calendar.Candidate
}

// HostMonthView строит представление месяца для календаря хоста.
// viewerID == nil — анонимный просмотр; хост видит полную версию,
// остальные — ограниченную (без внешнего идентификатора календаря).
func (s *CalendarService) HostMonthView(
	ctx context.Context,
	hostUsername string,
	year, month int,
	viewerID *uuid.UUID,
) (*MonthView, error) {
	host, err := s.userRepo.FindByUsername(ctx, hostUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	cal, err := s.calendarRepo.FindByHostID(ctx, host.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCalendarNotFound
		}
		return nil, err
	}

	grid, err := calendar.MonthGrid(year, month)
	if err != nil {
		return nil, err
	}

	slots, err := s.slotRepo.ListByCalendar(ctx, cal.ID)
	if err != nil {
		return nil, err
	}

	lastDay, err := calendar.LastDay(year, month)
	if err != nil {
		return nil, err
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.Month(month), lastDay, 0, 0, 0, 0, time.UTC)

	slotIDs := make([]uuid.UUID, 0, len(slots))
	windows := make([]calendar.SlotWindow, 0, len(slots))
	for _, slot := range slots {
		slotIDs = append(slotIDs, slot.ID)
		windows = append(windows, calendar.SlotWindow{ID: slot.ID, Weekdays: slot.Weekdays})
	}

	bookings, err := s.bookingRepo.ListBySlotsAndRange(ctx, slotIDs, from, to)
	if err != nil {
		return nil, err
	}
	booked := make(map[calendar.BookedKey]struct{}, len(bookings))
	for _, b := range bookings {
		booked[calendar.BookedKey{
			SlotID: b.TimeSlotID,
			Date:   calendar.DateKey(time.Time(b.When)),
		}] = struct{}{}
	}

	candidates, err := calendar.ResolveBookable(windows, year, month, s.now().UTC(), booked)
	if err != nil {
		return nil, err
	}

	view := &MonthView{
		Year:            year,
		Month:           month,
		Grid:            grid,
		HostUsername:    host.Username,
		HostDisplayName: host.DisplayName,
		Topics:          cal.Topics,
		Description:     cal.Description,
		Slots:           slots,
		Candidates:      candidates,
	}
	if viewerID != nil && *viewerID == host.ID {
		view.IsOwner = true
		view.GoogleCalendarID = cal.GoogleCalendarID
	}
	return view, nil
}

// CreateCalendar создаёт календарь хоста. Пользователь обязан быть хостом,
// второй календарь не даст создать уникальный индекс host_id.
func (s *CalendarService) CreateCalendar(
	ctx context.Context,
	hostID uuid.UUID,
	topics []string,
	description, googleCalendarID string,
) (*model.Calendar, error) {
	host, err := s.userRepo.FindByID(ctx, hostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !host.IsHost {
		return nil, ErrNotHost
	}

	cal := &model.Calendar{
		ID:               uuid.New(),
		HostID:           hostID,
		Topics:           datatypes.NewJSONSlice(topics),
		Description:      description,
		GoogleCalendarID: googleCalendarID,
	}
	if err := s.calendarRepo.Create(ctx, cal); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCalendarExists
		}
		return nil, err
	}
	return cal, nil
}

// UpdateCalendar заменяет темы, описание и внешний идентификатор
// календаря хоста целиком.
func (s *CalendarService) UpdateCalendar(
	ctx context.Context,
	hostID uuid.UUID,
	topics []string,
	description, googleCalendarID string,
) (*model.Calendar, error) {
	cal, err := s.calendarRepo.FindByHostID(ctx, hostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCalendarNotFound
		}
		return nil, err
	}

	cal.Topics = datatypes.NewJSONSlice(topics)
	cal.Description = description
	cal.GoogleCalendarID = googleCalendarID
	if err := s.calendarRepo.Update(ctx, cal); err != nil {
		return nil, err
	}
	return cal, nil
}

// AddTimeSlot добавляет недельное окно доступности в календарь хоста.
// Пересечение окон между собой не запрещается: уникальность брони
// обеспечивается на уровне пары (слот, дата).
func (s *CalendarService) AddTimeSlot(
	ctx context.Context,
	hostID uuid.UUID,
	startTime, endTime datatypes.Time,
	weekdays []int,
) (*model.TimeSlot, error) {
	cal, err := s.calendarRepo.FindByHostID(ctx, hostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCalendarNotFound
		}
		return nil, err
	}

	if endTime <= startTime {
		return nil, ErrInvalidSlotRange
	}
	if len(weekdays) == 0 {
		return nil, ErrInvalidSlotWeekdays
	}
	for _, d := range weekdays {
		if d < 0 || d > 6 {
			return nil, ErrInvalidSlotWeekdays
		}
	}

	slot := &model.TimeSlot{
		ID:         uuid.New(),
		CalendarID: cal.ID,
		StartTime:  startTime,
		EndTime:    endTime,
		Weekdays:   datatypes.NewJSONSlice(weekdays),
	}
	if err := s.slotRepo.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

// RemoveTimeSlot удаляет слот из календаря хоста.
func (s *CalendarService) RemoveTimeSlot(ctx context.Context, hostID, slotID uuid.UUID) error {
	cal, err := s.calendarRepo.FindByHostID(ctx, hostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCalendarNotFound
		}
		return err
	}

	slot, err := s.slotRepo.FindByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSlotNotFound
		}
		return err
	}
	if slot.CalendarID != cal.ID {
		return ErrSlotNotFound
	}

	return s.slotRepo.Delete(ctx, slotID)
}
