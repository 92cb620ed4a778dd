package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Leganyst/booking-platform/internal/calendar"
	"github.com/Leganyst/booking-platform/internal/model"
	"github.com/Leganyst/booking-platform/internal/repository"
	"github.com/google/uuid"
)

// BookingService владеет транзакцией резервирования: не больше одной
// брони на пару (слот, дата) даже при конкурентных вызовах.
type BookingService struct {
	db          *gorm.DB
	slotRepo    repository.SlotRepository
	bookingRepo repository.BookingRepository
	eventRepo   repository.EventRepository

	// Подменяется в тестах для фиксированного "сейчас".
	now func() time.Time
}

func NewBookingService(
	db *gorm.DB,
	slotRepo repository.SlotRepository,
	bookingRepo repository.BookingRepository,
	eventRepo repository.EventRepository,
) *BookingService {
	return &BookingService{
		db:          db,
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		now:         time.Now,
	}
}

// Reserve создаёт бронирование слота на конкретную дату.
//
// Порядок шагов:
//  1. слот существует;
//  2. день недели даты входит в набор дней слота;
//  3. дата не в прошлом (отсечка — начало текущих суток UTC);
//  4. быстрая проверка занятости — отказ без попытки записи;
//  5. вставка под уникальным индексом (time_slot_id, when) вместе с
//     событием аудита в одной транзакции.
//
// Если конкурент выиграл гонку между шагами 4 и 5, нарушение индекса
// транслируется в ErrDuplicateBooking — сырая ошибка БД наружу не идёт.
func (s *BookingService) Reserve(
	ctx context.Context,
	slotID, guestID uuid.UUID,
	when time.Time,
	topic, description string,
) (*model.Booking, error) {
	slot, err := s.slotRepo.FindByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	day := calendar.DateOnly(when)
	if !calendar.ContainsWeekday(slot.Weekdays, calendar.MondayIndex(day)) {
		return nil, ErrWeekdayNotAllowed
	}

	today := calendar.DateOnly(s.now().UTC())
	if day.Before(today) {
		return nil, ErrPastDate
	}

	taken, err := s.bookingRepo.HasBooking(ctx, slotID, day)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateBooking
	}

	booking := &model.Booking{
		ID:          uuid.New(),
		TimeSlotID:  slotID,
		GuestID:     guestID,
		When:        datatypes.Date(day),
		Topic:       topic,
		Description: description,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(booking).Error; err != nil {
			return err
		}
		ev := model.Event{
			ID:        uuid.New(),
			EventType: model.EventTypeBookingCreated,
			UserID:    &guestID,
			BookingID: &booking.ID,
			Details:   "slot=" + slotID.String() + " when=" + calendar.DateKey(day),
		}
		return tx.Create(&ev).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateBooking
		}
		return nil, err
	}

	return booking, nil
}

// BookingDetail возвращает бронирование, доступное только его гостю.
func (s *BookingService) BookingDetail(ctx context.Context, bookingID, viewerID uuid.UUID) (*model.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if booking.GuestID != viewerID {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// BookingHistory возвращает события аудита по бронированию.
// Доступ тот же, что и у BookingDetail: только гость брони.
func (s *BookingService) BookingHistory(ctx context.Context, bookingID, viewerID uuid.UUID) ([]model.Event, error) {
	if _, err := s.BookingDetail(ctx, bookingID, viewerID); err != nil {
		return nil, err
	}
	return s.eventRepo.ListByBooking(ctx, bookingID)
}

// GuestBookings возвращает страницу бронирований гостя.
func (s *BookingService) GuestBookings(
	ctx context.Context,
	guestID uuid.UUID,
	page, pageSize int,
) (calendar.Page[model.Booking], error) {
	page, pageSize, limit, offset := calendar.NormalizePage(page, pageSize)

	bookings, total, err := s.bookingRepo.ListByGuest(ctx, guestID, limit, offset)
	if err != nil {
		return calendar.Page[model.Booking]{}, err
	}

	return calendar.PageOf(bookings, int(total), page, pageSize), nil
}
