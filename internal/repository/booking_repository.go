package repository

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Leganyst/booking-platform/internal/model"
	"github.com/google/uuid"
)

type BookingRepository interface {
	// Создать бронирование. Нарушение уникального индекса (time_slot_id, when)
	// приходит как gorm.ErrDuplicatedKey — трансляцию в доменную ошибку
	// делает сервис.
	Create(ctx context.Context, booking *model.Booking) error
	// Получить бронирование по ID.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	// Есть ли подтверждённая бронь на пару (слот, дата). Ответ советующий:
	// между проверкой и вставкой может вклиниться конкурент.
	HasBooking(ctx context.Context, slotID uuid.UUID, when time.Time) (bool, error)
	// Бронирования набора слотов в диапазоне дат (для месячной выборки).
	ListBySlotsAndRange(ctx context.Context, slotIDs []uuid.UUID, from, to time.Time) ([]model.Booking, error)
	// Бронирования гостя с пагинацией, свежие сверху.
	ListByGuest(ctx context.Context, guestID uuid.UUID, limit, offset int) ([]model.Booking, int64, error)
}

// Реализация на GORM.
type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	var b model.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepository) HasBooking(ctx context.Context, slotID uuid.UUID, when time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where(`time_slot_id = ? AND "when" = ?`, slotID, datatypes.Date(when)).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormBookingRepository) ListBySlotsAndRange(
	ctx context.Context,
	slotIDs []uuid.UUID,
	from, to time.Time,
) ([]model.Booking, error) {
	if len(slotIDs) == 0 {
		return []model.Booking{}, nil
	}

	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Where("time_slot_id IN ?", slotIDs).
		Where(`"when" >= ? AND "when" <= ?`, datatypes.Date(from), datatypes.Date(to)).
		Order(`"when" ASC`).
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *GormBookingRepository) ListByGuest(
	ctx context.Context,
	guestID uuid.UUID,
	limit, offset int,
) ([]model.Booking, int64, error) {
	var (
		bookings []model.Booking
		total    int64
	)

	q := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("guest_id = ?", guestID)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	if err := q.Order(`"when" DESC`).Find(&bookings).Error; err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}
