package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/booking-platform/internal/model"
	"github.com/google/uuid"
)

type SlotRepository interface {
	// Создать слот.
	Create(ctx context.Context, slot *model.TimeSlot) error
	// Найти слот по ID.
	FindByID(ctx context.Context, id uuid.UUID) (*model.TimeSlot, error)
	// Все слоты календаря.
	ListByCalendar(ctx context.Context, calendarID uuid.UUID) ([]model.TimeSlot, error)
	// Удалить слот.
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormSlotRepository struct {
	db *gorm.DB
}

func NewGormSlotRepository(db *gorm.DB) *GormSlotRepository {
	return &GormSlotRepository{db: db}
}

func (r *GormSlotRepository) Create(ctx context.Context, slot *model.TimeSlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *GormSlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TimeSlot, error) {
	var slot model.TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *GormSlotRepository) ListByCalendar(ctx context.Context, calendarID uuid.UUID) ([]model.TimeSlot, error) {
	var slots []model.TimeSlot
	if err := r.db.WithContext(ctx).
		Where("calendar_id = ?", calendarID).
		Order("created_at ASC").
		Find(&slots).
		Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *GormSlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TimeSlot{}, "id = ?", id).Error
}
