package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/booking-platform/internal/model"
	"github.com/google/uuid"
)

type CalendarRepository interface {
	// Создать календарь хоста. Уникальный индекс host_id не даст второй.
	Create(ctx context.Context, calendar *model.Calendar) error
	// Календарь по ID хоста.
	FindByHostID(ctx context.Context, hostID uuid.UUID) (*model.Calendar, error)
	// Обновить описание, темы и внешний идентификатор.
	Update(ctx context.Context, calendar *model.Calendar) error
}

type GormCalendarRepository struct {
	db *gorm.DB
}

func NewGormCalendarRepository(db *gorm.DB) *GormCalendarRepository {
	return &GormCalendarRepository{db: db}
}

func (r *GormCalendarRepository) Create(ctx context.Context, calendar *model.Calendar) error {
	return r.db.WithContext(ctx).Create(calendar).Error
}

func (r *GormCalendarRepository) FindByHostID(ctx context.Context, hostID uuid.UUID) (*model.Calendar, error) {
	var c model.Calendar
	if err := r.db.WithContext(ctx).Where("host_id = ?", hostID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCalendarRepository) Update(ctx context.Context, calendar *model.Calendar) error {
	return r.db.WithContext(ctx).
		Model(&model.Calendar{}).
		Where("id = ?", calendar.ID).
		Updates(map[string]any{
			"topics":             calendar.Topics,
			"description":        calendar.Description,
			"google_calendar_id": calendar.GoogleCalendarID,
		}).
		Error
}
