package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// time_slots — повторяющееся недельное окно доступности.
type TimeSlot struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	CalendarID uuid.UUID `gorm:"type:uuid;not null;index"`

	// Время суток без даты.
	StartTime datatypes.Time `gorm:"not null"`
	EndTime   datatypes.Time `gorm:"not null"`

	// Дни недели, в которые окно активно: 0 (понедельник) … 6 (воскресенье).
	// JSON-массив, как и в остальных списковых полях.
	Weekdays datatypes.JSONSlice[int] `gorm:"type:jsonb;not null"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	// Навигационные поля
	Calendar *Calendar `gorm:"foreignKey:CalendarID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Bookings []Booking `gorm:"foreignKey:TimeSlotID"`
}
