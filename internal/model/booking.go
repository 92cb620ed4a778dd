package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// bookings
type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	// Составной уникальный индекс (time_slot_id, when) — авторитетная
	// гарантия "не больше одной брони на слот и дату". Проверка в коде
	// сервиса лишь быстрый отсев, гонку решает именно индекс.
	TimeSlotID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_booking_slot_when"`
	When       datatypes.Date `gorm:"type:date;not null;uniqueIndex:uq_booking_slot_when"`

	GuestID uuid.UUID `gorm:"type:uuid;not null;index"`

	Topic       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	// Навигационные поля
	TimeSlot *TimeSlot `gorm:"foreignKey:TimeSlotID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Guest    *User     `gorm:"foreignKey:GuestID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
