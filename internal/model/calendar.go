package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// calendars
type Calendar struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	// 1:1 с хостом — uniqueIndex гарантирует не больше одного календаря на пользователя.
	HostID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	// Темы для встреч, хранится как JSON-массив строк (в Postgres — JSONB).
	Topics datatypes.JSONSlice[string] `gorm:"type:jsonb"`

	Description string `gorm:"type:text"`

	// Идентификатор внешнего календаря. Только храним, синхронизации нет.
	GoogleCalendarID string `gorm:"type:varchar(1024)"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	// Навигационные поля
	Host      *User      `gorm:"foreignKey:HostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	TimeSlots []TimeSlot `gorm:"foreignKey:CalendarID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
