package model

import (
	"time"

	"github.com/google/uuid"
)

// users
type User struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	// Уникальный логин, по нему строятся публичные URL календаря.
	Username string `gorm:"type:varchar(40);not null;uniqueIndex"`
	Email    string `gorm:"type:varchar(128);not null;uniqueIndex"`

	DisplayName string `gorm:"type:varchar(40);not null"`

	// Хеш пароля (bcrypt). Наружу не отдаётся — в DTO этого поля нет.
	PasswordHash string `gorm:"type:varchar(128);not null"`

	// Хост владеет календарём, гость — только бронированиями.
	IsHost bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	// Навигационные поля (опционально)
	Calendar *Calendar `gorm:"foreignKey:HostID"`
	Bookings []Booking `gorm:"foreignKey:GuestID"`
}
