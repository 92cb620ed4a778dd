package service

import "errors"

// Ошибки регистрации и входа.
var (
	ErrDuplicatedUsername = errors.New("duplicated username")
	ErrDuplicatedEmail    = errors.New("duplicated email")
	ErrPasswordMismatch   = errors.New("password mismatch")
	ErrInvalidUsername    = errors.New("username must be 4-40 characters")
	ErrInvalidDisplayName = errors.New("display name must be 4-40 characters")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPassword    = errors.New("password must be 8-128 characters")
	ErrPasswordsNotEqual  = errors.New("passwords do not match")
)

// Ошибки поиска сущностей.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCalendarNotFound = errors.New("calendar not found")
	ErrSlotNotFound     = errors.New("time slot not found")
	ErrBookingNotFound  = errors.New("booking not found")
)

// Ошибки бронирования.
var (
	// Бронь на пару (слот, дата) уже существует. Возвращается и при
	// быстрой проверке, и при нарушении уникального индекса на вставке —
	// наружу сырая ошибка хранилища не выходит.
	ErrDuplicateBooking = errors.New("booking already exists for this slot and date")
	// День недели даты не входит в набор дней слота.
	ErrWeekdayNotAllowed = errors.New("slot is not available on this weekday")
	// Дата в прошлом (раньше начала текущих суток UTC).
	ErrPastDate = errors.New("cannot book a past date")
	// Права: календарём управляет только хост.
	ErrNotHost = errors.New("user is not a host")
	// Календарь у хоста уже есть (1:1).
	ErrCalendarExists = errors.New("host already has a calendar")
	// Некорректное окно слота.
	ErrInvalidSlotRange    = errors.New("slot end time must be after start time")
	ErrInvalidSlotWeekdays = errors.New("slot weekdays must be in range 0-6")
)
