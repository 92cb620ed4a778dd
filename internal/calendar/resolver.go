package calendar

import (
	"time"

	"github.com/google/uuid"
)

// SlotWindow — недельное окно доступности с точки зрения резолвера.
// Ему не нужна вся модель слота, только идентификатор и дни недели.
type SlotWindow struct {
	ID       uuid.UUID
	Weekdays []int
}

// Candidate — пара (дата, слот), доступная для бронирования.
type Candidate struct {
	Date   time.Time // полночь UTC
	SlotID uuid.UUID
}

// BookedKey — ключ существующей брони для исключения из кандидатов.
type BookedKey struct {
	SlotID uuid.UUID
	Date   string // формат "2006-01-02"
}

// DateOnly отбрасывает время суток, оставляя полночь UTC.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateKey форматирует дату для BookedKey.
func DateKey(t time.Time) string {
	return DateOnly(t).Format("2006-01-02")
}

// ResolveBookable накладывает недельные окна на дни месяца и возвращает
// кандидатов на бронирование: для каждой даты месяца и каждого слота,
// чей набор дней недели содержит день этой даты, выдаётся пара (дата, слот).
//
// Исключаются:
//   - даты строго раньше today (отсечка по началу суток UTC — на сегодня
//     бронировать ещё можно);
//   - пары, уже занятые бронью (booked).
//
// Результат детерминирован: даты по возрастанию, слоты в порядке slots.
// Повторный вызов на тех же данных даёт тот же набор.
func ResolveBookable(
	slots []SlotWindow,
	year, month int,
	today time.Time,
	booked map[BookedKey]struct{},
) ([]Candidate, error) {
	lastDay, err := LastDay(year, month)
	if err != nil {
		return nil, err
	}

	cutoff := DateOnly(today)

	candidates := make([]Candidate, 0)
	for day := 1; day <= lastDay; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if date.Before(cutoff) {
			continue
		}

		weekday := MondayIndex(date)
		for _, slot := range slots {
			if !ContainsWeekday(slot.Weekdays, weekday) {
				continue
			}
			key := BookedKey{SlotID: slot.ID, Date: date.Format("2006-01-02")}
			if _, taken := booked[key]; taken {
				continue
			}
			candidates = append(candidates, Candidate{Date: date, SlotID: slot.ID})
		}
	}

	return candidates, nil
}

// ContainsWeekday сообщает, входит ли день недели w (0 — понедельник)
// в набор дней слота.
func ContainsWeekday(list []int, w int) bool {
	for _, d := range list {
		if d == w {
			return true
		}
	}
	return false
}
