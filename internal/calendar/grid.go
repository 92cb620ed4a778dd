package calendar

import (
	"errors"
	"time"
)

// Ошибки валидации календарной сетки.
var (
	ErrInvalidMonth = errors.New("invalid month")
	ErrInvalidYear  = errors.New("invalid year")
)

func validateYearMonth(year, month int) error {
	if year < 1 {
		return ErrInvalidYear
	}
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	return nil
}

// MondayIndex переводит time.Weekday (воскресенье=0) в индекс
// с понедельником=0 — так дни недели хранятся в слотах.
func MondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekdayOfFirst возвращает день недели первого числа месяца:
// 0 — понедельник, …, 6 — воскресенье.
func WeekdayOfFirst(year, month int) (int, error) {
	if err := validateYearMonth(year, month); err != nil {
		return 0, err
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return MondayIndex(first), nil
}

// LastDay возвращает последнее число месяца (28–31, с учётом високосных лет).
// День 0 следующего месяца нормализуется в последний день текущего.
func LastDay(year, month int) (int, error) {
	if err := validateYearMonth(year, month); err != nil {
		return 0, err
	}
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return last.Day(), nil
}

// MonthGrid строит последовательность дней для отображения месяца.
// Неделя в отображении начинается с воскресенья, поэтому индекс
// понедельника сдвигается: displayStart = (mondayIdx + 1) % 7.
// Первые displayStart элементов — нули (пустые клетки до первого числа),
// дальше идут дни 1..LastDay. Длина результата = displayStart + LastDay.
func MonthGrid(year, month int) ([]int, error) {
	startWeekday, err := WeekdayOfFirst(year, month)
	if err != nil {
		return nil, err
	}
	lastDay, err := LastDay(year, month)
	if err != nil {
		return nil, err
	}

	displayStart := (startWeekday + 1) % 7

	grid := make([]int, 0, displayStart+lastDay)
	for i := 0; i < displayStart; i++ {
		grid = append(grid, 0)
	}
	for day := 1; day <= lastDay; day++ {
		grid = append(grid, day)
	}

	return grid, nil
}
