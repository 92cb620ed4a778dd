package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestWeekdayOfFirst(t *testing.T) {
	cases := []struct {
		year, month int
		want        int
	}{
		{2024, 12, 6}, // 2024-12-01 is a Sunday
		{2025, 2, 5},  // 2025-02-01 is a Saturday
		{2024, 3, 4},  // 2024-03-01 is a Friday
		{2024, 1, 0},  // 2024-01-01 is a Monday
	}

	for _, tc := range cases {
		got, err := WeekdayOfFirst(tc.year, tc.month)
		if err != nil {
			t.Fatalf("WeekdayOfFirst(%d, %d): %v", tc.year, tc.month, err)
		}
		if got != tc.want {
			t.Errorf("WeekdayOfFirst(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestLastDay(t *testing.T) {
	cases := []struct {
		year, month int
		want        int
	}{
		{2024, 2, 29}, // leap year
		{2025, 2, 28},
		{2024, 12, 31},
		{2024, 4, 30},
	}

	for _, tc := range cases {
		got, err := LastDay(tc.year, tc.month)
		if err != nil {
			t.Fatalf("LastDay(%d, %d): %v", tc.year, tc.month, err)
		}
		if got != tc.want {
			t.Errorf("LastDay(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestMonthGrid_Fixtures(t *testing.T) {
	cases := []struct {
		year, month  int
		leadingZeros int
		length       int
	}{
		{2024, 3, 5, 36},
		{2024, 2, 4, 33}, // leap year
		{2025, 2, 6, 34},
		{2024, 12, 0, 31},
	}

	for _, tc := range cases {
		grid, err := MonthGrid(tc.year, tc.month)
		if err != nil {
			t.Fatalf("MonthGrid(%d, %d): %v", tc.year, tc.month, err)
		}
		if len(grid) != tc.length {
			t.Errorf("MonthGrid(%d, %d) length = %d, want %d", tc.year, tc.month, len(grid), tc.length)
		}
		for i := 0; i < tc.leadingZeros; i++ {
			if grid[i] != 0 {
				t.Errorf("MonthGrid(%d, %d)[%d] = %d, want 0", tc.year, tc.month, i, grid[i])
			}
		}
		if grid[tc.leadingZeros] != 1 {
			t.Errorf("MonthGrid(%d, %d)[%d] = %d, want 1", tc.year, tc.month, tc.leadingZeros, grid[tc.leadingZeros])
		}
	}
}

func TestMonthGrid_LengthProperty(t *testing.T) {
	// len(grid) == displayStart + lastDay for every month of several years.
	for year := 2023; year <= 2026; year++ {
		for month := 1; month <= 12; month++ {
			grid, err := MonthGrid(year, month)
			if err != nil {
				t.Fatalf("MonthGrid(%d, %d): %v", year, month, err)
			}
			startWeekday, _ := WeekdayOfFirst(year, month)
			lastDay, _ := LastDay(year, month)
			displayStart := (startWeekday + 1) % 7

			if len(grid) != displayStart+lastDay {
				t.Errorf("MonthGrid(%d, %d) length = %d, want %d", year, month, len(grid), displayStart+lastDay)
			}
			for i := 0; i < displayStart; i++ {
				if grid[i] != 0 {
					t.Errorf("MonthGrid(%d, %d)[%d] = %d, want 0", year, month, i, grid[i])
				}
			}
			if grid[len(grid)-1] != lastDay {
				t.Errorf("MonthGrid(%d, %d) last = %d, want %d", year, month, grid[len(grid)-1], lastDay)
			}
		}
	}
}

func TestMonthGrid_InvalidInput(t *testing.T) {
	if _, err := MonthGrid(2024, 0); !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("MonthGrid(2024, 0) error = %v, want ErrInvalidMonth", err)
	}
	if _, err := MonthGrid(2024, 13); !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("MonthGrid(2024, 13) error = %v, want ErrInvalidMonth", err)
	}
	if _, err := MonthGrid(0, 5); !errors.Is(err, ErrInvalidYear) {
		t.Errorf("MonthGrid(0, 5) error = %v, want ErrInvalidYear", err)
	}
	if _, err := LastDay(2024, 13); !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("LastDay(2024, 13) error = %v, want ErrInvalidMonth", err)
	}
	if _, err := WeekdayOfFirst(-1, 1); !errors.Is(err, ErrInvalidYear) {
		t.Errorf("WeekdayOfFirst(-1, 1) error = %v, want ErrInvalidYear", err)
	}
}

func TestMondayIndex(t *testing.T) {
	// 2024-01-01 is a Monday.
	for i := 0; i < 7; i++ {
		d := time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC)
		if got := MondayIndex(d); got != i {
			t.Errorf("MondayIndex(%s) = %d, want %d", d.Format("2006-01-02"), got, i)
		}
	}
}
