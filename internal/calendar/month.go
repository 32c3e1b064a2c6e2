package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for calendar construction.
var (
	ErrInvalidYear  = errors.New("invalid calendar year")
	ErrInvalidMonth = errors.New("invalid calendar month")
)

// Year bounds accepted by Build.
const (
	MinYear = 1
	MaxYear = 9999
)

const daysPerWeek = 7

// Day is one cell of a month grid. Cells outside the month have Number 0.
type Day struct {
	Number  int
	InMonth bool
	Weekend bool
}

// Month is a grid of whole weeks covering one month.
type Month struct {
	Year     int
	Month    time.Month
	Weekdays []time.Weekday // column order
	Weeks    [][]Day
}

// Title returns the month heading, e.g. "January 2026".
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return daysIn(m.Year, m.Month)
}

// Build returns the twelve months of year with weeks starting on weekStart.
func Build(year int, weekStart time.Weekday) ([]Month, error) {
	if year < MinYear || year > MaxYear {
		return nil, fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidYear, year, MinYear, MaxYear)
	}

	months := make([]Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		month, err := NewMonth(year, m, weekStart)
		if err != nil {
			return nil, err
		}
		months = append(months, month)
	}
	return months, nil
}

// NewMonth lays out a single month. Leading and trailing cells pad the grid
// to whole weeks.
func NewMonth(year int, month time.Month, weekStart time.Weekday) (Month, error) {
	if year < MinYear || year > MaxYear {
		return Month{}, fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidYear, year, MinYear, MaxYear)
	}
	if month < time.January || month > time.December {
		return Month{}, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	if weekStart < time.Sunday || weekStart > time.Saturday {
		weekStart = time.Monday
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	lead := (int(first) - int(weekStart) + daysPerWeek) % daysPerWeek
	days := daysIn(year, month)

	cells := lead + days
	if rem := cells % daysPerWeek; rem != 0 {
		cells += daysPerWeek - rem
	}

	weekdays := make([]time.Weekday, daysPerWeek)
	for i := range weekdays {
		weekdays[i] = time.Weekday((int(weekStart) + i) % daysPerWeek)
	}

	weeks := make([][]Day, 0, cells/daysPerWeek)
	for row := 0; row < cells/daysPerWeek; row++ {
		week := make([]Day, daysPerWeek)
		for col := range week {
			n := row*daysPerWeek + col - lead + 1
			wd := weekdays[col]
			week[col] = Day{
				Weekend: wd == time.Saturday || wd == time.Sunday,
			}
			if n >= 1 && n <= days {
				week[col].Number = n
				week[col].InMonth = true
			}
		}
		weeks = append(weeks, week)
	}

	return Month{
		Year:     year,
		Month:    month,
		Weekdays: weekdays,
		Weeks:    weeks,
	}, nil
}

// daysIn relies on time.Date normalizing day 0 to the last day of the
// previous month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
