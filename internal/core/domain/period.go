package domain

import (
	"fmt"
	"time"
)

// Period is a calendar bucket used by the revenue reports.
type Period string

const (
	PeriodDay   Period = "dia"
	PeriodWeek  Period = "semana"
	PeriodMonth Period = "mes"
)

// InPeriod reports whether t falls inside the given period relative to now.
// Comparisons are naive calendar comparisons in now's location: the day bucket
// is the same calendar date, the week bucket runs Sunday 00:00:00 through
// Saturday 23:59:59.999, the month bucket is the same month and year.
func InPeriod(t, now time.Time, p Period) bool {
	switch p {
	case PeriodDay:
		return t.Year() == now.Year() && t.YearDay() == now.YearDay()
	case PeriodWeek:
		start, end := WeekBounds(now)
		return !t.Before(start) && !t.After(end)
	case PeriodMonth:
		return t.Year() == now.Year() && t.Month() == now.Month()
	default:
		return false
	}
}

// WeekBounds returns the start (Sunday 00:00:00) and end (Saturday
// 23:59:59.999999999) of the calendar week containing now.
func WeekBounds(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start = start.AddDate(0, 0, -int(now.Weekday()))
	end = start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return start, end
}

// SameMonth reports whether t falls in the same calendar month and year as now.
func SameMonth(t, now time.Time) bool {
	return InPeriod(t, now, PeriodMonth)
}

// DaysInMonth returns the number of days in now's calendar month.
func DaysInMonth(now time.Time) int {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return first.AddDate(0, 1, -1).Day()
}

// DayMonthLabel formats t as DD/MM, the label format of the revenue chart.
func DayMonthLabel(t time.Time) string {
	return fmt.Sprintf("%02d/%02d", t.Day(), int(t.Month()))
}
