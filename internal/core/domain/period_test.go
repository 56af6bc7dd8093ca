package domain

import (
	"testing"
	"time"
)

// Wednesday, 15 May 2024.
var refNow = time.Date(2024, time.May, 15, 14, 30, 0, 0, time.UTC)

func TestInPeriod_Day(t *testing.T) {
	sameDay := time.Date(2024, time.May, 15, 8, 0, 0, 0, time.UTC)
	if !InPeriod(sameDay, refNow, PeriodDay) {
		t.Error("same calendar day should be in the day bucket")
	}
	dayBefore := refNow.AddDate(0, 0, -1)
	if InPeriod(dayBefore, refNow, PeriodDay) {
		t.Error("previous day should not be in the day bucket")
	}
}

func TestInPeriod_Week(t *testing.T) {
	// Week of 15 May 2024 runs Sunday the 12th through Saturday the 18th.
	sunday := time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2024, time.May, 18, 23, 59, 59, 0, time.UTC)
	priorSaturday := time.Date(2024, time.May, 11, 23, 59, 59, 0, time.UTC)
	nextSunday := time.Date(2024, time.May, 19, 0, 0, 0, 0, time.UTC)

	if !InPeriod(sunday, refNow, PeriodWeek) {
		t.Error("sunday start should be in the week bucket")
	}
	if !InPeriod(saturday, refNow, PeriodWeek) {
		t.Error("saturday end should be in the week bucket")
	}
	if InPeriod(priorSaturday, refNow, PeriodWeek) {
		t.Error("previous week should not be in the week bucket")
	}
	if InPeriod(nextSunday, refNow, PeriodWeek) {
		t.Error("next week should not be in the week bucket")
	}
}

func TestInPeriod_Month(t *testing.T) {
	firstOfMonth := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	if !InPeriod(firstOfMonth, refNow, PeriodMonth) {
		t.Error("first of month should be in the month bucket")
	}
	sameMonthLastYear := time.Date(2023, time.May, 15, 0, 0, 0, 0, time.UTC)
	if InPeriod(sameMonthLastYear, refNow, PeriodMonth) {
		t.Error("same month of another year should not match")
	}
}

func TestInPeriod_UnknownPeriod(t *testing.T) {
	if InPeriod(refNow, refNow, Period("ano")) {
		t.Error("unknown period should never match")
	}
}

func TestWeekBounds(t *testing.T) {
	start, end := WeekBounds(refNow)
	if start.Weekday() != time.Sunday {
		t.Errorf("week start weekday = %v, want Sunday", start.Weekday())
	}
	if start.Day() != 12 || start.Month() != time.May {
		t.Errorf("week start = %v, want 12 May", start)
	}
	if end.Weekday() != time.Saturday {
		t.Errorf("week end weekday = %v, want Saturday", end.Weekday())
	}
	if !end.After(start) {
		t.Error("week end must follow week start")
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		now  time.Time
		want int
	}{
		{time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2023, time.February, 10, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC), 31},
		{time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), 30},
	}
	for _, tc := range cases {
		if got := DaysInMonth(tc.now); got != tc.want {
			t.Errorf("DaysInMonth(%v) = %d, want %d", tc.now, got, tc.want)
		}
	}
}

func TestDayMonthLabel(t *testing.T) {
	got := DayMonthLabel(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))
	if got != "05/03" {
		t.Errorf("DayMonthLabel = %q, want 05/03", got)
	}
	got = DayMonthLabel(time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC))
	if got != "25/12" {
		t.Errorf("DayMonthLabel = %q, want 25/12", got)
	}
}
