// Package schedule computes the Monday-to-Sunday week windows the agenda
// view is built around.
package schedule

import (
	"fmt"
	"strings"
	"time"
)

// DayLabels are the fixed day names of a week window, Monday first, whatever
// the locale's default week start is.
var DayLabels = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekDay is one calendar day of a week window.
type WeekDay struct {
	Label   string    `json:"label"`
	Date    time.Time `json:"-"`
	ISODate string    `json:"date"`    // YYYY-MM-DD
	Display string    `json:"display"` // DD/MM
}

// WeekWindow is the seven-day span at a given offset from the current week.
// Days[0] is always a Monday and the seven entries are consecutive dates.
type WeekWindow struct {
	Offset int        `json:"offset"`
	Days   [7]WeekDay `json:"days"`
}

// Monday returns the first day of the window.
func (w WeekWindow) Monday() time.Time { return w.Days[0].Date }

// Sunday returns the last day of the window.
func (w WeekWindow) Sunday() time.Time { return w.Days[6].Date }

// Calculator derives week windows from a clock. The zero clock is time.Now;
// tests inject a fixed one.
type Calculator struct {
	now func() time.Time
}

// NewCalculator returns a calculator on the given clock, or on time.Now when
// nil is passed.
func NewCalculator(now func() time.Time) *Calculator {
	if now == nil {
		now = time.Now
	}
	return &Calculator{now: now}
}

// ComputeWeek returns the week window at offset weeks from the current week.
// The window is recomputed from the clock on every call, so two calls that
// straddle midnight may disagree about which week "offset 0" is.
func (c *Calculator) ComputeWeek(offset int) WeekWindow {
	now := c.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// Remap Sunday-is-0 to Monday-is-0 before walking back to Monday.
	weekdayIdx := (int(today.Weekday()) + 6) % 7
	monday := today.AddDate(0, 0, -weekdayIdx+offset*7)

	w := WeekWindow{Offset: offset}
	for i := 0; i < 7; i++ {
		date := monday.AddDate(0, 0, i)
		w.Days[i] = WeekDay{
			Label:   DayLabels[i],
			Date:    date,
			ISODate: date.Format("2006-01-02"),
			Display: date.Format("02/01"),
		}
	}
	return w
}

// RangeTitle formats the human-readable heading for a week window.
func RangeTitle(w WeekWindow) string {
	return fmt.Sprintf("Week of %s to %s",
		w.Monday().Format("Monday, 2 January"),
		w.Sunday().Format("Monday, 2 January"))
}

// ClockLabel trims a remote time value to HH:MM for display. Values that do
// not look like a clock time come back unchanged.
func ClockLabel(t string) string {
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return t
	}
	hh, mm := parts[0], parts[1]
	if len(hh) == 1 {
		hh = "0" + hh
	}
	if len(mm) == 1 {
		mm = "0" + mm
	}
	return hh + ":" + mm
}
