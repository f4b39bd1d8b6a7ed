package schedule

import (
	"testing"
	"time"
)

// Wednesday 2024-06-12, mid-week, so the Monday walk-back is non-trivial.
func fixedWednesday() time.Time {
	return time.Date(2024, 6, 12, 15, 4, 5, 0, time.UTC)
}

func TestComputeWeekOffsets(t *testing.T) {
	calc := NewCalculator(fixedWednesday)

	tests := []struct {
		name   string
		offset int
		monday string
		sunday string
	}{
		{"current week", 0, "2024-06-10", "2024-06-16"},
		{"previous week", -1, "2024-06-03", "2024-06-09"},
		{"next week", 1, "2024-06-17", "2024-06-23"},
		{"four weeks back", -4, "2024-05-13", "2024-05-19"},
		{"across month boundary", 3, "2024-07-01", "2024-07-07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := calc.ComputeWeek(tt.offset)
			if got := w.Days[0].ISODate; got != tt.monday {
				t.Errorf("monday = %s, want %s", got, tt.monday)
			}
			if got := w.Days[6].ISODate; got != tt.sunday {
				t.Errorf("sunday = %s, want %s", got, tt.sunday)
			}
		})
	}
}

func TestComputeWeekInvariants(t *testing.T) {
	calc := NewCalculator(fixedWednesday)

	for offset := -10; offset <= 10; offset++ {
		w := calc.ComputeWeek(offset)

		if w.Monday().Weekday() != time.Monday {
			t.Errorf("offset %d: first day is %s, want Monday", offset, w.Monday().Weekday())
		}
		for i := 1; i < 7; i++ {
			prev, cur := w.Days[i-1].Date, w.Days[i].Date
			if !cur.Equal(prev.AddDate(0, 0, 1)) {
				t.Errorf("offset %d: day %d (%s) does not follow day %d (%s)",
					offset, i, cur, i-1, prev)
			}
		}
		for i, d := range w.Days {
			if d.Label != DayLabels[i] {
				t.Errorf("offset %d: day %d label = %s, want %s", offset, i, d.Label, DayLabels[i])
			}
		}
	}
}

func TestComputeWeekStartsFromSunday(t *testing.T) {
	// Sunday belongs to the week that began the previous Monday.
	calc := NewCalculator(func() time.Time {
		return time.Date(2024, 6, 16, 9, 0, 0, 0, time.UTC)
	})
	w := calc.ComputeWeek(0)
	if got := w.Days[0].ISODate; got != "2024-06-10" {
		t.Errorf("monday = %s, want 2024-06-10", got)
	}
}

func TestRangeTitle(t *testing.T) {
	calc := NewCalculator(fixedWednesday)
	w := calc.ComputeWeek(0)
	want := "Week of Monday, 10 June to Sunday, 16 June"
	if got := RangeTitle(w); got != want {
		t.Errorf("RangeTitle = %q, want %q", got, want)
	}
}

func TestClockLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:30:00", "09:30"},
		{"9:5:00", "09:05"},
		{"18:00", "18:00"},
		{"7", "7"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ClockLabel(tt.in); got != tt.want {
			t.Errorf("ClockLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
