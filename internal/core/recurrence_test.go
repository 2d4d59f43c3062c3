package core

import (
	"testing"
	"time"

	"github.com/AbinashGupta/task-manager/pkg/models"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parsing %q: %v", value, err)
	}
	return parsed
}

func TestEndOfPeriod(t *testing.T) {
	tests := []struct {
		name string
		in   string
		freq models.Frequency
		want string
	}{
		{"daily mid-day", "2026-02-18T10:30:00Z", models.FrequencyDaily, "2026-02-18T23:59:59.999Z"},
		{"daily at midnight", "2026-02-18T00:00:00Z", models.FrequencyDaily, "2026-02-18T23:59:59.999Z"},
		// 2026-02-18 is a Wednesday; its Monday-started week ends Sunday 2026-02-22.
		{"weekly mid-week", "2026-02-18T10:30:00Z", models.FrequencyWeekly, "2026-02-22T23:59:59.999Z"},
		// 2026-02-16 is the Monday itself.
		{"weekly on monday", "2026-02-16T00:00:00Z", models.FrequencyWeekly, "2026-02-22T23:59:59.999Z"},
		{"monthly", "2026-02-18T10:30:00Z", models.FrequencyMonthly, "2026-02-28T23:59:59.999Z"},
		{"monthly in 31-day month", "2026-01-05T00:00:00Z", models.FrequencyMonthly, "2026-01-31T23:59:59.999Z"},
		{"yearly", "2026-02-18T10:30:00Z", models.FrequencyYearly, "2026-12-31T23:59:59.999Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EndOfPeriod(mustParse(t, tt.in), tt.freq)
			want := mustParse(t, tt.want)
			if !got.Equal(want) {
				t.Errorf("EndOfPeriod(%s, %s) = %s, want %s", tt.in, tt.freq, got.Format(time.RFC3339Nano), tt.want)
			}
		})
	}
}

func TestEndOfPeriodNoneReturnsInputUnchanged(t *testing.T) {
	in := mustParse(t, "2026-02-18T10:30:00Z")
	if got := EndOfPeriod(in, models.FrequencyNone); !got.Equal(in) {
		t.Errorf("EndOfPeriod with frequency none = %s, want input %s", got, in)
	}
}

func TestNextOccurrence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		freq models.Frequency
		want string
	}{
		{"daily", "2026-02-18T10:30:00Z", models.FrequencyDaily, "2026-02-19T10:30:00Z"},
		{"weekly", "2026-02-18T10:30:00Z", models.FrequencyWeekly, "2026-02-25T10:30:00Z"},
		{"monthly", "2026-02-18T10:30:00Z", models.FrequencyMonthly, "2026-03-18T10:30:00Z"},
		{"yearly", "2026-02-18T10:30:00Z", models.FrequencyYearly, "2027-02-18T10:30:00Z"},
		// AddDate normalization: Jan 31 + 1 month = Feb 31 = Mar 3 in a
		// non-leap year.
		{"monthly from jan 31", "2026-01-31T09:00:00Z", models.FrequencyMonthly, "2026-03-03T09:00:00Z"},
		// Leap day + 1 year normalizes to Mar 1.
		{"yearly from leap day", "2024-02-29T09:00:00Z", models.FrequencyYearly, "2025-03-01T09:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextOccurrence(mustParse(t, tt.in), tt.freq)
			if !ok {
				t.Fatalf("NextOccurrence(%s, %s) returned ok=false", tt.in, tt.freq)
			}
			want := mustParse(t, tt.want)
			if !got.Equal(want) {
				t.Errorf("NextOccurrence(%s, %s) = %s, want %s", tt.in, tt.freq, got.Format(time.RFC3339), tt.want)
			}
		})
	}
}

func TestNextOccurrenceNone(t *testing.T) {
	if _, ok := NextOccurrence(mustParse(t, "2026-02-18T10:30:00Z"), models.FrequencyNone); ok {
		t.Error("NextOccurrence with frequency none should return ok=false")
	}
}

func TestNextOccurrenceFromDueDate(t *testing.T) {
	tests := []struct {
		name string
		due  string
		freq models.Frequency
		want string
	}{
		// Advance one day, then snap to end of that day.
		{"daily", "2026-02-18T00:00:00Z", models.FrequencyDaily, "2026-02-19T23:59:59.999Z"},
		// Due Wed Feb 18; one week later is Wed Feb 25, whose week ends
		// Sunday Mar 1.
		{"weekly", "2026-02-18T10:00:00Z", models.FrequencyWeekly, "2026-03-01T23:59:59.999Z"},
		{"monthly", "2026-02-18T10:00:00Z", models.FrequencyMonthly, "2026-03-31T23:59:59.999Z"},
		{"yearly", "2026-02-18T10:00:00Z", models.FrequencyYearly, "2027-12-31T23:59:59.999Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextOccurrenceFromDueDate(mustParse(t, tt.due), tt.freq)
			if !ok {
				t.Fatalf("NextOccurrenceFromDueDate(%s, %s) returned ok=false", tt.due, tt.freq)
			}
			want := mustParse(t, tt.want)
			if !got.Equal(want) {
				t.Errorf("NextOccurrenceFromDueDate(%s, %s) = %s, want %s",
					tt.due, tt.freq, got.Format(time.RFC3339Nano), tt.want)
			}
		})
	}
}

func TestInitialRecurringDueDate(t *testing.T) {
	now := mustParse(t, "2026-02-18T10:30:00Z")
	got := InitialRecurringDueDate(now, models.FrequencyDaily)
	want := mustParse(t, "2026-02-18T23:59:59.999Z")
	if !got.Equal(want) {
		t.Errorf("InitialRecurringDueDate daily = %s, want %s", got.Format(time.RFC3339Nano), want)
	}
}

func TestWindowFor(t *testing.T) {
	anchor := mustParse(t, "2026-02-18T10:30:00Z")

	tests := []struct {
		view      CalendarView
		wantStart string
		wantEnd   string
	}{
		{ViewDaily, "2026-02-18T00:00:00Z", "2026-02-18T23:59:59.999Z"},
		{ViewWeekly, "2026-02-16T00:00:00Z", "2026-02-22T23:59:59.999Z"},
		{ViewMonthly, "2026-02-01T00:00:00Z", "2026-02-28T23:59:59.999Z"},
	}

	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			start, end := WindowFor(tt.view, anchor)
			if !start.Equal(mustParse(t, tt.wantStart)) {
				t.Errorf("start = %s, want %s", start.Format(time.RFC3339Nano), tt.wantStart)
			}
			if !end.Equal(mustParse(t, tt.wantEnd)) {
				t.Errorf("end = %s, want %s", end.Format(time.RFC3339Nano), tt.wantEnd)
			}
		})
	}
}

func TestStartOfWeekMondayBased(t *testing.T) {
	// Sunday belongs to the week started the previous Monday.
	sunday := mustParse(t, "2026-02-22T18:00:00Z")
	got := StartOfWeek(sunday)
	want := mustParse(t, "2026-02-16T00:00:00Z")
	if !got.Equal(want) {
		t.Errorf("StartOfWeek(sunday) = %s, want %s", got, want)
	}
}
