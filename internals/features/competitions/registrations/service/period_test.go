package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func colomboDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, colomboZone)
}

func TestNowInColombo(t *testing.T) {
	restore := nowFn
	defer func() { nowFn = restore }()
	nowFn = func() time.Time { return time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC) }

	now := NowInColombo()
	assert.Equal(t, 2026, now.Year())
	assert.Equal(t, time.March, now.Month())
	// 20:00 UTC is already past midnight in UTC+5:30
	assert.Equal(t, 10, now.Day())
	assert.Equal(t, 1, now.Hour())
	assert.Equal(t, 30, now.Minute())

	_, offset := now.Zone()
	assert.Equal(t, 5*3600+30*60, offset)
}

func TestCompareCalendarDays(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{
			name: "same Colombo day despite different UTC hours",
			// 20:00 UTC on the 9th is 01:30 on the 10th in Colombo
			a:    time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "same instant different zones",
			a:    time.Date(2026, 3, 10, 5, 30, 0, 0, colomboZone),
			b:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "earlier day",
			a:    colomboDate(2026, 3, 9),
			b:    colomboDate(2026, 3, 10),
			want: -1,
		},
		{
			name: "later day",
			a:    colomboDate(2026, 4, 1),
			b:    colomboDate(2026, 3, 31),
			want: 1,
		},
		{
			name: "year dominates month and day",
			a:    colomboDate(2025, 12, 31),
			b:    colomboDate(2026, 1, 1),
			want: -1,
		},
		{
			name: "UTC midnight falls on the previous Colombo day's date only after conversion",
			// 2026-03-10 23:00 UTC is 2026-03-11 04:30 in Colombo
			a:    time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC),
			b:    colomboDate(2026, 3, 10),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareCalendarDays(tt.a, tt.b))
		})
	}
}

func TestRegistrationPeriodAt(t *testing.T) {
	boundaries := PeriodBoundaries{
		EarlyBirdStart: colomboDate(2026, 1, 1),
		EarlyBirdEnd:   colomboDate(2026, 1, 31),
		StandardStart:  colomboDate(2026, 2, 1),
		StandardEnd:    colomboDate(2026, 2, 28),
		LateStart:      colomboDate(2026, 3, 1),
		LateEnd:        colomboDate(2026, 3, 15),
	}

	tests := []struct {
		name string
		at   time.Time
		want RegistrationPeriod
	}{
		{"inside early bird", colomboDate(2026, 1, 15), PeriodEarlyBird},
		{"early bird start day inclusive", colomboDate(2026, 1, 1), PeriodEarlyBird},
		{"early bird end day inclusive", colomboDate(2026, 1, 31), PeriodEarlyBird},
		{"inside standard", colomboDate(2026, 2, 14), PeriodStandard},
		{"inside late", colomboDate(2026, 3, 10), PeriodLate},
		{"late end day inclusive", colomboDate(2026, 3, 15), PeriodLate},
		{"before everything defaults to standard", colomboDate(2025, 12, 1), PeriodStandard},
		{"after everything defaults to standard", colomboDate(2026, 6, 1), PeriodStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RegistrationPeriodAt(tt.at, boundaries))
		})
	}
}

// Overlapping windows must resolve EARLY_BIRD, then LATE, then STANDARD.
// This ordering is behavior, not an implementation detail.
func TestRegistrationPeriodPriorityOnOverlap(t *testing.T) {
	at := colomboDate(2026, 2, 10)

	t.Run("early bird beats late and standard", func(t *testing.T) {
		b := PeriodBoundaries{
			EarlyBirdStart: colomboDate(2026, 2, 1),
			EarlyBirdEnd:   colomboDate(2026, 2, 28),
			StandardStart:  colomboDate(2026, 2, 1),
			StandardEnd:    colomboDate(2026, 2, 28),
			LateStart:      colomboDate(2026, 2, 1),
			LateEnd:        colomboDate(2026, 2, 28),
		}
		assert.Equal(t, PeriodEarlyBird, RegistrationPeriodAt(at, b))
	})

	t.Run("late beats standard", func(t *testing.T) {
		b := PeriodBoundaries{
			EarlyBirdStart: colomboDate(2026, 1, 1),
			EarlyBirdEnd:   colomboDate(2026, 1, 31),
			StandardStart:  colomboDate(2026, 2, 1),
			StandardEnd:    colomboDate(2026, 2, 28),
			LateStart:      colomboDate(2026, 2, 1),
			LateEnd:        colomboDate(2026, 2, 28),
		}
		assert.Equal(t, PeriodLate, RegistrationPeriodAt(at, b))
	})
}

func TestCurrentRegistrationPeriodUsesColomboClock(t *testing.T) {
	restore := nowFn
	defer func() { nowFn = restore }()
	// 19:30 UTC on Jan 31 is already Feb 1 in Colombo, so early bird is over
	nowFn = func() time.Time { return time.Date(2026, 1, 31, 19, 30, 0, 0, time.UTC) }

	b := PeriodBoundaries{
		EarlyBirdStart: colomboDate(2026, 1, 1),
		EarlyBirdEnd:   colomboDate(2026, 1, 31),
		StandardStart:  colomboDate(2026, 2, 1),
		StandardEnd:    colomboDate(2026, 2, 28),
	}
	assert.Equal(t, PeriodStandard, CurrentRegistrationPeriod(b))
}

func TestRegistrationPeriodZeroBoundaries(t *testing.T) {
	assert.Equal(t, PeriodStandard, RegistrationPeriodAt(colomboDate(2026, 2, 10), PeriodBoundaries{}))
}
