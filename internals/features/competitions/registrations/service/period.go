package service

import "time"

// colomboZone is a fixed UTC+5:30 offset. Sri Lanka has no DST, and using
// a fixed zone keeps calendar decisions identical on hosts without tzdata.
var colomboZone = time.FixedZone("Asia/Colombo", 5*3600+30*60)

// nowFn is swapped out in tests to pin "now".
var nowFn = time.Now

// NowInColombo returns the current instant as observed in UTC+5:30,
// independent of the server's local timezone.
func NowInColombo() time.Time {
	return nowFn().In(colomboZone)
}

// CompareCalendarDays compares only the year/month/day of a and b as they
// appear in Colombo, ignoring time-of-day. Two instants on the same Colombo
// calendar day compare equal even when their UTC instants differ.
// Returns -1, 0 or 1.
func CompareCalendarDays(a, b time.Time) int {
	a = a.In(colomboZone)
	b = b.In(colomboZone)

	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	switch {
	case ay != by:
		return sign(ay - by)
	case am != bm:
		return sign(int(am) - int(bm))
	default:
		return sign(ad - bd)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// RegistrationPeriod is the pricing tier in effect for a registration date.
type RegistrationPeriod string

const (
	PeriodEarlyBird RegistrationPeriod = "early_bird"
	PeriodStandard  RegistrationPeriod = "standard"
	PeriodLate      RegistrationPeriod = "late"
)

// PeriodBoundaries carries the six configured window dates. The boundaries
// come from the competition record, not from constants in code.
type PeriodBoundaries struct {
	EarlyBirdStart time.Time
	EarlyBirdEnd   time.Time
	StandardStart  time.Time
	StandardEnd    time.Time
	LateStart      time.Time
	LateEnd        time.Time
}

// withinWindow: start and end are inclusive, by Colombo calendar day.
func withinWindow(t, start, end time.Time) bool {
	return CompareCalendarDays(t, start) >= 0 && CompareCalendarDays(t, end) <= 0
}

// RegistrationPeriodAt resolves the pricing period for an instant.
// Windows are checked EARLY_BIRD, then LATE, then STANDARD — overlapping
// (misconfigured) windows resolve in that order, so do not reorder the
// cases. Anything outside all three windows is STANDARD.
func RegistrationPeriodAt(t time.Time, b PeriodBoundaries) RegistrationPeriod {
	switch {
	case withinWindow(t, b.EarlyBirdStart, b.EarlyBirdEnd):
		return PeriodEarlyBird
	case withinWindow(t, b.LateStart, b.LateEnd):
		return PeriodLate
	case withinWindow(t, b.StandardStart, b.StandardEnd):
		return PeriodStandard
	default:
		return PeriodStandard
	}
}

// CurrentRegistrationPeriod resolves the period for "now" in Colombo.
func CurrentRegistrationPeriod(b PeriodBoundaries) RegistrationPeriod {
	return RegistrationPeriodAt(NowInColombo(), b)
}

// ParseColomboDate parses a YYYY-MM-DD boundary as a Colombo calendar date.
func ParseColomboDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, colomboZone)
}
