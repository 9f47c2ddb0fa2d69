package daterange

import "time"

// Period names a relative date range anchored at "now".
type Period string

// Supported periods.
const (
	Today      Period = "today"
	Yesterday  Period = "yesterday"
	Last7Days  Period = "last7days"
	Last30Days Period = "last30days"
	ThisMonth  Period = "thismonth"
	LastMonth  Period = "lastmonth"
)

// Display layouts for dates and timestamps.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Range computes the start and end instants of a period relative to the
// current moment. Ranges are inclusive of whole days: start is the first
// nanosecond of the first day and end the last nanosecond of the last day,
// in the local time zone. Rolling periods (Last7Days, Last30Days) count the
// current day as day one.
func Range(p Period) (time.Time, time.Time, error) {
	return RangeFrom(time.Now(), p)
}

// RangeFrom is Range with an explicit anchor, useful for tests and for
// computing ranges in a caller-chosen time zone.
func RangeFrom(now time.Time, p Period) (time.Time, time.Time, error) {
	switch p {
	case Today:
		return StartOfDay(now), EndOfDay(now), nil
	case Yesterday:
		y := now.AddDate(0, 0, -1)
		return StartOfDay(y), EndOfDay(y), nil
	case Last7Days:
		return StartOfDay(now.AddDate(0, 0, -6)), EndOfDay(now), nil
	case Last30Days:
		return StartOfDay(now.AddDate(0, 0, -29)), EndOfDay(now), nil
	case ThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, EndOfDay(now), nil
	case LastMonth:
		firstOfThis := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		start := firstOfThis.AddDate(0, -1, 0)
		return start, firstOfThis.Add(-time.Nanosecond), nil
	default:
		return time.Time{}, time.Time{}, ErrUnknownPeriod
	}
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDateTime renders t as YYYY-MM-DD HH:mm:ss.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}
