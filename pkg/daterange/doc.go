// Package daterange computes common relative date ranges (today,
// yesterday, last 7 days, this month, ...) for report filters and
// dashboard queries, plus the matching display formatting.
//
//	start, end, err := daterange.Range(daterange.Last7Days)
//	fmt.Println(daterange.FormatDate(start)) // "2026-08-23"
//
// Ranges cover whole local days: start is midnight of the first day and
// end is the last nanosecond of the last day. RangeFrom takes an explicit
// anchor instant for deterministic tests or non-local time zones.
package daterange
