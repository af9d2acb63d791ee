package schedule

import "time"

type civilDate struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time, loc *time.Location) civilDate {
	y, m, d := t.In(loc).Date()
	return civilDate{year: y, month: m, day: d}
}

// IsAllowed reports whether day is not one of the excluded dates.
// Only year, month and day are compared, after converting every value to loc.
func IsAllowed(day time.Time, excluded []time.Time, loc *time.Location) bool {
	want := dateOf(day, loc)
	for _, e := range excluded {
		if dateOf(e, loc) == want {
			return false
		}
	}
	return true
}

// ExclusionSet is a set of calendar dates in a single location.
type ExclusionSet struct {
	loc   *time.Location
	dates map[civilDate]struct{}
}

// NewExclusionSet builds a set from dates, normalized to loc.
func NewExclusionSet(loc *time.Location, dates ...time.Time) ExclusionSet {
	s := ExclusionSet{loc: loc, dates: make(map[civilDate]struct{}, len(dates))}
	for _, d := range dates {
		s.dates[dateOf(d, loc)] = struct{}{}
	}
	return s
}

// Allows reports whether day is absent from the set.
func (s ExclusionSet) Allows(day time.Time) bool {
	_, hit := s.dates[dateOf(day, s.loc)]
	return !hit
}

// Len returns the number of distinct dates in the set.
func (s ExclusionSet) Len() int {
	return len(s.dates)
}

// CalendarDate reinterprets the year, month and day of t (as stored, in t's own location) as midnight in loc.
// DATE columns are scanned as UTC midnight; converting them with In would shift them for zones west of UTC.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// CalendarDates applies CalendarDate to every element of ts.
func CalendarDates(ts []time.Time, loc *time.Location) []time.Time {
	out := make([]time.Time, 0, len(ts))
	for _, t := range ts {
		out = append(out, CalendarDate(t, loc))
	}
	return out
}
