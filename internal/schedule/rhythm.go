package schedule

import (
	"fmt"
	"time"

	"courseplanner/internal/domain"
)

var weekdayTags = [...]domain.Weekday{
	time.Sunday:    domain.Sunday,
	time.Monday:    domain.Monday,
	time.Tuesday:   domain.Tuesday,
	time.Wednesday: domain.Wednesday,
	time.Thursday:  domain.Thursday,
	time.Friday:    domain.Friday,
	time.Saturday:  domain.Saturday,
}

// WeekdayOf returns the canonical weekday tag of t in t's own location.
func WeekdayOf(t time.Time) domain.Weekday {
	return weekdayTags[t.Weekday()]
}

// Resolve returns the first rule whose weekday matches day.
// With duplicate weekdays the later rules are unreachable; Validate rejects such input.
func Resolve(day time.Time, rules []domain.RecurrenceRule) (domain.RecurrenceRule, bool) {
	wd := WeekdayOf(day)
	for _, r := range rules {
		if r.Weekday == wd {
			return r, true
		}
	}
	return domain.RecurrenceRule{}, false
}

// RhythmTable indexes rules by weekday.
type RhythmTable map[domain.Weekday]domain.RecurrenceRule

// NewRhythmTable indexes rules, rejecting unknown weekdays and duplicates.
func NewRhythmTable(rules []domain.RecurrenceRule) (RhythmTable, error) {
	t := make(RhythmTable, len(rules))
	for _, r := range rules {
		if !r.Weekday.Valid() {
			return nil, fmt.Errorf("%w: unknown weekday %q", domain.ErrInvalidInput, r.Weekday)
		}
		if _, dup := t[r.Weekday]; dup {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateWeekdayRule, r.Weekday)
		}
		t[r.Weekday] = r
	}
	return t, nil
}

// Lookup returns the rule for day's weekday.
func (t RhythmTable) Lookup(day time.Time) (domain.RecurrenceRule, bool) {
	r, ok := t[WeekdayOf(day)]
	return r, ok
}
