package schedule

import (
	"fmt"
	"math"
	"time"

	"courseplanner/internal/domain"
)

// atClock combines the calendar date of day with the hour and minute of clock, in loc.
func atClock(day, clock time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, loc)
}

// RuleNetHours returns the net hours of one session produced by rule.
func RuleNetHours(rule domain.RecurrenceRule) float64 {
	start := atClock(PauseReferenceDate, rule.StartTime, time.UTC)
	end := atClock(PauseReferenceDate, rule.EndTime, time.UTC)
	return NetHours(start, end, rule.Pause)
}

// ValidateRule checks a single weekly rule.
func ValidateRule(rule domain.RecurrenceRule) error {
	if !rule.Weekday.Valid() {
		return fmt.Errorf("%w: unknown weekday %q", domain.ErrInvalidInput, rule.Weekday)
	}
	if h := RuleNetHours(rule); h <= 0 {
		return fmt.Errorf("%w: %s rule %s-%s yields %.2f hours", domain.ErrNonPositiveDuration,
			rule.Weekday, rule.StartTime.Format("15:04"), rule.EndTime.Format("15:04"), h)
	}
	return nil
}

// ValidateSpecialSession checks a single special session.
func ValidateSpecialSession(ss domain.SpecialSession) error {
	if !ss.End.After(ss.Start) {
		return fmt.Errorf("%w: special session %q ends before it starts", domain.ErrNonPositiveDuration, ss.Title)
	}
	if h := NetHours(ss.Start, ss.End, ss.Pause); h <= 0 {
		return fmt.Errorf("%w: special session %q yields %.2f hours", domain.ErrNonPositiveDuration, ss.Title, h)
	}
	return nil
}

// Validate checks every precondition of Generate so that no error is discovered mid-iteration.
func Validate(in domain.ScheduleInput) error {
	if in.StartDate.IsZero() {
		return fmt.Errorf("%w: course start date is required", domain.ErrInvalidInput)
	}
	if math.IsNaN(in.QuotaHours) || math.IsInf(in.QuotaHours, 0) || in.QuotaHours < 0 {
		return fmt.Errorf("%w: quota must be a non-negative number of hours", domain.ErrInvalidInput)
	}
	if _, err := NewRhythmTable(in.Rules); err != nil {
		return err
	}
	for _, r := range in.Rules {
		if err := ValidateRule(r); err != nil {
			return err
		}
	}
	for _, ss := range in.SpecialSessions {
		if err := ValidateSpecialSession(ss); err != nil {
			return err
		}
	}
	return nil
}
