package domain

import (
	"context"
	"time"
)

// Weekday is the canonical weekday tag stored with a recurrence rule.
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

// Weekdays lists every valid tag, Monday first.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Valid reports whether w is one of the seven canonical tags.
func (w Weekday) Valid() bool {
	for _, d := range Weekdays {
		if d == w {
			return true
		}
	}
	return false
}

// RecurrenceRule ("rhythm") is a weekly template for a course.
// StartTime and EndTime are times of day; only hour and minute are used.
// Pause is a stored pause value: its hour/minute encode a length shifted by the pause storage offset.
// swagger:model RecurrenceRule
type RecurrenceRule struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"course_id"`
	Weekday   Weekday   `json:"weekday"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Pause     time.Time `json:"pause"`
}

// NewRecurrenceRule returns a rule for courseID. ID is set by the repository on create.
func NewRecurrenceRule(courseID string, weekday Weekday, startTime, endTime, pause time.Time) *RecurrenceRule {
	return &RecurrenceRule{
		CourseID:  courseID,
		Weekday:   weekday,
		StartTime: startTime,
		EndTime:   endTime,
		Pause:     pause,
	}
}

// RhythmRepository stores the weekly rules of a course.
type RhythmRepository interface {
	ListByCourseID(ctx context.Context, courseID string) ([]RecurrenceRule, error)
	Create(ctx context.Context, rule *RecurrenceRule) error
}
