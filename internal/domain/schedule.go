package domain

import (
	"context"
	"time"
)

// ScheduleInput is everything the generator needs for one course.
type ScheduleInput struct {
	CourseID        string
	StartDate       time.Time
	Rules           []RecurrenceRule
	SpecialSessions []SpecialSession
	CourseHolidays  []time.Time
	GlobalHolidays  []time.Time
	QuotaHours      float64
	// Horizon is the last date the generator may visit. Zero means the generator default.
	Horizon time.Time
}

// Schedule status values reported to callers.
const (
	ScheduleStatusGenerated         = "generated"
	ScheduleStatusNothingToSchedule = "nothing_to_schedule"
)

// ScheduleResult summarizes one generation run.
// swagger:model ScheduleResult
type ScheduleResult struct {
	CourseID       string       `json:"course_id"`
	Status         string       `json:"status"`
	QuotaHours     float64      `json:"quota_hours"`
	ScheduledHours float64      `json:"scheduled_hours"`
	SpecialDays    int          `json:"special_days"`
	RecurringDays  int          `json:"recurring_days"`
	Days           []*CourseDay `json:"days"`
}

// CourseLocker serializes schedule regeneration per course.
type CourseLocker interface {
	// Acquire blocks until the lock for courseID is held or ctx is done.
	// The returned function releases the lock.
	Acquire(ctx context.Context, courseID string) (release func(), err error)
}

// ScheduleService defines the business logic for course-day schedules.
type ScheduleService interface {
	RegenerateSchedule(ctx context.Context, courseID string) (*ScheduleResult, error)
	PreviewSchedule(ctx context.Context, in ScheduleInput) (*ScheduleResult, error)
	ListCourseDays(ctx context.Context, courseID string, params PaginationParams) ([]*CourseDay, int, error)
	CreateRecurrenceRule(ctx context.Context, rule *RecurrenceRule) error
}
