package domain

import (
	"context"
	"time"
)

// Holiday is a date on which courses do not meet. CourseID is empty for global holidays.
type Holiday struct {
	ID       string    `json:"id"`
	CourseID string    `json:"course_id,omitempty"`
	Date     time.Time `json:"date"`
	Name     string    `json:"name"`
}

// HolidayRepository reads global and course-specific holidays.
type HolidayRepository interface {
	ListGlobal(ctx context.Context) ([]Holiday, error)
	ListByCourseID(ctx context.Context, courseID string) ([]Holiday, error)
}

// HolidayDates extracts the dates of hs.
func HolidayDates(hs []Holiday) []time.Time {
	out := make([]time.Time, 0, len(hs))
	for _, h := range hs {
		out = append(out, h.Date)
	}
	return out
}
