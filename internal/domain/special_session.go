package domain

import (
	"context"
	"time"
)

// SpecialSession is a one-off course session outside the weekly rhythm. It is always scheduled.
// swagger:model SpecialSession
type SpecialSession struct {
	ID       string    `json:"id"`
	CourseID string    `json:"course_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Pause    time.Time `json:"pause"`
	Title    string    `json:"title,omitempty"`
}

// SpecialSessionRepository reads the special sessions of a course.
type SpecialSessionRepository interface {
	ListByCourseID(ctx context.Context, courseID string) ([]SpecialSession, error)
}
