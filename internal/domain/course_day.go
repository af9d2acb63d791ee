package domain

import (
	"context"
	"time"
)

// DefaultCourseDayTitle is the title of course days produced by a weekly rule.
const DefaultCourseDayTitle = "Course day"

// CourseDay is a concrete, generated meeting of a course.
// swagger:model CourseDay
type CourseDay struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"course_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Pause     time.Time `json:"pause"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCourseDay returns a new CourseDay. ID is typically set by the repository on create.
func NewCourseDay(courseID string, start, end, pause time.Time, title string) *CourseDay {
	return &CourseDay{
		CourseID: courseID,
		Start:    start,
		End:      end,
		Pause:    pause,
		Title:    title,
	}
}

// CourseDayRepository owns the generated schedule of a course.
type CourseDayRepository interface {
	// ReplaceForCourse deletes every course day of courseID and inserts days, atomically.
	ReplaceForCourse(ctx context.Context, courseID string, days []*CourseDay) error
	ListByCourseID(ctx context.Context, courseID string, params PaginationParams) ([]*CourseDay, int, error)
}
