package schedule

import (
	"time"

	"courseplanner/internal/domain"
)

func clock(h, m int) time.Time {
	return time.Date(0, time.January, 1, h, m, 0, 0, time.UTC)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rule(wd domain.Weekday, start, end time.Time, pause time.Duration) domain.RecurrenceRule {
	return domain.RecurrenceRule{
		CourseID:  "course-1",
		Weekday:   wd,
		StartTime: start,
		EndTime:   end,
		Pause:     EncodePause(pause),
	}
}
