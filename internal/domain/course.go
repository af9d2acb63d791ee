package domain

import (
	"context"
	"time"
)

// Program is the curriculum a course belongs to. TeachingUnits is the hour quota source.
type Program struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	TeachingUnits int        `json:"teaching_units"`
	EndDate       *time.Time `json:"end_date,omitempty"`
}

// Course is a single run of a program.
// swagger:model Course
type Course struct {
	ID           string    `json:"id"`
	ProgramID    string    `json:"program_id"`
	Title        string    `json:"title"`
	StartDate    time.Time `json:"start_date"`
	ContactEmail string    `json:"contact_email"`
}

// CourseRepository reads courses.
type CourseRepository interface {
	GetByID(ctx context.Context, id string) (*Course, error)
}

// ProgramRepository reads programs.
type ProgramRepository interface {
	GetByID(ctx context.Context, id string) (*Program, error)
}
