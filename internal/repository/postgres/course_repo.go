package postgres

import (
	"context"
	"database/sql"
	"errors"

	"courseplanner/internal/domain"
)

type courseRepository struct {
	DB *sql.DB
}

func NewCourseRepository(db *sql.DB) domain.CourseRepository {
	return &courseRepository{
		DB: db,
	}
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	query := `
		SELECT id, program_id, title, start_date, contact_email
		FROM courses
		WHERE id = $1
	`
	c := &domain.Course{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.ProgramID, &c.Title, &c.StartDate, &c.ContactEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

type programRepository struct {
	DB *sql.DB
}

func NewProgramRepository(db *sql.DB) domain.ProgramRepository {
	return &programRepository{
		DB: db,
	}
}

func (r *programRepository) GetByID(ctx context.Context, id string) (*domain.Program, error) {
	query := `
		SELECT id, name, teaching_units, end_date
		FROM programs
		WHERE id = $1
	`
	p := &domain.Program{}
	var endDate sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.TeachingUnits, &endDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if endDate.Valid {
		p.EndDate = &endDate.Time
	}
	return p, nil
}
