package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"courseplanner/internal/domain"
)

type courseDayRepository struct {
	DB *sql.DB
}

func NewCourseDayRepository(db *sql.DB) domain.CourseDayRepository {
	return &courseDayRepository{
		DB: db,
	}
}

// ReplaceForCourse swaps the whole schedule of a course in one transaction.
// The advisory lock keyed by course id serializes concurrent replacements across instances.
func (r *courseDayRepository) ReplaceForCourse(ctx context.Context, courseID string, days []*domain.CourseDay) (err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, courseID); err != nil {
		return fmt.Errorf("lock course schedule: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM course_days WHERE course_id = $1`, courseID); err != nil {
		return fmt.Errorf("delete course days: %w", err)
	}

	insert := `
		INSERT INTO course_days (course_id, starts_at, ends_at, pause, title)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	for _, d := range days {
		if err = tx.QueryRowContext(ctx, insert, courseID, d.Start, d.End, clockValue(d.Pause), d.Title).Scan(&d.ID, &d.CreatedAt); err != nil {
			return fmt.Errorf("insert course day %s: %w", d.Start.Format("2006-01-02"), err)
		}
		d.CourseID = courseID
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *courseDayRepository) ListByCourseID(ctx context.Context, courseID string, params domain.PaginationParams) ([]*domain.CourseDay, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM course_days WHERE course_id = $1`, courseID).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT id, course_id, starts_at, ends_at, pause, title, created_at
		FROM course_days
		WHERE course_id = $1
		ORDER BY starts_at, id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, courseID, params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var days []*domain.CourseDay
	for rows.Next() {
		d := &domain.CourseDay{}
		if err := rows.Scan(&d.ID, &d.CourseID, &d.Start, &d.End, &d.Pause, &d.Title, &d.CreatedAt); err != nil {
			return nil, 0, err
		}
		days = append(days, d)
	}
	return days, total, rows.Err()
}
