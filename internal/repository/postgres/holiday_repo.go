package postgres

import (
	"context"
	"database/sql"

	"courseplanner/internal/domain"
)

type holidayRepository struct {
	DB *sql.DB
}

func NewHolidayRepository(db *sql.DB) domain.HolidayRepository {
	return &holidayRepository{
		DB: db,
	}
}

func (r *holidayRepository) ListGlobal(ctx context.Context) ([]domain.Holiday, error) {
	query := `SELECT id, date, name FROM holidays ORDER BY date`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Holiday
	for rows.Next() {
		var h domain.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *holidayRepository) ListByCourseID(ctx context.Context, courseID string) ([]domain.Holiday, error) {
	query := `
		SELECT id, course_id, date, name
		FROM course_holidays
		WHERE course_id = $1
		ORDER BY date
	`
	rows, err := r.DB.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Holiday
	for rows.Next() {
		var h domain.Holiday
		if err := rows.Scan(&h.ID, &h.CourseID, &h.Date, &h.Name); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
