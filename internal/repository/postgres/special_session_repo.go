package postgres

import (
	"context"
	"database/sql"

	"courseplanner/internal/domain"
)

type specialSessionRepository struct {
	DB *sql.DB
}

func NewSpecialSessionRepository(db *sql.DB) domain.SpecialSessionRepository {
	return &specialSessionRepository{
		DB: db,
	}
}

func (r *specialSessionRepository) ListByCourseID(ctx context.Context, courseID string) ([]domain.SpecialSession, error) {
	query := `
		SELECT id, course_id, starts_at, ends_at, pause, title
		FROM special_sessions
		WHERE course_id = $1
		ORDER BY starts_at, id
	`
	rows, err := r.DB.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.SpecialSession
	for rows.Next() {
		var ss domain.SpecialSession
		if err := rows.Scan(&ss.ID, &ss.CourseID, &ss.Start, &ss.End, &ss.Pause, &ss.Title); err != nil {
			return nil, err
		}
		out = append(out, ss)
	}
	return out, rows.Err()
}
