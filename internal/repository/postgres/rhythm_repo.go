package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"courseplanner/internal/domain"
)

// clockValue formats the time-of-day part of t for TIME columns.
func clockValue(t time.Time) string {
	return t.Format("15:04:05")
}

type rhythmRepository struct {
	DB *sql.DB
}

func NewRhythmRepository(db *sql.DB) domain.RhythmRepository {
	return &rhythmRepository{
		DB: db,
	}
}

// ListByCourseID returns the rules in creation order, which is the order the resolver scans them in.
func (r *rhythmRepository) ListByCourseID(ctx context.Context, courseID string) ([]domain.RecurrenceRule, error) {
	query := `
		SELECT id, course_id, weekday, start_time, end_time, pause
		FROM course_rhythms
		WHERE course_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.DB.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var rules []domain.RecurrenceRule
	for rows.Next() {
		var rule domain.RecurrenceRule
		var weekday string
		if err := rows.Scan(&rule.ID, &rule.CourseID, &weekday, &rule.StartTime, &rule.EndTime, &rule.Pause); err != nil {
			return nil, err
		}
		rule.Weekday = domain.Weekday(weekday)
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

func (r *rhythmRepository) Create(ctx context.Context, rule *domain.RecurrenceRule) error {
	query := `
		INSERT INTO course_rhythms (course_id, weekday, start_time, end_time, pause)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, rule.CourseID, string(rule.Weekday),
		clockValue(rule.StartTime), clockValue(rule.EndTime), clockValue(rule.Pause)).Scan(&rule.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505":
				return fmt.Errorf("%w: %s", domain.ErrDuplicateWeekdayRule, rule.Weekday)
			case "23503":
				return domain.ErrNotFound
			}
		}
		return err
	}
	return nil
}
