package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"courseplanner/internal/domain"
)

func TestCourseRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Course
		wantErr error
	}{
		{
			name: "found",
			id:   "course-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, program_id, title, start_date, contact_email\s+FROM courses`).
					WithArgs("course-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "program_id", "title", "start_date", "contact_email"}).
						AddRow("course-1", "prog-1", "Welding basics", start, "office@example.com"))
			},
			want: &domain.Course{ID: "course-1", ProgramID: "prog-1", Title: "Welding basics", StartDate: start, ContactEmail: "office@example.com"},
		},
		{
			name: "not found",
			id:   "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM courses`).WithArgs("missing").WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "db error",
			id:   "course-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM courses`).WithArgs("course-1").WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewCourseRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProgramRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Program
		wantErr error
	}{
		{
			name: "with end date",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, teaching_units, end_date\s+FROM programs`).
					WithArgs("prog-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "teaching_units", "end_date"}).
						AddRow("prog-1", "Metalwork", 120, end))
			},
			want: &domain.Program{ID: "prog-1", Name: "Metalwork", TeachingUnits: 120, EndDate: &end},
		},
		{
			name: "open ended",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM programs`).
					WithArgs("prog-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "teaching_units", "end_date"}).
						AddRow("prog-1", "Metalwork", 120, nil))
			},
			want: &domain.Program{ID: "prog-1", Name: "Metalwork", TeachingUnits: 120},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM programs`).WithArgs("prog-1").WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			got, err := NewProgramRepository(db).GetByID(ctx, "prog-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
