package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"courseplanner/internal/domain"
	"courseplanner/internal/schedule"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func clock(h, m int) time.Time {
	return time.Date(0, time.January, 1, h, m, 0, 0, time.UTC)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// store is an in-memory backing for every schedule repository.
type store struct {
	mu             sync.Mutex
	courses        map[string]*domain.Course
	programs       map[string]*domain.Program
	rhythms        map[string][]domain.RecurrenceRule
	specials       map[string][]domain.SpecialSession
	courseHolidays map[string][]domain.Holiday
	globalHolidays []domain.Holiday
	days           map[string][]*domain.CourseDay

	replaceCalls int
	replaceErr   error
	listErr      error
	nextID       int
}

func newStore() *store {
	return &store{
		courses:        make(map[string]*domain.Course),
		programs:       make(map[string]*domain.Program),
		rhythms:        make(map[string][]domain.RecurrenceRule),
		specials:       make(map[string][]domain.SpecialSession),
		courseHolidays: make(map[string][]domain.Holiday),
		days:           make(map[string][]*domain.CourseDay),
	}
}

func (s *store) repositories() ScheduleRepositories {
	return ScheduleRepositories{
		Courses:         fakeCourseRepo{s},
		Programs:        fakeProgramRepo{s},
		Rhythms:         fakeRhythmRepo{s},
		Holidays:        fakeHolidayRepo{s},
		SpecialSessions: fakeSpecialSessionRepo{s},
		CourseDays:      fakeCourseDayRepo{s},
	}
}

// seedMondayCourse stores course-1 starting Monday 2024-01-01 with one Monday rule of 7.5 net hours.
func (s *store) seedMondayCourse(units int) {
	s.programs["prog-1"] = &domain.Program{ID: "prog-1", Name: "Metalwork", TeachingUnits: units}
	s.courses["course-1"] = &domain.Course{ID: "course-1", ProgramID: "prog-1", Title: "Welding basics", StartDate: date(2024, 1, 1), ContactEmail: "office@example.com"}
	s.rhythms["course-1"] = []domain.RecurrenceRule{
		{ID: "r-1", CourseID: "course-1", Weekday: domain.Monday, StartTime: clock(9, 0), EndTime: clock(17, 0), Pause: schedule.EncodePause(30 * time.Minute)},
	}
}

func (s *store) persisted(courseID string) []*domain.CourseDay {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.days[courseID]
}

type fakeCourseRepo struct{ s *store }

func (f fakeCourseRepo) GetByID(_ context.Context, id string) (*domain.Course, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if c, ok := f.s.courses[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

type fakeProgramRepo struct{ s *store }

func (f fakeProgramRepo) GetByID(_ context.Context, id string) (*domain.Program, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if p, ok := f.s.programs[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

type fakeRhythmRepo struct{ s *store }

func (f fakeRhythmRepo) ListByCourseID(_ context.Context, courseID string) ([]domain.RecurrenceRule, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return append([]domain.RecurrenceRule(nil), f.s.rhythms[courseID]...), nil
}

func (f fakeRhythmRepo) Create(_ context.Context, rule *domain.RecurrenceRule) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.nextID++
	rule.ID = fmt.Sprintf("r-new-%d", f.s.nextID)
	f.s.rhythms[rule.CourseID] = append(f.s.rhythms[rule.CourseID], *rule)
	return nil
}

type fakeHolidayRepo struct{ s *store }

func (f fakeHolidayRepo) ListGlobal(context.Context) ([]domain.Holiday, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return f.s.globalHolidays, nil
}

func (f fakeHolidayRepo) ListByCourseID(_ context.Context, courseID string) ([]domain.Holiday, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return f.s.courseHolidays[courseID], nil
}

type fakeSpecialSessionRepo struct{ s *store }

func (f fakeSpecialSessionRepo) ListByCourseID(_ context.Context, courseID string) ([]domain.SpecialSession, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return f.s.specials[courseID], nil
}

type fakeCourseDayRepo struct{ s *store }

func (f fakeCourseDayRepo) ReplaceForCourse(_ context.Context, courseID string, days []*domain.CourseDay) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.replaceCalls++
	if f.s.replaceErr != nil {
		return f.s.replaceErr
	}
	stored := make([]*domain.CourseDay, 0, len(days))
	for _, d := range days {
		f.s.nextID++
		cp := *d
		cp.ID = fmt.Sprintf("cd-%d", f.s.nextID)
		cp.CreatedAt = time.Now()
		stored = append(stored, &cp)
	}
	f.s.days[courseID] = stored
	return nil
}

func (f fakeCourseDayRepo) ListByCourseID(_ context.Context, courseID string, params domain.PaginationParams) ([]*domain.CourseDay, int, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.listErr != nil {
		return nil, 0, f.s.listErr
	}
	all := f.s.days[courseID]
	lo := min(params.Offset(), len(all))
	hi := min(lo+params.Limit(), len(all))
	return all[lo:hi], len(all), nil
}

// fakeLocker grants every lock unless err is set.
type fakeLocker struct {
	err      error
	acquired int
	released int
	mu       sync.Mutex
}

func (l *fakeLocker) Acquire(ctx context.Context, _ string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, l.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.acquired++
	return func() {
		l.mu.Lock()
		l.released++
		l.mu.Unlock()
	}, nil
}

// fakeEmailService records sent summaries.
type fakeEmailService struct {
	mu   sync.Mutex
	sent []*domain.ScheduleRegeneratedEmailData
	err  error
}

func (f *fakeEmailService) SendScheduleRegenerated(_ context.Context, data *domain.ScheduleRegeneratedEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}
