package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"courseplanner/internal/domain"
	"courseplanner/internal/metrics"
	"courseplanner/internal/schedule"
)

// ScheduleRepositories groups the stores the schedule service reads and writes.
type ScheduleRepositories struct {
	Courses         domain.CourseRepository
	Programs        domain.ProgramRepository
	Rhythms         domain.RhythmRepository
	Holidays        domain.HolidayRepository
	SpecialSessions domain.SpecialSessionRepository
	CourseDays      domain.CourseDayRepository
}

// ScheduleConfig holds the quota and horizon policy.
type ScheduleConfig struct {
	// TeachingUnitMinutes is the length of one program teaching unit.
	TeachingUnitMinutes int
	// HorizonSlackDays extends a program's end date when bounding generation.
	HorizonSlackDays int
	Timeout          time.Duration
}

type scheduleService struct {
	repos          ScheduleRepositories
	locker         domain.CourseLocker
	emailService   domain.EmailService
	generator      *schedule.Generator
	inflight       singleflight.Group
	logger         *slog.Logger
	unitMinutes    int
	horizonSlack   int
	contextTimeout time.Duration
}

// NewScheduleService returns a ScheduleService. emailService may be nil to disable notifications.
func NewScheduleService(repos ScheduleRepositories, locker domain.CourseLocker, emailService domain.EmailService, generator *schedule.Generator, cfg ScheduleConfig, logger *slog.Logger) domain.ScheduleService {
	if cfg.TeachingUnitMinutes <= 0 {
		cfg.TeachingUnitMinutes = 60
	}
	return &scheduleService{
		repos:          repos,
		locker:         locker,
		emailService:   emailService,
		generator:      generator,
		logger:         logger,
		unitMinutes:    cfg.TeachingUnitMinutes,
		horizonSlack:   cfg.HorizonSlackDays,
		contextTimeout: cfg.Timeout,
	}
}

// RegenerateSchedule replaces the persisted course days of courseID with a freshly generated schedule.
// Concurrent calls for the same course share one run, which is bounded by the service timeout
// rather than by any one caller's context.
func (s *scheduleService) RegenerateSchedule(ctx context.Context, courseID string) (*domain.ScheduleResult, error) {
	v, err, shared := s.inflight.Do(courseID, func() (any, error) {
		started := time.Now()
		res, err := s.regenerate(context.WithoutCancel(ctx), courseID)
		metrics.ScheduleGenerationSeconds.Observe(time.Since(started).Seconds())
		metrics.ScheduleRegenerationsTotal.WithLabelValues(metrics.Outcome(err)).Inc()
		if errors.Is(err, domain.ErrNothingToSchedule) {
			return res, nil
		}
		return res, err
	})
	if shared {
		s.logger.DebugContext(ctx, "joined in-flight regeneration", "course_id", courseID)
	}
	if err != nil {
		return nil, err
	}
	return v.(*domain.ScheduleResult), nil
}

func (s *scheduleService) regenerate(ctx context.Context, courseID string) (*domain.ScheduleResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	release, err := s.locker.Acquire(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("lock course %s: %w", courseID, err)
	}
	defer release()

	in, course, err := s.loadInput(ctx, courseID)
	if err != nil {
		return nil, err
	}

	plan, err := s.generator.Generate(in)
	if errors.Is(err, domain.ErrNothingToSchedule) {
		s.logger.InfoContext(ctx, "nothing to schedule", "course_id", courseID)
		return emptyResult(in), err
	}
	if err != nil {
		return nil, fmt.Errorf("generate schedule: %w", err)
	}

	// previous days are only removed together with the insert of the new plan
	if err := s.repos.CourseDays.ReplaceForCourse(ctx, courseID, plan.Days); err != nil {
		return nil, fmt.Errorf("replace course days: %w", err)
	}
	metrics.CourseDaysGeneratedTotal.WithLabelValues("special").Add(float64(plan.SpecialDays))
	metrics.CourseDaysGeneratedTotal.WithLabelValues("recurring").Add(float64(plan.RecurringDays))

	s.logger.InfoContext(ctx, "schedule regenerated",
		"course_id", courseID,
		"days", len(plan.Days),
		"hours", plan.ScheduledHours,
		"quota_hours", in.QuotaHours,
	)
	s.notify(ctx, course, plan)
	return resultFromPlan(in, plan), nil
}

// loadInput reads the course first and then its program, rules, sessions and holidays concurrently.
func (s *scheduleService) loadInput(ctx context.Context, courseID string) (domain.ScheduleInput, *domain.Course, error) {
	course, err := s.repos.Courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ScheduleInput{}, nil, domain.ErrNotFound
		}
		return domain.ScheduleInput{}, nil, fmt.Errorf("get course: %w", err)
	}

	var (
		program        *domain.Program
		rules          []domain.RecurrenceRule
		specials       []domain.SpecialSession
		courseHolidays []domain.Holiday
		globalHolidays []domain.Holiday
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if program, err = s.repos.Programs.GetByID(gctx, course.ProgramID); err != nil {
			return fmt.Errorf("get program: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if rules, err = s.repos.Rhythms.ListByCourseID(gctx, courseID); err != nil {
			return fmt.Errorf("list rhythms: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if specials, err = s.repos.SpecialSessions.ListByCourseID(gctx, courseID); err != nil {
			return fmt.Errorf("list special sessions: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if courseHolidays, err = s.repos.Holidays.ListByCourseID(gctx, courseID); err != nil {
			return fmt.Errorf("list course holidays: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if globalHolidays, err = s.repos.Holidays.ListGlobal(gctx); err != nil {
			return fmt.Errorf("list holidays: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.ScheduleInput{}, nil, err
	}

	loc := s.generator.Location()
	in := domain.ScheduleInput{
		CourseID:        courseID,
		StartDate:       schedule.CalendarDate(course.StartDate, loc),
		Rules:           rules,
		SpecialSessions: specials,
		CourseHolidays:  schedule.CalendarDates(domain.HolidayDates(courseHolidays), loc),
		GlobalHolidays:  schedule.CalendarDates(domain.HolidayDates(globalHolidays), loc),
		QuotaHours:      float64(program.TeachingUnits) * float64(s.unitMinutes) / 60,
	}
	if program.EndDate != nil {
		in.Horizon = schedule.CalendarDate(*program.EndDate, loc).AddDate(0, 0, s.horizonSlack)
	}
	return in, course, nil
}

// notify mails a summary to the course contact. Failures are logged only.
func (s *scheduleService) notify(ctx context.Context, course *domain.Course, plan *schedule.Plan) {
	if s.emailService == nil || course.ContactEmail == "" || len(plan.Days) == 0 {
		return
	}
	first, last := plan.Days[0].Start, plan.Days[0].Start
	for _, d := range plan.Days[1:] {
		if d.Start.Before(first) {
			first = d.Start
		}
		if d.Start.After(last) {
			last = d.Start
		}
	}
	err := s.emailService.SendScheduleRegenerated(ctx, &domain.ScheduleRegeneratedEmailData{
		Email:          course.ContactEmail,
		CourseTitle:    course.Title,
		ScheduledHours: plan.ScheduledHours,
		DayCount:       len(plan.Days),
		FirstDay:       first,
		LastDay:        last,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "schedule summary not sent", "course_id", course.ID, "error", err)
	}
}

// PreviewSchedule runs the generator on in without touching persisted data.
func (s *scheduleService) PreviewSchedule(ctx context.Context, in domain.ScheduleInput) (*domain.ScheduleResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	plan, err := s.generator.Generate(in)
	if errors.Is(err, domain.ErrNothingToSchedule) {
		return emptyResult(in), nil
	}
	if err != nil {
		return nil, err
	}
	return resultFromPlan(in, plan), nil
}

func (s *scheduleService) ListCourseDays(ctx context.Context, courseID string, params domain.PaginationParams) ([]*domain.CourseDay, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.repos.Courses.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, 0, domain.ErrNotFound
		}
		return nil, 0, fmt.Errorf("get course: %w", err)
	}
	days, total, err := s.repos.CourseDays.ListByCourseID(ctx, courseID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list course days: %w", err)
	}
	if days == nil {
		days = []*domain.CourseDay{}
	}
	return days, total, nil
}

// CreateRecurrenceRule validates rule and stores it. A weekday may carry only one rule per course.
func (s *scheduleService) CreateRecurrenceRule(ctx context.Context, rule *domain.RecurrenceRule) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if rule == nil || rule.CourseID == "" {
		return fmt.Errorf("%w: course id is required", domain.ErrInvalidInput)
	}
	if !rule.EndTime.After(rule.StartTime) {
		return fmt.Errorf("%w: end time must be after start time", domain.ErrInvalidInput)
	}
	if err := schedule.ValidateRule(*rule); err != nil {
		return err
	}
	if _, err := s.repos.Courses.GetByID(ctx, rule.CourseID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get course: %w", err)
	}
	existing, err := s.repos.Rhythms.ListByCourseID(ctx, rule.CourseID)
	if err != nil {
		return fmt.Errorf("list rhythms: %w", err)
	}
	if _, err := schedule.NewRhythmTable(append(existing, *rule)); err != nil {
		return err
	}
	if err := s.repos.Rhythms.Create(ctx, rule); err != nil {
		return fmt.Errorf("create rhythm: %w", err)
	}
	s.logger.InfoContext(ctx, "recurrence rule created", "course_id", rule.CourseID, "weekday", rule.Weekday)
	return nil
}

func emptyResult(in domain.ScheduleInput) *domain.ScheduleResult {
	return &domain.ScheduleResult{
		CourseID:   in.CourseID,
		Status:     domain.ScheduleStatusNothingToSchedule,
		QuotaHours: in.QuotaHours,
		Days:       []*domain.CourseDay{},
	}
}

func resultFromPlan(in domain.ScheduleInput, plan *schedule.Plan) *domain.ScheduleResult {
	days := plan.Days
	if days == nil {
		days = []*domain.CourseDay{}
	}
	return &domain.ScheduleResult{
		CourseID:       in.CourseID,
		Status:         domain.ScheduleStatusGenerated,
		QuotaHours:     in.QuotaHours,
		ScheduledHours: plan.ScheduledHours,
		SpecialDays:    plan.SpecialDays,
		RecurringDays:  plan.RecurringDays,
		Days:           days,
	}
}
