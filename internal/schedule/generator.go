package schedule

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"courseplanner/internal/domain"
)

// DefaultMaxDays bounds the walk when the input carries no horizon.
const DefaultMaxDays = 3 * 366

// Options configures a Generator.
type Options struct {
	// Location is the calendar all dates are normalized to. Defaults to UTC.
	Location *time.Location
	// MaxDays is the number of days after the start date visited when the input has no horizon.
	MaxDays int
	Logger  *slog.Logger
}

// Generator expands a course's rhythm into course days.
type Generator struct {
	loc     *time.Location
	maxDays int
	logger  *slog.Logger
}

// NewGenerator returns a Generator with opts applied over the defaults.
func NewGenerator(opts Options) *Generator {
	g := &Generator{
		loc:     opts.Location,
		maxDays: opts.MaxDays,
		logger:  opts.Logger,
	}
	if g.loc == nil {
		g.loc = time.UTC
	}
	if g.maxDays <= 0 {
		g.maxDays = DefaultMaxDays
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return g
}

// Location returns the calendar the generator works in.
func (g *Generator) Location() *time.Location {
	return g.loc
}

// Plan is the outcome of one generation run. Days holds special sessions first, then rhythm days in date order.
type Plan struct {
	Days           []*domain.CourseDay
	SpecialDays    int
	RecurringDays  int
	ScheduledHours float64
	RemainingHours float64
}

func (p *Plan) add(day *domain.CourseDay, hours float64) {
	p.Days = append(p.Days, day)
	p.ScheduledHours += hours
}

// cursorState is the loop accumulator: the day under consideration and the hours still owed.
type cursorState struct {
	day       time.Time
	remaining float64
}

type exclusions struct {
	global  ExclusionSet
	course  ExclusionSet
	special ExclusionSet
}

// reason returns the name of the first set excluding day, or "" if day is usable.
func (e exclusions) reason(day time.Time) string {
	switch {
	case !e.global.Allows(day):
		return "global holiday"
	case !e.course.Allows(day):
		return "course holiday"
	case !e.special.Allows(day):
		return "special session"
	}
	return ""
}

// Generate computes the course days for in.
// It returns domain.ErrNothingToSchedule when there is neither a rule nor a special session,
// a validation error before iterating, or domain.ErrNonTerminatingSchedule when the horizon
// is passed with hours still owed.
func (g *Generator) Generate(in domain.ScheduleInput) (*Plan, error) {
	if len(in.Rules) == 0 && len(in.SpecialSessions) == 0 {
		return nil, domain.ErrNothingToSchedule
	}
	if err := Validate(in); err != nil {
		return nil, err
	}

	plan := &Plan{}
	remaining := in.QuotaHours
	specialStarts := make([]time.Time, 0, len(in.SpecialSessions))
	for _, ss := range in.SpecialSessions {
		hours := NetHours(ss.Start, ss.End, ss.Pause)
		plan.add(domain.NewCourseDay(in.CourseID, ss.Start, ss.End, ss.Pause, ss.Title), hours)
		remaining -= hours
		specialStarts = append(specialStarts, ss.Start)
	}
	plan.SpecialDays = len(in.SpecialSessions)

	ex := exclusions{
		global:  NewExclusionSet(g.loc, in.GlobalHolidays...),
		course:  NewExclusionSet(g.loc, in.CourseHolidays...),
		special: NewExclusionSet(g.loc, specialStarts...),
	}

	st := cursorState{day: g.midnight(in.StartDate), remaining: remaining}
	horizon := g.horizon(in, st.day)
	for st.remaining > 0 && len(in.Rules) > 0 {
		if st.day.After(horizon) {
			return nil, fmt.Errorf("%w: %.2f hours left after %s", domain.ErrNonTerminatingSchedule,
				st.remaining, horizon.Format(time.DateOnly))
		}
		var (
			day   *domain.CourseDay
			hours float64
		)
		st, day, hours = g.step(st, in, ex)
		if day != nil {
			plan.add(day, hours)
			plan.RecurringDays++
		}
	}
	plan.RemainingHours = st.remaining

	g.logger.Debug("schedule generated",
		"course_id", in.CourseID,
		"special_days", plan.SpecialDays,
		"recurring_days", plan.RecurringDays,
		"hours", plan.ScheduledHours,
	)
	return plan, nil
}

// step evaluates st.day and returns the state for the next day, plus the emitted course day, if any.
func (g *Generator) step(st cursorState, in domain.ScheduleInput, ex exclusions) (cursorState, *domain.CourseDay, float64) {
	next := cursorState{day: st.day.AddDate(0, 0, 1), remaining: st.remaining}

	if why := ex.reason(st.day); why != "" {
		g.logger.Debug("day excluded", "course_id", in.CourseID, "date", st.day.Format(time.DateOnly), "reason", why)
		return next, nil, 0
	}
	rule, ok := Resolve(st.day, in.Rules)
	if !ok {
		return next, nil, 0
	}

	start := atClock(st.day, rule.StartTime, g.loc)
	end := atClock(st.day, rule.EndTime, g.loc)
	pause := time.Date(PauseReferenceDate.Year(), PauseReferenceDate.Month(), PauseReferenceDate.Day(),
		rule.Pause.Hour(), rule.Pause.Minute(), 0, 0, PauseReferenceDate.Location())
	hours := NetHours(start, end, pause)
	if !end.After(start) || hours <= 0 {
		// a daylight saving gap can swallow the rule's window on this date
		g.logger.Debug("day skipped", "course_id", in.CourseID, "date", st.day.Format(time.DateOnly),
			"reason", "non-positive duration on calendar day", "hours", hours)
		return next, nil, 0
	}
	next.remaining -= hours
	return next, domain.NewCourseDay(in.CourseID, start, end, pause, domain.DefaultCourseDayTitle), hours
}

func (g *Generator) midnight(t time.Time) time.Time {
	y, m, d := t.In(g.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, g.loc)
}

func (g *Generator) horizon(in domain.ScheduleInput, start time.Time) time.Time {
	if !in.Horizon.IsZero() {
		return g.midnight(in.Horizon)
	}
	return start.AddDate(0, 0, g.maxDays)
}
