package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"courseplanner/internal/delivery/http/helpers"
	"courseplanner/internal/domain"
	"courseplanner/internal/schedule"
)

const (
	clockLayout = "15:04"
	dateLayout  = "2006-01-02"

	previewCourseID = "preview"
)

// RhythmRequest is a weekly rule as entered by a user. Pause is a length ("00:30"), not a stored value.
type RhythmRequest struct {
	Weekday   string `json:"weekday" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY" example:"MONDAY"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04" example:"09:00"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04" example:"17:00"`
	Pause     string `json:"pause" validate:"omitempty,datetime=15:04" example:"00:30"`
}

// Validate implements Validator.
func (r RhythmRequest) Validate() []string {
	start, errStart := time.Parse(clockLayout, r.StartTime)
	end, errEnd := time.Parse(clockLayout, r.EndTime)
	if errStart != nil || errEnd != nil {
		return nil
	}
	if !end.After(start) {
		return []string{"end_time must be after start_time"}
	}
	return nil
}

// toRule converts the request into a rule for courseID. Times are expected to be valid.
func (r RhythmRequest) toRule(courseID string) (*domain.RecurrenceRule, error) {
	start, err := time.Parse(clockLayout, r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time: %v", domain.ErrInvalidInput, err)
	}
	end, err := time.Parse(clockLayout, r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end_time: %v", domain.ErrInvalidInput, err)
	}
	pause, err := parsePauseLength(r.Pause)
	if err != nil {
		return nil, err
	}
	return domain.NewRecurrenceRule(courseID, domain.Weekday(r.Weekday), start, end, schedule.EncodePause(pause)), nil
}

func parsePauseLength(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: pause: %v", domain.ErrInvalidInput, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// SpecialSessionRequest is a one-off session in a preview request.
type SpecialSessionRequest struct {
	Start time.Time `json:"start" validate:"required" example:"2024-01-03T09:00:00Z"`
	End   time.Time `json:"end" validate:"required" example:"2024-01-03T13:00:00Z"`
	Pause string    `json:"pause" validate:"omitempty,datetime=15:04" example:"00:30"`
	Title string    `json:"title" example:"Exam"`
}

// PreviewScheduleRequest is the request body for POST /schedule/preview.
type PreviewScheduleRequest struct {
	StartDate       string                  `json:"start_date" validate:"required,datetime=2006-01-02" example:"2024-01-01"`
	QuotaHours      float64                 `json:"quota_hours" validate:"gte=0" example:"120"`
	Rules           []RhythmRequest         `json:"rules" validate:"dive"`
	SpecialSessions []SpecialSessionRequest `json:"special_sessions" validate:"dive"`
	CourseHolidays  []string                `json:"course_holidays" validate:"dive,datetime=2006-01-02"`
	GlobalHolidays  []string                `json:"global_holidays" validate:"dive,datetime=2006-01-02"`
	// HorizonDate optionally bounds the walk; defaults to the server's maximum.
	HorizonDate string `json:"horizon_date" validate:"omitempty,datetime=2006-01-02" example:"2024-12-31"`
}

// Validate implements Validator.
func (p PreviewScheduleRequest) Validate() []string {
	var errs []string
	for i, r := range p.Rules {
		for _, e := range r.Validate() {
			errs = append(errs, fmt.Sprintf("rules[%d]: %s", i, e))
		}
	}
	for i, ss := range p.SpecialSessions {
		if !ss.Start.IsZero() && !ss.End.After(ss.Start) {
			errs = append(errs, fmt.Sprintf("special_sessions[%d]: end must be after start", i))
		}
	}
	return errs
}

func (p PreviewScheduleRequest) toInput(loc *time.Location) (domain.ScheduleInput, error) {
	in := domain.ScheduleInput{CourseID: previewCourseID, QuotaHours: p.QuotaHours}
	var err error
	if in.StartDate, err = time.ParseInLocation(dateLayout, p.StartDate, loc); err != nil {
		return in, fmt.Errorf("%w: start_date: %v", domain.ErrInvalidInput, err)
	}
	if p.HorizonDate != "" {
		if in.Horizon, err = time.ParseInLocation(dateLayout, p.HorizonDate, loc); err != nil {
			return in, fmt.Errorf("%w: horizon_date: %v", domain.ErrInvalidInput, err)
		}
	}
	for _, r := range p.Rules {
		rule, err := r.toRule(previewCourseID)
		if err != nil {
			return in, err
		}
		in.Rules = append(in.Rules, *rule)
	}
	for _, ss := range p.SpecialSessions {
		pause, err := parsePauseLength(ss.Pause)
		if err != nil {
			return in, err
		}
		in.SpecialSessions = append(in.SpecialSessions, domain.SpecialSession{
			CourseID: previewCourseID,
			Start:    ss.Start.In(loc),
			End:      ss.End.In(loc),
			Pause:    schedule.EncodePause(pause),
			Title:    ss.Title,
		})
	}
	if in.CourseHolidays, err = parseDates(p.CourseHolidays, loc); err != nil {
		return in, err
	}
	if in.GlobalHolidays, err = parseDates(p.GlobalHolidays, loc); err != nil {
		return in, err
	}
	return in, nil
}

func parseDates(ss []string, loc *time.Location) ([]time.Time, error) {
	out := make([]time.Time, 0, len(ss))
	for _, s := range ss {
		d, err := time.ParseInLocation(dateLayout, s, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: date %q: %v", domain.ErrInvalidInput, s, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// ScheduleResultSuccessResponse is the success response envelope for regenerate and preview (200).
type ScheduleResultSuccessResponse struct {
	Data  *domain.ScheduleResult `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// ListCourseDaysResponse is the response body for GET /courses/{courseID}/days.
type ListCourseDaysResponse struct {
	Days       []*domain.CourseDay    `json:"days"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListCourseDaysSuccessResponse is the success response envelope for GET /courses/{courseID}/days (200).
type ListCourseDaysSuccessResponse struct {
	Data  ListCourseDaysResponse `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// CreateRhythmSuccessResponse is the success response envelope for POST /courses/{courseID}/rhythms (201).
type CreateRhythmSuccessResponse struct {
	Data  *domain.RecurrenceRule `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type ScheduleController struct {
	Logger   *slog.Logger
	Service  domain.ScheduleService
	Location *time.Location
}

func NewScheduleController(logger *slog.Logger, svc domain.ScheduleService, loc *time.Location) *ScheduleController {
	if loc == nil {
		loc = time.UTC
	}
	return &ScheduleController{
		Logger:   logger,
		Service:  svc,
		Location: loc,
	}
}

// courseIDFromPath returns the courseID path value, writing a 400 if it is not a UUID.
func (c *ScheduleController) courseIDFromPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	courseID := r.PathValue("courseID")
	if courseID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing courseID")
		return "", false
	}
	if _, err := uuid.Parse(courseID); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "courseID must be a UUID")
		return "", false
	}
	return courseID, true
}

// writeServiceError maps domain errors to status codes. dataEntry selects the stricter codes used when
// a user submits a single rule rather than a whole schedule being generated.
func (c *ScheduleController) writeServiceError(w http.ResponseWriter, r *http.Request, err error, dataEntry bool) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "course not found")
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrRegenerationInProgress):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrDuplicateWeekdayRule) && dataEntry:
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrNonPositiveDuration) && dataEntry:
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNonTerminatingSchedule),
		errors.Is(err, domain.ErrNonPositiveDuration),
		errors.Is(err, domain.ErrDuplicateWeekdayRule):
		helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeUnprocessable, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}

// RegenerateSchedule godoc
// @Summary Regenerate the course-day schedule of a course
// @Description Replaces all course days of the course with a schedule generated from its weekly rules, special sessions and holidays until the program's hour quota is met. A course with neither rules nor special sessions keeps its days and reports status nothing_to_schedule.
// @Tags schedule
// @Produce json
// @Param courseID path string true "Course ID (UUID)"
// @Success 200 {object} controllers.ScheduleResultSuccessResponse "data contains the generated schedule"
// @Header 200 {string} Location "URL of the course-day listing"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 422 {object} helpers.APIResponse "error.code: unprocessable_schedule"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /courses/{courseID}/schedule/regenerate [post]
func (c *ScheduleController) RegenerateSchedule(w http.ResponseWriter, r *http.Request) {
	courseID, ok := c.courseIDFromPath(w, r)
	if !ok {
		return
	}
	result, err := c.Service.RegenerateSchedule(r.Context(), courseID)
	if err != nil {
		c.writeServiceError(w, r, err, false)
		return
	}
	w.Header().Set("Location", "/courses/"+courseID+"/days")
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

// ListCourseDays godoc
// @Summary List the course days of a course
// @Description Returns persisted course days ordered by start time, paginated.
// @Tags schedule
// @Produce json
// @Param courseID path string true "Course ID (UUID)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListCourseDaysSuccessResponse "data contains days and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /courses/{courseID}/days [get]
func (c *ScheduleController) ListCourseDays(w http.ResponseWriter, r *http.Request) {
	courseID, ok := c.courseIDFromPath(w, r)
	if !ok {
		return
	}
	params := helpers.ParsePagination(r)
	days, total, err := c.Service.ListCourseDays(r.Context(), courseID, params)
	if err != nil {
		c.writeServiceError(w, r, err, false)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListCourseDaysResponse{
		Days:       days,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// CreateRhythm godoc
// @Summary Add a weekly rule to a course
// @Description Creates a recurrence rule. Each weekday may carry one rule per course, and the pause must be shorter than the session.
// @Tags schedule
// @Accept json
// @Produce json
// @Param courseID path string true "Course ID (UUID)"
// @Param rhythm body RhythmRequest true "Weekly rule"
// @Success 201 {object} controllers.CreateRhythmSuccessResponse "data contains the created rule"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /courses/{courseID}/rhythms [post]
func (c *ScheduleController) CreateRhythm(w http.ResponseWriter, r *http.Request) {
	courseID, ok := c.courseIDFromPath(w, r)
	if !ok {
		return
	}
	var req RhythmRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	rule, err := req.toRule(courseID)
	if err != nil {
		c.writeServiceError(w, r, err, true)
		return
	}
	if err := c.Service.CreateRecurrenceRule(r.Context(), rule); err != nil {
		c.writeServiceError(w, r, err, true)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, rule)
}

// PreviewSchedule godoc
// @Summary Preview a schedule without saving it
// @Description Runs the schedule generator on the supplied rules, sessions and holidays. Nothing is persisted.
// @Tags schedule
// @Accept json
// @Produce json
// @Param preview body PreviewScheduleRequest true "Schedule inputs"
// @Success 200 {object} controllers.ScheduleResultSuccessResponse "data contains the generated schedule"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 422 {object} helpers.APIResponse "error.code: unprocessable_schedule"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schedule/preview [post]
func (c *ScheduleController) PreviewSchedule(w http.ResponseWriter, r *http.Request) {
	var req PreviewScheduleRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	in, err := req.toInput(c.Location)
	if err != nil {
		c.writeServiceError(w, r, err, false)
		return
	}
	result, err := c.Service.PreviewSchedule(r.Context(), in)
	if err != nil {
		c.writeServiceError(w, r, err, false)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}
