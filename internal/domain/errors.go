package domain

import "errors"

// Sentinel errors shared by repositories, services and controllers.
var (
	// ErrNotFound is returned when a course, program or rule does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when a request is structurally invalid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNothingToSchedule is returned when a course has neither weekly rules nor special sessions.
	// It is recoverable: callers report an empty schedule.
	ErrNothingToSchedule = errors.New("course has no recurrence rules and no special sessions")

	// ErrNonTerminatingSchedule is returned when the generation horizon is reached with quota left,
	// e.g. every candidate day is excluded or no rule ever matches.
	ErrNonTerminatingSchedule = errors.New("schedule does not reach the hour quota within the horizon")

	// ErrNonPositiveDuration is returned when a pause consumes the whole span of a rule or special session.
	ErrNonPositiveDuration = errors.New("session duration must be positive")

	// ErrDuplicateWeekdayRule is returned when two weekly rules claim the same weekday.
	ErrDuplicateWeekdayRule = errors.New("duplicate recurrence rule for weekday")

	// ErrRegenerationInProgress is returned when the per-course lock could not be acquired in time.
	ErrRegenerationInProgress = errors.New("schedule regeneration already in progress")
)
