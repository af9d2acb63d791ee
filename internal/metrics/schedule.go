// Package metrics provides Prometheus metrics for schedule generation.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"courseplanner/internal/domain"
)

// Outcome labels for ScheduleRegenerationsTotal.
const (
	OutcomeGenerated      = "generated"
	OutcomeNothing        = "nothing_to_schedule"
	OutcomeInvalid        = "invalid"
	OutcomeNonTerminating = "non_terminating"
	OutcomeBusy           = "busy"
	OutcomeError          = "error"
)

var (
	// ScheduleRegenerationsTotal counts regeneration runs by outcome.
	ScheduleRegenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "courseplanner_schedule_regenerations_total",
		Help: "Total number of schedule regenerations, by outcome.",
	}, []string{"outcome"})

	// CourseDaysGeneratedTotal counts persisted course days by source.
	CourseDaysGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "courseplanner_course_days_generated_total",
		Help: "Total number of course days written by regenerations, by source (special/recurring).",
	}, []string{"source"})

	// ScheduleGenerationSeconds observes the wall time of one regeneration including persistence.
	ScheduleGenerationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "courseplanner_schedule_generation_seconds",
		Help:    "Duration of schedule regenerations in seconds.",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
	})
)

// Outcome maps a regeneration error to its outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeGenerated
	case errors.Is(err, domain.ErrNothingToSchedule):
		return OutcomeNothing
	case errors.Is(err, domain.ErrNonTerminatingSchedule):
		return OutcomeNonTerminating
	case errors.Is(err, domain.ErrRegenerationInProgress):
		return OutcomeBusy
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrNonPositiveDuration),
		errors.Is(err, domain.ErrDuplicateWeekdayRule):
		return OutcomeInvalid
	}
	return OutcomeError
}
