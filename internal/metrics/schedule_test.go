package metrics

import (
	"errors"
	"fmt"
	"testing"

	"courseplanner/internal/domain"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, OutcomeGenerated},
		{domain.ErrNothingToSchedule, OutcomeNothing},
		{fmt.Errorf("wrap: %w", domain.ErrNonTerminatingSchedule), OutcomeNonTerminating},
		{fmt.Errorf("wrap: %w", domain.ErrRegenerationInProgress), OutcomeBusy},
		{domain.ErrDuplicateWeekdayRule, OutcomeInvalid},
		{domain.ErrNonPositiveDuration, OutcomeInvalid},
		{domain.ErrInvalidInput, OutcomeInvalid},
		{errors.New("db down"), OutcomeError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Outcome(tt.err), "%v", tt.err)
	}
}

func TestScheduleRegenerationsTotal_Increments(t *testing.T) {
	before := testutil.ToFloat64(ScheduleRegenerationsTotal.WithLabelValues(OutcomeBusy))
	ScheduleRegenerationsTotal.WithLabelValues(Outcome(domain.ErrRegenerationInProgress)).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(ScheduleRegenerationsTotal.WithLabelValues(OutcomeBusy)))
}
