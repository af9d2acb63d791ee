package schedule

import (
	"testing"
	"time"

	"courseplanner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayOf(t *testing.T) {
	// 2024-01-01 is a Monday.
	want := []domain.Weekday{domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Friday, domain.Saturday, domain.Sunday}
	for i, w := range want {
		assert.Equal(t, w, WeekdayOf(day(2024, 1, 1+i)))
	}
}

func TestResolve(t *testing.T) {
	mon := rule(domain.Monday, clock(9, 0), clock(12, 0), 0)
	monLate := rule(domain.Monday, clock(14, 0), clock(17, 0), 0)
	wed := rule(domain.Wednesday, clock(8, 0), clock(10, 0), 0)

	tests := []struct {
		name   string
		day    time.Time
		rules  []domain.RecurrenceRule
		want   domain.RecurrenceRule
		wantOK bool
	}{
		{"match", day(2024, 1, 3), []domain.RecurrenceRule{mon, wed}, wed, true},
		{"no match", day(2024, 1, 2), []domain.RecurrenceRule{mon, wed}, domain.RecurrenceRule{}, false},
		{"no rules", day(2024, 1, 1), nil, domain.RecurrenceRule{}, false},
		{"first match wins on duplicate weekday", day(2024, 1, 1), []domain.RecurrenceRule{mon, monLate}, mon, true},
		{"first match wins reversed", day(2024, 1, 1), []domain.RecurrenceRule{monLate, mon}, monLate, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.day, tt.rules)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func permutations(rules []domain.RecurrenceRule) [][]domain.RecurrenceRule {
	if len(rules) <= 1 {
		return [][]domain.RecurrenceRule{append([]domain.RecurrenceRule(nil), rules...)}
	}
	var out [][]domain.RecurrenceRule
	for i := range rules {
		rest := make([]domain.RecurrenceRule, 0, len(rules)-1)
		rest = append(rest, rules[:i]...)
		rest = append(rest, rules[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]domain.RecurrenceRule{rules[i]}, p...))
		}
	}
	return out
}

func TestResolve_OrderIndependentForUniqueWeekdays(t *testing.T) {
	rules := []domain.RecurrenceRule{
		rule(domain.Monday, clock(9, 0), clock(12, 0), 0),
		rule(domain.Wednesday, clock(8, 0), clock(10, 0), 0),
		rule(domain.Friday, clock(13, 0), clock(16, 0), 15*time.Minute),
		rule(domain.Sunday, clock(10, 0), clock(11, 0), 0),
	}
	table, err := NewRhythmTable(rules)
	require.NoError(t, err)

	for _, perm := range permutations(rules) {
		for d := day(2024, 1, 1); d.Before(day(2024, 1, 8)); d = d.AddDate(0, 0, 1) {
			got, ok := Resolve(d, perm)
			want, wantOK := table.Lookup(d)
			require.Equal(t, wantOK, ok)
			require.Equal(t, want, got)
		}
	}
}

func TestNewRhythmTable(t *testing.T) {
	_, err := NewRhythmTable([]domain.RecurrenceRule{
		rule(domain.Monday, clock(9, 0), clock(12, 0), 0),
		rule(domain.Monday, clock(13, 0), clock(15, 0), 0),
	})
	require.ErrorIs(t, err, domain.ErrDuplicateWeekdayRule)

	_, err = NewRhythmTable([]domain.RecurrenceRule{rule("FUNDAY", clock(9, 0), clock(12, 0), 0)})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	table, err := NewRhythmTable(nil)
	require.NoError(t, err)
	assert.Empty(t, table)
}
