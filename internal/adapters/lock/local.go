// Package lock provides domain.CourseLocker implementations that keep at most one
// schedule regeneration per course in flight.
package lock

import (
	"context"
	"fmt"
	"sync"

	"courseplanner/internal/domain"
)

type localLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

// NewLocalLocker returns a CourseLocker that serializes regenerations within this process.
func NewLocalLocker() domain.CourseLocker {
	return &localLocker{slots: make(map[string]chan struct{})}
}

func (l *localLocker) slot(courseID string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.slots[courseID]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[courseID] = ch
	}
	return ch
}

func (l *localLocker) Acquire(ctx context.Context, courseID string) (func(), error) {
	ch := l.slot(courseID)
	select {
	case ch <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-ch }) }, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: course %s: %v", domain.ErrRegenerationInProgress, courseID, ctx.Err())
	}
}
