// Package schedule turns weekly course rhythms, holidays and special sessions
// into concrete course days that add up to a program's hour quota.
package schedule

import "time"

// PauseStorageOffset is the fixed shift baked into stored pause values:
// a stored pause of 01:30 means a pause length of 30 minutes.
const PauseStorageOffset = time.Hour

// PauseReferenceDate is the date component of pause values built by the generator.
var PauseReferenceDate = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// PauseLength decodes a stored pause value into the pause length it represents.
func PauseLength(stored time.Time) time.Duration {
	t := stored.Add(-PauseStorageOffset)
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}

// EncodePause returns the stored pause value for a pause length. It is the inverse of PauseLength
// for lengths below 23 hours.
func EncodePause(length time.Duration) time.Time {
	return PauseReferenceDate.Add(length.Truncate(time.Minute) + PauseStorageOffset)
}

// NetHours returns the instructional hours between start and end minus the pause.
// The result is negative when the pause exceeds the span; validation rejects that case.
func NetHours(start, end, pause time.Time) float64 {
	return (end.Sub(start) - PauseLength(pause)).Hours()
}
