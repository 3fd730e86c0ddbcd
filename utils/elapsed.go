package utils

import "time"

// ElapsedTimer measures time since its last Restart. A timer that was never
// restarted is invalid and reports zero elapsed time.
type ElapsedTimer struct {
	start time.Time
	Now   func() time.Time
}

func (t *ElapsedTimer) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

func (t *ElapsedTimer) Restart() {
	t.start = t.now()
}

func (t *ElapsedTimer) Valid() bool {
	return !t.start.IsZero()
}

func (t *ElapsedTimer) Elapsed() time.Duration {
	if !t.Valid() {
		return 0
	}
	return t.now().Sub(t.start)
}
