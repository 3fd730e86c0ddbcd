package utils

import (
	"time"

	m "pfeifer.dev/onroad/math"
)

// UpdateTracker keeps a moving average of the interval between updates.
type UpdateTracker struct {
	LastTime time.Time
	Time     time.Time
	DiffMA   m.MovingAverage
}

func (u *UpdateTracker) Init(maLength int) {
	u.LastTime = time.Now()
	u.Time = time.Now()
	u.DiffMA.Init(maLength)
}

func (u *UpdateTracker) Update() {
	u.LastTime = u.Time
	u.Time = time.Now()
	u.DiffMA.Update(u.Time.Sub(u.LastTime).Seconds())
}

// Rate is the average number of updates per second.
func (u *UpdateTracker) Rate() float64 {
	if u.DiffMA.Estimate == 0 {
		return 0
	}
	return 1 / u.DiffMA.Estimate
}
