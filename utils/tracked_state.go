package utils

import (
	"time"
)

// Float32Tracker remembers the last distinct value it was given.
type Float32Tracker struct {
	LastValue   float32
	Value       float32
	UpdatedTime time.Time
}

func (t *Float32Tracker) Update(val float32) (updated bool) {
	if t.Value != val {
		t.LastValue = t.Value
		t.UpdatedTime = time.Now()
		t.Value = val
		return true
	}
	return false
}

// Reset forces the value to zero without counting as an update.
func (t *Float32Tracker) Reset() {
	t.LastValue = t.Value
	t.Value = 0
}
