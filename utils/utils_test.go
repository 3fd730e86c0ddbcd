package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestElapsedTimer(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	timer := ElapsedTimer{Now: func() time.Time { return now }}

	assert.False(t, timer.Valid())
	assert.Equal(t, time.Duration(0), timer.Elapsed())

	timer.Restart()
	assert.True(t, timer.Valid())

	now = now.Add(3500 * time.Millisecond)
	assert.Equal(t, 3500*time.Millisecond, timer.Elapsed())

	timer.Restart()
	assert.Equal(t, time.Duration(0), timer.Elapsed())
}

func TestFloat32Tracker(t *testing.T) {
	tracker := Float32Tracker{}

	assert.True(t, tracker.Update(12.5))
	assert.False(t, tracker.Update(12.5))
	assert.True(t, tracker.Update(-3))
	assert.Equal(t, float32(12.5), tracker.LastValue)

	tracker.Reset()
	assert.Equal(t, float32(0), tracker.Value)
	assert.Equal(t, float32(-3), tracker.LastValue)
}

func TestUpdateTrackerRate(t *testing.T) {
	tracker := UpdateTracker{}
	tracker.Init(5)
	assert.Equal(t, 0.0, tracker.Rate())

	tracker.DiffMA.Update(0.05)
	assert.InDelta(t, 20.0, tracker.Rate(), 1e-9)
}
