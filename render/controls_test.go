package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func press(id int, x, y int) PointerEvent {
	return PointerEvent{ID: id, Kind: PointerPressed, Pos: image.Pt(x, y)}
}

func release(id int, x, y int) PointerEvent {
	return PointerEvent{ID: id, Kind: PointerReleased, Pos: image.Pt(x, y)}
}

func recordingRegion(rect image.Rectangle, log *[]string, name string) *Region {
	return &Region{
		Rect:       rect,
		OnPressed:  func() { *log = append(*log, name+" pressed") },
		OnReleased: func() { *log = append(*log, name+" released") },
		OnClicked:  func() { *log = append(*log, name+" clicked") },
	}
}

func TestControlsClick(t *testing.T) {
	var log []string
	c := NewControls()
	c.Add(recordingRegion(image.Rect(0, 0, 100, 100), &log, "a"))

	assert.True(t, c.Handle([]PointerEvent{press(-1, 10, 10), release(-1, 20, 20)}))
	assert.Equal(t, []string{"a pressed", "a released", "a clicked"}, log)
}

func TestControlsReleaseOutsideIsNotAClick(t *testing.T) {
	var log []string
	c := NewControls()
	c.Add(recordingRegion(image.Rect(0, 0, 100, 100), &log, "a"))

	c.Handle([]PointerEvent{press(-1, 10, 10)})
	c.Handle([]PointerEvent{release(-1, 500, 500)})
	assert.Equal(t, []string{"a pressed", "a released"}, log)
}

func TestControlsMiss(t *testing.T) {
	var log []string
	c := NewControls()
	c.Add(recordingRegion(image.Rect(0, 0, 100, 100), &log, "a"))

	assert.False(t, c.Handle([]PointerEvent{press(-1, 200, 200), release(-1, 50, 50)}))
	assert.Empty(t, log)
}

func TestControlsDisabledRegion(t *testing.T) {
	var log []string
	enabled := false
	c := NewControls()
	r := c.Add(recordingRegion(image.Rect(0, 0, 100, 100), &log, "a"))
	r.Enabled = func() bool { return enabled }

	c.Handle([]PointerEvent{press(-1, 10, 10), release(-1, 10, 10)})
	assert.Empty(t, log)

	enabled = true
	c.Handle([]PointerEvent{press(-1, 10, 10), release(-1, 10, 10)})
	assert.Equal(t, []string{"a pressed", "a released", "a clicked"}, log)
}

func TestControlsTouchesAreTrackedSeparately(t *testing.T) {
	var log []string
	c := NewControls()
	c.Add(recordingRegion(image.Rect(0, 0, 100, 100), &log, "a"))
	c.Add(recordingRegion(image.Rect(200, 0, 300, 100), &log, "b"))

	c.Handle([]PointerEvent{
		press(1, 10, 10),
		press(2, 250, 50),
		release(1, 10, 10),
		release(2, 250, 50),
	})
	assert.Equal(t, []string{
		"a pressed", "b pressed",
		"a released", "a clicked",
		"b released", "b clicked",
	}, log)
}
