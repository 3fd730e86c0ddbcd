package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type PointerKind int

const (
	PointerPressed PointerKind = iota
	PointerReleased
)

// PointerEvent is a mouse button or touch going down or up.
type PointerEvent struct {
	// ID is -1 for the mouse, otherwise the touch id
	ID   int
	Kind PointerKind
	Pos  image.Point
}

// Region is a clickable area. Handlers run in event order on the update
// goroutine.
type Region struct {
	Rect    image.Rectangle
	Enabled func() bool

	OnPressed  func()
	OnReleased func()
	OnClicked  func()
}

func (r *Region) enabled() bool {
	return r.Enabled == nil || r.Enabled()
}

// Controls routes pointer events to the region under the pointer. A region
// that saw a press always sees the matching release.
type Controls struct {
	regions []*Region
	held    map[int]*Region
}

func NewControls() *Controls {
	return &Controls{held: map[int]*Region{}}
}

func (c *Controls) Add(region *Region) *Region {
	c.regions = append(c.regions, region)
	return region
}

func (c *Controls) hit(pos image.Point) *Region {
	for i := len(c.regions) - 1; i >= 0; i-- {
		r := c.regions[i]
		if r.enabled() && pos.In(r.Rect) {
			return r
		}
	}
	return nil
}

// Handle dispatches events and reports whether any handler ran.
func (c *Controls) Handle(events []PointerEvent) (handled bool) {
	for _, e := range events {
		switch e.Kind {
		case PointerPressed:
			r := c.hit(e.Pos)
			if r == nil {
				continue
			}
			c.held[e.ID] = r
			if r.OnPressed != nil {
				r.OnPressed()
			}
			handled = true
		case PointerReleased:
			r, ok := c.held[e.ID]
			if !ok {
				continue
			}
			delete(c.held, e.ID)
			if r.OnReleased != nil {
				r.OnReleased()
			}
			if e.Pos.In(r.Rect) && r.enabled() && r.OnClicked != nil {
				r.OnClicked()
			}
			handled = true
		}
	}
	return handled
}

// Update polls ebiten for this tick's mouse and touch events.
func (c *Controls) Update() bool {
	return c.Handle(PollPointerEvents(nil))
}

func PollPointerEvents(events []PointerEvent) []PointerEvent {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, PointerEvent{ID: -1, Kind: PointerPressed, Pos: image.Pt(x, y)})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, PointerEvent{ID: -1, Kind: PointerReleased, Pos: image.Pt(x, y)})
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		events = append(events, PointerEvent{ID: int(id), Kind: PointerPressed, Pos: image.Pt(x, y)})
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		events = append(events, PointerEvent{ID: int(id), Kind: PointerReleased, Pos: image.Pt(x, y)})
	}
	return events
}
