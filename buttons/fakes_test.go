package buttons

import (
	"image"
	"image/color"
)

type fakeStore struct {
	bools map[string]bool
	ints  map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{bools: map[string]bool{}, ints: map[string]int{}}
}

func (s *fakeStore) GetBool(key string) bool {
	return s.bools[key]
}

func (s *fakeStore) PutBool(key string, val bool) error {
	s.bools[key] = val
	return nil
}

func (s *fakeStore) PutInt(key string, val int) error {
	s.ints[key] = val
	return nil
}

type drawOp struct {
	kind     string
	center   image.Point
	radius   float64
	color    color.RGBA
	icon     Icon
	rotation float64
	opacity  float64
	text     string
	rect     image.Rectangle
}

type recordingSurface struct {
	ops []drawOp
}

func (s *recordingSurface) FillCircle(center image.Point, radius float64, c color.RGBA) {
	s.ops = append(s.ops, drawOp{kind: "circle", center: center, radius: radius, color: c})
}

func (s *recordingSurface) DrawIcon(icon Icon, center image.Point, rotationDeg float64, opacity float64) {
	s.ops = append(s.ops, drawOp{kind: "icon", icon: icon, center: center, rotation: rotationDeg, opacity: opacity})
}

func (s *recordingSurface) DrawText(text string, rect image.Rectangle, c color.RGBA, opacity float64) {
	s.ops = append(s.ops, drawOp{kind: "text", text: text, rect: rect, color: c, opacity: opacity})
}

// staticResolver resolves icons from a fixed set of existing paths.
func staticResolver(existing ...string) IconSourceResolver {
	set := map[string]bool{}
	for _, p := range existing {
		set[p] = true
	}
	return IconSourceResolver{Exists: func(path string) (bool, error) {
		return set[path], nil
	}}
}
