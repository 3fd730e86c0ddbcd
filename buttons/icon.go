package buttons

import (
	"log/slog"

	"pfeifer.dev/onroad/params"
)

// Icon identifies an image asset and the square size it is drawn at. Loading
// the pixels is left to the Surface.
type Icon struct {
	Path string
	Size int
}

func (i Icon) Empty() bool {
	return i.Path == ""
}

type IconKind int

const (
	IconNone IconKind = iota
	IconAnimated
	IconStatic
)

func (k IconKind) String() string {
	switch k {
	case IconAnimated:
		return "animated"
	case IconStatic:
		return "static"
	}
	return "none"
}

type IconDecision struct {
	Kind  IconKind
	Asset string
}

// IconSourceResolver picks between an animated and a static asset purely by
// which files exist.
type IconSourceResolver struct {
	Exists func(path string) (bool, error)
}

func (r IconSourceResolver) exists(path string) bool {
	if path == "" {
		return false
	}
	exists := r.Exists
	if exists == nil {
		exists = params.Exists
	}
	ok, err := exists(path)
	if err != nil {
		slog.Warn("could not check icon asset", "error", err, "path", path)
		return false
	}
	return ok
}

func (r IconSourceResolver) Resolve(animatedPath string, staticPath string) IconDecision {
	if r.exists(animatedPath) {
		return IconDecision{Kind: IconAnimated, Asset: animatedPath}
	}
	if r.exists(staticPath) {
		return IconDecision{Kind: IconStatic, Asset: staticPath}
	}
	return IconDecision{Kind: IconNone}
}
