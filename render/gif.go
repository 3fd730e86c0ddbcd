package render

import (
	"image"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"pfeifer.dev/onroad/utils"
)

// browsers treat delays this short as unset
const MIN_FRAME_DELAY = 20 * time.Millisecond
const DEFAULT_FRAME_DELAY = 100 * time.Millisecond

// Animation is a decoded gif with every frame composited to full size.
type Animation struct {
	Frames []image.Image
	Delays []time.Duration
	// Loops is the number of times to play, 0 plays forever
	Loops int

	cycle time.Duration
}

func LoadAnimation(path string) (*Animation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open animation")
	}
	defer f.Close()
	return DecodeAnimation(f)
}

func DecodeAnimation(r io.Reader) (*Animation, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode gif")
	}
	if len(g.Image) == 0 {
		return nil, errors.New("gif has no frames")
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}

	a := &Animation{}
	switch {
	case g.LoopCount == 0:
		a.Loops = 0
	case g.LoopCount < 0:
		a.Loops = 1
	default:
		a.Loops = g.LoopCount + 1
	}

	canvas := image.NewRGBA(bounds)
	for i, frame := range g.Image {
		var previous *image.RGBA
		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			previous = image.NewRGBA(bounds)
			draw.Draw(previous, bounds, canvas, bounds.Min, draw.Src)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		composited := image.NewRGBA(bounds)
		draw.Draw(composited, bounds, canvas, bounds.Min, draw.Src)
		a.Frames = append(a.Frames, composited)

		delay := DEFAULT_FRAME_DELAY
		if i < len(g.Delay) {
			if d := time.Duration(g.Delay[i]) * 10 * time.Millisecond; d >= MIN_FRAME_DELAY {
				delay = d
			}
		}
		a.Delays = append(a.Delays, delay)
		a.cycle += delay

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}

	return a, nil
}

// FrameAt returns the frame shown elapsed after the animation started. A
// finished animation holds its last frame.
func (a *Animation) FrameAt(elapsed time.Duration) int {
	if len(a.Frames) <= 1 || a.cycle <= 0 {
		return 0
	}
	if a.Loops > 0 && elapsed >= a.cycle*time.Duration(a.Loops) {
		return len(a.Frames) - 1
	}
	elapsed %= a.cycle
	for i, delay := range a.Delays {
		if elapsed < delay {
			return i
		}
		elapsed -= delay
	}
	return len(a.Frames) - 1
}

// Finished is true once a limited animation has played out.
func (a *Animation) Finished(elapsed time.Duration) bool {
	if len(a.Frames) <= 1 {
		return true
	}
	return a.Loops > 0 && elapsed >= a.cycle*time.Duration(a.Loops)
}

// GifPlayer plays one animation at a time into an overlay rectangle.
type GifPlayer struct {
	path   string
	anim   *Animation
	images []*ebiten.Image
	frame  int
	timer  utils.ElapsedTimer
	load   func(path string) (*Animation, error)
}

func NewGifPlayer() *GifPlayer {
	return &GifPlayer{load: LoadAnimation, frame: -1}
}

// Play starts the animation at path unless it is already playing.
func (p *GifPlayer) Play(path string) error {
	if path == p.path && p.anim != nil {
		return nil
	}
	anim, err := p.load(path)
	if err != nil {
		return err
	}
	p.Stop()
	p.path = path
	p.anim = anim
	p.images = make([]*ebiten.Image, len(anim.Frames))
	p.timer.Restart()
	return nil
}

func (p *GifPlayer) Stop() {
	for _, img := range p.images {
		if img != nil {
			img.Dispose()
		}
	}
	p.path = ""
	p.anim = nil
	p.images = nil
	p.frame = -1
}

func (p *GifPlayer) Playing() bool {
	return p.anim != nil
}

// Advance moves to the frame for the current time and reports whether it
// changed.
func (p *GifPlayer) Advance() bool {
	if p.anim == nil {
		return false
	}
	frame := p.anim.FrameAt(p.timer.Elapsed())
	if frame == p.frame {
		return false
	}
	p.frame = frame
	return true
}

func (p *GifPlayer) Draw(target *ebiten.Image, rect image.Rectangle) {
	if p.anim == nil || p.frame < 0 {
		return
	}
	img := p.images[p.frame]
	if img == nil {
		img = ebiten.NewImageFromImage(p.anim.Frames[p.frame])
		p.images[p.frame] = img
	}
	center := rect.Min.Add(rect.Size().Div(2))
	drawCentered(target, img, center, rect.Dx(), 0, 1.0)
}
