package render

import (
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pfeifer.dev/onroad/buttons"
)

const (
	DEBUG_GLYPH_WIDTH  = 6
	DEBUG_GLYPH_HEIGHT = 16
	TEXT_SCALE         = 3
)

// Canvas draws buttons onto an ebiten image. Button coordinates are relative
// to Origin.
type Canvas struct {
	Target *ebiten.Image
	Origin image.Point
	Images *ImageCache

	labels map[string]*ebiten.Image
}

func NewCanvas(images *ImageCache) *Canvas {
	return &Canvas{
		Images: images,
		labels: map[string]*ebiten.Image{},
	}
}

// At retargets the canvas for the next control.
func (c *Canvas) At(target *ebiten.Image, origin image.Point) *Canvas {
	c.Target = target
	c.Origin = origin
	return c
}

// straight converts the color table's straight alpha values into a color
// ebiten premultiplies itself.
func straight(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c *Canvas) FillCircle(center image.Point, radius float64, fill color.RGBA) {
	if fill.A == 0 {
		return
	}
	p := center.Add(c.Origin)
	vector.DrawFilledCircle(c.Target, float32(p.X), float32(p.Y), float32(radius), straight(fill), true)
}

func (c *Canvas) DrawIcon(icon buttons.Icon, center image.Point, rotationDeg float64, opacity float64) {
	img, err := c.Images.Load(icon.Path)
	if err != nil {
		slog.Warn("could not load icon", "error", err, "path", icon.Path)
		return
	}
	drawCentered(c.Target, img, center.Add(c.Origin), icon.Size, rotationDeg, opacity)
}

func drawCentered(target *ebiten.Image, img *ebiten.Image, center image.Point, size int, rotationDeg float64, opacity float64) {
	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(float64(size)/float64(bounds.Dx()), float64(size)/float64(bounds.Dy()))
	op.GeoM.Translate(-float64(size)/2, -float64(size)/2)
	if rotationDeg != 0 {
		op.GeoM.Rotate(rotationDeg * math.Pi / 180)
	}
	op.GeoM.Translate(float64(center.X), float64(center.Y))
	op.ColorScale.ScaleAlpha(float32(opacity))
	target.DrawImage(img, op)
}

// DrawText renders text with the debug font, scaled up and centered in rect.
func (c *Canvas) DrawText(text string, rect image.Rectangle, fill color.RGBA, opacity float64) {
	if opacity <= 0 {
		return
	}
	label, ok := c.labels[text]
	if !ok {
		label = ebiten.NewImage(len(text)*DEBUG_GLYPH_WIDTH, DEBUG_GLYPH_HEIGHT)
		ebitenutil.DebugPrintAt(label, text, 0, 0)
		c.labels[text] = label
	}

	width := float64(label.Bounds().Dx() * TEXT_SCALE)
	height := float64(label.Bounds().Dy() * TEXT_SCALE)
	r := rect.Add(c.Origin)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(TEXT_SCALE, TEXT_SCALE)
	op.GeoM.Translate(float64(r.Min.X)+(float64(r.Dx())-width)/2, float64(r.Min.Y)+(float64(r.Dy())-height)/2)
	op.ColorScale.ScaleWithColor(straight(fill))
	op.ColorScale.ScaleAlpha(float32(opacity))
	c.Target.DrawImage(label, op)
}
