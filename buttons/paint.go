package buttons

import (
	"image"
	"image/color"
)

// Surface receives draw operations in button-local coordinates.
type Surface interface {
	FillCircle(center image.Point, radius float64, c color.RGBA)
	DrawIcon(icon Icon, center image.Point, rotationDeg float64, opacity float64)
	DrawText(text string, rect image.Rectangle, c color.RGBA, opacity float64)
}

// DrawIcon paints a circular background of diameter BTN_SIZE and then the
// icon centered on it. The background is always drawn fully opaque so its
// color alpha alone decides how see-through it is, opacity only applies to
// the icon.
func DrawIcon(s Surface, center image.Point, icon Icon, bg color.RGBA, opacity float64, rotationDeg float64) {
	s.FillCircle(center, BTN_SIZE/2, bg)
	if icon.Empty() {
		return
	}
	s.DrawIcon(icon, center, rotationDeg, opacity)
}
