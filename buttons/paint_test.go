package buttons

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawIcon(t *testing.T) {
	s := &recordingSurface{}
	bg := color.RGBA{0, 0, 0, 166}
	icon := Icon{Path: "wheel.png", Size: IMG_SIZE}

	DrawIcon(s, image.Pt(96, 106), icon, bg, 0.6, 45)

	require.Len(t, s.ops, 2)
	assert.Equal(t, drawOp{kind: "circle", center: image.Pt(96, 106), radius: BTN_SIZE / 2, color: bg}, s.ops[0])
	assert.Equal(t, drawOp{kind: "icon", icon: icon, center: image.Pt(96, 106), rotation: 45, opacity: 0.6}, s.ops[1])
}

func TestDrawIcon_EmptyIconOnlyDrawsBackground(t *testing.T) {
	s := &recordingSurface{}

	DrawIcon(s, image.Pt(0, 0), Icon{}, color.RGBA{}, 1, 0)

	require.Len(t, s.ops, 1)
	assert.Equal(t, "circle", s.ops[0].kind)
}

func TestDrawIcon_IsDeterministic(t *testing.T) {
	a, b := &recordingSurface{}, &recordingSurface{}
	icon := Icon{Path: "traffic.png", Size: IMG_SIZE}

	DrawIcon(a, image.Pt(120, 192), icon, color.RGBA{}, 0.25, 0)
	DrawIcon(b, image.Pt(120, 192), icon, color.RGBA{}, 0.25, 0)

	assert.Equal(t, a.ops, b.ops)
}

func TestColorTable(t *testing.T) {
	table := DefaultColorTable()

	assert.Equal(t, color.RGBA{0, 0, 0, 166}, table.Color(StatusDefault))
	assert.Equal(t, table[StatusDefault], table.Color(StatusTag(42)))
	assert.Equal(t, "traffic_mode_active", StatusTrafficModeActive.String())

	seen := map[color.RGBA]StatusTag{}
	for tag := StatusDefault; tag < statusCount; tag++ {
		c := table.Color(tag)
		_, dup := seen[c]
		assert.False(t, dup, "color for %s is shared", tag)
		seen[c] = tag
	}
}
