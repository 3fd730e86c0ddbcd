package render

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeGif(t *testing.T, delays []int, loopCount int) []byte {
	t.Helper()
	palette := color.Palette{color.Transparent, color.White, color.Black}
	g := &gif.GIF{LoopCount: loopCount}
	for i, delay := range delays {
		frame := image.NewPaletted(image.Rect(0, 0, 4, 4), palette)
		frame.SetColorIndex(i%4, 0, uint8(1+i%2))
		g.Image = append(g.Image, frame)
		g.Delay = append(g.Delay, delay)
		g.Disposal = append(g.Disposal, gif.DisposalNone)
	}

	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, g))
	return buf.Bytes()
}

func TestDecodeAnimation(t *testing.T) {
	anim, err := DecodeAnimation(bytes.NewReader(encodeGif(t, []int{10, 0, 5}, 0)))
	require.NoError(t, err)

	require.Len(t, anim.Frames, 3)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, DEFAULT_FRAME_DELAY, 50 * time.Millisecond}, anim.Delays)
	assert.Equal(t, 0, anim.Loops)

	// frames accumulate with DisposalNone
	last := anim.Frames[2]
	_, _, _, a := last.At(0, 0).RGBA()
	assert.NotZero(t, a)
	_, _, _, a = last.At(1, 0).RGBA()
	assert.NotZero(t, a)
}

func TestDecodeAnimationRejectsGarbage(t *testing.T) {
	_, err := DecodeAnimation(bytes.NewReader([]byte("not a gif")))
	assert.Error(t, err)
}

func TestFrameAt(t *testing.T) {
	anim, err := DecodeAnimation(bytes.NewReader(encodeGif(t, []int{10, 10, 20}, 0)))
	require.NoError(t, err)

	assert.Equal(t, 0, anim.FrameAt(0))
	assert.Equal(t, 0, anim.FrameAt(99*time.Millisecond))
	assert.Equal(t, 1, anim.FrameAt(100*time.Millisecond))
	assert.Equal(t, 2, anim.FrameAt(250*time.Millisecond))
	assert.Equal(t, 0, anim.FrameAt(400*time.Millisecond), "loops forever")
	assert.False(t, anim.Finished(time.Hour))
}

func TestFrameAtPlayOnce(t *testing.T) {
	anim, err := DecodeAnimation(bytes.NewReader(encodeGif(t, []int{10, 10}, -1)))
	require.NoError(t, err)

	assert.Equal(t, 1, anim.Loops)
	assert.Equal(t, 1, anim.FrameAt(150*time.Millisecond))
	assert.Equal(t, 1, anim.FrameAt(time.Second), "holds the last frame")
	assert.True(t, anim.Finished(time.Second))
}

func TestGifPlayerAdvance(t *testing.T) {
	anim, err := DecodeAnimation(bytes.NewReader(encodeGif(t, []int{10, 10}, 0)))
	require.NoError(t, err)

	now := time.Unix(0, 0)
	player := &GifPlayer{
		frame: -1,
		load:  func(string) (*Animation, error) { return anim, nil },
	}
	player.timer.Now = func() time.Time { return now }

	assert.False(t, player.Advance())
	require.NoError(t, player.Play("wheel.gif"))
	assert.True(t, player.Playing())

	assert.True(t, player.Advance())
	assert.False(t, player.Advance())

	now = now.Add(120 * time.Millisecond)
	assert.True(t, player.Advance())
	assert.Equal(t, 1, player.frame)

	require.NoError(t, player.Play("wheel.gif"))
	assert.False(t, player.Advance(), "replaying the same path keeps the timer")
}
