package render

import (
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/pkg/errors"
)

// ImageCache loads each icon once. Failed loads are not cached so a wheel
// that shows up later is picked up.
type ImageCache struct {
	images map[string]*ebiten.Image
	load   func(path string) (*ebiten.Image, error)
}

func NewImageCache() *ImageCache {
	return &ImageCache{
		images: map[string]*ebiten.Image{},
		load: func(path string) (*ebiten.Image, error) {
			img, _, err := ebitenutil.NewImageFromFile(path)
			return img, err
		},
	}
}

func (c *ImageCache) Load(path string) (*ebiten.Image, error) {
	if img, ok := c.images[path]; ok {
		return img, nil
	}
	img, err := c.load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load image %s", path)
	}
	c.images[path] = img
	return img, nil
}

// Forget drops a cached image, used when a wheel is replaced on disk under
// the same name.
func (c *ImageCache) Forget(path string) {
	if img, ok := c.images[path]; ok {
		img.Dispose()
		delete(c.images, path)
	}
}
