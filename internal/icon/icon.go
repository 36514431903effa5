package icon

import (
	"fmt"
	"image"
	"os"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

type key struct {
	path string
	size int
}

// Cache loads shortcut icons, scales them once, and keeps the scaled
// premultiplied bitmaps keyed by (path, size). Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[key]*image.RGBA
}

func NewCache() *Cache {
	return &Cache{entries: map[key]*image.RGBA{}}
}

// Get returns the icon at path scaled to fit a size*size box. Results are
// cached; a second call with the same arguments returns the same bitmap.
func (c *Cache) Get(path string, size int) (*image.RGBA, error) {
	if path == "" || size <= 0 {
		return nil, fmt.Errorf("no icon")
	}
	k := key{path: path, size: size}
	c.mu.Lock()
	if img, ok := c.entries[k]; ok {
		c.mu.Unlock()
		return img, nil
	}
	c.mu.Unlock()

	img, err := load(path, size)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.entries[k] = img
	c.mu.Unlock()
	return img, nil
}

// Clear drops every cached bitmap. Called on refresh so replaced icon
// files are picked up.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = map[key]*image.RGBA{}
	c.mu.Unlock()
}

func load(path string, size int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon: %w", err)
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", path, err)
	}
	return Scale(src, size), nil
}

// Scale fits src into a size*size box, preserving aspect ratio and
// centering, with Catmull-Rom resampling. The result is premultiplied
// RGBA; the padding stays fully transparent.
func Scale(src image.Image, size int) *image.RGBA {
	b := src.Bounds()
	sw, sh := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	if sw <= 0 || sh <= 0 {
		return dst
	}
	w, h := size, size
	if sw > sh {
		h = sh * size / sw
	} else if sh > sw {
		w = sw * size / sh
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	x := (size - w) / 2
	y := (size - h) / 2
	xdraw.CatmullRom.Scale(dst, image.Rect(x, y, x+w, y+h), src, b, xdraw.Over, nil)
	return dst
}
