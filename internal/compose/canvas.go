package compose

import (
	"image"
	"image/draw"

	"github.com/visualleap/gamelauncher/internal/layout"
	"github.com/visualleap/gamelauncher/internal/settings"
)

// Palette constants shared by the frame painters, packed 0xRRGGBB.
const (
	ColorAccent          settings.Color = 0x007AFF // selection border
	ColorSelectionShadow settings.Color = 0x3C3C3C // offset stroke under the ring
	ColorPlaceholder     settings.Color = 0x404040 // missing-icon fill
	ColorTabBarFill      settings.Color = 0x2D2D32
	ColorTabBorder       settings.Color = 0x64646B
	ColorLabelText       settings.Color = 0xFFFFFF
	ColorLabelShadow     settings.Color = 0x0F0F0F
)

// clearAlpha is the alpha of an untouched pixel. Non-zero so the repair
// pass can tell cleared background from surfaces the RGB painters wrote
// (painters force alpha to zero).
const clearAlpha = 1

// Frame is the premultiplied ARGB canvas one redraw composites into. The
// fill, stroke, and text painters write RGB only and zero the alpha, like
// a device context that has no notion of an alpha channel; RepairAlpha
// reconstructs coverage afterwards. Image blits are the exception: they
// alpha-blend and their alpha survives.
type Frame struct {
	Img  *image.RGBA
	W, H int
}

func NewFrame(w, h int) *Frame {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Frame{Img: image.NewRGBA(image.Rect(0, 0, w, h)), W: w, H: h}
}

// Clear resets every pixel to near-transparent black.
func (f *Frame) Clear() {
	px := f.Img.Pix
	for i := 0; i < len(px); i += 4 {
		px[i] = 0
		px[i+1] = 0
		px[i+2] = 0
		px[i+3] = clearAlpha
	}
}

func (f *Frame) bounds() layout.Rect {
	return layout.Rect{X: 0, Y: 0, W: f.W, H: f.H}
}

// FillRGB paints a solid rectangle, alpha forced to zero.
func (f *Frame) FillRGB(r layout.Rect, c settings.Color) {
	r = r.Intersect(f.bounds())
	if r.Empty() {
		return
	}
	cr, cg, cb := c.RGB()
	for y := r.Y; y < r.Bottom(); y++ {
		i := f.Img.PixOffset(r.X, y)
		for x := r.X; x < r.Right(); x++ {
			f.Img.Pix[i] = cr
			f.Img.Pix[i+1] = cg
			f.Img.Pix[i+2] = cb
			f.Img.Pix[i+3] = 0
			i += 4
		}
	}
}

// StrokeRGB paints a rectangle outline of the given pen width, growing
// inward from the rect edge. Alpha forced to zero.
func (f *Frame) StrokeRGB(r layout.Rect, width int, c settings.Color) {
	if width <= 0 || r.Empty() {
		return
	}
	w := min(width, min(r.W, r.H))
	f.FillRGB(layout.Rect{X: r.X, Y: r.Y, W: r.W, H: w}, c)
	f.FillRGB(layout.Rect{X: r.X, Y: r.Bottom() - w, W: r.W, H: w}, c)
	f.FillRGB(layout.Rect{X: r.X, Y: r.Y + w, W: w, H: r.H - 2*w}, c)
	f.FillRGB(layout.Rect{X: r.Right() - w, Y: r.Y + w, W: w, H: r.H - 2*w}, c)
}

// BlendImage composites a premultiplied RGBA bitmap over the frame at the
// rect origin. Source alpha is preserved in the destination.
func (f *Frame) BlendImage(r layout.Rect, src *image.RGBA) {
	if src == nil {
		return
	}
	dst := image.Rect(r.X, r.Y, r.X+src.Bounds().Dx(), r.Y+src.Bounds().Dy())
	draw.Draw(f.Img, dst, src, src.Bounds().Min, draw.Over)
}

// CopyImage blits a bitmap without blending, alpha included. Used for the
// cached tab strip.
func (f *Frame) CopyImage(r layout.Rect, src *image.RGBA) {
	if src == nil {
		return
	}
	dst := image.Rect(r.X, r.Y, r.X+src.Bounds().Dx(), r.Y+src.Bounds().Dy())
	draw.Draw(f.Img, dst, src, src.Bounds().Min, draw.Src)
}
