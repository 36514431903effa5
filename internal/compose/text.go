package compose

import (
	"image"
	"image/color"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/visualleap/gamelauncher/internal/layout"
	"github.com/visualleap/gamelauncher/internal/settings"
)

// The glyph source is the fixed 7x13 face, scaled to the requested pixel
// height with nearest-neighbour so the repaired edges stay crisp.
var textFace = basicfont.Face7x13

const (
	faceHeight  = 13
	faceAdvance = 7
)

// TextWidth returns the rendered pixel width of s at the given size.
func TextWidth(s string, sizePx int) int {
	return runewidth.StringWidth(s) * faceAdvance * sizePx / faceHeight
}

// maxTextColumns is how many face columns fit into a pixel width.
func maxTextColumns(widthPx, sizePx int) int {
	den := faceAdvance * sizePx / faceHeight
	if den <= 0 {
		return 1
	}
	return max(1, widthPx/den)
}

func renderMask(s string, sizePx int) *image.Alpha {
	w := font.MeasureString(textFace, s).Ceil()
	if w <= 0 || sizePx <= 0 {
		return nil
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, faceHeight))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.NewUniform(color.Alpha{A: 255}),
		Face: textFace,
		Dot:  fixed.P(0, textFace.Ascent),
	}
	d.DrawString(s)
	sw := w * sizePx / faceHeight
	if sw < 1 {
		sw = 1
	}
	scaled := image.NewAlpha(image.Rect(0, 0, sw, sizePx))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), mask, mask.Bounds(), xdraw.Src, nil)
	return scaled
}

// DrawTextRGB stamps a single line centered in r at the given pixel size.
// Like the other painters it writes RGB only and zeroes alpha.
func (f *Frame) DrawTextRGB(s string, r layout.Rect, sizePx int, c settings.Color) {
	mask := renderMask(s, sizePx)
	if mask == nil {
		return
	}
	mb := mask.Bounds()
	x0 := r.X + (r.W-mb.Dx())/2
	y0 := r.Y + (r.H-mb.Dy())/2
	f.stampMask(mask, x0, y0, c)
}

// DrawTextShadowedRGB draws a line with a dark offset shadow, the label
// treatment the repair pass classifies by luminance.
func (f *Frame) DrawTextShadowedRGB(s string, r layout.Rect, sizePx int, c settings.Color) {
	shadow := max(1, sizePx/12)
	f.DrawTextRGB(s, r.Offset(shadow, shadow), sizePx, ColorLabelShadow)
	f.DrawTextRGB(s, r, sizePx, c)
}

// DrawLabelRGB word-wraps a label to at most two lines inside r and draws
// them shadowed. Overlong second lines truncate with an ellipsis.
func (f *Frame) DrawLabelRGB(s string, r layout.Rect, sizePx int, c settings.Color) {
	cols := maxTextColumns(r.W, sizePx)
	lines := strings.Split(wordwrap.String(s, cols), "\n")
	if len(lines) > 2 {
		lines = lines[:2]
		lines[1] = runewidth.Truncate(lines[1], cols, "…")
	}
	for i := range lines {
		if runewidth.StringWidth(lines[i]) > cols {
			lines[i] = runewidth.Truncate(lines[i], cols, "…")
		}
	}
	lineH := sizePx + sizePx/4
	totalH := lineH * len(lines)
	y := r.Y + (r.H-totalH)/2
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			y += lineH
			continue
		}
		f.DrawTextShadowedRGB(line, layout.Rect{X: r.X, Y: y, W: r.W, H: lineH}, sizePx, c)
		y += lineH
	}
}

func (f *Frame) stampMask(mask *image.Alpha, x0, y0 int, c settings.Color) {
	cr, cg, cb := c.RGB()
	mb := mask.Bounds()
	for my := 0; my < mb.Dy(); my++ {
		fy := y0 + my
		if fy < 0 || fy >= f.H {
			continue
		}
		for mx := 0; mx < mb.Dx(); mx++ {
			fx := x0 + mx
			if fx < 0 || fx >= f.W {
				continue
			}
			if mask.AlphaAt(mb.Min.X+mx, mb.Min.Y+my).A < 128 {
				continue
			}
			i := f.Img.PixOffset(fx, fy)
			f.Img.Pix[i] = cr
			f.Img.Pix[i+1] = cg
			f.Img.Pix[i+2] = cb
			f.Img.Pix[i+3] = 0
		}
	}
}
