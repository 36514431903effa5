package compose

import (
	"image"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// Cell geometry of the virtual pixel space: every terminal cell covers an
// 8x16 pixel block, presented as two stacked halfblock samples.
const (
	CellPxW = 8
	CellPxH = 16
)

// FrameSize converts a terminal size in cells to virtual pixels.
func FrameSize(cols, rows int) (int, int) {
	return cols * CellPxW, rows * CellPxH
}

// PointerToPixels maps a cell coordinate to the virtual pixel at the cell
// center.
func PointerToPixels(col, row int) (int, int) {
	return col*CellPxW + CellPxW/2, row*CellPxH + CellPxH/2
}

// alphaVisible is the downsampled alpha below which a sample renders as
// the terminal's own background.
const alphaVisible = 16

const (
	upperHalf = "▀"
	lowerHalf = "▄"
	sgrReset  = "\x1b[0m"
)

type sample struct {
	r, g, b uint8
	visible bool
}

// Encode downsamples the frame to cols x 2*rows samples and emits one
// halfblock cell per column. Transparent samples keep the terminal
// default colors; premultiplied RGB is emitted as-is (composited over
// black).
func (f *Frame) Encode(cols, rows int) string {
	if cols < 1 || rows < 1 {
		return ""
	}
	small := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	xdraw.ApproxBiLinear.Scale(small, small.Bounds(), f.Img, f.Img.Bounds(), xdraw.Src, nil)

	var b strings.Builder
	b.Grow(cols * rows * 24)
	for row := 0; row < rows; row++ {
		enc := sgrEncoder{out: &b}
		for col := 0; col < cols; col++ {
			up := sampleAt(small, col, row*2)
			lo := sampleAt(small, col, row*2+1)
			enc.cell(up, lo)
		}
		enc.finish()
		if row < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func sampleAt(img *image.RGBA, x, y int) sample {
	i := img.PixOffset(x, y)
	px := img.Pix[i : i+4 : i+4]
	return sample{r: px[0], g: px[1], b: px[2], visible: px[3] >= alphaVisible}
}

// sgrEncoder emits truecolor SGR sequences, repeating them only when the
// color pair changes.
type sgrEncoder struct {
	out     *strings.Builder
	styled  bool
	lastFg  sample
	lastBg  sample
	lastSet bool
}

func (e *sgrEncoder) cell(up, lo sample) {
	switch {
	case !up.visible && !lo.visible:
		if e.styled {
			e.out.WriteString(sgrReset)
			e.styled = false
			e.lastSet = false
		}
		e.out.WriteByte(' ')
	case up.visible && lo.visible:
		e.setColors(up, lo)
		e.out.WriteString(upperHalf)
	case up.visible:
		e.setFgOnly(up)
		e.out.WriteString(upperHalf)
	default:
		e.setFgOnly(lo)
		e.out.WriteString(lowerHalf)
	}
}

func (e *sgrEncoder) setColors(fg, bg sample) {
	if e.lastSet && e.styled && fg == e.lastFg && bg == e.lastBg {
		return
	}
	e.out.WriteString("\x1b[38;2;")
	writeRGB(e.out, fg)
	e.out.WriteString(";48;2;")
	writeRGB(e.out, bg)
	e.out.WriteByte('m')
	e.styled = true
	e.lastFg, e.lastBg, e.lastSet = fg, bg, true
}

func (e *sgrEncoder) setFgOnly(fg sample) {
	if e.styled {
		e.out.WriteString(sgrReset)
	}
	e.out.WriteString("\x1b[38;2;")
	writeRGB(e.out, fg)
	e.out.WriteByte('m')
	e.styled = true
	e.lastSet = false
}

func (e *sgrEncoder) finish() {
	if e.styled {
		e.out.WriteString(sgrReset)
	}
}

func writeRGB(b *strings.Builder, s sample) {
	b.WriteString(strconv.Itoa(int(s.r)))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(int(s.g)))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(int(s.b)))
}
