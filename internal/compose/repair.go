package compose

import "github.com/visualleap/gamelauncher/internal/layout"

// bgLuminance is the average channel value of the dark theme background
// the text thresholds were tuned against.
const bgLuminance = (28 + 28 + 30) / 3

// RepairAlpha reconstructs the alpha channel after the RGB-only painters
// have run. The tab strip becomes fully opaque, the given item regions are
// classified pixel by pixel (borders, placeholder fills, text, shadows)
// and premultiplied, and everything else keeps its cleared transparency.
// Pixels that already carry alpha, image blits above all, are left alone.
func (f *Frame) RepairAlpha(tab layout.Rect, regions []layout.Rect) {
	f.repairTab(tab)
	for _, r := range regions {
		f.repairRegion(r)
	}
}

func (f *Frame) repairTab(tab layout.Rect) {
	tab = tab.Intersect(f.bounds())
	if tab.Empty() {
		return
	}
	for y := tab.Y; y < tab.Bottom(); y++ {
		i := f.Img.PixOffset(tab.X, y)
		for x := tab.X; x < tab.Right(); x++ {
			if f.Img.Pix[i+3] == 0 {
				f.Img.Pix[i+3] = 255
			}
			i += 4
		}
	}
}

func (f *Frame) repairRegion(region layout.Rect) {
	region = region.Intersect(f.bounds())
	if region.Empty() {
		return
	}
	for y := region.Y; y < region.Bottom(); y++ {
		i := f.Img.PixOffset(region.X, y)
		for x := region.X; x < region.Right(); x++ {
			px := f.Img.Pix[i : i+4 : i+4]
			if px[3] > 0 {
				i += 4
				continue
			}
			r, g, b := int(px[0]), int(px[1]), int(px[2])

			greyFill := r > 50 && r < 80 && g > 50 && g < 80 && b > 50 && b < 80
			whiteFill := r > 250 && g > 250 && b > 250
			if greyFill || whiteFill {
				px[3] = 255
				i += 4
				continue
			}
			if r == 0 && g == 0 && b == 0 {
				i += 4
				continue
			}

			lum := (r + g + b) / 3
			var a int
			switch {
			case lum > bgLuminance+50:
				a = min(255, (lum-bgLuminance)*255/(255-bgLuminance))
			case lum < 30:
				a = min(255, (bgLuminance-lum)*255/bgLuminance)
			default:
				i += 4
				continue
			}
			px[0] = uint8(r * a / 255)
			px[1] = uint8(g * a / 255)
			px[2] = uint8(b * a / 255)
			px[3] = uint8(a)
			i += 4
		}
	}
}
