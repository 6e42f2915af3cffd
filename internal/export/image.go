// Package export writes rendered frames to image and text files.
package export

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"sdfterm/internal/raster"
)

// Glyph cell size of basicfont.Face7x13.
const (
	CellWidth  = 7
	CellHeight = 13
)

// Rasterize draws every glyph of fb into a CellWidth×CellHeight cell.
func Rasterize(fb *raster.FrameBuffer, fg, bg color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width*CellWidth, fb.Height*CellHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	ascent := face.Metrics().Ascent.Ceil()
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
	}
	for y := 0; y < fb.Height; y++ {
		d.Dot = fixed.P(0, y*CellHeight+ascent)
		d.DrawString(string(fb.Row(y)))
	}
	return img
}

// Scale enlarges img by an integer factor with nearest-neighbour sampling
// so glyph edges stay hard.
func Scale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
