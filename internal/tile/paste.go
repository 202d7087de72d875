package tile

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Paste copies src onto dst with its top-left corner at the given point.
// Destination pixels are replaced, not blended, and anything falling outside
// dst's bounds is dropped.
//
// NRGBA-to-NRGBA copies are done row by row so straight alpha survives
// unchanged; every other pairing goes through x/image/draw with the Src op.
func Paste(dst xdraw.Image, src image.Image, at image.Point) {
	sr := src.Bounds()

	if d, ok := dst.(*image.NRGBA); ok {
		if s, ok := src.(*image.NRGBA); ok {
			pasteNRGBA(d, s, at)
			return
		}
	}

	xdraw.Copy(dst, at, src, sr, xdraw.Src, nil)
}

func pasteNRGBA(dst, src *image.NRGBA, at image.Point) {
	sr := src.Bounds()
	dr := image.Rectangle{Min: at, Max: at.Add(sr.Size())}.Intersect(dst.Bounds())
	if dr.Empty() {
		return
	}

	// Shift the source origin by however much the destination was clipped.
	sp := sr.Min.Add(dr.Min.Sub(at))
	rowBytes := dr.Dx() * 4

	for y := range dr.Dy() {
		si := src.PixOffset(sp.X, sp.Y+y)
		di := dst.PixOffset(dr.Min.X, dr.Min.Y+y)
		copy(dst.Pix[di:di+rowBytes], src.Pix[si:si+rowBytes])
	}
}
