package tile

import (
	"image"
	"image/color"
	"testing"
)

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 40), B: 7, A: uint8(100 + x + y)})
		}
	}
	return img
}

func TestPaste_Inside(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	src := checker(3, 2)

	Paste(dst, src, image.Pt(2, 4))

	for y := range 8 {
		for x := range 8 {
			got := dst.NRGBAAt(x, y)
			var want color.NRGBA
			if x >= 2 && x < 5 && y >= 4 && y < 6 {
				want = src.NRGBAAt(x-2, y-4)
			}
			if got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPaste_ClipsAtEdge(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	src := checker(3, 3)

	Paste(dst, src, image.Pt(9, 9))

	if got, want := dst.NRGBAAt(9, 9), src.NRGBAAt(0, 0); got != want {
		t.Errorf("corner pixel = %v, want %v", got, want)
	}
	if got := dst.NRGBAAt(8, 9); got != (color.NRGBA{}) {
		t.Errorf("pixel left of tile = %v, want transparent", got)
	}
}

func TestPaste_NegativeOffset(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src := checker(3, 3)

	Paste(dst, src, image.Pt(-1, -2))

	if got, want := dst.NRGBAAt(0, 0), src.NRGBAAt(1, 2); got != want {
		t.Errorf("pixel (0,0) = %v, want %v", got, want)
	}
	if got, want := dst.NRGBAAt(1, 0), src.NRGBAAt(2, 2); got != want {
		t.Errorf("pixel (1,0) = %v, want %v", got, want)
	}
	if got := dst.NRGBAAt(0, 1); got != (color.NRGBA{}) {
		t.Errorf("pixel (0,1) = %v, want transparent", got)
	}
}

func TestPaste_OutsideIsNoop(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	Paste(dst, checker(2, 2), image.Pt(10, 10))

	for _, b := range dst.Pix {
		if b != 0 {
			t.Fatal("paste outside bounds modified the canvas")
		}
	}
}

func TestPaste_OverwritesNotBlends(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range dst.Pix {
		dst.Pix[i] = 0xFF
	}
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})

	Paste(dst, src, image.Point{})

	if got, want := dst.NRGBAAt(0, 0), (color.NRGBA{R: 10, G: 20, B: 30, A: 40}); got != want {
		t.Errorf("semi-transparent pixel = %v, want %v", got, want)
	}
	if got := dst.NRGBAAt(1, 1); got != (color.NRGBA{}) {
		t.Errorf("transparent source pixel = %v, want transparent", got)
	}
}

func TestPaste_SubImageSource(t *testing.T) {
	full := checker(6, 6)
	src := full.SubImage(image.Rect(2, 2, 4, 4)).(*image.NRGBA)
	dst := image.NewNRGBA(image.Rect(0, 0, 2, 2))

	Paste(dst, src, image.Point{})

	if got, want := dst.NRGBAAt(1, 1), full.NRGBAAt(3, 3); got != want {
		t.Errorf("pixel (1,1) = %v, want %v", got, want)
	}
}

func TestPaste_GenericSource(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	src := image.NewGray(image.Rect(0, 0, 3, 3))
	for i := range src.Pix {
		src.Pix[i] = 0x80
	}

	Paste(dst, src, image.Pt(3, 3))

	want := color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	if got := dst.NRGBAAt(4, 4); got != want {
		t.Errorf("pixel (4,4) = %v, want %v", got, want)
	}
	if got := dst.NRGBAAt(2, 2); got != (color.NRGBA{}) {
		t.Errorf("pixel (2,2) = %v, want transparent", got)
	}
}

func TestPaste_RGBADestination(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	red := color.RGBA{R: 255, A: 255}
	for y := range 2 {
		for x := range 2 {
			src.SetRGBA(x, y, red)
		}
	}

	Paste(dst, src, image.Pt(3, 0))

	if got := dst.RGBAAt(3, 1); got != red {
		t.Errorf("pixel (3,1) = %v, want %v", got, red)
	}
	if got := dst.RGBAAt(2, 0); got != (color.RGBA{}) {
		t.Errorf("pixel (2,0) = %v, want transparent", got)
	}
}
