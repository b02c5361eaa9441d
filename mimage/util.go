package mimage

import (
	"errors"
	"image"
	"image/color"
	"io"
	"log/slog"
)

// checkErrors drains errs and joins whatever arrived, one error per line.
func checkErrors(errs <-chan error) error {
	var all []error
	for err := range errs {
		if err != nil {
			all = append(all, err)
		}
	}
	return errors.Join(all...)
}

// floorDiv divides rounding towards negative infinity, so points left of or
// above the origin land in chunk -1 rather than chunk 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// copyNRGBA copies src into r of dst, src's sp landing on r.Min. Unlike
// draw.Draw it never goes through premultiplied colour, so pixels of an
// NRGBA source are copied bit for bit whatever their alpha.
func copyNRGBA(dst *image.NRGBA, r image.Rectangle, src image.Image, sp image.Point) {
	clip := r.Intersect(dst.Rect).Intersect(src.Bounds().Add(r.Min.Sub(sp)))
	if clip.Empty() {
		return
	}
	sp = sp.Add(clip.Min.Sub(r.Min))

	if s, ok := src.(*image.NRGBA); ok {
		n := clip.Dx() * 4
		for y := 0; y < clip.Dy(); y++ {
			d := dst.PixOffset(clip.Min.X, clip.Min.Y+y)
			o := s.PixOffset(sp.X, sp.Y+y)
			copy(dst.Pix[d:d+n], s.Pix[o:o+n])
		}
		return
	}

	for y := 0; y < clip.Dy(); y++ {
		for x := 0; x < clip.Dx(); x++ {
			c := color.NRGBAModel.Convert(src.At(sp.X+x, sp.Y+y)).(color.NRGBA)
			dst.SetNRGBA(clip.Min.X+x, clip.Min.Y+y, c)
		}
	}
}

func newNopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
