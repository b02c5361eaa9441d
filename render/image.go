package render

import (
	"image"
	"image/color"

	"github.com/voidshard/mlaa"
)

// BlendFunc mixes two colours with weight t on the second.
type BlendFunc func(a, b color.NRGBA, t float64) color.NRGBA

// Image antialiases src and returns the result with its origin moved to
// (0,0), along with the features that were painted.
//
// Every feature is found on the unmodified source before any pixel is
// written, so painting never feeds back into the scan. A nil blend uses
// Blend.
func Image(src image.Image, opts mlaa.Options, routines int, blend BlendFunc) (*image.NRGBA, []mlaa.Feature[color.NRGBA]) {
	if blend == nil {
		blend = Blend
	}

	b := src.Bounds()
	out := cloneNRGBA(src)

	var found []mlaa.Feature[color.NRGBA]
	mlaa.ScanParallel(routines, b.Dx(), b.Dy(), Accessor(out), Brightness, opts, func(f mlaa.Feature[color.NRGBA]) {
		found = append(found, f)
	})

	PaintAll(found, blend, func(x, y int, c color.NRGBA) {
		if image.Pt(x, y).In(out.Rect) {
			out.SetNRGBA(x, y, c)
		}
	})

	return out, found
}

// PaintAll paints features in order through set.
func PaintAll(features []mlaa.Feature[color.NRGBA], blend BlendFunc, set func(x, y int, c color.NRGBA)) {
	for _, f := range features {
		mlaa.Paint(f, blend, set)
	}
}

// cloneNRGBA copies src to a new image with its origin at (0,0). NRGBA
// sources are copied byte for byte, keeping the colour of transparent
// pixels; anything else is converted pixel by pixel.
func cloneNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			o := n.PixOffset(b.Min.X, b.Min.Y+y)
			copy(out.Pix[y*out.Stride:y*out.Stride+b.Dx()*4], n.Pix[o:o+b.Dx()*4])
		}
		return out
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.SetNRGBA(x, y, color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA))
		}
	}
	return out
}
