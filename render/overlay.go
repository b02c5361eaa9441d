package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/voidshard/mlaa"
)

var (
	verticalOutline   = color.NRGBA{0, 255, 0, 255}
	horizontalOutline = color.NRGBA{255, 255, 0, 255}
	cornerOutline     = color.NRGBA{255, 0, 255, 255}
)

// OverlayOptions configures Overlay.
type OverlayOptions struct {
	// Scale is the size in output pixels of one source pixel. Values below
	// 1 are treated as 1.
	Scale int

	// Paint draws the features into the image before outlining them.
	Paint bool

	// Blend is used when Paint is set. Nil means Blend.
	Blend BlendFunc
}

// Overlay draws src enlarged by o.Scale with an outline over every feature:
// gradients as a box with a line along their length and a disc at each end
// filled with that end's colour (green for vertical, yellow for
// horizontal), corners as a magenta ring.
func Overlay(src image.Image, features []mlaa.Feature[color.NRGBA], o OverlayOptions) *image.RGBA {
	scale := o.Scale
	if scale < 1 {
		scale = 1
	}
	blend := o.Blend
	if blend == nil {
		blend = Blend
	}

	b := src.Bounds()
	base := cloneNRGBA(src)
	if o.Paint {
		PaintAll(features, blend, func(x, y int, c color.NRGBA) {
			if image.Pt(x, y).In(base.Rect) {
				base.SetNRGBA(x, y, c)
			}
		})
	}

	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), base, base.Bounds(), xdraw.Src, nil)

	dc := gg.NewContextForRGBA(out)
	s := float64(scale)
	radius := s / 6
	if radius < 1 {
		radius = 1
	}

	for _, f := range features {
		switch f := f.(type) {
		case mlaa.VerticalGradient[color.NRGBA]:
			x, y, h := float64(f.X)*s, f.Y*s, f.Height*s
			outlineGradient(dc, verticalOutline, radius, x, y, s, h, x+s/2, y, x+s/2, y+h, f.Colors)
		case mlaa.HorizontalGradient[color.NRGBA]:
			x, y, w := f.X*s, float64(f.Y)*s, f.Width*s
			outlineGradient(dc, horizontalOutline, radius, x, y, w, s, x, y+s/2, x+w, y+s/2, f.Colors)
		case mlaa.Corner[color.NRGBA]:
			dc.SetColor(cornerOutline)
			dc.SetLineWidth(2)
			dc.DrawCircle((float64(f.X)+0.5)*s, (float64(f.Y)+0.5)*s, s*0.4)
			dc.Stroke()
		}
	}

	return out
}

// outlineGradient strokes the box (x,y,w,h), the line (x1,y1)-(x2,y2) and a
// disc at each end of the line holding that end's colour.
func outlineGradient(dc *gg.Context, stroke color.Color, radius, x, y, w, h, x1, y1, x2, y2 float64, ends [2]color.NRGBA) {
	dc.SetColor(stroke)
	dc.SetLineWidth(2)
	dc.DrawRectangle(x, y, w, h)
	dc.Stroke()

	dc.SetLineWidth(3)
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()

	dc.SetLineWidth(2)
	for i, p := range [2][2]float64{{x1, y1}, {x2, y2}} {
		dc.DrawCircle(p[0], p[1], radius)
		dc.SetColor(ends[i])
		dc.FillPreserve()
		dc.SetColor(stroke)
		dc.Stroke()
	}
}
