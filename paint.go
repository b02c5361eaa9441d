package mlaa

import "math"

// Paint turns a feature into pixel writes.
//
// A gradient covers every pixel from floor(start) up to ceil(start+length),
// exclusive, on its row or column. Pixel i of n is given
// blend(Colors[0], Colors[1], (i+0.5)/n), so the end colours themselves are
// never written. A corner writes a single pixel with t = 0.5.
//
// Paint writes wherever the feature says; set must drop (or otherwise
// handle) coordinates outside the canvas.
func Paint[C comparable](f Feature[C], blend func(a, b C, t float64) C, set func(x, y int, c C)) {
	switch f := f.(type) {
	case VerticalGradient[C]:
		span(f.Y, f.Height, func(y int, t float64) {
			set(f.X, y, blend(f.Colors[0], f.Colors[1], t))
		})
	case HorizontalGradient[C]:
		span(f.X, f.Width, func(x int, t float64) {
			set(x, f.Y, blend(f.Colors[0], f.Colors[1], t))
		})
	case Corner[C]:
		set(f.X, f.Y, blend(f.Colors[0], f.Colors[1], 0.5))
	case *VerticalGradient[C]:
		Paint[C](*f, blend, set)
	case *HorizontalGradient[C]:
		Paint[C](*f, blend, set)
	case *Corner[C]:
		Paint[C](*f, blend, set)
	}
}

// span calls fn for every integer position covered by [start, start+length)
// once its ends are rounded outwards, with t at the pixel centre.
func span(start, length float64, fn func(i int, t float64)) {
	first := int(math.Floor(start))
	end := int(math.Ceil(start + length))
	n := float64(end - first)

	for i := first; i < end; i++ {
		fn(i, (0.5+float64(i-first))/n)
	}
}
