package mlaa

import "cmp"

// Scan finds the antialiasing features of a width x height canvas and hands
// each one to emit.
//
// pixelAt must answer any signed coordinate, including one ring outside the
// canvas; those reads are normally answered with a fixed sentinel colour.
// brightness orders colours for the corner rules and for
// Options.SeamBrightnessBalance.
//
// Features are emitted in a fixed order: vertical gradients column boundary
// by column boundary (x = -1 .. width-1), then horizontal gradients row
// boundary by row boundary, then corners in raster order. An empty canvas
// produces nothing.
func Scan[C comparable, B cmp.Ordered](width, height int, pixelAt func(x, y int) C, brightness func(C) B, opts Options, emit func(Feature[C])) {
	if width <= 0 || height <= 0 {
		return
	}

	s := newScanner(width, height, pixelAt, brightness, opts)
	for _, u := range s.units() {
		s.do(u, emit)
	}
}

// Features is Scan collecting its output into a slice.
func Features[C comparable, B cmp.Ordered](width, height int, pixelAt func(x, y int) C, brightness func(C) B, opts Options) []Feature[C] {
	var found []Feature[C]
	Scan(width, height, pixelAt, brightness, opts, func(f Feature[C]) {
		found = append(found, f)
	})
	return found
}

type pass int

const (
	verticalPass pass = iota
	horizontalPass
	cornerPass
)

// unit is the smallest independent piece of a scan: one boundary line of a
// gradient pass, or one row of the corner pass.
type unit struct {
	pass pass
	line int
}

type scanner[C comparable, B cmp.Ordered] struct {
	width, height int
	pixelAt       func(x, y int) C
	brightness    func(C) B
	opts          Options

	vertical   axis[C]
	horizontal axis[C]
}

func newScanner[C comparable, B cmp.Ordered](width, height int, pixelAt func(x, y int) C, brightness func(C) B, opts Options) *scanner[C, B] {
	return &scanner[C, B]{
		width:      width,
		height:     height,
		pixelAt:    pixelAt,
		brightness: brightness,
		opts:       opts,
		vertical:   verticalAxis(width, height, pixelAt),
		horizontal: horizontalAxis(width, height, pixelAt),
	}
}

// units lists the work of a scan in emission order.
func (s *scanner[C, B]) units() []unit {
	var us []unit

	if s.opts.VerticalGradients {
		for x := -1; x < s.vertical.lines; x++ {
			us = append(us, unit{pass: verticalPass, line: x})
		}
	}
	if s.opts.HorizontalGradients {
		for y := -1; y < s.horizontal.lines; y++ {
			us = append(us, unit{pass: horizontalPass, line: y})
		}
	}
	if s.opts.Corners {
		for y := 1; y < s.height-1; y++ {
			us = append(us, unit{pass: cornerPass, line: y})
		}
	}

	return us
}

func (s *scanner[C, B]) do(u unit, emit func(Feature[C])) {
	switch u.pass {
	case verticalPass:
		s.gradients(s.vertical, u.line, emit)
	case horizontalPass:
		s.gradients(s.horizontal, u.line, emit)
	case cornerPass:
		s.corners(u.line, emit)
	}
}
