package mlaa

// axis describes the pixel boundaries scanned in one direction.
//
// For the vertical pass a line is the boundary between column x and x+1
// and positions along it are rows; the horizontal pass swaps the two. Lines
// are numbered from -1 so the boundaries against the outside of the canvas
// are scanned too.
type axis[C comparable] struct {
	extent int // positions along a line: 0 .. extent-1
	lines  int // lines: -1 .. lines-1

	// pair returns the two pixels straddling line at pos, nearest the
	// origin first.
	pair func(line, pos int) [2]C

	// gradient builds the feature for a matched seam.
	gradient func(anchor int, center, length float64, colors [2]C) Feature[C]
}

func verticalAxis[C comparable](width, height int, pixelAt func(x, y int) C) axis[C] {
	return axis[C]{
		extent: height,
		lines:  width,
		pair: func(x, y int) [2]C {
			return [2]C{pixelAt(x, y), pixelAt(x+1, y)}
		},
		gradient: func(x int, y, height float64, colors [2]C) Feature[C] {
			return VerticalGradient[C]{X: x, Y: y, Height: height, Colors: colors}
		},
	}
}

func horizontalAxis[C comparable](width, height int, pixelAt func(x, y int) C) axis[C] {
	return axis[C]{
		extent: width,
		lines:  height,
		pair: func(y, x int) [2]C {
			return [2]C{pixelAt(x, y), pixelAt(x, y+1)}
		},
		gradient: func(y int, x, width float64, colors [2]C) Feature[C] {
			return HorizontalGradient[C]{X: x, Y: y, Width: width, Colors: colors}
		},
	}
}

// run counts the consecutive positions on line, starting at pos, whose pixel
// pair satisfies pred. It never walks past the end of the line.
func (a axis[C]) run(line, pos int, pred func([2]C) bool) int {
	n := 0
	for pos+n < a.extent && pred(a.pair(line, pos+n)) {
		n++
	}
	return n
}

// uniform holds where both sides of the boundary have the same colour.
func uniform[C comparable](p [2]C) bool {
	return p[0] == p[1]
}

// matching holds while the pair is exactly want.
func matching[C comparable](want [2]C) func([2]C) bool {
	return func(p [2]C) bool {
		return p == want
	}
}

// distinct is matching, but a pair of equal colours never qualifies.
func distinct[C comparable](want [2]C) func([2]C) bool {
	return func(p [2]C) bool {
		return p == want && p[0] != p[1]
	}
}
