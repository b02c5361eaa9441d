package mlaa

// seams calls fn for every seam on line, in increasing position. A seam is
// a maximal run of positions whose pixel pair differs and stays constant.
func (a axis[C]) seams(line int, fn func(pos, length int, colors [2]C)) {
	pos := a.run(line, 0, uniform[C])

	for pos < a.extent {
		colors := a.pair(line, pos)
		length := a.run(line, pos, matching(colors))
		fn(pos, length, colors)

		pos += length
		pos += a.run(line, pos, uniform[C])
	}
}

// gradients emits at most one gradient per seam found on line.
func (s *scanner[C, B]) gradients(a axis[C], line int, emit func(Feature[C])) {
	a.seams(line, func(pos, length int, colors [2]C) {
		if f, ok := s.continuation(a, line, pos, length, colors); ok {
			emit(f)
		}
	})
}

// continuation looks for a seam continuing where this one ends, first on the line
// before and then on the line after. The first neighbour found wins even if
// the other side would give a longer gradient.
func (s *scanner[C, B]) continuation(a axis[C], line, pos, length int, seam [2]C) (Feature[C], bool) {
	next := pos + length
	if next >= a.extent {
		return nil, false
	}

	for _, delta := range [...]int{-1, 1} {
		neighbor := a.pair(line+delta, next)

		if s.opts.SeamBrightnessBalance && s.darkerFirst(seam) != s.darkerFirst(neighbor) {
			continue
		}

		n := s.neighborRun(a, line+delta, next, seam, neighbor)
		if n == 0 {
			continue
		}

		half, nhalf := float64(length)/2, float64(n)/2
		split := s.opts.SeamSplitPosition
		center := float64(pos) + half + half*split
		extent := half + nhalf - (half+nhalf)*split

		// colours run from the seam side towards the neighbour side
		colors := [2]C{seam[1], neighbor[0]}
		if delta < 0 {
			colors = [2]C{seam[0], neighbor[1]}
		}

		return a.gradient(max(line, line+delta), center, extent, colors), true
	}

	return nil, false
}

// neighborRun measures how far the neighbouring line continues the seam.
// Relaxed matching lets either side of the pair change colour, as long as
// the other side keeps the seam's colour, and takes the longer reading.
func (s *scanner[C, B]) neighborRun(a axis[C], line, pos int, seam, neighbor [2]C) int {
	if s.opts.StrictMode {
		return a.run(line, pos, matching(seam))
	}

	outer := a.run(line, pos, distinct([2]C{neighbor[0], seam[1]}))
	inner := a.run(line, pos, distinct([2]C{seam[0], neighbor[1]}))
	return max(outer, inner)
}

// darkerFirst reports whether the first pixel of the pair is the darker one.
func (s *scanner[C, B]) darkerFirst(p [2]C) bool {
	return s.brightness(p[0]) < s.brightness(p[1])
}
