package mlaa

import "cmp"

// Cells of a 3x3 neighbourhood, row major, c5 being the pixel under test.
//
//	c1 c2 c3
//	c4 c5 c6
//	c7 c8 c9
const (
	c1 = iota
	c2
	c3
	c4
	c5
	c6
	c7
	c8
	c9
)

// cornerRule is one 3x3 pattern. The pattern matches when every cell of
// base has one colour, every cell of surround has one colour, cell differs
// from the centre and the brightness of cell compares to the centre as
// required. A match blends cell into the centre pixel.
type cornerRule struct {
	name     string
	base     []int
	surround []int
	cell     int
	lighter  bool // cell at least as bright as the centre, else strictly darker
}

// A lighter corner on a dark base rounds off the corner of a dark shape
// sitting on a lighter surround. A darker corner on a light base does the
// same for light shapes, and also closes up diagonal steps in dark outlines:
//
//	....##      ....##
//	...###      ...###
//	...##,  =>  ..C##,
//	.##,,,      .##C,,
//	###,,,      ###,,,
var cornerRules = [...]cornerRule{
	{name: "lighter top-left", base: []int{c5, c6, c8}, surround: []int{c1, c2, c3, c4, c7}, cell: c1, lighter: true},
	{name: "lighter top-right", base: []int{c4, c5, c8}, surround: []int{c1, c2, c3, c6, c9}, cell: c3, lighter: true},
	{name: "lighter bottom-left", base: []int{c2, c5, c6}, surround: []int{c1, c4, c7, c8, c9}, cell: c7, lighter: true},
	{name: "lighter bottom-right", base: []int{c2, c5, c4}, surround: []int{c3, c6, c7, c8, c9}, cell: c9, lighter: true},

	{name: "darker top-left", base: []int{c5, c6, c8}, surround: []int{c2, c3, c4, c7}, cell: c2},
	{name: "darker top-right", base: []int{c4, c5, c8}, surround: []int{c1, c2, c6, c9}, cell: c2},
	{name: "darker bottom-left", base: []int{c2, c5, c6}, surround: []int{c1, c4, c8, c9}, cell: c8},
	{name: "darker bottom-right", base: []int{c2, c5, c4}, surround: []int{c3, c6, c7, c8}, cell: c8},
}

// corners emits the corner features of row y. Only interior pixels are
// tested, so rows 0 and height-1 (and any canvas narrower than three
// pixels) produce nothing.
func (s *scanner[C, B]) corners(y int, emit func(Feature[C])) {
	var block [9]C

	for x := 1; x < s.width-1; x++ {
		for i := range block {
			block[i] = s.pixelAt(x-1+i%3, y-1+i/3)
		}

		for i := range cornerRules {
			r := &cornerRules[i]
			if matchCorner(r, &block, s.brightness) {
				emit(Corner[C]{X: x, Y: y, Colors: [2]C{block[r.cell], block[c5]}})
			}
		}
	}
}

func matchCorner[C comparable, B cmp.Ordered](r *cornerRule, block *[9]C, brightness func(C) B) bool {
	if !sameColor(block, r.base) || !sameColor(block, r.surround) {
		return false
	}

	cell, centre := block[r.cell], block[c5]
	if cell == centre {
		return false
	}

	if r.lighter {
		return brightness(cell) >= brightness(centre)
	}
	return brightness(cell) < brightness(centre)
}

// sameColor reports whether all the given cells hold one colour.
func sameColor[C comparable](block *[9]C, cells []int) bool {
	for _, i := range cells[1:] {
		if block[i] != block[cells[0]] {
			return false
		}
	}
	return true
}
