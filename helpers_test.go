package mlaa

import "strings"

// outside is what testGrid answers for coordinates off the canvas.
const outside = ' '

// testGrid is a canvas of single byte colours written as text rows.
type testGrid struct {
	rows []string
}

func grid(rows ...string) testGrid {
	return testGrid{rows: rows}
}

func (g testGrid) width() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

func (g testGrid) height() int { return len(g.rows) }

func (g testGrid) at(x, y int) byte {
	if y < 0 || y >= len(g.rows) || x < 0 || x >= len(g.rows[y]) {
		return outside
	}
	return g.rows[y][x]
}

// transpose swaps rows and columns, turning horizontal cases into vertical
// ones.
func (g testGrid) transpose() testGrid {
	out := make([]string, g.width())
	for x := range out {
		var b strings.Builder
		for y := 0; y < g.height(); y++ {
			b.WriteByte(g.rows[y][x])
		}
		out[x] = b.String()
	}
	return testGrid{rows: out}
}

// brightness orders test colours by byte value: 'D' < 'L', 'A' < 'B'.
func brightness(c byte) int { return int(c) }

func (g testGrid) features(opts Options) []Feature[byte] {
	return Features(g.width(), g.height(), g.at, brightness, opts)
}

func gradientsOnly(strict bool) Options {
	return Options{VerticalGradients: true, HorizontalGradients: true, StrictMode: strict}
}

func cornersOnly() Options {
	return Options{Corners: true, StrictMode: true}
}
