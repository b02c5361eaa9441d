package mlaa

import "testing"

func TestRun(t *testing.T) {
	g := grid(
		"AB",
		"AB",
		"AA",
		"AB",
	)
	a := verticalAxis(g.width(), g.height(), g.at)

	tests := []struct {
		name string
		line int
		pos  int
		pred func([2]byte) bool
		want int
	}{
		{"seam from top", 0, 0, matching([2]byte{'A', 'B'}), 2},
		{"seam from middle", 0, 1, matching([2]byte{'A', 'B'}), 1},
		{"uniform at start", 0, 0, uniform[byte], 0},
		{"uniform in middle", 0, 2, uniform[byte], 1},
		{"stops at bound", 0, 3, matching([2]byte{'A', 'B'}), 1},
		{"start past bound", 0, 4, matching([2]byte{'A', 'B'}), 0},
		{"left edge against outside", -1, 0, matching([2]byte{outside, 'A'}), 4},
		{"distinct rejects equal pair", 0, 2, distinct([2]byte{'A', 'A'}), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.run(tt.line, tt.pos, tt.pred); got != tt.want {
				t.Errorf("run(%d, %d) = %d, want %d", tt.line, tt.pos, got, tt.want)
			}
		})
	}
}

func TestHorizontalAxisPair(t *testing.T) {
	g := grid(
		"AB",
		"CD",
	)
	a := horizontalAxis(g.width(), g.height(), g.at)

	if got := a.pair(0, 1); got != [2]byte{'B', 'D'} {
		t.Errorf("pair(0, 1) = %q, want %q", got, "BD")
	}
	if got := a.pair(-1, 0); got != [2]byte{outside, 'A'} {
		t.Errorf("pair(-1, 0) = %q, want %q", got, " A")
	}
	if a.extent != 2 || a.lines != 2 {
		t.Errorf("extent, lines = %d, %d, want 2, 2", a.extent, a.lines)
	}
}

func TestRunNeverExceedsExtent(t *testing.T) {
	g := grid("AAAAAAA")
	a := horizontalAxis(g.width(), g.height(), g.at)

	always := func([2]byte) bool { return true }
	for pos := 0; pos <= g.width(); pos++ {
		if got, want := a.run(0, pos, always), g.width()-pos; got != want {
			t.Errorf("run from %d = %d, want %d", pos, got, want)
		}
	}
}
