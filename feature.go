package mlaa

import "fmt"

// Feature is one antialiasing feature found by Scan. It is a closed set:
// VerticalGradient, HorizontalGradient and Corner are the only
// implementations.
type Feature[C comparable] interface {
	// Ends returns the two colours the feature blends between.
	Ends() [2]C

	feature()
}

// VerticalGradient blends down column X, starting at Y and covering Height
// pixels. Colors[0] is the colour at the top end.
type VerticalGradient[C comparable] struct {
	X      int
	Y      float64
	Height float64
	Colors [2]C
}

// HorizontalGradient blends along row Y, starting at X and covering Width
// pixels. Colors[0] is the colour at the left end.
type HorizontalGradient[C comparable] struct {
	X      float64
	Y      int
	Width  float64
	Colors [2]C
}

// Corner replaces the single pixel at (X, Y) with an even mix of its colours.
type Corner[C comparable] struct {
	X      int
	Y      int
	Colors [2]C
}

func (VerticalGradient[C]) feature()   {}
func (HorizontalGradient[C]) feature() {}
func (Corner[C]) feature()             {}

// Ends returns the colours at the top and bottom end of the gradient.
func (g VerticalGradient[C]) Ends() [2]C { return g.Colors }

// Ends returns the colours at the left and right end of the gradient.
func (g HorizontalGradient[C]) Ends() [2]C { return g.Colors }

// Ends returns the two colours mixed into the corner pixel.
func (c Corner[C]) Ends() [2]C { return c.Colors }

func (g VerticalGradient[C]) String() string {
	return fmt.Sprintf("vertical(x=%d y=%g h=%g %v->%v)", g.X, g.Y, g.Height, g.Colors[0], g.Colors[1])
}

func (g HorizontalGradient[C]) String() string {
	return fmt.Sprintf("horizontal(x=%g y=%d w=%g %v->%v)", g.X, g.Y, g.Width, g.Colors[0], g.Colors[1])
}

func (c Corner[C]) String() string {
	return fmt.Sprintf("corner(x=%d y=%d %v+%v)", c.X, c.Y, c.Colors[0], c.Colors[1])
}
