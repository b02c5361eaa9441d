package mlaa

// Options selects which feature families Scan looks for and how seams are
// matched against their neighbours. Options are passed by value and never
// modified by the scan.
type Options struct {
	// VerticalGradients enables gradients along columns (seams between two
	// adjacent columns).
	VerticalGradients bool `toml:"vertical_gradients" json:"vertical_gradients"`

	// HorizontalGradients enables gradients along rows.
	HorizontalGradients bool `toml:"horizontal_gradients" json:"horizontal_gradients"`

	// Corners enables the 3x3 corner rules.
	Corners bool `toml:"corners" json:"corners"`

	// StrictMode requires a neighbouring seam to reproduce the exact colour
	// pair of the seam. When false one side of the pair may change as long
	// as the other stays fixed.
	StrictMode bool `toml:"strict_mode" json:"strict_mode"`

	// SeamSplitPosition moves the gradient start from the middle of the seam
	// (0) towards its far end (1), shortening the gradient accordingly.
	SeamSplitPosition float64 `toml:"seam_split_position" json:"seam_split_position"`

	// SeamBrightnessBalance rejects neighbouring seams whose light/dark order
	// is the reverse of the seam's own.
	SeamBrightnessBalance bool `toml:"seam_brightness_balance" json:"seam_brightness_balance"`
}

// DefaultOptions returns every feature family enabled, strict matching, a
// centred split and no brightness balancing.
func DefaultOptions() Options {
	return Options{
		VerticalGradients:   true,
		HorizontalGradients: true,
		Corners:             true,
		StrictMode:          true,
	}
}
