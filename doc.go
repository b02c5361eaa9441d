// Package mlaa implements morphological antialiasing for images made of flat
// colour regions (pixel art, line art, flat shaded sprites).
//
// The transform never looks inside a colour. It walks every boundary between
// two pixel columns (and then two pixel rows) looking for seams: runs where the
// pixel pair on either side of the boundary differs but stays constant. A seam
// that continues, one step over, into a compatible seam on a neighbouring
// boundary becomes a linear gradient spanning the midpoints of the two.
// A fixed table of 3x3 patterns then adds single pixel corner blends for
// diagonal steps seams cannot express.
//
// Pixels are read through a caller supplied accessor which must answer every
// signed coordinate, including one ring outside the canvas (usually with a
// transparent sentinel). Features are handed to an emit callback and turned
// into pixel writes by Paint using a caller supplied blend function, so colour
// space decisions (linear vs encoded blending) stay with the caller.
//
// A typical caller:
//
//	out := clone(src)
//	mlaa.Scan(w, h, pixelAt, brightness, mlaa.DefaultOptions(), func(f mlaa.Feature[color.NRGBA]) {
//		mlaa.Paint(f, blend, out.SetNRGBA)
//	})
//
// Scan reads only; the canvas must not change for the duration of the call.
// Independent canvases may be scanned concurrently, and ScanParallel splits a
// single canvas over several goroutines while keeping the serial output order.
package mlaa
