package render

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/voidshard/mlaa"
	"github.com/voidshard/mlaa/mimage"
)

// Mimage antialiases a chunked image in place.
//
// Pixels are read through the chunk cache while scanning; every painted
// pixel is then queued on a single Operation and written with one Do, so no
// chunk is modified until the whole image has been scanned. A nil blend uses
// Blend.
func Mimage(m *mimage.Mimage, opts mlaa.Options, routines int, blend BlendFunc) ([]mlaa.Feature[color.NRGBA], error) {
	if blend == nil {
		blend = Blend
	}

	b := m.Bounds()

	var (
		readLock sync.Mutex
		readErr  error
	)
	pixelAt := func(x, y int) color.NRGBA {
		c, err := m.AtOk(b.Min.X+x, b.Min.Y+y)
		if err != nil {
			readLock.Lock()
			if readErr == nil {
				readErr = fmt.Errorf("reading pixel (%d,%d): %w", x, y, err)
			}
			readLock.Unlock()
			return Transparent
		}
		// stored colours come back unchanged, transparent ones included
		return color.NRGBAModel.Convert(c).(color.NRGBA)
	}

	var found []mlaa.Feature[color.NRGBA]
	mlaa.ScanParallel(routines, b.Dx(), b.Dy(), pixelAt, Brightness, opts, func(f mlaa.Feature[color.NRGBA]) {
		found = append(found, f)
	})
	if readErr != nil {
		return found, readErr
	}

	canvas := image.Rect(0, 0, b.Dx(), b.Dy())
	op := m.Draw()
	op.SetRoutines(routines)
	PaintAll(found, blend, func(x, y int, c color.NRGBA) {
		if !image.Pt(x, y).In(canvas) {
			return
		}
		op.Set(b.Min.X+x, b.Min.Y+y, c)
	})

	if err := op.Do(); err != nil {
		return found, fmt.Errorf("painting features: %w", err)
	}
	return found, nil
}
