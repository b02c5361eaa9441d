package mlaa

import (
	"cmp"
	"sync"
	"time"
)

// ScanParallel is Scan with the work spread over the given number of
// goroutines. Every boundary line and every corner row is scanned on its own
// and the results are emitted afterwards, from the calling goroutine, in
// exactly the order Scan would use.
//
// pixelAt and brightness are called concurrently and must be safe for that.
// emit is never called concurrently.
func ScanParallel[C comparable, B cmp.Ordered](routines, width, height int, pixelAt func(x, y int) C, brightness func(C) B, opts Options, emit func(Feature[C])) {
	if width <= 0 || height <= 0 {
		return
	}
	if routines < 1 {
		routines = 1
	}

	start := time.Now()
	s := newScanner(width, height, pixelAt, brightness, opts)
	units := s.units()
	results := make([][]Feature[C], len(units))

	// fan out over units, each worker owning the result slots it fills
	work := make(chan int)
	wg := &sync.WaitGroup{}

	for i := 0; i < routines; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for idx := range work {
				var found []Feature[C]
				s.do(units[idx], func(f Feature[C]) {
					found = append(found, f)
				})
				results[idx] = found
			}
		}()
	}

	for idx := range units {
		work <- idx
	}
	close(work)
	wg.Wait()

	total := 0
	for _, found := range results {
		for _, f := range found {
			emit(f)
		}
		total += len(found)
	}

	Logger().Debug("parallel scan done",
		"width", width, "height", height,
		"units", len(units), "routines", routines,
		"features", total, "elapsed", time.Since(start))
}
