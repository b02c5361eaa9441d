package mimage

import (
	"image"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fogleman/gg"
)

// idleTimeout is how long a chunk goes unused before it is written out and
// dropped from memory.
const idleTimeout = time.Second

// chunk is one square tile of an Mimage, stored on disk as a PNG at path.
//
// Pixels are kept non-premultiplied, so colour values survive under any
// alpha, including zero.
//
// Users hold the read side of mu while they touch Img (see with / Done);
// the unloader takes the write side, so a chunk is never dropped while in
// use. Img is nil while the chunk is on disk only.
type chunk struct {
	path string
	size int

	Img    *image.NRGBA
	edited bool

	loading  sync.Mutex
	mu       sync.RWMutex
	lastUsed atomic.Int64 // unix nanos
}

func newChunk(path string, size int) *chunk {
	return &chunk{path: path, size: size}
}

// setEdited marks the chunk for writing when it is next unloaded.
func (c *chunk) setEdited() {
	c.edited = true
}

// load reads the chunk from disk unless it's already in memory. A chunk that
// was never written starts fully transparent.
func (c *chunk) load() error {
	c.loading.Lock()
	defer c.loading.Unlock()

	if c.Img != nil {
		return nil
	}

	img, err := gg.LoadPNG(c.path)
	if os.IsNotExist(err) {
		c.Img = image.NewNRGBA(image.Rect(0, 0, c.size, c.size))
		return nil
	} else if err != nil {
		return err
	}

	// fully opaque chunks come back from PNG as RGBA; the conversion is
	// exact for them
	n, ok := img.(*image.NRGBA)
	if !ok || n.Rect.Min != (image.Point{}) {
		n = image.NewNRGBA(image.Rect(0, 0, c.size, c.size))
		copyNRGBA(n, n.Rect, img, img.Bounds().Min)
	}
	c.Img = n
	return nil
}

// unloadImage saves the chunk if it was edited and drops it from memory. On
// a failed save the chunk stays loaded. Callers hold mu for writing.
func (c *chunk) unloadImage() error {
	if c.Img == nil {
		return nil
	}
	if c.edited {
		if err := gg.SavePNG(c.path, c.Img); err != nil {
			return err
		}
		c.edited = false
	}
	c.Img = nil
	return nil
}

// unload drops the chunk whenever it has sat idle for idleTimeout, until
// done is closed.
func (c *chunk) unload(done <-chan struct{}, logger *slog.Logger) {
	ticker := time.NewTicker(idleTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
		}

		if time.Since(time.Unix(0, c.lastUsed.Load())) < idleTimeout {
			continue
		}

		c.mu.Lock()
		err := c.unloadImage()
		c.mu.Unlock()
		if err != nil {
			logger.Warn("failed to unload chunk", "path", c.path, "err", err)
		}
	}
}

// with pins the chunk in memory, loading it if needed. Every call must be
// matched by Done, even when it errors.
func (c *chunk) with() error {
	c.mu.RLock()
	c.lastUsed.Store(time.Now().UnixNano())
	return c.load()
}

// Done unpins the chunk.
func (c *chunk) Done() {
	c.mu.RUnlock()
}
