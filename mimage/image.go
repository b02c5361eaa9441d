package mimage

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	defaultChunkSize = 500
	defaultRoutines  = 4
	metafile         = ".mimage_metadata.json"
)

// Mimage is an image kept on disk as a grid of square PNG chunks, for
// canvases too large to hold in memory.
//
// Chunks are loaded when read or written and dropped again once idle. Reads
// go through At / AtOk / Image; writes are batched on an Operation (see
// Draw). Pixels are stored non-premultiplied and handed back exactly as
// written. Mimage implements image.Image, answering fully transparent black
// outside Bounds, so it can be scanned like any other pixel source.
type Mimage struct {
	bounds image.Rectangle
	cache  *cache

	root      string
	chunkSize int
	routines  int
	logger    *slog.Logger
}

// New creates an empty, fully transparent image covering r.
func New(r image.Rectangle, opts ...Option) (*Mimage, error) {
	m := &Mimage{
		bounds:    r,
		chunkSize: defaultChunkSize,
		routines:  defaultRoutines,
		logger:    newNopLogger(),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	if m.root == "" {
		root, err := os.MkdirTemp("", "mimage")
		if err != nil {
			return nil, err
		}
		m.root = root
	}

	data, err := encodeJSON(&metadata{
		BoundsMinX: r.Min.X,
		BoundsMinY: r.Min.Y,
		BoundsMaxX: r.Max.X,
		BoundsMaxY: r.Max.Y,
		ChunkSize:  m.chunkSize,
		Routines:   m.routines,
	})
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(m.root, metafile), data, 0640); err != nil {
		return nil, err
	}

	m.cache = newCache(m.root, m.chunkSize, m.logger)
	return m, nil
}

// FromImage creates an image holding a copy of img, with the same bounds.
func FromImage(img image.Image, opts ...Option) (*Mimage, error) {
	m, err := New(img.Bounds(), opts...)
	if err != nil {
		return nil, err
	}

	op := m.Draw()
	op.DrawImage(img, img.Bounds().Min.X, img.Bounds().Min.Y)
	if err := op.Do(); err != nil {
		m.Close()
		return nil, fmt.Errorf("copying image into chunks: %w", err)
	}
	return m, nil
}

// Load opens the image previously created in dir. Only Logger and
// OperationRoutines may be given; the chunk layout is fixed on disk.
func Load(dir string, opts ...Option) (*Mimage, error) {
	path := filepath.Join(dir, metafile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mimage metadata: %w", err)
	}
	meta, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}

	m := &Mimage{
		bounds:    image.Rect(meta.BoundsMinX, meta.BoundsMinY, meta.BoundsMaxX, meta.BoundsMaxY),
		root:      dir,
		chunkSize: meta.ChunkSize,
		routines:  meta.Routines,
		logger:    newNopLogger(),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	if m.chunkSize != meta.ChunkSize || m.root != dir {
		return nil, fmt.Errorf("chunk size and directory of %s cannot be changed on load", dir)
	}

	m.cache = newCache(dir, m.chunkSize, m.logger)
	return m, nil
}

// Draw starts a batch of writes. Run one batch at a time; the result of two
// overlapping Do calls is undefined.
func (m *Mimage) Draw() Operation {
	return newOperation(m)
}

// Image copies the part of the image inside r into memory. The result has
// its origin at (0,0); parts of r outside the image are transparent.
func (m *Mimage) Image(r image.Rectangle) (*image.NRGBA, error) {
	dst := image.NewNRGBA(r.Sub(r.Min))

	keys := m.chunksWithin(r)
	for key := range keys {
		c, err := m.cache.Load(key[0], key[1])
		if err != nil {
			c.Done()
			for range keys {
			}
			return dst, err
		}

		// only the part inside the image; chunks overhang the last row and column
		at := image.Pt(key[0]*m.chunkSize, key[1]*m.chunkSize)
		part := c.Img.Rect.Add(at).Intersect(m.bounds).Intersect(r)
		copyNRGBA(dst, part.Sub(r.Min), c.Img, part.Min.Sub(at))
		c.Done()
	}

	return dst, nil
}

// AtOk is At that reports chunk load failures.
func (m *Mimage) AtOk(x, y int) (color.Color, error) {
	cx, cy, ok := m.toChunk(x, y)
	if !ok {
		return color.NRGBA{}, nil
	}

	c, err := m.cache.Load(cx, cy)
	defer c.Done()
	if err != nil {
		return color.NRGBA{}, err
	}

	return c.Img.NRGBAAt(x-cx*m.chunkSize, y-cy*m.chunkSize), nil
}

// At returns the colour at (x,y). A chunk that fails to load reads as
// transparent and is logged.
func (m *Mimage) At(x, y int) color.Color {
	c, err := m.AtOk(x, y)
	if err != nil {
		m.logger.Warn("failed to read chunk", "x", x, "y", y, "err", err)
	}
	return c
}

// Flush writes every edited chunk to disk.
func (m *Mimage) Flush() error { return m.cache.Flush() }

// Close flushes the image and stops its background work. The files stay in
// Directory for Load.
func (m *Mimage) Close() error { return m.cache.Close() }

// Directory holding the chunks and metadata.
func (m *Mimage) Directory() string { return m.root }

func (m *Mimage) ColorModel() color.Model { return color.NRGBAModel }

func (m *Mimage) Bounds() image.Rectangle { return m.bounds }

func (m *Mimage) Width() int { return m.bounds.Dx() }

func (m *Mimage) Height() int { return m.bounds.Dy() }

// toChunk finds the chunk holding (x,y) and whether (x,y) is in the image.
func (m *Mimage) toChunk(x, y int) (int, int, bool) {
	return floorDiv(x, m.chunkSize), floorDiv(y, m.chunkSize), image.Pt(x, y).In(m.bounds)
}

// chunksWithin streams the coordinates of every chunk overlapping both r
// and the image. The channel must be drained.
func (m *Mimage) chunksWithin(r image.Rectangle) <-chan [2]int {
	out := make(chan [2]int)

	r = r.Intersect(m.bounds)
	if r.Empty() {
		close(out)
		return out
	}

	x0, y0, _ := m.toChunk(r.Min.X, r.Min.Y)
	x1, y1, _ := m.toChunk(r.Max.X-1, r.Max.Y-1)

	go func() {
		defer close(out)
		for x := x0; x <= x1; x++ {
			for y := y0; y <= y1; y++ {
				out <- [2]int{x, y}
			}
		}
	}()

	return out
}
