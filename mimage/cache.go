package mimage

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
)

// cache hands out chunks by coordinate, making sure each chunk has exactly
// one handle (and one unload loop).
type cache struct {
	root   string
	size   int
	logger *slog.Logger

	mu     sync.Mutex
	chunks map[[2]int]*chunk

	done      chan struct{}
	closeOnce sync.Once
}

func newCache(root string, size int, logger *slog.Logger) *cache {
	return &cache{
		root:   root,
		size:   size,
		logger: logger,
		chunks: map[[2]int]*chunk{},
		done:   make(chan struct{}),
	}
}

// Load pins chunk (x,y) in memory. Call Done on the result when finished
// with it, even if an error is returned.
func (c *cache) Load(x, y int) (*chunk, error) {
	key := [2]int{x, y}

	c.mu.Lock()
	ch, ok := c.chunks[key]
	if !ok {
		ch = newChunk(filepath.Join(c.root, fmt.Sprintf("%d.%d.png", x, y)), c.size)
		c.chunks[key] = ch
		go ch.unload(c.done, c.logger)
	}
	c.mu.Unlock()

	return ch, ch.with()
}

// Flush writes every edited chunk to disk and drops all chunks from memory.
// Writers should be finished before calling it.
func (c *cache) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for key, ch := range c.chunks {
		ch.mu.Lock()
		if err := ch.unloadImage(); err != nil {
			errs = append(errs, fmt.Errorf("chunk %d.%d: %w", key[0], key[1], err))
		}
		ch.mu.Unlock()
	}
	return errors.Join(errs...)
}

// Close stops the unload loops and flushes.
func (c *cache) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	return c.Flush()
}
