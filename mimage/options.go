package mimage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Option configures an Mimage in New, FromImage or Load.
type Option func(*Mimage) error

// ChunkSize sets the side of the square chunks in pixels. Only valid for a
// new image.
func ChunkSize(i int) Option {
	return func(m *Mimage) error {
		if i <= 0 {
			return fmt.Errorf("chunk size must be positive, got %d", i)
		}
		m.chunkSize = i
		return nil
	}
}

// Directory stores a new image in dir, creating it if needed. dir must not
// already hold an image. Without this option a fresh temporary directory is
// used.
func Directory(dir string) Option {
	return func(m *Mimage) error {
		info, err := os.Stat(dir)
		switch {
		case os.IsNotExist(err):
			if err := os.MkdirAll(dir, 0750); err != nil {
				return err
			}
		case err != nil:
			return err
		case !info.IsDir():
			return fmt.Errorf("%s is not a directory", dir)
		default:
			if _, err := os.Stat(filepath.Join(dir, metafile)); err == nil {
				return fmt.Errorf("%s already holds an mimage", dir)
			}
		}

		m.root = dir
		return nil
	}
}

// OperationRoutines sets how many chunks a Do call works on at once, which
// roughly bounds how many chunks are in memory. Values below 1 mean 1.
func OperationRoutines(i int) Option {
	return func(m *Mimage) error {
		if i < 1 {
			i = 1
		}
		m.routines = i
		return nil
	}
}

// Logger receives warnings about chunks that fail to load or save. Nothing
// is logged by default.
func Logger(l *slog.Logger) Option {
	return func(m *Mimage) error {
		if l == nil {
			l = newNopLogger()
		}
		m.logger = l
		return nil
	}
}
