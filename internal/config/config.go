// Package config loads mlaa options from TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/voidshard/mlaa"
)

// FileName is the config file looked for in the working directory and its
// ancestors.
const FileName = ".mlaa"

// ErrInvalidOptions is returned for config files that name unknown keys or
// hold out of range values.
var ErrInvalidOptions = errors.New("invalid mlaa options")

// Validate checks that opts could have come from a valid config file.
func Validate(opts mlaa.Options) error {
	p := opts.SeamSplitPosition
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: seam_split_position %g outside [0, 1]", ErrInvalidOptions, p)
	}
	return nil
}

// Load reads the options in path. Keys missing from the file keep their
// mlaa.DefaultOptions value.
func Load(path string) (mlaa.Options, error) {
	opts := mlaa.DefaultOptions()

	md, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return opts, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return opts, fmt.Errorf("%w: unknown key %q in %s", ErrInvalidOptions, undecoded[0].String(), path)
	}
	if err := Validate(opts); err != nil {
		return opts, fmt.Errorf("config %s: %w", path, err)
	}

	return opts, nil
}

// Find returns the first FileName found in dir or one of its ancestors.
func Find(dir string) (string, bool, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false, err
	}

	for {
		candidate := filepath.Join(dir, FileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true, nil
		} else if err != nil && !os.IsNotExist(err) {
			return "", false, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Resolve picks the options for a run: the file at explicit if given, else
// the nearest FileName above dir, else the defaults. The path used is
// returned, empty for the defaults.
func Resolve(explicit, dir string) (mlaa.Options, string, error) {
	path := explicit
	if path == "" {
		found, ok, err := Find(dir)
		if err != nil {
			return mlaa.Options{}, "", fmt.Errorf("searching for %s: %w", FileName, err)
		}
		if !ok {
			return mlaa.DefaultOptions(), "", nil
		}
		path = found
	}

	opts, err := Load(path)
	if err != nil {
		return opts, path, err
	}
	return opts, path, nil
}

// Write encodes opts as TOML to w.
func Write(w io.Writer, opts mlaa.Options) error {
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(opts); err != nil {
		return err
	}
	_, err := w.Write(buffer.Bytes())
	return err
}
