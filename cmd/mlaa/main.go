// Command mlaa antialiases pixel art.
//
//	mlaa -i sprite.png -o smooth.png -overlay debug.png
package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/voidshard/mlaa"
	"github.com/voidshard/mlaa/internal/codec"
	"github.com/voidshard/mlaa/internal/config"
	"github.com/voidshard/mlaa/internal/featfile"
	"github.com/voidshard/mlaa/mimage"
	"github.com/voidshard/mlaa/render"
)

func main() {
	opt := parseCLIOpts()

	if err := run(opt); err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(os.Stderr, "mlaa: %s\n", line)
		}
		os.Exit(1)
	}
}

func run(opt cliOpts) error {
	level := slog.LevelInfo
	if opt.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	mlaa.SetLogger(logger)

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	opts, path, err := config.Resolve(opt.config, wd)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Info("using config file", "path", path)
	} else {
		logger.Info("using default options")
	}
	logger.Debug("options", "options", fmt.Sprintf("%+v", opts))

	if opt.printConfig {
		return config.Write(os.Stdout, opts)
	}

	src, err := readInput(opt.input)
	if err != nil {
		return err
	}

	blend := render.Blend
	if opt.encoded {
		blend = render.BlendEncoded
	}

	start := time.Now()
	var (
		out   image.Image
		found []mlaa.Feature[color.NRGBA]
	)
	if opt.chunked {
		out, found, err = antialiasChunked(src, opts, opt, blend, logger)
		if err != nil {
			return err
		}
	} else {
		out, found = render.Image(src, opts, opt.routines, blend)
	}
	logger.Info("antialiased",
		"width", src.Bounds().Dx(), "height", src.Bounds().Dy(),
		"features", len(found), "chunked", opt.chunked, "elapsed", time.Since(start))

	if err := writeOutput(opt.output, out); err != nil {
		return err
	}

	if opt.overlay != "" {
		ov := render.Overlay(src, found, render.OverlayOptions{Scale: opt.scale, Paint: opt.overlayPaint, Blend: blend})
		if err := codec.EncodeFile(opt.overlay, ov); err != nil {
			return fmt.Errorf("writing overlay: %w", err)
		}
		logger.Debug("wrote overlay", "path", opt.overlay, "scale", opt.scale)
	}

	if opt.features != "" {
		dump := featfile.Dump{
			Width:    src.Bounds().Dx(),
			Height:   src.Bounds().Dy(),
			Options:  opts,
			Features: found,
		}
		if err := featfile.WriteFile(opt.features, dump); err != nil {
			return fmt.Errorf("writing features: %w", err)
		}
		logger.Debug("wrote features", "path", opt.features, "count", len(found))
	}

	return nil
}

// antialiasChunked runs the transform through a temporary on-disk image.
func antialiasChunked(src image.Image, opts mlaa.Options, opt cliOpts, blend render.BlendFunc, logger *slog.Logger) (image.Image, []mlaa.Feature[color.NRGBA], error) {
	dir, err := os.MkdirTemp("", "mlaa")
	if err != nil {
		return nil, nil, err
	}
	defer os.RemoveAll(dir)

	m, err := mimage.FromImage(src,
		mimage.Directory(dir),
		mimage.ChunkSize(opt.chunkSize),
		mimage.OperationRoutines(opt.routines),
		mimage.Logger(logger),
	)
	if err != nil {
		return nil, nil, err
	}
	defer m.Close()

	found, err := render.Mimage(m, opts, opt.routines, blend)
	if err != nil {
		return nil, nil, err
	}
	out, err := m.Image(m.Bounds())
	if err != nil {
		return nil, nil, err
	}
	return out, found, nil
}

func readInput(path string) (image.Image, error) {
	if path == "" {
		return codec.Decode(bufio.NewReader(os.Stdin), codec.PNG)
	}
	return codec.DecodeFile(path)
}

func writeOutput(path string, img image.Image) error {
	if path == "" {
		w := bufio.NewWriter(os.Stdout)
		if err := codec.Encode(w, img, codec.PNG); err != nil {
			return err
		}
		return w.Flush()
	}
	return codec.EncodeFile(path, img)
}
