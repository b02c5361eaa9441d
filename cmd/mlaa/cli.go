package main

import (
	"flag"
	"runtime"
)

type cliOpts struct {
	input       string
	output      string
	config      string
	printConfig bool

	overlay      string
	overlayPaint bool
	scale        int
	features     string

	chunked   bool
	chunkSize int
	routines  int
	encoded   bool

	verbose bool
}

func parseCLIOpts() cliOpts {
	var opt cliOpts
	flag.StringVar(&opt.input, "i", "", "Input image, format taken from the extension. Reads PNG from stdin if empty")
	flag.StringVar(&opt.output, "o", "", "Output image, format taken from the extension. Writes PNG to stdout if empty")
	flag.StringVar(&opt.config, "c", "", "Config file. If empty the nearest .mlaa in the working directory or its parents is used")
	flag.BoolVar(&opt.printConfig, "print-config", false, "Print the resolved options as TOML and exit")
	flag.StringVar(&opt.overlay, "overlay", "", "Also write an enlarged copy of the input with every feature outlined")
	flag.BoolVar(&opt.overlayPaint, "overlay-paint", false, "Paint the features into the overlay before outlining them")
	flag.IntVar(&opt.scale, "scale", 16, "Overlay pixel size")
	flag.StringVar(&opt.features, "features", "", "Also write the features found as zstd compressed JSON")
	flag.BoolVar(&opt.chunked, "chunked", false, "Process the image in chunks buffered on disk")
	flag.IntVar(&opt.chunkSize, "chunk-size", 512, "Chunk size in pixels for -chunked")
	flag.IntVar(&opt.routines, "routines", runtime.NumCPU(), "Worker goroutines")
	flag.BoolVar(&opt.encoded, "encoded", false, "Blend on encoded sRGB values instead of linear light")
	flag.BoolVar(&opt.verbose, "v", false, "Log debugging output to stderr")
	flag.Parse()

	return opt
}
