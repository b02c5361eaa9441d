package mimage

import (
	"image"
	"image/color"
)

// Operation is a batch of writes to an Mimage. Nothing is written until Do.
type Operation interface {
	// SetColor sets the pen for following SetPixel and Clear calls.
	SetColor(c color.Color)

	// SetPixel paints (x,y) with the pen.
	SetPixel(x, y int)

	// Set is SetColor(c) followed by SetPixel(x, y).
	Set(x, y int, c color.Color)

	// Clear fills the whole image with the pen.
	Clear()

	// DrawImage copies in over the image with its top left corner at
	// (x,y), replacing what was there.
	DrawImage(in image.Image, x, y int)

	// Do applies the batch.
	//
	// The queue is split up by chunk and each chunk is handed to one
	// worker, which replays its share of the queue in order. Chunks are
	// visited in no particular order. Writes are in memory when Do
	// returns; Flush puts them on disk.
	//
	// Errors from every failing chunk are returned together.
	Do() error

	// SetRoutines overrides the image's OperationRoutines for this batch.
	SetRoutines(i int)
}
