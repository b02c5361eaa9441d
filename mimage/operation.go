package mimage

import (
	"fmt"
	"image"
	"image/color"
	"sync"
)

// opKind is the type of a queued write.
type opKind int

const (
	opColor opKind = iota
	opPixel
	opClear
	opImage
)

// op is one queued write. at is the pixel (opPixel) or the top left corner
// of src (opImage) in image space.
type op struct {
	kind  opKind
	at    image.Point
	color color.Color
	src   image.Image
}

// operation queues writes until Do splits them up by chunk.
type operation struct {
	parent   *Mimage
	queue    []op
	routines int
}

func newOperation(parent *Mimage) Operation {
	return &operation{parent: parent, routines: parent.routines}
}

// SetColor sets the pen used by following SetPixel and Clear calls.
func (o *operation) SetColor(c color.Color) {
	o.queue = append(o.queue, op{kind: opColor, color: c})
}

// SetPixel paints (x,y) with the pen. Points outside the image are dropped.
func (o *operation) SetPixel(x, y int) {
	o.queue = append(o.queue, op{kind: opPixel, at: image.Pt(x, y)})
}

// Set paints (x,y) with c, leaving c as the pen.
func (o *operation) Set(x, y int, c color.Color) {
	o.SetColor(c)
	o.SetPixel(x, y)
}

// Clear fills every chunk with the pen.
func (o *operation) Clear() {
	o.queue = append(o.queue, op{kind: opClear})
}

// DrawImage copies src over the image with src's top left corner at (x,y).
func (o *operation) DrawImage(src image.Image, x, y int) {
	o.queue = append(o.queue, op{kind: opImage, at: image.Pt(x, y), src: src})
}

func (o *operation) SetRoutines(i int) {
	if i < 1 {
		i = 1
	}
	o.routines = i
}

// plan splits the queue into one list per affected chunk, keeping queue
// order. A chunk's list gets the pen colour in force before each of its
// writes, and nothing for chunks it never touches.
func (o *operation) plan() map[[2]int][]op {
	m := o.parent
	plans := map[[2]int][]op{}
	pens := map[[2]int]color.Color{}
	var pen color.Color = color.Transparent

	add := func(key [2]int, next op) {
		if next.kind != opImage && pens[key] != pen {
			plans[key] = append(plans[key], op{kind: opColor, color: pen})
			pens[key] = pen
		}
		plans[key] = append(plans[key], next)
	}

	for _, next := range o.queue {
		switch next.kind {
		case opColor:
			pen = next.color
		case opPixel:
			cx, cy, ok := m.toChunk(next.at.X, next.at.Y)
			if ok {
				add([2]int{cx, cy}, next)
			}
		case opClear:
			for key := range m.chunksWithin(m.bounds) {
				add(key, next)
			}
		case opImage:
			r := next.src.Bounds().Sub(next.src.Bounds().Min).Add(next.at)
			for key := range m.chunksWithin(r) {
				add(key, next)
			}
		}
	}

	return plans
}

// Do applies the queued writes, each chunk by a single worker.
func (o *operation) Do() error {
	plans := o.plan()

	work := make(chan [2]int)
	errs := make(chan error)
	wg := &sync.WaitGroup{}

	for i := 0; i < o.routines; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for key := range work {
				if err := o.apply(key[0], key[1], plans[key]); err != nil {
					errs <- fmt.Errorf("chunk %d.%d: %w", key[0], key[1], err)
				}
			}
		}()
	}

	go func() {
		for key := range plans {
			work <- key
		}
		close(work)
		wg.Wait()
		close(errs)
	}()

	return checkErrors(errs)
}

// apply runs a chunk's share of the queue against it.
func (o *operation) apply(chunkX, chunkY int, ops []op) error {
	c, err := o.parent.cache.Load(chunkX, chunkY)
	defer c.Done()
	if err != nil {
		return err
	}

	// chunk space is image space shifted by the chunk origin
	origin := image.Pt(chunkX*o.parent.chunkSize, chunkY*o.parent.chunkSize)
	var pen color.NRGBA

	for _, next := range ops {
		switch next.kind {
		case opColor:
			pen = color.NRGBAModel.Convert(next.color).(color.NRGBA)
		case opPixel:
			p := next.at.Sub(origin)
			c.Img.SetNRGBA(p.X, p.Y, pen)
		case opClear:
			for i := 0; i < len(c.Img.Pix); i += 4 {
				c.Img.Pix[i+0] = pen.R
				c.Img.Pix[i+1] = pen.G
				c.Img.Pix[i+2] = pen.B
				c.Img.Pix[i+3] = pen.A
			}
		case opImage:
			r := next.src.Bounds().Sub(next.src.Bounds().Min).Add(next.at.Sub(origin))
			copyNRGBA(c.Img, r, next.src, next.src.Bounds().Min)
		}
	}
	c.setEdited()

	return nil
}
