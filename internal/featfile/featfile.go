// Package featfile stores scan results as zstd compressed JSON, for diffing
// runs against each other.
package featfile

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/voidshard/mlaa"
)

const (
	kindVertical   = "vertical"
	kindHorizontal = "horizontal"
	kindCorner     = "corner"
)

// Dump is everything recorded about one scan.
type Dump struct {
	Width    int
	Height   int
	Options  mlaa.Options
	Features []mlaa.Feature[color.NRGBA]
}

type document struct {
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	Options  mlaa.Options `json:"options"`
	Features []record     `json:"features"`
}

// record is one feature. length is the gradient height or width, zero for
// corners.
type record struct {
	Kind   string    `json:"kind"`
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	Length float64   `json:"length"`
	Colors [2]string `json:"colors"`
}

// Write encodes d to w as a single zstd frame.
func Write(w io.Writer, d Dump) error {
	doc := document{
		Width:    d.Width,
		Height:   d.Height,
		Options:  d.Options,
		Features: make([]record, 0, len(d.Features)),
	}
	for _, f := range d.Features {
		r, err := toRecord(f)
		if err != nil {
			return err
		}
		doc.Features = append(doc.Features, r)
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err := json.NewEncoder(enc).Encode(&doc); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Read decodes a dump written by Write.
func Read(r io.Reader) (Dump, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return Dump{}, err
	}
	defer dec.Close()

	var doc document
	jd := json.NewDecoder(dec)
	jd.DisallowUnknownFields()
	if err := jd.Decode(&doc); err != nil {
		return Dump{}, fmt.Errorf("decoding feature dump: %w", err)
	}

	d := Dump{Width: doc.Width, Height: doc.Height, Options: doc.Options}
	for i, r := range doc.Features {
		f, err := fromRecord(r)
		if err != nil {
			return Dump{}, fmt.Errorf("feature %d: %w", i, err)
		}
		d.Features = append(d.Features, f)
	}
	return d, nil
}

// WriteFile writes d to path.
func WriteFile(path string, d Dump) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(f, d)
}

// ReadFile reads the dump at path.
func ReadFile(path string) (Dump, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dump{}, err
	}
	defer f.Close()
	return Read(f)
}

func toRecord(f mlaa.Feature[color.NRGBA]) (record, error) {
	// pointers are recorded as the feature they point at
	switch p := f.(type) {
	case *mlaa.VerticalGradient[color.NRGBA]:
		if p != nil {
			f = *p
		}
	case *mlaa.HorizontalGradient[color.NRGBA]:
		if p != nil {
			f = *p
		}
	case *mlaa.Corner[color.NRGBA]:
		if p != nil {
			f = *p
		}
	}

	switch f.(type) {
	case mlaa.VerticalGradient[color.NRGBA], mlaa.HorizontalGradient[color.NRGBA], mlaa.Corner[color.NRGBA]:
	default:
		return record{}, fmt.Errorf("cannot record feature %T", f)
	}

	ends := f.Ends()
	colors := [2]string{hex(ends[0]), hex(ends[1])}

	switch f := f.(type) {
	case mlaa.VerticalGradient[color.NRGBA]:
		return record{Kind: kindVertical, X: float64(f.X), Y: f.Y, Length: f.Height, Colors: colors}, nil
	case mlaa.HorizontalGradient[color.NRGBA]:
		return record{Kind: kindHorizontal, X: f.X, Y: float64(f.Y), Length: f.Width, Colors: colors}, nil
	case mlaa.Corner[color.NRGBA]:
		return record{Kind: kindCorner, X: float64(f.X), Y: float64(f.Y), Colors: colors}, nil
	}
	return record{}, fmt.Errorf("cannot record feature %T", f)
}

func fromRecord(r record) (mlaa.Feature[color.NRGBA], error) {
	var colors [2]color.NRGBA
	for i, s := range r.Colors {
		c, err := parseHex(s)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}

	switch r.Kind {
	case kindVertical:
		x, err := whole("x", r.X)
		if err != nil {
			return nil, err
		}
		return mlaa.VerticalGradient[color.NRGBA]{X: x, Y: r.Y, Height: r.Length, Colors: colors}, nil
	case kindHorizontal:
		y, err := whole("y", r.Y)
		if err != nil {
			return nil, err
		}
		return mlaa.HorizontalGradient[color.NRGBA]{X: r.X, Y: y, Width: r.Length, Colors: colors}, nil
	case kindCorner:
		x, err := whole("x", r.X)
		if err != nil {
			return nil, err
		}
		y, err := whole("y", r.Y)
		if err != nil {
			return nil, err
		}
		return mlaa.Corner[color.NRGBA]{X: x, Y: y, Colors: colors}, nil
	}
	return nil, fmt.Errorf("unknown feature kind %q", r.Kind)
}

func whole(name string, v float64) (int, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s %g is not a pixel coordinate", name, v)
	}
	return int(v), nil
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func parseHex(s string) (color.NRGBA, error) {
	var c color.NRGBA
	if len(s) != 9 || s[0] != '#' {
		return c, fmt.Errorf("colour %q is not #rrggbbaa", s)
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
		return c, fmt.Errorf("colour %q: %w", s, err)
	}
	return c, nil
}
