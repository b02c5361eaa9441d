package render

import (
	"image"
	"image/color"
	"reflect"
	"testing"

	"github.com/voidshard/mlaa"
	"github.com/voidshard/mlaa/mimage"
)

// staircase has a single horizontal step: one gradient along row 1.
func staircase() *image.NRGBA {
	rows := []string{
		"BBBB",
		"AABB",
		"AAAA",
	}
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y, row := range rows {
		for x, c := range row {
			if c == 'A' {
				img.SetNRGBA(x, y, black)
			} else {
				img.SetNRGBA(x, y, white)
			}
		}
	}
	return img
}

func gradients() mlaa.Options {
	return mlaa.Options{VerticalGradients: true, HorizontalGradients: true, StrictMode: true}
}

var staircaseFeatures = []mlaa.Feature[color.NRGBA]{
	mlaa.HorizontalGradient[color.NRGBA]{X: 1, Y: 1, Width: 2, Colors: [2]color.NRGBA{black, white}},
}

func TestImage(t *testing.T) {
	src := staircase()
	out, found := Image(src, gradients(), 2, nil)

	if !reflect.DeepEqual(found, staircaseFeatures) {
		t.Fatalf("features = %v, want %v", found, staircaseFeatures)
	}

	painted := map[image.Point]color.NRGBA{
		{1, 1}: Blend(black, white, 0.25),
		{2, 1}: Blend(black, white, 0.75),
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			want, ok := painted[image.Pt(x, y)]
			if !ok {
				want = src.NRGBAAt(x, y)
			}
			if got := out.NRGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	if got := src.NRGBAAt(1, 1); got != black {
		t.Errorf("source modified: (1,1) = %v", got)
	}
}

func TestImageOffsetBounds(t *testing.T) {
	src := staircase()
	shifted := src.SubImage(src.Bounds()).(*image.NRGBA)
	shifted.Rect = shifted.Rect.Add(image.Pt(5, 7))

	out, found := Image(shifted, gradients(), 1, BlendEncoded)
	if out.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("bounds = %v, want origin at 0,0", out.Bounds())
	}
	if !reflect.DeepEqual(found, staircaseFeatures) {
		t.Errorf("features = %v, want %v", found, staircaseFeatures)
	}
	if got, want := out.NRGBAAt(1, 1), BlendEncoded(black, white, 0.25); got != want {
		t.Errorf("pixel (1,1) = %v, want %v", got, want)
	}
}

func TestImageUniform(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 5, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			src.SetNRGBA(x, y, color.NRGBA{200, 100, 50, 255})
		}
	}

	out, found := Image(src, mlaa.DefaultOptions(), 4, nil)
	if len(found) != 0 {
		t.Errorf("features = %v, want none", found)
	}
	if !reflect.DeepEqual(out.Pix, src.Pix) {
		t.Errorf("uniform image changed")
	}
}

// ghosts is translucent except for two fully transparent pixels that carry
// different colours.
func ghosts() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{200, 100, 51, 77})
		}
	}
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 0})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 0})
	return img
}

// faded is staircase drawn with partial alpha, with its bottom row made
// of transparent pixels in several colours.
func faded() *image.NRGBA {
	img := staircase()
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c := img.NRGBAAt(x, y)
			c.A = uint8(90 + 40*x + 10*y)
			img.SetNRGBA(x, y, c)
		}
	}
	for x, c := range []color.NRGBA{{255, 0, 0, 0}, {0, 0, 255, 0}, {9, 99, 199, 0}, {0, 0, 0, 0}} {
		img.SetNRGBA(x, 2, c)
	}
	return img
}

func TestMimageMatchesImage(t *testing.T) {
	cases := map[string]struct {
		src  *image.NRGBA
		opts mlaa.Options
	}{
		"opaque":      {staircase(), mlaa.DefaultOptions()},
		"ghosts":      {ghosts(), mlaa.DefaultOptions()},
		"faded":       {faded(), mlaa.DefaultOptions()},
		"faded-loose": {faded(), mlaa.Options{VerticalGradients: true, HorizontalGradients: true, Corners: true}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			want, wantFound := Image(tc.src, tc.opts, 2, nil)

			m, err := mimage.FromImage(tc.src, mimage.Directory(t.TempDir()), mimage.ChunkSize(2))
			if err != nil {
				t.Fatalf("FromImage: %v", err)
			}
			defer m.Close()

			found, err := Mimage(m, tc.opts, 2, nil)
			if err != nil {
				t.Fatalf("Mimage: %v", err)
			}
			if !reflect.DeepEqual(found, wantFound) {
				t.Errorf("features = %v, want %v", found, wantFound)
			}

			got, err := m.Image(m.Bounds())
			if err != nil {
				t.Fatalf("Image: %v", err)
			}
			b := tc.src.Bounds()
			if got.Bounds() != want.Bounds() {
				t.Fatalf("bounds = %v, want %v", got.Bounds(), want.Bounds())
			}
			for y := 0; y < b.Dy(); y++ {
				for x := 0; x < b.Dx(); x++ {
					if g, w := got.NRGBAAt(x, y), want.NRGBAAt(x, y); g != w {
						t.Errorf("pixel (%d,%d) = %v, want %v", x, y, g, w)
					}
				}
			}

			if len(wantFound) == 0 && !reflect.DeepEqual(want.Pix, tc.src.Pix) {
				t.Errorf("image without features changed")
			}
		})
	}
}

func TestImageKeepsTransparentColours(t *testing.T) {
	src := ghosts()
	out, _ := Image(src, mlaa.Options{}, 1, nil)
	if !reflect.DeepEqual(out.Pix, src.Pix) {
		t.Errorf("clone differs from source: %v, want %v", out.Pix, src.Pix)
	}
}

func TestOverlay(t *testing.T) {
	src := staircase()
	const scale = 24

	for _, paint := range []bool{false, true} {
		out := Overlay(src, staircaseFeatures, OverlayOptions{Scale: scale, Paint: paint})

		if out.Bounds() != image.Rect(0, 0, 4*scale, 3*scale) {
			t.Fatalf("bounds = %v", out.Bounds())
		}

		// inside pixel (1,1), clear of the outline strokes
		want := color.RGBAModel.Convert(black)
		if paint {
			want = color.RGBAModel.Convert(Blend(black, white, 0.25))
		}
		if got := out.RGBAAt(30, 29); got != want {
			t.Errorf("paint=%v: gradient cell = %v, want %v", paint, got, want)
		}

		// pixel (0,2) carries no feature
		if got := out.RGBAAt(12, 60); got != color.RGBAModel.Convert(black) {
			t.Errorf("paint=%v: untouched cell = %v, want black", paint, got)
		}

		// the gradient's centre line
		if got := out.RGBAAt(48, 36); got == color.RGBAModel.Convert(black) || got == color.RGBAModel.Convert(white) {
			t.Errorf("paint=%v: centre line missing at (48,36): %v", paint, got)
		}
	}
}

func TestOverlayMinimumScale(t *testing.T) {
	out := Overlay(staircase(), nil, OverlayOptions{})
	if out.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("bounds = %v, want source size", out.Bounds())
	}
	if got := out.RGBAAt(0, 0); got != color.RGBAModel.Convert(white) {
		t.Errorf("pixel (0,0) = %v, want white", got)
	}
}
