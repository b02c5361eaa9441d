package codec

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func sample() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 40), uint8(y * 60), 90, 255})
		}
	}
	return img
}

func samePixels(t *testing.T, got image.Image, want *image.NRGBA) {
	t.Helper()

	if got.Bounds() != want.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), want.Bounds())
	}
	for y := 0; y < want.Bounds().Dy(); y++ {
		for x := 0; x < want.Bounds().Dx(); x++ {
			if c := color.NRGBAModel.Convert(got.At(x, y)); c != want.NRGBAAt(x, y) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, c, want.NRGBAAt(x, y))
			}
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.png", PNG},
		{"dir/b.JPG", JPEG},
		{"c.jpeg", JPEG},
		{"d.tif", TIFF},
		{"e.qoi", QOI},
		{"f.webp", WEBP},
		{"g.bmp", BMP},
		{"h.gif", GIF},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v; want %q", tt.path, got, err, tt.want)
		}
	}

	for _, path := range []string{"noext", "x.psd"} {
		if _, err := FormatFromPath(path); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("FormatFromPath(%q) error = %v, want ErrUnsupportedFormat", path, err)
		}
	}
}

func TestLosslessRoundTrip(t *testing.T) {
	for _, f := range []Format{PNG, BMP, TIFF, QOI} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, sample(), f); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			img, err := Decode(&buf, f)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			samePixels(t, img, sample())
		})
	}
}

func TestLossyEncode(t *testing.T) {
	for _, f := range []Format{JPEG, GIF} {
		var buf bytes.Buffer
		if err := Encode(&buf, sample(), f); err != nil {
			t.Fatalf("Encode %s: %v", f, err)
		}
		img, err := Decode(&buf, f)
		if err != nil {
			t.Fatalf("Decode %s: %v", f, err)
		}
		if img.Bounds() != sample().Bounds() {
			t.Errorf("%s bounds = %v", f, img.Bounds())
		}
	}
}

func TestWebPIsDecodeOnly(t *testing.T) {
	err := Encode(&bytes.Buffer{}, sample(), WEBP)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode webp error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not an image")), PNG); err == nil {
		t.Errorf("Decode of garbage succeeded")
	}
	if _, err := Decode(bytes.NewReader(nil), Format("psd")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Decode psd error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.qoi")
	if err := EncodeFile(path, sample()); err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}
	img, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	samePixels(t, img, sample())

	if _, err := DecodeFile(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Errorf("DecodeFile of a missing file succeeded")
	}
}
