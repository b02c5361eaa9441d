package render

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Transparent is the colour read for every pixel outside an image.
var Transparent = color.NRGBA{}

// Blend mixes a and b with weight t on b. Colour channels are mixed in
// linear light and re-encoded to sRGB; alpha is mixed as stored and
// truncated.
func Blend(a, b color.NRGBA, t float64) color.NRGBA {
	mixed := toColorful(a).BlendLinearRgb(toColorful(b), t).Clamped()
	r, g, bl := mixed.RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(lerp(float64(a.A), float64(b.A), t))}
}

// BlendEncoded mixes a and b channel by channel on their stored values,
// ignoring gamma.
func BlendEncoded(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(lerp(float64(a.R), float64(b.R), t) + 0.5),
		G: uint8(lerp(float64(a.G), float64(b.G), t) + 0.5),
		B: uint8(lerp(float64(a.B), float64(b.B), t) + 0.5),
		A: uint8(lerp(float64(a.A), float64(b.A), t)),
	}
}

// Brightness is the relative luminance of c scaled by its opacity, so a
// transparent pixel is darker than any visible one.
func Brightness(c color.NRGBA) float64 {
	_, y, _ := toColorful(c).Xyz()
	return y * float64(c.A) / 255
}

// Accessor returns a pixel reader over img in canvas coordinates: (0,0) is
// the top left of img.Bounds(). Reads outside the image answer Transparent.
func Accessor(img image.Image) func(x, y int) color.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if n, ok := img.(*image.NRGBA); ok {
		return func(x, y int) color.NRGBA {
			if x < 0 || y < 0 || x >= w || y >= h {
				return Transparent
			}
			return n.NRGBAAt(b.Min.X+x, b.Min.Y+y)
		}
	}

	return func(x, y int) color.NRGBA {
		if x < 0 || y < 0 || x >= w || y >= h {
			return Transparent
		}
		return color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
	}
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
