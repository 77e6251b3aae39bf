// png_reader.go - PNG import with palette quantization

package main

import (
	"bytes"
	"image"
	"image/png"
	"math"
)

// snapPalette quantizes one RGBA pixel to a palette index. Zero alpha
// always maps to the transparent index. Colour matching scores each
// entry with the square root of the channel dot product against the
// expanded 3/3/2-bit palette colour and takes the minimum. Not a
// Euclidean distance; kept bit-compatible with the conversion the
// vendor tooling performs.
func snapPalette(r, g, b, a uint8, pal *Palette, transparent uint8) uint8 {
	if a == 0 {
		return transparent
	}
	best := uint8(0)
	bestScore := math.MaxFloat64
	for i := 0; i < 256; i++ {
		c := layer2Expand(pal[i])
		pr := float64(c >> 16 & 0xFF)
		pg := float64(c >> 8 & 0xFF)
		pb := float64(c & 0xFF)
		score := math.Sqrt(float64(r)*pr + float64(g)*pg + float64(b)*pb)
		if score < bestScore {
			bestScore = score
			best = uint8(i)
		}
	}
	return best
}

// DecodePNG parses PNG bytes and quantizes every pixel to the given
// palette, returning an indexed image. Malformed input yields
// (nil, 0, 0).
func DecodePNG(data []byte, pal *Palette, transparent uint8) (img []uint8, width, height int) {
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0
	}
	bounds := decoded.Bounds()
	width = bounds.Dx()
	height = bounds.Dy()
	img = make([]uint8, width*height)
	rgba, ok := decoded.(*image.NRGBA)
	if !ok {
		converted := image.NewNRGBA(bounds)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				converted.Set(x, y, decoded.At(x, y))
			}
		}
		rgba = converted
	}
	for y := 0; y < height; y++ {
		row := rgba.Pix[y*rgba.Stride:]
		for x := 0; x < width; x++ {
			p := row[x*4 : x*4+4]
			img[y*width+x] = snapPalette(p[0], p[1], p[2], p[3], pal, transparent)
		}
	}
	return img, width, height
}
