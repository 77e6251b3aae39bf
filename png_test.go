// png_test.go - PNG codec tests

package main

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"testing"
)

func TestPNG_SignatureAndHeader(t *testing.T) {
	pal := IdentityPalette()
	data := pngEncodeIndexed([]uint8{0, 1, 2, 3}, 2, 2, &pal, 0)

	want := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	if !bytes.Equal(data[:8], want) {
		t.Fatalf("signature = %x, expected %x", data[:8], want)
	}

	// IHDR follows immediately: 4-byte length, "IHDR", width, height.
	if string(data[12:16]) != "IHDR" {
		t.Fatalf("first chunk = %q, expected IHDR", data[12:16])
	}
	if w := binary.BigEndian.Uint32(data[16:20]); w != 2 {
		t.Errorf("IHDR width = %d, expected 2", w)
	}
	if h := binary.BigEndian.Uint32(data[20:24]); h != 2 {
		t.Errorf("IHDR height = %d, expected 2", h)
	}
	if depth, ctype := data[24], data[25]; depth != 8 || ctype != 6 {
		t.Errorf("IHDR depth/type = %d/%d, expected 8/6", depth, ctype)
	}
}

func TestPNG_DecodableByStandardDecoder(t *testing.T) {
	pal := IdentityPalette()
	data := pngEncodeIndexed([]uint8{0, 1, 2, 3}, 2, 2, &pal, 0)

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("bounds = %v, expected 2x2", b)
	}

	nrgba, ok := decoded.(*image.NRGBA)
	if !ok {
		t.Fatalf("decoded type = %T, expected *image.NRGBA", decoded)
	}

	// Identity palette: index 1 has blue bits 01 -> 85, index 2 -> 170,
	// index 3 -> 255. Index 0 is the transparent index.
	tests := []struct {
		x, y       int
		r, g, b, a uint8
	}{
		{0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 85, 255},
		{0, 1, 0, 0, 170, 255},
		{1, 1, 0, 0, 255, 255},
	}
	for _, tt := range tests {
		got := nrgba.NRGBAAt(tt.x, tt.y)
		if got.R != tt.r || got.G != tt.g || got.B != tt.b || got.A != tt.a {
			t.Errorf("pixel (%d,%d) = %v, expected {%d %d %d %d}",
				tt.x, tt.y, got, tt.r, tt.g, tt.b, tt.a)
		}
	}
}

func TestPNG_MultipleStoredBlocks(t *testing.T) {
	// 256x64 RGBA is 65792 filtered bytes, forcing a second stored
	// block.
	pixels := make([]uint32, 256*64)
	for i := range pixels {
		pixels[i] = 0xFF000000 | uint32(i)
	}
	data := pngEncodeRGBA(pixels, 256, 64)

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	nrgba := decoded.(*image.NRGBA)
	got := nrgba.NRGBAAt(255, 63)
	p := pixels[64*256-1]
	if got.R != uint8(p>>16) || got.G != uint8(p>>8) || got.B != uint8(p) {
		t.Errorf("last pixel = %v, expected %06x", got, p&0xFFFFFF)
	}
}

func TestPNG_DecodeQuantizesToPalette(t *testing.T) {
	pal := IdentityPalette()
	src := []uint8{10, 20, 30, 40, 50, 60}
	encoded := pngEncodeIndexed(src, 3, 2, &pal, NX_DEFAULT_LAYER2_TRANSPARENT)

	img, w, h := DecodePNG(encoded, &pal, NX_DEFAULT_LAYER2_TRANSPARENT)
	if img == nil {
		t.Fatal("DecodePNG rejected valid data")
	}
	if w != 3 || h != 2 {
		t.Fatalf("dimensions = %dx%d, expected 3x2", w, h)
	}
	// The channel dot-product metric gives the all-black entry a zero
	// score against any input, so the identity palette snaps every
	// opaque pixel to index 0, same as the vendor tooling.
	for i, idx := range img {
		if idx != 0 {
			t.Errorf("img[%d] = %d, expected 0", i, idx)
		}
	}
}

func TestPNG_DecodeZeroAlphaIsTransparent(t *testing.T) {
	pal := IdentityPalette()
	transparent := uint8(NX_DEFAULT_LAYER2_TRANSPARENT)
	encoded := pngEncodeIndexed([]uint8{transparent, 0x07}, 2, 1, &pal, transparent)

	img, _, _ := DecodePNG(encoded, &pal, transparent)
	if img == nil {
		t.Fatal("DecodePNG rejected valid data")
	}
	if img[0] != transparent {
		t.Errorf("zero-alpha pixel = %#02x, expected %#02x", img[0], transparent)
	}
}

func TestPNG_DecodeRejectsGarbage(t *testing.T) {
	pal := IdentityPalette()
	if img, _, _ := DecodePNG([]byte("not a png"), &pal, 0); img != nil {
		t.Error("DecodePNG accepted garbage")
	}
}
