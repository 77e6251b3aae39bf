// video_layer2.go - Layer 2 indexed overlay renderer for NXMock

/*
video_layer2.go - Layer 2 Overlay Renderer

Layer 2 is a 256x192 indexed bitmap stored across three consecutive
banks, each holding a 256x64 horizontal strip. Every pixel whose palette
index differs from the transparent index overwrites the base-layer pixel
underneath it, shifted by the border margin. Palette entries are 3/3/2-bit
RGB bytes expanded to 8 bits per channel through fixed tables.
*/

package main

// layer2Expand converts a 3/3/2-bit RGB palette byte to a packed
// 0xAARRGGBB colour, alpha fully opaque.
func layer2Expand(p uint8) uint32 {
	r := uint32(p&0xE0) >> 5
	g := uint32(p&0x1C) >> 2
	b := uint32(p & 0x03)
	return 0xFF000000 | Colour3Bit[r]<<16 | Colour3Bit[g]<<8 | Colour2Bit[b]
}

// layer2Pixel converts a Layer 2 pixel index to a packed 0xAARRGGBB
// colour through the active palette.
func (c *Compositor) layer2Pixel(pixel uint8) uint32 {
	return layer2Expand(c.video.Palette[pixel])
}

// renderLayer2 overlays the three Layer 2 strips onto the frame buffer.
func (c *Compositor) renderLayer2() {
	bank := c.video.Layer2.ActiveBank()
	transparent := c.video.Layer2.Transparent
	base := NX_BORDER_HEIGHT*NX_WINDOW_WIDTH + NX_BORDER_WIDTH

	for strip := 0; strip < 3; strip++ {
		addr := uint16(0)
		for row := 0; row < 64; row++ {
			idx := base + (strip*64+row)*NX_WINDOW_WIDTH
			for col := 0; col < NX_SCREEN_WIDTH; col++ {
				pixel := c.mem.PeekBank(bank+uint8(strip), addr)
				addr++
				if pixel != transparent {
					c.frame[idx+col] = c.layer2Pixel(pixel)
				}
			}
		}
	}
}
