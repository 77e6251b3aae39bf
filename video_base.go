// video_base.go - Base attribute-cell layer renderer for NXMock

/*
video_base.go - Base Layer Renderer

Renders the border and the 256x192 attribute-cell display from the fixed
base screen bank. The bitmap uses the Spectrum's non-linear row
addressing:

  Pixel address is 010S SRRR CCCX XXXX
  Attr address is  0101 10YY YYYX XXXX
    S = section (0-2), C = cell row within section (0-7)
    R = pixel row within cell (0-7), X = X byte (0-31), Y = cell Y (0-23)

Each bitmap byte expands MSB-first into 8 pixels: ink where the bit is 1,
paper where it is 0. The attribute byte gives ink (bits 0-2 plus bright
bit 6), paper (bits 3-6 after shifting out ink) and flash (bit 7); when
flash is set and the global flash toggle is active, ink and paper swap.
*/

package main

// renderBase fills the whole frame: border margin plus attribute cells.
func (c *Compositor) renderBase() {
	border := 0xFF000000 | BaseColours[c.video.Border&7]
	idx := 0

	for r := -NX_BORDER_HEIGHT; r < NX_SCREEN_HEIGHT+NX_BORDER_HEIGHT; r++ {
		if r < 0 || r >= NX_SCREEN_HEIGHT {
			for col := 0; col < NX_WINDOW_WIDTH; col++ {
				c.frame[idx] = border
				idx++
			}
			continue
		}

		p := uint16((r&0xC0)<<5 | (r&0x07)<<8 | (r&0x38)<<2)
		a := uint16(NX_ATTR_OFFSET + (r&0xF8)<<2)

		for col := 0; col < NX_BORDER_WIDTH; col++ {
			c.frame[idx] = border
			idx++
		}

		for cell := 0; cell < NX_CELLS_X; cell++ {
			data := c.mem.PeekBank(NX_BASE_SCREEN_BANK, p)
			attr := c.mem.PeekBank(NX_BASE_SCREEN_BANK, a)
			p++
			a++

			ink := 0xFF000000 | BaseColours[(attr&0x07)+(attr&0x40)>>3]
			paper := 0xFF000000 | BaseColours[(attr&0x7F)>>3]
			if attr&0x80 != 0 && c.video.Flash {
				ink, paper = paper, ink
			}

			for bit := 7; bit >= 0; bit-- {
				if data&(1<<bit) != 0 {
					c.frame[idx] = ink
				} else {
					c.frame[idx] = paper
				}
				idx++
			}
		}

		for col := 0; col < NX_BORDER_WIDTH; col++ {
			c.frame[idx] = border
			idx++
		}
	}
}
