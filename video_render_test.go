// video_render_test.go - Compositor render tests

package main

import "testing"

func testCompositor() (*Compositor, *MemoryController, *VideoState) {
	video := NewVideoState()
	mem := NewMemoryController(NX_BANKS_1MB, &video.Layer2, nil)
	return NewCompositor(mem, video), mem, video
}

// frameAt indexes the frame buffer in window coordinates.
func frameAt(frame []uint32, x, y int) uint32 {
	return frame[y*NX_WINDOW_WIDTH+x]
}

func TestCompositor_BorderFill(t *testing.T) {
	c, _, video := testCompositor()
	video.Border = 1 // blue

	frame := c.Compose()
	want := 0xFF000000 | BaseColours[1]

	corners := [][2]int{
		{0, 0},
		{NX_WINDOW_WIDTH - 1, 0},
		{0, NX_WINDOW_HEIGHT - 1},
		{NX_WINDOW_WIDTH - 1, NX_WINDOW_HEIGHT - 1},
		{NX_BORDER_WIDTH - 1, NX_BORDER_HEIGHT},
		{NX_BORDER_WIDTH + NX_SCREEN_WIDTH, NX_BORDER_HEIGHT},
	}
	for _, xy := range corners {
		if got := frameAt(frame, xy[0], xy[1]); got != want {
			t.Errorf("border pixel (%d,%d) = %#08x, expected %#08x", xy[0], xy[1], got, want)
		}
	}
}

func TestCompositor_AttributeCell(t *testing.T) {
	c, mem, _ := testCompositor()

	// Top-left cell: ink red (2), paper cyan (5), leftmost pixel set.
	mem.PokeBank(NX_BASE_SCREEN_BANK, 0x0000, 0x80)
	mem.PokeBank(NX_BASE_SCREEN_BANK, NX_ATTR_OFFSET, 5<<3|2)

	frame := c.Compose()
	ink := 0xFF000000 | BaseColours[2]
	paper := 0xFF000000 | BaseColours[5]

	if got := frameAt(frame, NX_BORDER_WIDTH, NX_BORDER_HEIGHT); got != ink {
		t.Errorf("set pixel = %#08x, expected ink %#08x", got, ink)
	}
	if got := frameAt(frame, NX_BORDER_WIDTH+1, NX_BORDER_HEIGHT); got != paper {
		t.Errorf("clear pixel = %#08x, expected paper %#08x", got, paper)
	}
}

func TestCompositor_BrightAttribute(t *testing.T) {
	c, mem, _ := testCompositor()

	// Bright white ink on bright blue paper.
	mem.PokeBank(NX_BASE_SCREEN_BANK, 0x0000, 0xFF)
	mem.PokeBank(NX_BASE_SCREEN_BANK, NX_ATTR_OFFSET, 0x40|1<<3|7)

	frame := c.Compose()
	if got := frameAt(frame, NX_BORDER_WIDTH, NX_BORDER_HEIGHT); got != 0xFFFFFFFF {
		t.Errorf("bright ink = %#08x, expected 0xffffffff", got)
	}

	mem.PokeBank(NX_BASE_SCREEN_BANK, 0x0000, 0x00)
	frame = c.Compose()
	want := 0xFF000000 | BaseColours[8+1]
	if got := frameAt(frame, NX_BORDER_WIDTH, NX_BORDER_HEIGHT); got != want {
		t.Errorf("bright paper = %#08x, expected %#08x", got, want)
	}
}

func TestCompositor_FlashSwapsInkAndPaper(t *testing.T) {
	c, mem, video := testCompositor()

	mem.PokeBank(NX_BASE_SCREEN_BANK, 0x0000, 0x80)
	mem.PokeBank(NX_BASE_SCREEN_BANK, NX_ATTR_OFFSET, 0x80|5<<3|2)

	ink := 0xFF000000 | BaseColours[2]
	paper := 0xFF000000 | BaseColours[5]

	frame := c.Compose()
	if got := frameAt(frame, NX_BORDER_WIDTH, NX_BORDER_HEIGHT); got != ink {
		t.Errorf("flash off: pixel = %#08x, expected ink %#08x", got, ink)
	}

	video.Flash = true
	frame = c.Compose()
	if got := frameAt(frame, NX_BORDER_WIDTH, NX_BORDER_HEIGHT); got != paper {
		t.Errorf("flash on: pixel = %#08x, expected paper %#08x", got, paper)
	}
}

func TestCompositor_RowAddressing(t *testing.T) {
	c, mem, _ := testCompositor()

	// Row 8 is the first row of the second cell row; its bitmap bytes
	// live at 0x0020, not 0x0100.
	mem.PokeBank(NX_BASE_SCREEN_BANK, 0x0020, 0x80)
	mem.PokeBank(NX_BASE_SCREEN_BANK, NX_ATTR_OFFSET+0x20, 0x07)

	frame := c.Compose()
	white := 0xFF000000 | BaseColours[7]
	if got := frameAt(frame, NX_BORDER_WIDTH, NX_BORDER_HEIGHT+8); got != white {
		t.Errorf("row 8 pixel = %#08x, expected %#08x", got, white)
	}
}

func TestCompositor_Layer2Overlay(t *testing.T) {
	c, mem, video := testCompositor()
	video.Layer2.Enable = true

	// One opaque pixel per strip, everything else left at the
	// transparent index.
	transparent := video.Layer2.Transparent
	bank := video.Layer2.BankStart
	for strip := uint8(0); strip < 3; strip++ {
		for i := 0; i < NX_SCREEN_WIDTH*64; i++ {
			mem.PokeBank(bank+strip, uint16(i), transparent)
		}
	}
	mem.PokeBank(bank, 5, 0xE0)                      // full red, strip 0 row 0
	mem.PokeBank(bank+2, uint16(63*NX_SCREEN_WIDTH), 0x1C) // full green, last row

	frame := c.Compose()

	red := uint32(0xFF000000 | 255<<16)
	if got := frameAt(frame, NX_BORDER_WIDTH+5, NX_BORDER_HEIGHT); got != red {
		t.Errorf("layer2 pixel = %#08x, expected %#08x", got, red)
	}
	green := uint32(0xFF000000 | 255<<8)
	if got := frameAt(frame, NX_BORDER_WIDTH, NX_BORDER_HEIGHT+191); got != green {
		t.Errorf("layer2 last-row pixel = %#08x, expected %#08x", got, green)
	}

	// Transparent pixels leave the base layer visible.
	paper := 0xFF000000 | BaseColours[0]
	if got := frameAt(frame, NX_BORDER_WIDTH+6, NX_BORDER_HEIGHT); got != paper {
		t.Errorf("transparent pixel = %#08x, expected base %#08x", got, paper)
	}
}

func TestCompositor_Layer2Disabled(t *testing.T) {
	c, mem, video := testCompositor()

	mem.PokeBank(video.Layer2.BankStart, 0, 0xE0)
	frame := c.Compose()

	base := 0xFF000000 | BaseColours[0]
	if got := frameAt(frame, NX_BORDER_WIDTH, NX_BORDER_HEIGHT); got != base {
		t.Errorf("pixel = %#08x, expected base layer %#08x", got, base)
	}
}

func TestCompositor_Layer2ShadowBankSelect(t *testing.T) {
	c, mem, video := testCompositor()
	video.Layer2.Enable = true
	video.Layer2.ShadowEnable = true
	transparent := video.Layer2.Transparent

	for strip := uint8(0); strip < 3; strip++ {
		for i := 0; i < NX_SCREEN_WIDTH*64; i++ {
			mem.PokeBank(video.Layer2.ShadowBankStart+strip, uint16(i), transparent)
		}
	}
	mem.PokeBank(video.Layer2.BankStart, 0, 0xE0)       // normal VRAM, ignored
	mem.PokeBank(video.Layer2.ShadowBankStart, 0, 0x03) // shadow VRAM, shown

	frame := c.Compose()
	blue := uint32(0xFF000000 | 255)
	if got := frameAt(frame, NX_BORDER_WIDTH, NX_BORDER_HEIGHT); got != blue {
		t.Errorf("shadow pixel = %#08x, expected %#08x", got, blue)
	}
}
