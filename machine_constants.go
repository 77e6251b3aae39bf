// machine_constants.go - Hardware constants for the NXMock Spectrum Next mock

/*
 ███▄    █ ▒██   ██▒ ███▄ ▄███▓ ▒█████   ▄████▄   ██ ▄█▀
 ██ ▀█   █ ▒▒ █ █ ▒░▓██▒▀█▀ ██▒▒██▒  ██▒▒██▀ ▀█   ██▄█▒
▓██  ▀█ ██▒░░  █   ░▓██    ▓██░▒██░  ██▒▒▓█    ▄ ▓███▄░
▓██▒  ▐▌██▒ ░ █ █ ▒ ▒██    ▒██ ▒██   ██░▒▓▓▄ ▄██▒▓██ █▄
▒██░   ▓██░▒██▒ ▒██▒▒██▒   ░██▒░ ████▓▒░▒ ▓███▀ ░▒██▒ █▄
░ ▒░   ▒ ▒ ▒▒ ░ ░▓ ░░ ▒░   ░  ░░ ▒░▒░▒░ ░ ░▒ ▒  ░▒ ▒▒ ▓▒
░ ░░   ░ ▒░░░   ░▒ ░░  ░      ░  ░ ▒ ▒░   ░  ▒   ░ ░▒ ▒░
   ░   ░ ░  ░    ░  ░      ░   ░ ░ ░ ▒  ░        ░ ░░ ░
         ░  ░    ░         ░       ░ ░  ░ ░      ░  ░

(c) 2026 The NXMock Authors
https://github.com/nxmock/nxmock
License: GPLv3 or later
*/

/*
machine_constants.go - ZX Spectrum Next Hardware Constants

This file defines the memory layout, I/O port numbers, hardware register
indices and colour tables for the mocked Spectrum Next hardware.

Display Specifications:
  - Resolution: 256x192 pixels (32x24 attribute cells of 8x8 pixels)
  - Border: 32 pixels on each side -> 320x256 total frame
  - Base layer: attribute-based colouring, 15 unique colours
  - Layer 2: 256x192 indexed bitmap, 256-entry palette of 3/3/2-bit RGB

Memory Layout:
  - Logical address space: 64K, seen through 4 slots of 16K
  - Physical bank space: 32 (128K map) or 64 (1MB map) banks of 16K
  - Base screen: bank 5 (bitmap at 0x0000, attributes at 0x1800)
  - Layer 2 canvas: 3 consecutive banks, each one 256x64 strip

Attribute Byte Format:
  Bit 7: FLASH (swap INK/PAPER on the flash clock)
  Bit 6: BRIGHT (intensify both INK and PAPER)
  Bits 5-3: PAPER (background colour, 0-7)
  Bits 2-0: INK (foreground colour, 0-7)
*/

package main

import "time"

// =============================================================================
// Display Dimensions
// =============================================================================

const (
	NX_SCREEN_WIDTH  = 256
	NX_SCREEN_HEIGHT = 192

	NX_WINDOW_WIDTH  = 320
	NX_WINDOW_HEIGHT = 256

	// Border margin on each side of the visible area
	NX_BORDER_WIDTH  = (NX_WINDOW_WIDTH - NX_SCREEN_WIDTH) / 2
	NX_BORDER_HEIGHT = (NX_WINDOW_HEIGHT - NX_SCREEN_HEIGHT) / 2

	NX_CELLS_X = NX_SCREEN_WIDTH / 8
	NX_CELLS_Y = NX_SCREEN_HEIGHT / 8
)

// =============================================================================
// Memory Layout
// =============================================================================

const (
	// One physical bank/page of RAM
	NX_PAGE_SIZE = 16384
	NX_PAGE_MASK = NX_PAGE_SIZE - 1

	// Four 16K windows in the 64K logical address space
	NX_NUM_SLOTS  = 4
	NX_SLOT_SHIFT = 14

	NX_ADDRESS_SPACE = 65536

	// Bank counts for the two historical memory maps
	NX_BANKS_128K = 32
	NX_BANKS_1MB  = 64

	// Fixed bank holding the base-layer screen
	NX_BASE_SCREEN_BANK = 5

	// Attribute section offset within the screen bank
	NX_ATTR_OFFSET = 0x1800
)

// =============================================================================
// I/O Ports
// =============================================================================

const (
	// ULA port: bits 0-2 set the border colour (decoded on low byte only)
	NX_PORT_ULA = 0x00FE

	// 128K-style paging ports (1MB map only): low and high paging bits
	// combine into the slot 3 bank: low + high*8
	NX_PORT_128_PAGE  = 0x7FFD
	NX_PORT_NEXT_PAGE = 0xDFFD

	// Next ports (decoded on low byte 0x3B, high byte selects function)
	NX_PORT_LAYER2_PAGING = 0x123B
	NX_PORT_REG_SELECT    = 0x243B
	NX_PORT_REG_RW        = 0x253B
	NX_PORT_SPRITE_STATUS = 0x303B
)

// =============================================================================
// Layer 2 Control Port Bits (port 0x123B)
// =============================================================================

const (
	NX_LAYER2_SUBBANK_MASK  = 0xC0 // Bits 6-7: sub bank (0-2)
	NX_LAYER2_SUBBANK_SHIFT = 6
	NX_LAYER2_SHADOW_BIT    = 0x08 // Bit 3: select shadow VRAM
	NX_LAYER2_ENABLE_BIT    = 0x02 // Bit 1: Layer 2 visible
	NX_LAYER2_WRITE0_BIT    = 0x01 // Bit 0: slot 1 writes redirected to VRAM
)

// =============================================================================
// Indirect Hardware Registers (select on 0x243B, data on 0x253B)
// =============================================================================

const (
	NX_REG_LAYER2_BANK        = 0x12 // Layer 2 bank start (masked to 5 bits)
	NX_REG_LAYER2_SHADOW_BANK = 0x13 // Layer 2 shadow bank start
	NX_REG_LAYER2_TRANSPARENT = 0x14 // Layer 2 transparency index (capability)
)

// =============================================================================
// Timing
// =============================================================================

const (
	// Emulated interrupt rate; the flash clock advances once per frame time
	NX_FRAME_RATE = 50
	NX_FRAME_TIME = time.Second / NX_FRAME_RATE

	// Flash toggles every 16 qualifying ticks (~0.32s)
	NX_FLASH_FRAMES = 16
)

// =============================================================================
// Hardware Defaults
// =============================================================================

const (
	NX_DEFAULT_LAYER2_BANK        = 8
	NX_DEFAULT_LAYER2_SHADOW_BANK = 11
	NX_DEFAULT_LAYER2_TRANSPARENT = 0xE3
)

// DefaultSlots is the reset slot table: ROM shadow, screen, system, bank 0.
var DefaultSlots = [NX_NUM_SLOTS]uint8{0, 5, 2, 0}

// =============================================================================
// Colour Tables
// =============================================================================

// BaseColours are the 15 base-layer colours as packed 0xRRGGBB values.
// Entries 0-7 are the normal set, 8-15 the bright set (black can't brighten).
var BaseColours = [16]uint32{
	0x000000, 0x0000D7, 0xD70000, 0xD700D7, 0x00D700, 0x00D7D7, 0xD7D700, 0xD7D7D7,
	0x000000, 0x0000FF, 0xFF0000, 0xFF00FF, 0x00FF00, 0x00FFFF, 0xFFFF00, 0xFFFFFF,
}

// Colour3Bit expands a 3-bit channel of the Layer 2 palette to 8 bits.
var Colour3Bit = [8]uint32{0, 36, 73, 109, 146, 182, 219, 255}

// Colour2Bit expands the 2-bit blue channel to 8 bits.
var Colour2Bit = [4]uint32{0, 85, 170, 255}
