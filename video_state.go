// video_state.go - Port-decoded video hardware state for NXMock

package main

// Layer2State holds the Layer 2 paging and visibility registers. The
// three sub-banks starting at the active bank together form one 256x192
// indexed canvas; each sub-bank holds a 256x64 horizontal strip.
type Layer2State struct {
	BankStart       uint8 // Start bank for Layer 2 VRAM
	ShadowBankStart uint8 // Start bank for Layer 2 shadow VRAM
	SubBank         uint8 // Sub bank (0-2) mapped by the write redirect
	Transparent     uint8 // Transparent palette index
	ShadowEnable    bool  // Select shadow VRAM
	Enable          bool  // Layer 2 visible
	Write0          bool  // Slot 1 writes redirected to VRAM
}

// ActiveBank returns the bank start currently selected for display and
// for the write redirect.
func (l *Layer2State) ActiveBank() uint8 {
	if l.ShadowEnable {
		return l.ShadowBankStart
	}
	return l.BankStart
}

// Palette maps Layer 2 pixel indices to 3/3/2-bit RGB bytes.
type Palette [256]uint8

// IdentityPalette returns the hardware reset palette, entry i = i.
func IdentityPalette() Palette {
	var p Palette
	for i := range p {
		p[i] = uint8(i)
	}
	return p
}

// VideoState is the hardware register state owned by the port decoder and
// read by the compositor.
type VideoState struct {
	Border     uint8 // Border colour (bits 0-2)
	Flash      bool  // Global flash toggle
	FlashCount int   // Qualifying ticks since the last toggle
	RegSelect  uint8 // Currently selected indirect register
	Layer2     Layer2State
	Palette    Palette
}

// NewVideoState returns the reset video state.
func NewVideoState() *VideoState {
	return &VideoState{
		Palette: IdentityPalette(),
		Layer2: Layer2State{
			BankStart:       NX_DEFAULT_LAYER2_BANK,
			ShadowBankStart: NX_DEFAULT_LAYER2_SHADOW_BANK,
			Transparent:     NX_DEFAULT_LAYER2_TRANSPARENT,
		},
	}
}
