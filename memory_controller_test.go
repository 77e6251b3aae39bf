// memory_controller_test.go - Memory controller unit tests

package main

import (
	"errors"
	"testing"
)

func testMemory(banks int) (*MemoryController, *Layer2State) {
	layer2 := &Layer2State{
		BankStart:       NX_DEFAULT_LAYER2_BANK,
		ShadowBankStart: NX_DEFAULT_LAYER2_SHADOW_BANK,
		Transparent:     NX_DEFAULT_LAYER2_TRANSPARENT,
	}
	return NewMemoryController(banks, layer2, nil), layer2
}

func TestMemoryController_Translate(t *testing.T) {
	mem, _ := testMemory(NX_BANKS_1MB)

	for a := 0; a < NX_ADDRESS_SPACE; a += 97 {
		address := uint16(a)
		bank, offset := mem.Translate(address, false)
		wantSlot := int(address >> 14)
		if offset != address&0x3FFF {
			t.Errorf("Translate(%#04x) offset = %#04x, expected %#04x",
				address, offset, address&0x3FFF)
		}
		if bank != DefaultSlots[wantSlot] {
			t.Errorf("Translate(%#04x) bank = %d, expected %d",
				address, bank, DefaultSlots[wantSlot])
		}
	}
}

func TestMemoryController_PokePeekRoundtrip(t *testing.T) {
	mem, _ := testMemory(NX_BANKS_1MB)

	tests := []struct {
		address uint16
		value   uint8
	}{
		{0x0000, 0x12},
		{0x3FFF, 0x34},
		{0x4000, 0x56},
		{0x8000, 0x78},
		{0xC000, 0x9A},
		{0xFFFF, 0xBC},
	}
	for _, tt := range tests {
		mem.Poke(tt.address, tt.value)
		if got := mem.Peek(tt.address); got != tt.value {
			t.Errorf("Peek(%#04x) = %#02x, expected %#02x", tt.address, got, tt.value)
		}
	}
}

func TestMemoryController_WordStraddlesSlotBoundary(t *testing.T) {
	mem, _ := testMemory(NX_BANKS_1MB)

	// Low byte lands at the end of slot 0, high byte at the start of
	// slot 1 which maps a different bank.
	mem.Poke16(0x3FFF, 0xBEEF)
	if got := mem.PeekBank(DefaultSlots[0], 0x3FFF); got != 0xEF {
		t.Errorf("low byte in bank %d = %#02x, expected 0xef", DefaultSlots[0], got)
	}
	if got := mem.PeekBank(DefaultSlots[1], 0x0000); got != 0xBE {
		t.Errorf("high byte in bank %d = %#02x, expected 0xbe", DefaultSlots[1], got)
	}
	if got := mem.Peek16(0x3FFF); got != 0xBEEF {
		t.Errorf("Peek16(0x3fff) = %#04x, expected 0xbeef", got)
	}
}

func TestMemoryController_SetSlotBankWraps(t *testing.T) {
	mem, _ := testMemory(NX_BANKS_128K)

	mem.SetSlotBank(3, 40) // beyond the 32-bank map
	if got := mem.SlotBank(3); got != 40%NX_BANKS_128K {
		t.Errorf("SlotBank(3) = %d, expected %d", got, 40%NX_BANKS_128K)
	}
}

func TestMemoryController_Layer2WriteRedirect(t *testing.T) {
	mem, layer2 := testMemory(NX_BANKS_1MB)
	layer2.Write0 = true
	layer2.SubBank = 1

	// Writes into slot 1 land in the active Layer 2 bank plus the sub
	// bank; reads still come from the slot table.
	mem.Poke(0x4123, 0x5A)
	if got := mem.PeekBank(NX_DEFAULT_LAYER2_BANK+1, 0x0123); got != 0x5A {
		t.Errorf("redirected write = %#02x, expected 0x5a", got)
	}
	if got := mem.Peek(0x4123); got == 0x5A {
		t.Error("read followed the write redirect, expected slot table")
	}

	// Other slots are unaffected.
	mem.Poke(0x8042, 0x77)
	if got := mem.PeekBank(DefaultSlots[2], 0x0042); got != 0x77 {
		t.Errorf("slot 2 write = %#02x, expected 0x77", got)
	}
}

func TestMemoryController_PokeBufferBounds(t *testing.T) {
	redraws := 0
	layer2 := &Layer2State{}
	mem := NewMemoryController(NX_BANKS_1MB, layer2, func() { redraws++ })

	if err := mem.PokeBuffer(0xFFFE, []byte{1, 2, 3}); err == nil {
		t.Error("PokeBuffer past 64K succeeded, expected BoundsError")
	} else {
		var be *BoundsError
		if !errors.As(err, &be) {
			t.Errorf("PokeBuffer error = %T, expected *BoundsError", err)
		}
	}
	if got := mem.Peek(0xFFFE); got != 0 {
		t.Errorf("failed PokeBuffer modified memory: %#02x", got)
	}
	if redraws != 0 {
		t.Errorf("failed PokeBuffer requested %d redraws, expected 0", redraws)
	}

	if err := mem.PokeBuffer(0x8000, []byte{1, 2, 3}); err != nil {
		t.Fatalf("PokeBuffer failed: %v", err)
	}
	if redraws != 1 {
		t.Errorf("redraws = %d, expected 1", redraws)
	}
	if got := mem.Peek(0x8002); got != 3 {
		t.Errorf("Peek(0x8002) = %#02x, expected 0x03", got)
	}
}

func TestMemoryController_PokeBufferBankBounds(t *testing.T) {
	mem, _ := testMemory(NX_BANKS_1MB)

	if err := mem.PokeBufferBank(8, NX_PAGE_SIZE-1, []byte{1, 2}); err == nil {
		t.Error("PokeBufferBank past bank end succeeded, expected BoundsError")
	}
	if err := mem.PokeBufferBank(8, 100, []byte{1, 2, 3}); err != nil {
		t.Fatalf("PokeBufferBank failed: %v", err)
	}
	if got := mem.PeekBank(8, 102); got != 3 {
		t.Errorf("PeekBank(8, 102) = %#02x, expected 0x03", got)
	}
}

func TestMemoryController_Reset(t *testing.T) {
	mem, _ := testMemory(NX_BANKS_1MB)

	mem.Poke(0x8000, 0xAB)
	mem.SetSlotBank(3, 17)
	mem.Reset()

	if got := mem.Peek(0x8000); got != 0 {
		t.Errorf("Peek after Reset = %#02x, expected 0x00", got)
	}
	if got := mem.SlotBank(3); got != DefaultSlots[3] {
		t.Errorf("SlotBank(3) after Reset = %d, expected %d", got, DefaultSlots[3])
	}
}
