// memory_controller.go - Paged memory controller for NXMock

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
memory_controller.go - Paged Memory Controller

This module owns the physical RAM banks and the 4-slot address translator
that maps the 64K logical address space onto them. A logical address is
split into a slot (top two bits) and a 14-bit offset; the slot table gives
the bank mapped into that window. Single-byte accesses can never fail:
every logical address translates to a valid bank and offset, just like the
real hardware.

Word accesses are built from two independent byte accesses, so a word at a
slot boundary legitimately straddles two banks. Mass writes do not wrap;
they fail with BoundsError when the data would run past the end of the
logical address space or the target bank.

When the Layer 2 write redirect is armed, writes into slot 1 land in the
active Layer 2 VRAM bank instead of the slot's mapped bank. Reads are
never redirected.
*/

package main

// MemoryController owns the bank table and the slot translator.
type MemoryController struct {
	banks  [][NX_PAGE_SIZE]uint8
	slots  [NX_NUM_SLOTS]uint8
	layer2 *Layer2State
	redraw func()
}

// NewMemoryController allocates bankCount banks of 16K and resets the
// slot table to the hardware defaults. The redraw callback is invoked
// after successful mass writes; it may be nil.
func NewMemoryController(bankCount int, layer2 *Layer2State, redraw func()) *MemoryController {
	mc := &MemoryController{
		banks:  make([][NX_PAGE_SIZE]uint8, bankCount),
		layer2: layer2,
		redraw: redraw,
	}
	mc.slots = DefaultSlots
	return mc
}

// BankCount returns the number of physical banks (32 or 64).
func (mc *MemoryController) BankCount() int {
	return len(mc.banks)
}

// SlotBank returns the bank currently mapped into the given slot.
func (mc *MemoryController) SlotBank(slot int) uint8 {
	return mc.slots[slot&(NX_NUM_SLOTS-1)]
}

// SetSlotBank maps a bank into a slot. The bank index is wrapped into the
// physical bank range to keep the slot table invariant intact.
func (mc *MemoryController) SetSlotBank(slot int, bank uint8) {
	mc.slots[slot&(NX_NUM_SLOTS-1)] = uint8(int(bank) % len(mc.banks))
}

// Translate resolves a logical address to a physical (bank, offset) pair.
// Writes into slot 1 while the Layer 2 write redirect is armed resolve to
// the active Layer 2 VRAM sub-bank instead of the slot table.
func (mc *MemoryController) Translate(address uint16, isWrite bool) (bank uint8, offset uint16) {
	slot := address >> NX_SLOT_SHIFT
	offset = address & NX_PAGE_MASK

	if isWrite && mc.layer2 != nil && mc.layer2.Write0 && slot == 1 {
		bank = mc.layer2.ActiveBank() + mc.layer2.SubBank
	} else {
		bank = mc.slots[slot]
	}
	return bank, offset
}

// Peek reads a byte from the current mapped memory.
func (mc *MemoryController) Peek(address uint16) uint8 {
	bank, offset := mc.Translate(address, false)
	return mc.PeekBank(bank, offset)
}

// Poke writes a byte to the current mapped memory.
func (mc *MemoryController) Poke(address uint16, b uint8) {
	bank, offset := mc.Translate(address, true)
	mc.PokeBank(bank, offset, b)
}

// Peek16 reads a little-endian word. The two bytes translate
// independently, so the word may straddle two banks at a slot boundary.
func (mc *MemoryController) Peek16(address uint16) uint16 {
	return uint16(mc.Peek(address)) | uint16(mc.Peek(address+1))<<8
}

// Poke16 writes a little-endian word through two independent byte writes.
func (mc *MemoryController) Poke16(address uint16, w uint16) {
	mc.Poke(address, uint8(w))
	mc.Poke(address+1, uint8(w>>8))
}

// PeekBank reads directly from a bank, bypassing the slot table. The
// offset is masked to 14 bits and the bank wrapped into the physical
// range, so the access always succeeds.
func (mc *MemoryController) PeekBank(bank uint8, offset uint16) uint8 {
	return mc.banks[int(bank)%len(mc.banks)][offset&NX_PAGE_MASK]
}

// PokeBank writes directly into a bank, bypassing the slot table.
func (mc *MemoryController) PokeBank(bank uint8, offset uint16, b uint8) {
	mc.banks[int(bank)%len(mc.banks)][offset&NX_PAGE_MASK] = b
}

// Peek16Bank reads a little-endian word directly from a bank.
func (mc *MemoryController) Peek16Bank(bank uint8, offset uint16) uint16 {
	return uint16(mc.PeekBank(bank, offset)) | uint16(mc.PeekBank(bank, offset+1))<<8
}

// Poke16Bank writes a little-endian word directly into a bank.
func (mc *MemoryController) Poke16Bank(bank uint8, offset uint16, w uint16) {
	mc.PokeBank(bank, offset, uint8(w))
	mc.PokeBank(bank, offset+1, uint8(w>>8))
}

// PokeBuffer writes data sequentially through the slot translator. It
// fails with BoundsError before touching memory when the data would run
// past the 64K logical space; per-byte slot crossing is preserved. A
// redraw is requested on success.
func (mc *MemoryController) PokeBuffer(address uint16, data []byte) error {
	if int(address)+len(data) > NX_ADDRESS_SPACE {
		return &BoundsError{
			Op:      "poke buffer",
			Address: int(address),
			Size:    len(data),
			Limit:   NX_ADDRESS_SPACE,
		}
	}
	for i, b := range data {
		mc.Poke(address+uint16(i), b)
	}
	mc.requestRedraw()
	return nil
}

// PokeBufferBank writes data directly into a single bank. It fails with
// BoundsError when the data would run past the end of the bank.
func (mc *MemoryController) PokeBufferBank(bank uint8, offset uint16, data []byte) error {
	if int(offset)+len(data) > NX_PAGE_SIZE {
		return &BoundsError{
			Op:      "poke bank buffer",
			Address: int(offset),
			Size:    len(data),
			Limit:   NX_PAGE_SIZE,
		}
	}
	for i, b := range data {
		mc.PokeBank(bank, offset+uint16(i), b)
	}
	mc.requestRedraw()
	return nil
}

// Reset clears all banks and restores the default slot table.
func (mc *MemoryController) Reset() {
	for i := range mc.banks {
		mc.banks[i] = [NX_PAGE_SIZE]uint8{}
	}
	mc.slots = DefaultSlots
}

func (mc *MemoryController) requestRedraw() {
	if mc.redraw != nil {
		mc.redraw()
	}
}
