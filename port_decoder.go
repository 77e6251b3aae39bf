// port_decoder.go - I/O port decode state machine for NXMock

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
port_decoder.go - I/O Port Decode State Machine

This module turns OUT instructions into hardware register and slot table
mutations. Decoding keys on the low byte of the 16-bit port value; the
high byte and, for the register data port, a previously latched register
index act as secondary discriminants:

  0x__FE        border colour (bits 0-2)
  0x7FFD/0xDFFD 128K-style paging bits (1MB map only) -> slot 3 bank
  0x123B        Layer 2 control: sub bank, shadow, enable, write redirect
  0x243B        indirect register select
  0x253B        indirect register data (0x12, 0x13 and, when the
                capability is present, 0x14)
  0x303B        reserved, no-op

Writes to any other port have no effect. Input ports are unmodeled: In
always returns 0. This is a documented limitation of the mock, not a
defect.
*/

package main

// PortDecoder routes port writes to the memory controller and the video
// hardware state.
type PortDecoder struct {
	mem   *MemoryController
	video *VideoState

	// Capabilities of the configured memory map
	pagingPorts     bool // 0x7FFD/0xDFFD decoded (1MB map)
	transparencyReg bool // register 0x14 present

	// Latched 128K-style paging bits
	pageLow  uint8
	pageHigh uint8

	redraw func()
}

// NewPortDecoder wires a decoder to the memory controller and video
// state. The redraw callback is invoked for visible side effects; it may
// be nil.
func NewPortDecoder(mem *MemoryController, video *VideoState, pagingPorts, transparencyReg bool, redraw func()) *PortDecoder {
	return &PortDecoder{
		mem:             mem,
		video:           video,
		pagingPorts:     pagingPorts,
		transparencyReg: transparencyReg,
		redraw:          redraw,
	}
}

// Out writes a byte to a port address.
func (pd *PortDecoder) Out(port uint16, value uint8) {
	high := uint8(port >> 8)

	switch uint8(port) {
	case 0xFE:
		pd.video.Border = value & 7
		pd.requestRedraw()

	case 0xFD:
		if !pd.pagingPorts {
			return
		}
		switch high {
		case 0x7F:
			pd.pageLow = value & 7
		case 0xDF:
			pd.pageHigh = value & 7
		default:
			return
		}
		pd.mem.SetSlotBank(3, pd.pageLow+pd.pageHigh<<3)

	case 0x3B:
		pd.outNext(high, value)
	}
}

// outNext decodes the Next ports, all sharing low byte 0x3B.
func (pd *PortDecoder) outNext(high, value uint8) {
	switch high {
	case 0x12: // Layer 2 control
		l2 := &pd.video.Layer2
		l2.SubBank = (value & NX_LAYER2_SUBBANK_MASK) >> NX_LAYER2_SUBBANK_SHIFT
		l2.ShadowEnable = value&NX_LAYER2_SHADOW_BIT != 0
		l2.Enable = value&NX_LAYER2_ENABLE_BIT != 0
		l2.Write0 = value&NX_LAYER2_WRITE0_BIT != 0
		pd.requestRedraw()

	case 0x24: // Register select
		pd.video.RegSelect = value

	case 0x25: // Register data
		switch pd.video.RegSelect {
		case NX_REG_LAYER2_BANK:
			pd.video.Layer2.BankStart = value & 31
			pd.requestRedraw()
		case NX_REG_LAYER2_SHADOW_BANK:
			pd.video.Layer2.ShadowBankStart = value & 31
			pd.requestRedraw()
		case NX_REG_LAYER2_TRANSPARENT:
			if pd.transparencyReg {
				pd.video.Layer2.Transparent = value
			}
		}

	case 0x30: // Sprite status/slot select, reserved
	}
}

// In reads a byte from a port address. Input ports are unmodeled and
// always read as 0.
func (pd *PortDecoder) In(port uint16) uint8 {
	return 0
}

// WriteRegister writes an indirect hardware register: select, then data.
func (pd *PortDecoder) WriteRegister(reg, value uint8) {
	pd.Out(NX_PORT_REG_SELECT, reg)
	pd.Out(NX_PORT_REG_RW, value)
}

// ReadRegister selects an indirect hardware register and reads the data
// port. Reads are unmodeled, so the result is always 0.
func (pd *PortDecoder) ReadRegister(reg uint8) uint8 {
	pd.Out(NX_PORT_REG_SELECT, reg)
	return pd.In(NX_PORT_REG_RW)
}

func (pd *PortDecoder) requestRedraw() {
	if pd.redraw != nil {
		pd.redraw()
	}
}
