// machine.go - NXMock machine context

/*
 ███▄    █ ▒██   ██▒ ███▄ ▄███▓ ▒█████   ▄████▄   ██ ▄█▀
 ██ ▀█   █ ▒▒ █ █ ▒░▓██▒▀█▀ ██▒▒██▒  ██▒▒██▀ ▀█   ██▄█▒
▓██  ▀█ ██▒░░  █   ░▓██    ▓██░▒██░  ██▒▒▓█    ▄ ▓███▄░
▓██▒  ▐▌██▒ ░ █ █ ▒ ▒██    ▒██ ▒██   ██░▒▓▓▄ ▄██▒▓██ █▄
▒██░   ▓██░▒██▒ ▒██▒▒██▒   ░██▒░ ████▓▒░▒ ▓███▀ ░▒██▒ █▄
░ ▒░   ▒ ▒ ▒▒ ░ ░▓ ░░ ▒░   ░  ░░ ▒░▒░▒░ ░ ░▒ ▒  ░▒ ▒▒ ▓▒
░ ░░   ░ ▒░░░   ░▒ ░░  ░      ░░ ░ ▒ ▒░   ░  ▒   ░ ░▒ ▒░
   ░   ░ ░  ░    ░  ░      ░   ░ ░ ░ ▒  ░        ░ ░░ ░
         ░  ░    ░         ░       ░ ░  ░ ░      ░  ░

(c) 2026 The NXMock Authors
https://github.com/nxmock/nxmock
License: GPLv3 or later
*/

/*
machine.go - Machine Context

The machine wires the memory controller, port decoder, video state and
compositor into one synchronous unit and owns the pieces the hardware
model excludes: the wall clock, the redraw dirty flag, screenshot
sequencing and blob persistence. Everything below this file is
deterministic and side-effect free; everything above it (surface,
scripts, CLI) talks only to the Machine.
*/

package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// MemoryMap selects the physical bank count.
type MemoryMap int

const (
	Map128K MemoryMap = iota // 32 banks, classic paging ports disabled
	Map1MB                   // 64 banks, 0x7FFD/0xDFFD paging active
)

// Banks returns the bank count for the map.
func (m MemoryMap) Banks() int {
	if m == Map1MB {
		return NX_BANKS_1MB
	}
	return NX_BANKS_128K
}

func (m MemoryMap) String() string {
	if m == Map1MB {
		return "1MB"
	}
	return "128K"
}

// MachineConfig selects the optional hardware features.
type MachineConfig struct {
	Map                  MemoryMap
	TransparencyRegister bool // Register 0x14 writable
	Scale                int  // Initial window scale factor
	Store                BlobStore
}

// MachineStatus is a point-in-time snapshot for the status overlay.
type MachineStatus struct {
	Map          MemoryMap
	Slots        [NX_NUM_SLOTS]uint8
	Border       uint8
	Flash        bool
	Layer2       bool
	Layer2Shadow bool
	Layer2Bank   uint8
	Frames       uint64
}

// Machine is the top-level context tying the hardware model together.
type Machine struct {
	cfg        MachineConfig
	mem        *MemoryController
	ports      *PortDecoder
	video      *VideoState
	compositor *Compositor
	store      BlobStore

	rgba          []byte // Scratch RGBA conversion buffer for the surface
	redraw        bool
	accum         time.Duration
	lastUpdate    time.Time
	frames        uint64
	screenshotSeq int
}

// NewMachine builds a machine from the given configuration. A nil
// Store falls back to the on-disk FileStore.
func NewMachine(cfg MachineConfig) *Machine {
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	if cfg.Store == nil {
		cfg.Store = FileStore{}
	}
	m := &Machine{cfg: cfg, store: cfg.Store}
	m.video = NewVideoState()
	m.mem = NewMemoryController(cfg.Map.Banks(), &m.video.Layer2, m.RequestRedraw)
	m.ports = NewPortDecoder(m.mem, m.video, cfg.Map == Map1MB, cfg.TransparencyRegister, m.RequestRedraw)
	m.compositor = NewCompositor(m.mem, m.video)
	m.rgba = make([]byte, NX_WINDOW_WIDTH*NX_WINDOW_HEIGHT*4)
	m.redraw = true
	log.WithFields(log.Fields{
		"map":   cfg.Map,
		"banks": cfg.Map.Banks(),
	}).Info("machine created")
	return m
}

// Close releases the machine. Present for lifecycle symmetry; the
// machine holds no external resources of its own.
func (m *Machine) Close() {
	log.WithField("frames", m.frames).Debug("machine closed")
}

// Memory returns the memory controller.
func (m *Machine) Memory() *MemoryController {
	return m.mem
}

// Ports returns the port decoder.
func (m *Machine) Ports() *PortDecoder {
	return m.ports
}

// Video returns the video state.
func (m *Machine) Video() *VideoState {
	return m.video
}

// RequestRedraw marks the frame buffer stale. The surface decides when
// to actually render.
func (m *Machine) RequestRedraw() {
	m.redraw = true
}

// ConsumeRedraw reports and clears the pending redraw request.
func (m *Machine) ConsumeRedraw() bool {
	r := m.redraw
	m.redraw = false
	return r
}

// Peek reads a byte through the slot translator.
func (m *Machine) Peek(address uint16) uint8 {
	return m.mem.Peek(address)
}

// Poke writes a byte through the slot translator.
func (m *Machine) Poke(address uint16, value uint8) {
	m.mem.Poke(address, value)
}

// Out writes a byte to an I/O port.
func (m *Machine) Out(port uint16, value uint8) {
	m.ports.Out(port, value)
}

// In reads a byte from an I/O port.
func (m *Machine) In(port uint16) uint8 {
	return m.ports.In(port)
}

// WriteRegister writes an indirect hardware register.
func (m *Machine) WriteRegister(reg, value uint8) {
	m.ports.WriteRegister(reg, value)
}

// PokeBuffer copies data into the logical address space.
func (m *Machine) PokeBuffer(address uint16, data []byte) error {
	return m.mem.PokeBuffer(address, data)
}

// PokeFile loads a blob and pokes its contents at address.
func (m *Machine) PokeFile(path string, address uint16) error {
	blob := m.store.Load(path)
	defer m.store.Unload(blob)
	if blob.Len() == 0 {
		return &AllocError{Op: "pokefile", Path: path, Err: fmt.Errorf("empty or missing")}
	}
	return m.mem.PokeBuffer(address, blob.Bytes)
}

// Advance accumulates emulated time and drives the flash counter: one
// tick per 1/50s, flash toggling every 16 ticks. The toggle raises a
// redraw request so flash animates even when nothing else changes.
func (m *Machine) Advance(dt time.Duration) {
	m.accum += dt
	for m.accum >= NX_FRAME_TIME {
		m.accum -= NX_FRAME_TIME
		m.frames++
		m.video.FlashCount++
		if m.video.FlashCount >= NX_FLASH_FRAMES {
			m.video.FlashCount = 0
			m.video.Flash = !m.video.Flash
			m.redraw = true
		}
	}
}

// Update advances the machine by the wall-clock time since the last
// call and invokes frameFn once per qualifying tick with the running
// frame number. frameFn may be nil.
func (m *Machine) Update(frameFn func(uint64) error) error {
	now := time.Now()
	if m.lastUpdate.IsZero() {
		m.lastUpdate = now
	}
	dt := now.Sub(m.lastUpdate)
	m.lastUpdate = now

	before := m.frames
	m.Advance(dt)
	if frameFn == nil {
		return nil
	}
	for n := before; n < m.frames; n++ {
		if err := frameFn(n + 1); err != nil {
			return err
		}
	}
	return nil
}

// Render composes the frame and converts it to the RGBA byte order the
// surface consumes. The returned slice is reused across calls.
func (m *Machine) Render() []byte {
	frame := m.compositor.Compose()
	for i, p := range frame {
		m.rgba[i*4+0] = byte(p >> 16)
		m.rgba[i*4+1] = byte(p >> 8)
		m.rgba[i*4+2] = byte(p)
		m.rgba[i*4+3] = byte(p >> 24)
	}
	return m.rgba
}

// Frame returns the compositor's packed pixel buffer.
func (m *Machine) Frame() []uint32 {
	return m.compositor.Frame()
}

// Screenshot encodes the current frame as a PNG blob named
// NextImage<n>.png with a per-machine sequence number.
func (m *Machine) Screenshot() (string, error) {
	m.compositor.Compose()
	data := pngEncodeRGBA(m.compositor.Frame(), NX_WINDOW_WIDTH, NX_WINDOW_HEIGHT)
	name := fmt.Sprintf("NextImage%d.png", m.screenshotSeq)
	m.screenshotSeq++
	blob, err := m.store.Create(name, len(data))
	if err != nil {
		return "", err
	}
	copy(blob.Bytes, data)
	if err := m.store.Unload(blob); err != nil {
		return "", err
	}
	log.WithField("path", name).Info("screenshot written")
	return name, nil
}

// SaveLayer2NIM writes the active Layer 2 canvas to a NIM blob.
func (m *Machine) SaveLayer2NIM(path string) error {
	img := m.readLayer2Canvas()
	data := EncodeNIM(img, NX_SCREEN_WIDTH, NX_SCREEN_HEIGHT)
	blob, err := m.store.Create(path, len(data))
	if err != nil {
		return err
	}
	copy(blob.Bytes, data)
	return m.store.Unload(blob)
}

// LoadLayer2Image loads a NIM or PNG blob into the active Layer 2
// banks, clamped to the 256x192 canvas, and requests a redraw.
func (m *Machine) LoadLayer2Image(path string) error {
	blob := m.store.Load(path)
	defer m.store.Unload(blob)
	if blob.Len() == 0 {
		return &AllocError{Op: "loadimage", Path: path, Err: fmt.Errorf("empty or missing")}
	}

	var img []uint8
	var w, h int
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img, w, h = DecodePNG(blob.Bytes, &m.video.Palette, m.video.Layer2.Transparent)
	default:
		img, w, h = DecodeNIM(blob.Bytes)
	}
	if img == nil {
		return &AllocError{Op: "loadimage", Path: path, Err: fmt.Errorf("unrecognized image data")}
	}

	m.writeLayer2Canvas(img, w, h)
	m.redraw = true
	log.WithFields(log.Fields{"path": path, "width": w, "height": h}).Info("layer2 image loaded")
	return nil
}

// readLayer2Canvas copies the three active strips into one contiguous
// indexed image.
func (m *Machine) readLayer2Canvas() []uint8 {
	bank := m.video.Layer2.ActiveBank()
	img := make([]uint8, NX_SCREEN_WIDTH*NX_SCREEN_HEIGHT)
	for y := 0; y < NX_SCREEN_HEIGHT; y++ {
		strip := uint8(y / 64)
		for x := 0; x < NX_SCREEN_WIDTH; x++ {
			img[y*NX_SCREEN_WIDTH+x] = m.mem.PeekBank(bank+strip, uint16((y%64)*NX_SCREEN_WIDTH+x))
		}
	}
	return img
}

// writeLayer2Canvas scatters an indexed image across the three active
// strips, clamping to the canvas size.
func (m *Machine) writeLayer2Canvas(img []uint8, w, h int) {
	bank := m.video.Layer2.ActiveBank()
	if h > NX_SCREEN_HEIGHT {
		h = NX_SCREEN_HEIGHT
	}
	cols := w
	if cols > NX_SCREEN_WIDTH {
		cols = NX_SCREEN_WIDTH
	}
	for y := 0; y < h; y++ {
		strip := uint8(y / 64)
		for x := 0; x < cols; x++ {
			m.mem.PokeBank(bank+strip, uint16((y%64)*NX_SCREEN_WIDTH+x), img[y*w+x])
		}
	}
}

// Status returns a snapshot for the surface's status overlay.
func (m *Machine) Status() MachineStatus {
	var slots [NX_NUM_SLOTS]uint8
	for i := range slots {
		slots[i] = m.mem.SlotBank(i)
	}
	return MachineStatus{
		Map:          m.cfg.Map,
		Slots:        slots,
		Border:       m.video.Border,
		Flash:        m.video.Flash,
		Layer2:       m.video.Layer2.Enable,
		Layer2Shadow: m.video.Layer2.ShadowEnable,
		Layer2Bank:   m.video.Layer2.ActiveBank(),
		Frames:       m.frames,
	}
}

// Run drives the machine against a surface at the hardware frame rate
// until the surface closes. frameFn, if non-nil, is invoked once per
// tick with the running frame number before rendering; script hosts
// hang their per-frame callbacks here.
func (m *Machine) Run(surface Surface, frameFn func(uint64) error) error {
	ticker := time.NewTicker(NX_FRAME_TIME)
	defer ticker.Stop()

	for {
		select {
		case <-surface.Done():
			return nil
		case <-ticker.C:
			if err := m.Update(frameFn); err != nil {
				return err
			}
			if m.ConsumeRedraw() {
				if err := surface.UpdateFrame(m.Render()); err != nil {
					return err
				}
			}
		}
	}
}
