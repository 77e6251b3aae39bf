// bump_arena.go - Append-only byte arena for the NXMock image codec

package main

// BumpArena is an append-only byte buffer with doubling growth. The
// PNG and NIM encoders build their output in one of these and hand the
// finished slice to the caller without a trailing copy.
type BumpArena struct {
	buf []byte
}

// NewBumpArena returns an arena with the given initial capacity. A
// non-positive capacity gets a small default.
func NewBumpArena(capacity int) *BumpArena {
	if capacity <= 0 {
		capacity = 256
	}
	return &BumpArena{buf: make([]byte, 0, capacity)}
}

// Len returns the number of bytes written so far.
func (a *BumpArena) Len() int {
	return len(a.buf)
}

// Write appends data, growing the backing store as needed.
func (a *BumpArena) Write(data []byte) {
	a.buf = append(a.buf, data...)
}

// WriteU8 appends a single byte.
func (a *BumpArena) WriteU8(b byte) {
	a.buf = append(a.buf, b)
}

// WriteU32BE appends v in big-endian byte order.
func (a *BumpArena) WriteU32BE(v uint32) {
	a.buf = append(a.buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// WriteU16LE appends v in little-endian byte order.
func (a *BumpArena) WriteU16LE(v uint16) {
	a.buf = append(a.buf, byte(v), byte(v>>8))
}

// Finalize returns the accumulated bytes. The arena must not be
// written to afterwards.
func (a *BumpArena) Finalize() []byte {
	return a.buf
}
