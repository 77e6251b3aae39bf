// nim.go - NIM indexed-image container

/*
nim.go - NIM Container

NIM is the native uncompressed indexed-image format: a 6-byte
little-endian header (version, width, height) followed by width*height
raw palette-index bytes. Version must be 0; anything else fails closed
with an empty result.
*/

package main

// nimHeaderSize is the fixed header length in bytes.
const nimHeaderSize = 6

// EncodeNIM serializes an indexed image into NIM container bytes.
func EncodeNIM(img []uint8, width, height int) []byte {
	arena := NewBumpArena(nimHeaderSize + width*height)
	arena.WriteU16LE(0)
	arena.WriteU16LE(uint16(width))
	arena.WriteU16LE(uint16(height))
	n := width * height
	if n > len(img) {
		n = len(img)
	}
	arena.Write(img[:n])
	for i := n; i < width*height; i++ {
		arena.WriteU8(0)
	}
	return arena.Finalize()
}

// DecodeNIM parses NIM container bytes. A short buffer, a nonzero
// version, or a truncated pixel payload yields (nil, 0, 0).
func DecodeNIM(data []byte) (img []uint8, width, height int) {
	if len(data) < nimHeaderSize {
		return nil, 0, 0
	}
	version := int(data[0]) | int(data[1])<<8
	if version != 0 {
		return nil, 0, 0
	}
	width = int(data[2]) | int(data[3])<<8
	height = int(data[4]) | int(data[5])<<8
	n := width * height
	if len(data)-nimHeaderSize < n {
		return nil, 0, 0
	}
	img = make([]uint8, n)
	copy(img, data[nimHeaderSize:nimHeaderSize+n])
	return img, width, height
}
