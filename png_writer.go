// png_writer.go - Dependency-free stored-block PNG encoder

/*
░█▀█░█░█░█▄█░█▀█░█▀▀░█░█
░█░█░▄▀▄░█░█░█░█░█░░░█▀▄
░▀░▀░▀░▀░▀░▀░▀▀▀░▀▀▀░▀░▀

png_writer.go - PNG Encoding

Emits a minimal structurally valid PNG: signature, IHDR (8-bit depth,
true colour + alpha), a single IDAT wrapping a zlib stream built only
from uncompressed DEFLATE stored blocks, and IEND. No compression is
performed; the point is a file every viewer can open, produced with no
external codec.

The zlib stream is CMF/FLG 0x08 0x1D (deflate, 32K window, level 0,
check bits valid). Each scanline is prefixed with filter type 0. The
filtered stream is chopped into stored blocks of at most 65535 bytes,
each with a 5-byte header: final flag, little-endian length, and the
length's one's complement. A running Adler-32 over the filtered stream
is the zlib trailer; each chunk carries a CRC-32 over its type and
data.

(c) 2026 The NXMock Authors
License: GPLv3 or later
*/

package main

// pngSignature is the fixed 8-byte PNG file signature.
var pngSignature = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

const pngMaxStoredBlock = 65535

// pngChunkBegin writes the chunk length and type and returns the CRC
// seeded over the type bytes.
func pngChunkBegin(a *BumpArena, dataLen int, ctype string) uint32 {
	a.WriteU32BE(uint32(dataLen))
	a.Write([]byte(ctype))
	return Crc32Update(0xFFFFFFFF, []byte(ctype))
}

// pngChunkEnd writes the chunk CRC trailer.
func pngChunkEnd(a *BumpArena, crc uint32) {
	a.WriteU32BE(crc ^ 0xFFFFFFFF)
}

// pngStoredSize returns the zlib stream length for rawLen bytes of
// filtered scanline data split into stored blocks.
func pngStoredSize(rawLen int) int {
	blocks := (rawLen + pngMaxStoredBlock - 1) / pngMaxStoredBlock
	if blocks == 0 {
		blocks = 1
	}
	return 2 + rawLen + 5*blocks + 4
}

// pngEncodeRGBA assembles a complete PNG from a packed 0xAARRGGBB
// pixel buffer. The arena is returned finalized.
func pngEncodeRGBA(pixels []uint32, width, height int) []byte {
	rawLen := (width*4 + 1) * height
	arena := NewBumpArena(8 + 25 + 12 + pngStoredSize(rawLen) + 12)

	arena.Write(pngSignature[:])

	// IHDR: width, height, depth 8, colour type 6, default
	// compression, filter and interlace.
	crc := pngChunkBegin(arena, 13, "IHDR")
	pos := arena.Len()
	arena.WriteU32BE(uint32(width))
	arena.WriteU32BE(uint32(height))
	arena.Write([]byte{8, 6, 0, 0, 0})
	crc = Crc32Update(crc, arena.buf[pos:])
	pngChunkEnd(arena, crc)

	// IDAT: zlib header, stored blocks, Adler-32 trailer. The CRC
	// runs over every IDAT byte as it is emitted.
	crc = pngChunkBegin(arena, pngStoredSize(rawLen), "IDAT")
	idatStart := arena.Len()
	arena.Write([]byte{0x08, 0x1D})

	adler := uint32(AdlerSeed)
	if rawLen == 0 {
		// Empty image still needs one final stored block.
		arena.Write([]byte{1, 0, 0, 0xFF, 0xFF})
	}
	line := make([]byte, width*4+1)
	remaining := rawLen
	pending := 0 // bytes left in the open stored block
	for y := 0; y < height; y++ {
		line[0] = 0
		for x := 0; x < width; x++ {
			p := pixels[y*width+x]
			line[1+x*4] = byte(p >> 16)
			line[2+x*4] = byte(p >> 8)
			line[3+x*4] = byte(p)
			line[4+x*4] = byte(p >> 24)
		}
		adler = Adler32Update(adler, line)
		for off := 0; off < len(line); {
			if pending == 0 {
				pending = remaining
				if pending > pngMaxStoredBlock {
					pending = pngMaxStoredBlock
				}
				final := byte(0)
				if remaining == pending {
					final = 1
				}
				arena.WriteU8(final)
				arena.WriteU16LE(uint16(pending))
				arena.WriteU16LE(^uint16(pending))
			}
			n := len(line) - off
			if n > pending {
				n = pending
			}
			arena.Write(line[off : off+n])
			off += n
			pending -= n
			remaining -= n
		}
	}
	arena.WriteU32BE(adler)
	crc = Crc32Update(crc, arena.buf[idatStart:])
	pngChunkEnd(arena, crc)

	crc = pngChunkBegin(arena, 0, "IEND")
	pngChunkEnd(arena, crc)

	return arena.Finalize()
}

// pngEncodeIndexed expands a palette-index image through the active
// palette's 3/3/2-bit colour tables and encodes it. Pixels equal to
// the transparent index get alpha 0.
func pngEncodeIndexed(img []uint8, width, height int, pal *Palette, transparent uint8) []byte {
	pixels := make([]uint32, width*height)
	for i, idx := range img {
		c := layer2Expand(pal[idx])
		if idx == transparent {
			c &= 0x00FFFFFF
		}
		pixels[i] = c
	}
	return pngEncodeRGBA(pixels, width, height)
}
