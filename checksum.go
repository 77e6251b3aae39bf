// checksum.go - CRC-32 and Adler-32 for the NXMock image codec

/*
checksum.go - Codec Checksums

The image codec is dependency-free by contract, so it carries its own
CRC-32 (reflected polynomial 0xEDB88320, table driven) and Adler-32
(two 16-bit sums mod 65521). The CRC table is built lazily, once; the
once-guard costs nothing even though renders are single threaded.
*/

package main

import "sync"

const adlerModulus = 65521

var (
	crcTable [256]uint32
	crcOnce  sync.Once
)

func crcMakeTable() {
	for n := range crcTable {
		c := uint32(n)
		for k := 0; k < 8; k++ {
			if c&1 != 0 {
				c = 0xEDB88320 ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		crcTable[n] = c
	}
}

// Crc32Update folds data into a running CRC. The CRC should be seeded
// with 0xFFFFFFFF and the transmitted value is the one's complement of
// the final running CRC.
func Crc32Update(crc uint32, data []byte) uint32 {
	crcOnce.Do(crcMakeTable)
	for _, b := range data {
		crc = crcTable[(crc^uint32(b))&0xFF] ^ (crc >> 8)
	}
	return crc
}

// Crc32 returns the CRC-32 of data.
func Crc32(data []byte) uint32 {
	return Crc32Update(0xFFFFFFFF, data) ^ 0xFFFFFFFF
}

// Adler32Update folds data into a running Adler-32 state. Seed with
// AdlerSeed; the state packs s2 in the high half and s1 in the low half.
func Adler32Update(state uint32, data []byte) uint32 {
	s1 := state & 0xFFFF
	s2 := state >> 16
	for _, b := range data {
		s1 = (s1 + uint32(b)) % adlerModulus
		s2 = (s2 + s1) % adlerModulus
	}
	return s2<<16 | s1
}

// AdlerSeed is the initial Adler-32 state (s1=1, s2=0).
const AdlerSeed = 1
