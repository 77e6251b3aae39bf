// checksum_test.go - Codec checksum tests

package main

import "testing"

func TestCrc32_KnownVectors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want uint32
	}{
		{"empty", "", 0x00000000},
		{"check string", "123456789", 0xCBF43926},
		{"single byte", "a", 0xE8B7BE43},
	}
	for _, tt := range tests {
		if got := Crc32([]byte(tt.data)); got != tt.want {
			t.Errorf("Crc32(%s) = %#08x, expected %#08x", tt.name, got, tt.want)
		}
	}
}

func TestCrc32_RunningUpdateMatchesOneShot(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	crc := uint32(0xFFFFFFFF)
	for _, b := range data {
		crc = Crc32Update(crc, []byte{b})
	}
	if got := crc ^ 0xFFFFFFFF; got != Crc32(data) {
		t.Errorf("running CRC = %#08x, expected %#08x", got, Crc32(data))
	}
}

func TestAdler32_KnownVectors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want uint32
	}{
		{"empty", "", 0x00000001},
		{"wikipedia", "Wikipedia", 0x11E60398},
	}
	for _, tt := range tests {
		if got := Adler32Update(AdlerSeed, []byte(tt.data)); got != tt.want {
			t.Errorf("Adler32(%s) = %#08x, expected %#08x", tt.name, got, tt.want)
		}
	}
}

func TestAdler32_RunningUpdateMatchesOneShot(t *testing.T) {
	data := []byte("running adler state must be splittable anywhere")

	full := Adler32Update(AdlerSeed, data)
	half := Adler32Update(AdlerSeed, data[:20])
	if got := Adler32Update(half, data[20:]); got != full {
		t.Errorf("split Adler = %#08x, expected %#08x", got, full)
	}
}
