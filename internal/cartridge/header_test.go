package cartridge

import (
	"bytes"
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestDecodeHeader_Title(t *testing.T) {
	for n := 0; n <= titleLength; n++ {
		title := strings.Repeat("A", n)
		rom := make([]byte, 0x8000)
		copy(rom[0x0134:], title)

		h, err := DecodeHeader(rom[HeaderStart:HeaderEnd])
		require.NoError(t, err)
		assert.Equal(t, title, h.Title, "title length %d", n)
	}
}

func TestDecodeHeader_TitleKeepsInnerNUL(t *testing.T) {
	window := make([]byte, HeaderSize)
	copy(window[0x34:], "AB\x00CD")

	h, err := DecodeHeader(window)
	require.NoError(t, err)
	assert.Equal(t, "AB\x00CD", h.Title)
}

func TestDecodeHeader_NonASCIITitle(t *testing.T) {
	window := make([]byte, HeaderSize)
	copy(window[0x34:], "POKEMON")
	window[0x3A] = 0xE9

	_, err := DecodeHeader(window)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestDecodeHeader_WindowSize(t *testing.T) {
	_, err := DecodeHeader(make([]byte, HeaderSize-1))
	assert.ErrorIs(t, err, ErrTruncatedImage)

	_, err = DecodeHeader(make([]byte, HeaderSize+1))
	assert.ErrorIs(t, err, ErrTruncatedImage)
}

func TestDecodeHeader_Fields(t *testing.T) {
	rom := make([]byte, 0x8000)
	copy(rom[0x0100:], []byte{0x00, 0xC3, 0x50, 0x01})
	copy(rom[0x0134:], "TETRIS")
	rom[0x0144], rom[0x0145] = 0x12, 0x34
	rom[0x0146] = 0x03
	rom[0x0147] = 0x13
	rom[0x0148] = 0x05
	rom[0x0149] = 0x03
	rom[0x014A] = 0x01
	rom[0x014B] = 0x31
	rom[0x014C] = 0x01
	rom[0x014D] = 0x99
	rom[0x014E], rom[0x014F] = 0xAB, 0xCD

	h, err := DecodeHeader(rom[HeaderStart:HeaderEnd])
	require.NoError(t, err)

	assert.Equal(t, [4]byte{0x00, 0xC3, 0x50, 0x01}, h.EntryVector)
	assert.Equal(t, "TETRIS", h.Title)
	assert.Equal(t, uint16(0x1234), h.NewLicenseeCode)
	assert.Equal(t, uint8(0x03), h.SGBFlag)
	assert.Equal(t, MBC3RAMBATT, h.CartridgeType)
	assert.Equal(t, uint8(0x05), h.ROMSizeCode)
	assert.Equal(t, uint8(0x03), h.RAMSizeCode)
	assert.Equal(t, uint8(0x01), h.DestinationCode)
	assert.Equal(t, uint8(0x31), h.OldLicenseeCode)
	assert.Equal(t, uint8(0x01), h.MaskROMVersion)
	assert.Equal(t, uint8(0x99), h.HeaderChecksum)
	assert.Equal(t, uint16(0xABCD), h.GlobalChecksum)
	assert.Equal(t, uint(1024), h.ROMSize())
}

func TestDecodeHeader_CopiesOut(t *testing.T) {
	rom := buildROM(testHeader("COPY"), 0x8000)
	h, err := DecodeHeader(rom[HeaderStart:HeaderEnd])
	require.NoError(t, err)

	logo := h.Logo
	rom[0x0104] ^= 0xFF
	assert.Equal(t, logo, h.Logo)
}

func TestHeader_RoundTrip(t *testing.T) {
	want := testHeader("ROUNDTRIP")
	rom := buildROM(want, 0x8000)
	want.HeaderChecksum = rom[0x014D]

	got, err := DecodeHeader(rom[HeaderStart:HeaderEnd])
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, VerifyChecksum(rom, got.HeaderChecksum))

	window, err := got.MarshalBinary()
	require.NoError(t, err)
	assert.True(t, bytes.Equal(rom[HeaderStart:HeaderEnd], window))
}

func TestHeader_MarshalBinaryRejectsBadTitle(t *testing.T) {
	_, err := testHeader("THIS TITLE IS TOO LONG").MarshalBinary()
	assert.ErrorIs(t, err, ErrFormat)

	_, err = testHeader("café").MarshalBinary()
	assert.ErrorIs(t, err, ErrFormat)
}

func TestHeader_String(t *testing.T) {
	h := testHeader("ZELDA")
	assert.Equal(t, "ZELDA | Type: MBC1+RAM+BATTERY | ROM Size: 64kB", h.String())

	// value receivers, so a plain Header satisfies fmt.Stringer
	var s fmt.Stringer = h
	assert.Equal(t, h.String(), s.String())
	assert.Equal(t, "Nintendo R&D1", h.LicenseeName())
}
