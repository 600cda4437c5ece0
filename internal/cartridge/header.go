package cartridge

import (
	"encoding/binary"
	"fmt"
	"strings"
)

const (
	HeaderStart = 0x0100
	HeaderEnd   = 0x0150 // exclusive
	HeaderSize  = HeaderEnd - HeaderStart

	titleLength = 0x10
)

// Header represents the header of a cartridge, each cartridge has a header and is
// located at the address space 0x0100-0x014F. The header contains information about
// the cartridge itself, and the hardware it expects to run on.
//
// credits
// https://gbdev.io/pandocs/The_Cartridge_Header.html
type Header struct {
	EntryVector     [4]byte    // $0100-$0103 Entry point, usually a NOP and a JP
	Logo            [0x30]byte // $0104-$0133 Logo bitmap shown by the boot ROM
	Title           string     // $0134-$0143 Title of the game in ASCII, NUL padding removed
	NewLicenseeCode uint16     // $0144-$0145 (big endian) New licensee code
	SGBFlag         uint8      // $0146 - Specifies whether the game supports SGB functions
	CartridgeType   Type       // $0147 - Specifies the hardware present on a Cartridge.
	ROMSizeCode     uint8      // $0148 - ROM size, 32 KiB x (1<<value)
	RAMSizeCode     uint8      // $0149 - RAM size code
	DestinationCode uint8      // $014A - Specifies whether the game is intended to be sold in Japan or elsewhere
	OldLicenseeCode uint8      // $014B - Specifies the game's publisher
	MaskROMVersion  uint8      // $014C - Specifies the version of the game. It is usually $00
	HeaderChecksum  uint8      // $014D - 8-Bit checksum of header bytes $0134-$014C
	GlobalChecksum  uint16     // $014E-$014F 16-bit (big endian) checksum of the whole ROM, not verified
}

// DecodeHeader decodes the header window of a cartridge. The window must
// be the 0x50 bytes at $0100-$014F of the image; offsets used here are
// relative to $0100.
func DecodeHeader(window []byte) (Header, error) {
	h := Header{}

	// check if the header is valid
	if len(window) != HeaderSize {
		return h, fmt.Errorf("%w: header window is %d bytes, want %d", ErrTruncatedImage, len(window), HeaderSize)
	}

	title, err := decodeTitle(window[0x34:0x44])
	if err != nil {
		return h, err
	}

	copy(h.EntryVector[:], window[0x00:0x04])
	copy(h.Logo[:], window[0x04:0x34])
	h.Title = title
	h.NewLicenseeCode = binary.BigEndian.Uint16(window[0x44:0x46])
	h.SGBFlag = window[0x46]
	h.CartridgeType = Type(window[0x47])
	h.ROMSizeCode = window[0x48]
	h.RAMSizeCode = window[0x49]
	h.DestinationCode = window[0x4A]
	h.OldLicenseeCode = window[0x4B]
	h.MaskROMVersion = window[0x4C]
	h.HeaderChecksum = window[0x4D]
	h.GlobalChecksum = binary.BigEndian.Uint16(window[0x4E:0x50])

	return h, nil
}

// decodeTitle requires strict ASCII, then drops the trailing $00 padding.
func decodeTitle(b []byte) (string, error) {
	for i, c := range b {
		if c > 0x7F {
			return "", fmt.Errorf("%w: title byte $%04X is not ASCII (%02X)", ErrFormat, HeaderStart+0x34+i, c)
		}
	}
	return strings.TrimRight(string(b), "\x00"), nil
}

// MarshalBinary encodes the header back into its 0x50 byte window.
func (h Header) MarshalBinary() ([]byte, error) {
	if len(h.Title) > titleLength {
		return nil, fmt.Errorf("%w: title %q longer than %d bytes", ErrFormat, h.Title, titleLength)
	}

	window := make([]byte, HeaderSize)
	copy(window[0x00:0x04], h.EntryVector[:])
	copy(window[0x04:0x34], h.Logo[:])
	copy(window[0x34:0x44], h.Title)

	// make sure the title survives a decode
	if _, err := decodeTitle(window[0x34:0x44]); err != nil {
		return nil, err
	}

	binary.BigEndian.PutUint16(window[0x44:0x46], h.NewLicenseeCode)
	window[0x46] = h.SGBFlag
	window[0x47] = uint8(h.CartridgeType)
	window[0x48] = h.ROMSizeCode
	window[0x49] = h.RAMSizeCode
	window[0x4A] = h.DestinationCode
	window[0x4B] = h.OldLicenseeCode
	window[0x4C] = h.MaskROMVersion
	window[0x4D] = h.HeaderChecksum
	binary.BigEndian.PutUint16(window[0x4E:0x50], h.GlobalChecksum)

	return window, nil
}

// ROMSize returns the size of the ROM in KiB, calculated as 32 KiB << code.
func (h Header) ROMSize() uint {
	return 32 << h.ROMSizeCode
}

// TypeName returns the display name of the cartridge type.
func (h Header) TypeName() string {
	return h.CartridgeType.String()
}

// LicenseeName returns the publisher named by the old licensee code.
func (h Header) LicenseeName() string {
	return LicenseeName(h.OldLicenseeCode)
}

func (h Header) String() string {
	return fmt.Sprintf("%s | Type: %s | ROM Size: %dkB", h.Title, h.TypeName(), h.ROMSize())
}
