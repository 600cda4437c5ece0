package cartridge

import (
	"fmt"
	"strings"
)

// Summary is the human-readable description of a loaded cartridge.
type Summary struct {
	Title          string
	TypeCode       uint8
	TypeName       string
	ROMSizeKB      uint
	RAMSizeCode    uint8
	LicenseeCode   uint8
	LicenseeName   string
	Version        uint8
	Checksum       uint8
	ChecksumPassed bool
	GlobalChecksum uint16
	Fingerprint    uint64 // xxhash of the whole image
}

func newSummary(h Header, passed bool, fingerprint uint64) Summary {
	return Summary{
		Title:          h.Title,
		TypeCode:       uint8(h.CartridgeType),
		TypeName:       h.TypeName(),
		ROMSizeKB:      h.ROMSize(),
		RAMSizeCode:    h.RAMSizeCode,
		LicenseeCode:   h.OldLicenseeCode,
		LicenseeName:   h.LicenseeName(),
		Version:        h.MaskROMVersion,
		Checksum:       h.HeaderChecksum,
		ChecksumPassed: passed,
		GlobalChecksum: h.GlobalChecksum,
		Fingerprint:    fingerprint,
	}
}

// Result returns PASSED or FAILED depending on the header checksum.
func (s Summary) Result() string {
	if s.ChecksumPassed {
		return "PASSED"
	}
	return "FAILED"
}

func (s Summary) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "\tTitle     :   %s\n", s.Title)
	fmt.Fprintf(b, "\tType      :   %02X (%s)\n", s.TypeCode, s.TypeName)
	fmt.Fprintf(b, "\tROM Size  :   %d KB\n", s.ROMSizeKB)
	fmt.Fprintf(b, "\tRAM Size  :   %02X\n", s.RAMSizeCode)
	fmt.Fprintf(b, "\tLIC Code  :   %02X (%s)\n", s.LicenseeCode, s.LicenseeName)
	fmt.Fprintf(b, "\tROM Ver   :   %02X\n", s.Version)
	fmt.Fprintf(b, "\tChecksum  :   %02X (%s)\n", s.Checksum, s.Result())
	fmt.Fprintf(b, "\tGlobal    :   %04X\n", s.GlobalChecksum)
	fmt.Fprintf(b, "\txxhash    :   %016x", s.Fingerprint)
	return b.String()
}
