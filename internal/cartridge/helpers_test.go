package cartridge

// testHeader returns a synthetic header with every field populated.
func testHeader(title string) Header {
	h := Header{
		EntryVector:     [4]byte{0x00, 0xC3, 0x50, 0x01},
		Title:           title,
		NewLicenseeCode: 0x3031,
		SGBFlag:         0x03,
		CartridgeType:   MBC1RAMBATT,
		ROMSizeCode:     0x01,
		RAMSizeCode:     0x02,
		DestinationCode: 0x01,
		OldLicenseeCode: 0x01,
		MaskROMVersion:  0x02,
		GlobalChecksum:  0xBEEF,
	}
	for i := range h.Logo {
		h.Logo[i] = uint8(i * 7)
	}
	return h
}

// buildROM makes a synthetic image of the given size carrying h, with
// the header checksum fixed up so the image verifies.
func buildROM(h Header, size int) []byte {
	rom := make([]byte, size)
	window, err := h.MarshalBinary()
	if err != nil {
		panic(err)
	}
	copy(rom[HeaderStart:HeaderEnd], window)
	rom[0x014D] = HeaderChecksum(rom)
	return rom
}
