package cartridge

const (
	checksumStart = 0x0134
	checksumEnd   = 0x014D // exclusive, the checksum byte itself
)

// headerSum returns the sum of the header bytes $0134-$014C truncated
// to 8 bits.
func headerSum(image []byte) uint8 {
	var x uint8
	for _, b := range image[checksumStart:checksumEnd] {
		x += b
	}
	return x
}

// HeaderChecksum computes the checksum byte that VerifyChecksum accepts
// for the given image. The image must reach $014C.
func HeaderChecksum(image []byte) uint8 {
	return ^headerSum(image) // -(x + 1)
}

// VerifyChecksum reports whether (x + stored + 1) & 0xFF == 0, where x
// is the 8-bit sum of the header bytes $0134-$014C. Images that do not
// reach $014C never pass.
func VerifyChecksum(image []byte, stored uint8) bool {
	if len(image) < checksumEnd {
		return false
	}
	return headerSum(image)+stored+1 == 0
}
