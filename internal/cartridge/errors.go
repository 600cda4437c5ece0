package cartridge

import "errors"

var (
	ErrNotFound       = errors.New("cartridge: file not found")
	ErrIO             = errors.New("cartridge: unable to read file")
	ErrTruncatedImage = errors.New("cartridge: image too small to contain header")
	ErrFormat         = errors.New("cartridge: malformed header")
)
