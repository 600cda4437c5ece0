// Package cartridge loads Game Boy cartridge images and decodes and
// validates the header at $0100-$014F. The loaded image is never
// modified.
package cartridge

import (
	"errors"
	"fmt"
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/vindleboy/pkg/log"
	"github.com/thelolagemann/vindleboy/pkg/utils"
	"io/fs"
)

// Cartridge represents a loaded game cartridge.
type Cartridge struct {
	filename string
	rom      []byte
	header   Header
	summary  Summary

	log log.Logger
}

// Load reads the image at path, decompressing it if its extension names a
// supported archive, and decodes it with New.
func Load(path string, opts ...Opt) (*Cartridge, error) {
	rom, err := utils.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrIO, path, err)
	}

	return New(rom, append([]Opt{WithFilename(path)}, opts...)...)
}

// New creates a Cartridge from an in-memory image. The image must at least
// hold the header, a failed header checksum is reported in the Summary but
// does not fail the load.
func New(rom []byte, opts ...Opt) (*Cartridge, error) {
	c := &Cartridge{
		log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if len(rom) < HeaderEnd {
		return nil, fmt.Errorf("%w: %s is %d bytes, need at least %d", ErrTruncatedImage, c.name(), len(rom), HeaderEnd)
	}

	// parse the cartridge header (0x0100 - 0x014F)
	header, err := DecodeHeader(rom[HeaderStart:HeaderEnd])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.name(), err)
	}

	c.rom = rom
	c.header = header

	passed := VerifyChecksum(rom, header.HeaderChecksum)
	c.summary = newSummary(c.header, passed, xxhash.Sum64(rom))

	// print some information about the cartridge
	c.log.Infof("Cartridge Loaded: %s\n%s", c.name(), c.summary.String())
	c.log.Debugf("header: %s", c.header.String())
	if !passed {
		c.log.Debugf("header checksum mismatch: stored %02X, computed %02X", header.HeaderChecksum, HeaderChecksum(rom))
	}

	return c, nil
}

func (c *Cartridge) name() string {
	if c.filename == "" {
		return "<memory>"
	}
	return c.filename
}

// Filename returns the path the cartridge was loaded from, if any.
func (c *Cartridge) Filename() string {
	return c.filename
}

func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the cartridge title with NUL padding removed.
func (c *Cartridge) Title() string {
	return c.header.Title
}

func (c *Cartridge) Summary() Summary {
	return c.summary
}

// ChecksumPassed reports whether the header checksum verified.
func (c *Cartridge) ChecksumPassed() bool {
	return c.summary.ChecksumPassed
}

// Fingerprint returns the xxhash of the image.
func (c *Cartridge) Fingerprint() uint64 {
	return c.summary.Fingerprint
}

// Size returns the length of the image in bytes.
func (c *Cartridge) Size() int {
	return len(c.rom)
}

// Read returns the byte at the given address. Addresses past the end of
// the image read as $FF, like an open bus.
func (c *Cartridge) Read(address uint16) uint8 {
	if int(address) >= len(c.rom) {
		return 0xFF
	}
	return c.rom[address]
}
