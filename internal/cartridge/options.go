package cartridge

import "github.com/thelolagemann/vindleboy/pkg/log"

// Opt is a function that modifies a Cartridge
// instance.
type Opt func(c *Cartridge)

// WithLogger sets the logger the cartridge summary is reported to.
func WithLogger(l log.Logger) Opt {
	return func(c *Cartridge) {
		c.log = l
	}
}

// WithFilename records the filename the image was read from.
func WithFilename(name string) Opt {
	return func(c *Cartridge) {
		c.filename = name
	}
}
