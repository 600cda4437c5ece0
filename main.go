package main

import (
	"flag"
	"fmt"
	"github.com/hashicorp/go-multierror"
	"github.com/thelolagemann/vindleboy/internal/cartridge"
	"github.com/thelolagemann/vindleboy/pkg/log"
	"os"
	"strings"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load")
	loggerName := flag.String("logger", "std", "The logger to use. Can be std, glog or null (glog logs to stderr unless -logtostderr=false)")
	flag.Parse()

	var logger log.Logger
	switch strings.ToLower(*loggerName) {
	case "std":
		logger = log.New()
	case "glog":
		if !isFlagSet("logtostderr") {
			_ = flag.Set("logtostderr", "true")
		}
		logger = log.NewGlog()
	case "null":
		logger = log.NewNullLogger()
	default:
		fmt.Fprintf(os.Stderr, "invalid logger %q\n", *loggerName)
		os.Exit(2)
	}

	var roms []string
	if *romFile != "" {
		roms = append(roms, *romFile)
	}
	roms = append(roms, flag.Args()...)
	if len(roms) == 0 {
		logger.Fatal("no rom file given")
		os.Exit(2) // Fatal is a no-op for the null logger
	}

	if err := run(logger, roms); err != nil {
		logger.Fatal(err.Error())
		os.Exit(1)
	}
}

// isFlagSet reports whether the named flag was passed on the command line.
func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// run loads every rom in turn, collecting the failures.
func run(logger log.Logger, roms []string) error {
	var result *multierror.Error
	for _, rom := range roms {
		cart, err := cartridge.Load(rom, cartridge.WithLogger(logger))
		if err != nil {
			logger.Errorf("Failed to load ROM: %v", err)
			result = multierror.Append(result, err)
			continue
		}

		if !cart.ChecksumPassed() {
			logger.Errorf("%s: header checksum failed", rom)
		}
	}

	return result.ErrorOrNil()
}
