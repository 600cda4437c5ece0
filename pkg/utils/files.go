package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"github.com/andybalholm/brotli"
	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MaxImageSize is the largest ROM a cartridge header can describe,
// 32 KiB << 8. Decompressed output is capped at this size.
const MaxImageSize = (32 << 8) * 1024

var ErrTooLarge = errors.New("decompressed image exceeds maximum ROM size")

// LoadFile loads the given file and performs decompression if necessary.
// Archives (.zip, .7z) yield their first file, compressed streams (.gz,
// .xz, .zst, .lz4, .br) are decompressed, anything else is returned as is.
func LoadFile(filename string) ([]byte, error) {
	// open the file
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// read the file into a byte slice
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return Decompress(filepath.Ext(filename), data)
}

// Decompress decodes data according to the file extension ext. Unknown
// extensions return data untouched.
func Decompress(ext string, data []byte) ([]byte, error) {
	r := bytes.NewReader(data)

	// try to assert the compression type from the file extension
	var decoder io.Reader
	switch strings.ToLower(ext) {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		decoder = gz
	case ".xz":
		x, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		decoder = x
	case ".zst":
		z, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer z.Close()
		decoder = z
	case ".lz4":
		decoder = lz4.NewReader(r)
	case ".br":
		decoder = brotli.NewReader(r)
	case ".zip":
		zipReader, err := zip.NewReader(r, int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(zipReader.File) == 0 {
			return nil, fmt.Errorf("zip archive is empty")
		}

		// read the first file in the zip file
		rc, err := zipReader.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		decoder = rc
	case ".7z":
		szReader, err := sevenzip.NewReader(r, int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(szReader.File) == 0 {
			return nil, fmt.Errorf("7z archive is empty")
		}

		// read the first file in the archive
		rc, err := szReader.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		decoder = rc
	default:
		// .gb, .gbc, .bin and friends
		return data, nil
	}

	// read the decompressed data into a byte slice
	out, err := io.ReadAll(io.LimitReader(decoder, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", ext, err)
	}
	if len(out) > MaxImageSize {
		return nil, fmt.Errorf("%s: %w (%d bytes)", ext, ErrTooLarge, MaxImageSize)
	}

	return out, nil
}
