// Package dbreq repairs the checksum of a DB request header embedded in a
// larger file, such as a kernel image the bootloader validates before use.
package dbreq

import (
	"io"
)

type (
	ReadWriterAt interface {
		io.ReaderAt
		io.WriterAt
	}
	Result struct {
		// Offset is the absolute position of the header magic.
		Offset     int
		HeaderSize int
		Version    uint16
		// Stored is the checksum found in the file before any patching.
		Stored   uint32
		Computed uint32
	}
)

// ChecksumOffset is the absolute file offset of the checksum field.
func (r Result) ChecksumOffset() int64 {
	return int64(r.Offset) + 4
}

func (r Result) Changed() bool {
	return r.Stored != r.Computed
}
