package dheader

import (
	"fmt"
)

type (
	// Header is the fixed prefix of a DB request header. The record continues
	// with HeaderSize-MinHeaderSize bytes of payload which are only ever hashed.
	Header struct {
		Magic      uint32 `json:"magic"`
		Checksum   uint32 `json:"checksum"`
		Version    uint16 `json:"version"`
		HeaderSize uint16 `json:"header_size"`
	}
)

const (
	MagicNumber uint32 = 0x44420001
	ScanSize           = 32 * 1024
	// DefaultStride is the alignment DB request headers are placed at.
	DefaultStride = 8

	MagicOffset      = 0
	ChecksumOffset   = 4
	VersionOffset    = 8
	HeaderSizeOffset = 10
	MinHeaderSize    = 12
)

func (h Header) String() string {
	return fmt.Sprintf(
		"DB request header magic=0x%08X checksum=0x%08X version=%d size=%d",
		h.Magic, h.Checksum, h.Version, h.HeaderSize,
	)
}
