// Package dcrc computes the checksum stored in a DB request header: an IEEE
// CRC-32 (the zlib/gzip variant) over the whole record, with the checksum
// field itself counted as zeroes.
package dcrc

import (
	"hash/crc32"

	"dbpatch/dbreq/dheader"
	"dbpatch/dbreq/lbytes"
	"dbpatch/ds"
)

var zeroes = make([]byte, 4)

// Compute zeroes the checksum field of header in place and returns the CRC-32
// of the whole buffer.
func Compute(header []byte) (uint32, error) {
	if len(header) < dheader.ChecksumOffset+4 {
		return 0, ds.ErrOutOfBounds{
			Caller: "Compute",
			Offset: dheader.ChecksumOffset,
			Length: 4,
			Limit:  len(header),
		}
	}
	copy(header[dheader.ChecksumOffset:dheader.ChecksumOffset+4], zeroes)
	return crc32.ChecksumIEEE(header), nil
}

// Sum is Compute without touching header.
func Sum(header []byte) (uint32, error) {
	headerCopy := make([]byte, len(header))
	copy(headerCopy, header)
	return Compute(headerCopy)
}

func Encode(checksum uint32) []byte {
	return lbytes.EncodeUint32(checksum)
}
