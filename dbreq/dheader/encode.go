package dheader

import (
	"dbpatch/dbreq/lbytes"
)

// Encode writes the fixed fields of header. The payload, if any, is up to the caller.
func Encode(header Header) []byte {
	bs := make([]byte, 0, MinHeaderSize)
	bs = append(bs, lbytes.EncodeUint32(header.Magic)...)
	bs = append(bs, lbytes.EncodeUint32(header.Checksum)...)
	bs = append(bs, lbytes.EncodeUint16(header.Version)...)
	bs = append(bs, lbytes.EncodeUint16(header.HeaderSize)...)
	return bs
}
