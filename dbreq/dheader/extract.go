package dheader

import (
	"encoding/binary"

	"dbpatch/ds"
	"github.com/pkg/errors"
)

// Extract copies the header record starting at offset out of window. The
// record length comes from its own header_size field, and the whole record
// has to lie inside window.
func Extract(window []byte, offset int) ([]byte, error) {
	if offset < 0 || offset+MinHeaderSize > len(window) {
		return nil, ds.ErrOutOfBounds{
			Caller: "Extract",
			Offset: offset,
			Length: MinHeaderSize,
			Limit:  len(window),
		}
	}

	sizeStart := offset + HeaderSizeOffset
	headerSize := int(binary.LittleEndian.Uint16(window[sizeStart : sizeStart+2]))
	if headerSize < MinHeaderSize {
		err := ds.ErrOutOfBounds{
			Caller: "Extract",
			Offset: offset,
			Length: MinHeaderSize,
			Limit:  headerSize,
		}
		return nil, errors.Wrapf(err, "header_size %d is below the minimum of %d", headerSize, MinHeaderSize)
	}
	if offset+headerSize > len(window) {
		return nil, ds.ErrOutOfBounds{
			Caller: "Extract",
			Offset: offset,
			Length: headerSize,
			Limit:  len(window),
		}
	}

	header := make([]byte, headerSize)
	copy(header, window[offset:offset+headerSize])
	return header, nil
}
