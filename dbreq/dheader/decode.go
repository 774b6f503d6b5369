package dheader

import (
	"dbpatch/dbreq/lbytes"
	"dbpatch/ds"
	"github.com/pkg/errors"
)

// Decode reads the fixed fields of a header record. bs must start at the
// magic; anything after the first MinHeaderSize bytes is ignored.
func Decode(bs []byte) (*Header, error) {
	if len(bs) < MinHeaderSize {
		return nil, ds.ErrOutOfBounds{
			Caller: "Decode",
			Offset: 0,
			Length: MinHeaderSize,
			Limit:  len(bs),
		}
	}

	reader := lbytes.NewBytesReader(bs)
	readUint32 := lbytes.CreateUint32ReadFunction(reader)
	readUint16 := lbytes.CreateUint16ReadFunction(reader)

	headerInstructions := []lbytes.Instruction{
		{Key: "magic", ReadFunction: readUint32},
		{Key: "checksum", ReadFunction: readUint32},
		{Key: "version", ReadFunction: readUint16},
		{Key: "header_size", ReadFunction: readUint16},
	}

	header, err := lbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		return nil, errors.Wrap(err, "Decode error reading header fields")
	}

	return header, nil
}
