package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// ReadBytes reads exactly n bytes. bytes.Reader happily returns fewer bytes
// than asked for, so the short read is turned into io.ErrUnexpectedEOF here.
func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of input
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	_, err := io.ReadFull(b, bs)
	if err != nil {
		return nil, errors.Wrapf(err, "ReadBytes error reading %d bytes", n)
	}
	return bs, nil
}

func (b *Reader) ReadUint16() (uint16, error) {
	bs, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

func (b *Reader) ReadUint32() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}
