package dheader

import (
	"testing"

	"dbpatch/ds"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createWindow(size int, offset int, header Header, payload []byte) []byte {
	window := make([]byte, size)
	record := append(Encode(header), payload...)
	copy(window[offset:], record)
	return window
}

func createHeader(headerSize uint16) Header {
	return Header{
		Magic:      MagicNumber,
		Checksum:   0xAAAAAAAA,
		Version:    1,
		HeaderSize: headerSize,
	}
}

func TestLocate(t *testing.T) {
	window := createWindow(128, 64, createHeader(12), nil)

	offset, err := Locate(window, MagicNumber, DefaultStride)
	require.NoError(t, err)
	assert.Equal(t, 64, offset)
}

func TestLocate_LowestAlignedOffsetWins(t *testing.T) {
	window := make([]byte, 256)
	copy(window[200:], Encode(createHeader(12)))
	copy(window[40:], Encode(createHeader(12)))
	copy(window[136:], Encode(createHeader(12)))

	offset, err := Locate(window, MagicNumber, DefaultStride)
	require.NoError(t, err)
	assert.Equal(t, 40, offset)
}

// Headers are expected on 8-byte boundaries; anything else is skipped over.
func TestLocate_UnalignedMagicIsNotFound(t *testing.T) {
	unaligned := lo.Filter(
		lo.Range(64),
		func(i int, _ int) bool {
			return i%DefaultStride != 0
		},
	)
	for _, offset := range unaligned {
		window := createWindow(128, offset, createHeader(12), nil)
		_, err := Locate(window, MagicNumber, DefaultStride)

		var notFound ds.ErrMagicNotFound
		assert.True(t, errors.As(err, &notFound), "offset %d", offset)
	}
}

func TestLocate_StrideIsAParameter(t *testing.T) {
	window := createWindow(128, 12, createHeader(12), nil)

	_, err := Locate(window, MagicNumber, DefaultStride)
	assert.Error(t, err)

	offset, err := Locate(window, MagicNumber, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, offset)

	_, err = Locate(window, MagicNumber, 0)
	assert.ErrorContains(t, err, "invalid stride")
}

func TestLocate_MagicByteOrder(t *testing.T) {
	window := make([]byte, 32)
	copy(window[8:], []byte{0x44, 0x42, 0x00, 0x01})
	_, err := Locate(window, MagicNumber, DefaultStride)
	assert.Error(t, err)

	copy(window[8:], []byte{0x01, 0x00, 0x42, 0x44})
	offset, err := Locate(window, MagicNumber, DefaultStride)
	require.NoError(t, err)
	assert.Equal(t, 8, offset)
}

func TestLocate_ScanEndsBeforeLastFourBytes(t *testing.T) {
	// the last candidate position is len(window)-4 exclusive
	window := createWindow(16, 8, createHeader(12), nil)[:12]
	_, err := Locate(window, MagicNumber, DefaultStride)
	assert.Error(t, err)

	_, err = Locate([]byte{0x01, 0x00}, MagicNumber, DefaultStride)
	assert.Equal(t, ds.ErrMagicNotFound{Magic: MagicNumber, WindowSize: 2}, err)
}

func TestExtract(t *testing.T) {
	payload := []byte{9, 8, 7, 6}
	window := createWindow(128, 64, createHeader(16), payload)

	header, err := Extract(window, 64)
	require.NoError(t, err)
	assert.Len(t, header, 16)
	assert.Equal(t, window[64:80], header)

	header[0] = 0xFF
	assert.Equal(t, byte(0x01), window[64], "extracted header must not alias the window")
}

func TestExtract_OutOfBounds(t *testing.T) {
	tests := map[string]struct {
		window []byte
		offset int
	}{
		"header_size past the window": {
			window: createWindow(128, 64, createHeader(100), nil),
			offset: 64,
		},
		"header_size past the scan size": {
			window: createWindow(ScanSize, 64, createHeader(ScanSize), nil),
			offset: 64,
		},
		"size field past the window": {
			window: createWindow(72, 64, createHeader(12), nil)[:70],
			offset: 64,
		},
		"header_size below minimum": {
			window: createWindow(128, 64, createHeader(8), nil),
			offset: 64,
		},
		"negative offset": {
			window: createWindow(128, 64, createHeader(12), nil),
			offset: -8,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			header, err := Extract(test.window, test.offset)
			assert.Nil(t, header)

			var outOfBounds ds.ErrOutOfBounds
			assert.True(t, errors.As(err, &outOfBounds), "got %v", err)
		})
	}
}

func TestDecode(t *testing.T) {
	bs := []byte{
		0x01, 0x00, 0x42, 0x44,
		0xAA, 0xAA, 0xAA, 0xAA,
		0x01, 0x00,
		0x0C, 0x00,
	}

	header, err := Decode(bs)
	require.NoError(t, err)
	assert.Equal(t, createHeader(12), *header)
	assert.Equal(t, bs, Encode(*header))

	_, err = Decode(bs[:11])
	var outOfBounds ds.ErrOutOfBounds
	assert.True(t, errors.As(err, &outOfBounds))
}

func TestHeader_String(t *testing.T) {
	assert.Equal(
		t,
		"DB request header magic=0x44420001 checksum=0xAAAAAAAA version=1 size=12",
		createHeader(12).String(),
	)
}
