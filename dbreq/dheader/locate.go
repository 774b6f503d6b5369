package dheader

import (
	"encoding/binary"

	"dbpatch/ds"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Locate returns the lowest offset i, with i a multiple of stride and
// i < len(window)-4, such that the little-endian uint32 at i equals magic.
//
// Only stride-aligned positions are looked at, so a magic sitting at an
// unaligned offset is never found.
func Locate(window []byte, magic uint32, stride int) (int, error) {
	if stride <= 0 {
		return 0, errors.Errorf("Locate invalid stride %d", stride)
	}

	for _, i := range lo.RangeWithSteps(0, len(window)-4, stride) {
		if binary.LittleEndian.Uint32(window[i:i+4]) == magic {
			return i, nil
		}
	}

	return 0, ds.ErrMagicNotFound{
		Magic:      magic,
		WindowSize: len(window),
	}
}
