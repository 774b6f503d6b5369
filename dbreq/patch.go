package dbreq

import (
	"io"
	"os"

	"dbpatch/dbreq/dcrc"
	"dbpatch/dbreq/dheader"
	"dbpatch/ds"
	"github.com/pkg/errors"
)

// ReadWindow reads the first dheader.ScanSize bytes of r. Shorter inputs
// give a shorter window.
func ReadWindow(r io.ReaderAt) ([]byte, error) {
	window := make([]byte, dheader.ScanSize)
	n, err := r.ReadAt(window, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, ds.ErrIO{Op: "read", Err: err}
	}
	return window[:n], nil
}

// Inspect locates the header within r and computes the checksum it should
// carry. Nothing is written.
func Inspect(r io.ReaderAt) (*Result, error) {
	window, err := ReadWindow(r)
	if err != nil {
		return nil, err
	}

	offset, err := dheader.Locate(window, dheader.MagicNumber, dheader.DefaultStride)
	if err != nil {
		return nil, err
	}
	header, err := dheader.Extract(window, offset)
	if err != nil {
		return nil, err
	}
	fields, err := dheader.Decode(header)
	if err != nil {
		return nil, err
	}
	checksum, err := dcrc.Compute(header)
	if err != nil {
		return nil, err
	}

	return &Result{
		Offset:     offset,
		HeaderSize: len(header),
		Version:    fields.Version,
		Stored:     fields.Checksum,
		Computed:   checksum,
	}, nil
}

// Patch writes the computed checksum over the stored one. It is the only
// write and happens after the checksum is fully computed; a failed write
// leaves the field in an undefined state.
func Patch(rw ReadWriterAt) (*Result, error) {
	result, err := Inspect(rw)
	if err != nil {
		return nil, err
	}

	n, err := rw.WriteAt(dcrc.Encode(result.Computed), result.ChecksumOffset())
	if err != nil {
		return nil, ds.ErrIO{Op: "write", Err: err}
	}
	if n != 4 {
		return nil, ds.ErrIO{Op: "write", Err: io.ErrShortWrite}
	}

	return result, nil
}

// Verify reports whether the stored checksum already matches.
func Verify(r io.ReaderAt) (bool, *Result, error) {
	result, err := Inspect(r)
	if err != nil {
		return false, nil, err
	}
	return !result.Changed(), result, nil
}

func PatchFile(path string) (result *Result, err error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, ds.ErrIO{Op: "open", Err: err}
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			result, err = nil, ds.ErrIO{Op: "close", Err: closeErr}
		}
	}()

	result, err = Patch(file)
	if err != nil {
		return nil, errors.Wrapf(err, "PatchFile %s", path)
	}
	return result, nil
}

func VerifyFile(path string) (bool, *Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, nil, ds.ErrIO{Op: "open", Err: err}
	}
	defer file.Close()

	ok, result, err := Verify(file)
	if err != nil {
		return false, nil, errors.Wrapf(err, "VerifyFile %s", path)
	}
	return ok, result, nil
}
