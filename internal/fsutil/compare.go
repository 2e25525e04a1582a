package fsutil

import (
	"bytes"
	"errors"
	"io"
	"os"
)

const compareChunk = 32 * 1024

// SameContents reports whether the files at a and b hold exactly the same
// bytes. Sizes are compared first; equal sizes are then read side by side.
func SameContents(a, b string) (bool, error) {
	fa, err := os.Open(a)
	if err != nil {
		return false, err
	}
	defer fa.Close()

	fb, err := os.Open(b)
	if err != nil {
		return false, err
	}
	defer fb.Close()

	ia, err := fa.Stat()
	if err != nil {
		return false, err
	}
	ib, err := fb.Stat()
	if err != nil {
		return false, err
	}
	if ia.Size() != ib.Size() {
		return false, nil
	}

	bufA := make([]byte, compareChunk)
	bufB := make([]byte, compareChunk)
	for {
		na, errA := io.ReadFull(fa, bufA)
		nb, errB := io.ReadFull(fb, bufB)
		if !bytes.Equal(bufA[:na], bufB[:nb]) {
			return false, nil
		}

		doneA, err := readDone(errA)
		if err != nil {
			return false, err
		}
		doneB, err := readDone(errB)
		if err != nil {
			return false, err
		}
		if doneA || doneB {
			return doneA == doneB, nil
		}
	}
}

// readDone maps the io.ReadFull end-of-input errors to done=true.
func readDone(err error) (bool, error) {
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return true, nil
	default:
		return false, err
	}
}
