package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// renameFunc is swapped out in tests to simulate a failing rename.
var renameFunc = os.Rename

// CopyFile copies src into dstDir under the same base name, replacing any
// existing file, and returns the destination path. dstDir is created when
// missing. The source permission bits are kept.
//
// The data is written to a temporary file in dstDir and renamed into place,
// so a failed copy never leaves a truncated file at the destination.
func CopyFile(src, dstDir string) (string, error) {
	dst := filepath.Join(dstDir, filepath.Base(src))
	return dst, CopyFileTo(src, dst)
}

// CopyFileTo copies src to the exact path dst, replacing dst if it exists.
func CopyFileTo(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("copy %s: is a directory", src)
	}

	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := io.Copy(tmp, in); err != nil {
		return err
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return renameFunc(tmpName, dst)
}
