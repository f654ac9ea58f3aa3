//go:build unix

package fileops

import (
	"os"

	"golang.org/x/sys/unix"
)

// makeFifo creates an empty named pipe at path
func makeFifo(path string, perm os.FileMode) error {
	if err := unix.Mkfifo(path, uint32(perm)); err != nil {
		return &os.PathError{Op: "mkfifo", Path: path, Err: err}
	}
	return nil
}
