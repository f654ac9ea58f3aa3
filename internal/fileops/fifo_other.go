//go:build !unix

package fileops

import (
	"fmt"
	"os"
)

func makeFifo(path string, _ os.FileMode) error {
	return fmt.Errorf("%s (named pipe): %w", path, ErrSpecialFile)
}
