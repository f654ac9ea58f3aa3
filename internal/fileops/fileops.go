package fileops

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrIntoSelf is returned when a directory would be copied into its own subtree
	ErrIntoSelf = errors.New("cannot copy a directory into itself")
	// ErrSpecialFile is returned for sockets and device nodes, which can't be copied
	ErrSpecialFile = errors.New("cannot copy special file")
)

// CreateDir creates a single directory; parents must already exist
func CreateDir(path string) error {
	return os.Mkdir(path, 0755)
}

// Remove deletes a file or directory tree
func Remove(path string) error {
	if _, err := os.Lstat(path); err != nil {
		return err
	}
	return os.RemoveAll(path)
}

// CopyFileOrDir copies a file, symlink, named pipe or directory tree from
// src to dst. Pipes are recreated, never opened.
func CopyFileOrDir(src, dst string) error {
	srcInfo, err := os.Lstat(src)
	if err != nil {
		return err
	}

	mode := srcInfo.Mode()
	switch {
	case mode&os.ModeSymlink != 0:
		return copySymlink(src, dst)
	case mode.IsDir():
		if IsWithin(dst, src) {
			return fmt.Errorf("%s -> %s: %w", src, dst, ErrIntoSelf)
		}
		return copyDir(src, dst, mode.Perm())
	case mode&os.ModeNamedPipe != 0:
		return makeFifo(dst, mode.Perm())
	case mode.IsRegular():
		return copyFile(src, dst, mode.Perm())
	default:
		return fmt.Errorf("%s (%s): %w", src, mode.Type(), ErrSpecialFile)
	}
}

// copyFile copies a single regular file, keeping its permission bits
func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// copySymlink recreates the link itself rather than its target
func copySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return err
	}
	return os.Symlink(target, dst)
}

// copyDir copies a directory recursively. The copy stays owner-writable
// until its children are in place, then gets perm. A child that fails is
// reported and the rest are still copied.
func copyDir(src, dst string, perm os.FileMode) error {
	if err := os.Mkdir(dst, 0700); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	var errs []error
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if err := CopyFileOrDir(srcPath, dstPath); err != nil {
			errs = append(errs, err)
		}
	}

	if err := os.Chmod(dst, perm); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// IsWithin reports whether path is dir or lies below it
func IsWithin(path, dir string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// FreeName prefixes name with underscores until it is not in taken
func FreeName(name string, taken map[string]bool) string {
	for taken[name] {
		name = "_" + name
	}
	return name
}
