package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultHiddenPrefix marks dotfiles as hidden
const DefaultHiddenPrefix = "."

// Entry is a single child of a listed directory
type Entry struct {
	Path      string
	Name      string
	IsDir     bool
	IsSymlink bool
	Size      int64
	ModTime   time.Time
	Mode      os.FileMode
}

// Lister enumerates directories, hiding names that start with HiddenPrefix
type Lister struct {
	HiddenPrefix string
}

// NewLister returns a Lister using prefix, or the dotfile prefix when empty
func NewLister(prefix string) Lister {
	if prefix == "" {
		prefix = DefaultHiddenPrefix
	}
	return Lister{HiddenPrefix: prefix}
}

// IsHidden reports whether name is filtered when hidden entries are off
func (l Lister) IsHidden(name string) bool {
	return l.HiddenPrefix != "" && strings.HasPrefix(name, l.HiddenPrefix)
}

// Children returns the immediate children of dir in name order.
// Entries whose metadata can't be read are skipped; only a failure to read
// dir itself is returned.
func (l Lister) Children(dir string, showHidden bool) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot list %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if !showHidden && l.IsHidden(name) {
			continue
		}

		path := filepath.Join(dir, name)
		linfo, err := os.Lstat(path)
		if err != nil {
			continue
		}

		entry := Entry{
			Path:    path,
			Name:    name,
			IsDir:   linfo.IsDir(),
			Size:    linfo.Size(),
			ModTime: linfo.ModTime(),
			Mode:    linfo.Mode(),
		}

		if linfo.Mode()&os.ModeSymlink != 0 {
			entry.IsSymlink = true
			// Dangling links stay listed as plain entries
			if target, err := os.Stat(path); err == nil {
				entry.IsDir = target.IsDir()
				entry.Size = target.Size()
				entry.ModTime = target.ModTime()
			}
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// Names returns the names of every child of dir, hidden ones included
func (l Lister) Names(dir string) (map[string]bool, error) {
	entries, err := l.Children(dir, true)
	if err != nil {
		return nil, err
	}
	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Name] = true
	}
	return names, nil
}

// IndexOf returns the position of path in entries, or -1
func IndexOf(entries []Entry, path string) int {
	for i, e := range entries {
		if e.Path == path {
			return i
		}
	}
	return -1
}
