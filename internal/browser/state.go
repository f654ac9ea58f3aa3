// Package browser holds the file browser state and the operations that move
// through it: cursor movement, directory changes, selection and the
// yank/paste clipboard.
package browser

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/LFroesch/burrow/internal/fileops"
)

// Screen is the terminal size last reported to the run loop
type Screen struct {
	Width  int
	Height int
}

// ClipEntry is a yanked path; Cut entries are removed once pasted
type ClipEntry struct {
	Path string
	Cut  bool
}

// Options configure a new State
type Options struct {
	ShowHidden   bool
	HiddenPrefix string
	// LaunchDir is the directory the process was started from; empty means
	// the working directory
	LaunchDir string
}

// State is the whole browser state. It has a single owner, the run loop,
// and every operation takes it by pointer.
type State struct {
	StartDir    string
	LaunchDir   string
	CurrentPath string
	ChildFiles  []fileops.Entry
	ParentFiles []fileops.Entry
	Cursor      int
	CursorMap   map[string]int
	Selected    Selections
	Clipboard   []ClipEntry
	ShowHidden  bool
	Screen      Screen
	Lister      fileops.Lister
}

// New creates a State viewing startDir
func New(startDir string, opts Options) (*State, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve %s: %w", startDir, err)
	}

	launchDir := opts.LaunchDir
	if launchDir == "" {
		if launchDir, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("cannot get working directory: %w", err)
		}
	}
	if launchDir, err = filepath.Abs(launchDir); err != nil {
		return nil, fmt.Errorf("cannot resolve %s: %w", opts.LaunchDir, err)
	}

	s := &State{
		StartDir:    abs,
		LaunchDir:   launchDir,
		CurrentPath: abs,
		CursorMap:   make(map[string]int),
		Selected:    NewSelections(),
		ShowHidden:  opts.ShowHidden,
		Lister:      fileops.NewLister(opts.HiddenPrefix),
	}

	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// HasCursor reports whether the cursor points at an entry
func (s *State) HasCursor() bool {
	return s.Cursor >= 0 && s.Cursor < len(s.ChildFiles)
}

// CursorEntry returns the entry under the cursor
func (s *State) CursorEntry() (fileops.Entry, bool) {
	if !s.HasCursor() {
		return fileops.Entry{}, false
	}
	return s.ChildFiles[s.Cursor], true
}

// CursorPath returns the path under the cursor, or "" for an empty listing
func (s *State) CursorPath() string {
	entry, ok := s.CursorEntry()
	if !ok {
		return ""
	}
	return entry.Path
}

// SelectedPaths returns the selection of the current directory
func (s *State) SelectedPaths() []string {
	return s.Selected.Get(s.CurrentPath)
}

// ParentDirectory returns the parent of CurrentPath; ok is false at the root
func (s *State) ParentDirectory() (string, bool) {
	parent := filepath.Dir(s.CurrentPath)
	if parent == s.CurrentPath {
		return "", false
	}
	return parent, true
}

// Refresh re-lists CurrentPath and restores its remembered cursor. On error
// the state is left untouched.
func (s *State) Refresh() error {
	children, err := s.Lister.Children(s.CurrentPath, s.ShowHidden)
	if err != nil {
		return err
	}
	s.ChildFiles = children
	s.ParentFiles = s.listParent()
	s.Cursor = s.CursorMap[s.CurrentPath]
	s.clampCursor()
	return nil
}

// Reload re-lists CurrentPath keeping the current cursor
func (s *State) Reload() error {
	cursor := s.Cursor
	children, err := s.Lister.Children(s.CurrentPath, s.ShowHidden)
	if err != nil {
		return err
	}
	s.ChildFiles = children
	s.ParentFiles = s.listParent()
	s.Cursor = cursor
	s.clampCursor()
	return nil
}

// listParent lists the parent of CurrentPath for display. It is nil at the
// root or when the parent can't be read.
func (s *State) listParent() []fileops.Entry {
	parent, ok := s.ParentDirectory()
	if !ok {
		return nil
	}
	entries, err := s.Lister.Children(parent, s.ShowHidden)
	if err != nil {
		return nil
	}
	return entries
}

func (s *State) clampCursor() {
	if s.Cursor >= len(s.ChildFiles) {
		s.Cursor = len(s.ChildFiles) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// rememberCursor stores the cursor for the current directory
func (s *State) rememberCursor() {
	s.CursorMap[s.CurrentPath] = s.Cursor
}
