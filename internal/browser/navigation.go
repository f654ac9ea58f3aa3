package browser

import (
	"fmt"
	"os"

	"github.com/LFroesch/burrow/internal/fileops"
)

// Direction is a cursor or directory transition
type Direction int

const (
	Up Direction = iota
	Down
	In
	Out
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case In:
		return "in"
	case Out:
		return "out"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Navigate applies d. For In on a file it returns the path to hand to an
// editor; every other transition returns "".
func (s *State) Navigate(d Direction) (string, error) {
	switch d {
	case Up:
		s.Up()
	case Down:
		s.Down()
	case In:
		return s.Enter()
	case Out:
		return "", s.Leave()
	default:
		return "", fmt.Errorf("unknown direction %v", d)
	}
	return "", nil
}

// Down moves the cursor one entry down, stopping at the last entry
func (s *State) Down() {
	if s.Cursor < len(s.ChildFiles)-1 {
		s.Cursor++
	}
}

// Up moves the cursor one entry up, stopping at the first entry
func (s *State) Up() {
	if s.Cursor > 0 {
		s.Cursor--
	}
}

// Top moves the cursor to the first entry
func (s *State) Top() {
	s.Cursor = 0
}

// Bottom moves the cursor to the last entry
func (s *State) Bottom() {
	s.Cursor = len(s.ChildFiles) - 1
	s.clampCursor()
}

// Enter descends into the directory under the cursor. If the cursor is on a
// file nothing changes and the file's path is returned for editing.
func (s *State) Enter() (string, error) {
	entry, ok := s.CursorEntry()
	if !ok {
		return "", nil
	}

	if !entry.IsDir {
		return entry.Path, nil
	}
	return "", s.ChangeDir(entry.Path)
}

// Leave moves to the parent directory and puts the cursor on the directory
// that was just left. At the filesystem root it does nothing.
func (s *State) Leave() error {
	parent, ok := s.ParentDirectory()
	if !ok {
		return nil
	}

	left := s.CurrentPath
	if err := s.ChangeDir(parent); err != nil {
		return err
	}

	// The directory may be gone or filtered out; keep the remembered cursor then
	if idx := fileops.IndexOf(s.ChildFiles, left); idx >= 0 {
		s.Cursor = idx
	}
	return nil
}

// ChangeDir switches to dir, remembering the cursor of the directory being
// left and restoring the one remembered for dir. If dir can't be listed the
// state is unchanged.
func (s *State) ChangeDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	prevPath, prevCursor := s.CurrentPath, s.Cursor
	s.rememberCursor()

	s.CurrentPath = dir
	if err := s.Refresh(); err != nil {
		s.CurrentPath, s.Cursor = prevPath, prevCursor
		return err
	}
	return nil
}

// ToggleHidden flips hidden-entry visibility and keeps the cursor on the
// same entry when it is still listed
func (s *State) ToggleHidden() error {
	current := s.CursorPath()

	s.ShowHidden = !s.ShowHidden
	if err := s.Reload(); err != nil {
		s.ShowHidden = !s.ShowHidden
		return err
	}

	if idx := fileops.IndexOf(s.ChildFiles, current); idx >= 0 {
		s.Cursor = idx
	}
	return nil
}
