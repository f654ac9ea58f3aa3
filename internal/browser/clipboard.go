package browser

import (
	"errors"
	"path/filepath"

	"github.com/LFroesch/burrow/internal/fileops"
	"github.com/LFroesch/burrow/internal/logger"
)

// ToggleSelect flips the selection of the entry under the cursor and moves
// the cursor down, so repeated toggles sweep through the listing
func (s *State) ToggleSelect() {
	path := s.CursorPath()
	if path == "" {
		return
	}
	s.Selected.Toggle(s.CurrentPath, path)
	s.Down()
}

// targets returns the current selection, or the cursor entry when nothing
// is selected
func (s *State) targets() []string {
	if selected := s.SelectedPaths(); len(selected) > 0 {
		return selected
	}
	if path := s.CursorPath(); path != "" {
		return []string{path}
	}
	return nil
}

// Yank replaces the clipboard with the selection (or the cursor entry),
// tagging every entry with cut
func (s *State) Yank(cut bool) {
	paths := s.targets()
	if len(paths) == 0 {
		return
	}

	clip := make([]ClipEntry, 0, len(paths))
	for _, p := range paths {
		clip = append(clip, ClipEntry{Path: p, Cut: cut})
	}
	s.Clipboard = clip
}

// Paste copies (or moves, for cut entries) every clipboard entry into the
// current directory. A name already present gets "_" prefixed until it is
// free, and names chosen earlier in the same paste count as present.
// The returned error joins every failed entry.
func (s *State) Paste() (fileops.Report, error) {
	if len(s.Clipboard) == 0 {
		return fileops.Report{}, nil
	}

	taken, err := s.Lister.Names(s.CurrentPath)
	if err != nil {
		return fileops.Report{}, err
	}

	var batch fileops.Batch
	for _, clip := range s.Clipboard {
		name := fileops.FreeName(filepath.Base(clip.Path), taken)
		taken[name] = true

		dest := filepath.Join(s.CurrentPath, name)
		if clip.Cut {
			batch.Move(clip.Path, dest)
		} else {
			batch.Copy(clip.Path, dest)
		}
	}

	report := batch.Run()
	for _, res := range report.Results {
		if res.Err == nil && res.Kind == fileops.OpMove {
			s.Selected.Remove(res.Source)
		}
	}
	logger.Info("pasted %d of %d entries into %s", report.Succeeded(), len(report.Results), s.CurrentPath)

	return report, errors.Join(report.Err(), s.Reload())
}

// Delete removes the selection, or the cursor entry when nothing is
// selected, recursively
func (s *State) Delete() (fileops.Report, error) {
	paths := s.targets()
	if len(paths) == 0 {
		return fileops.Report{}, nil
	}

	var batch fileops.Batch
	for _, p := range paths {
		batch.Remove(p)
	}

	report := batch.Run()
	for _, res := range report.Results {
		if res.Err == nil {
			s.Selected.Remove(res.Source)
		}
	}
	logger.Info("deleted %d of %d entries in %s", report.Succeeded(), len(report.Results), s.CurrentPath)

	return report, errors.Join(report.Err(), s.Reload())
}
