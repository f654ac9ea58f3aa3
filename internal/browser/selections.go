package browser

import "github.com/LFroesch/burrow/internal/fileops"

// Selections maps a directory to its non-empty set of selected paths.
// A directory with nothing selected has no key.
type Selections struct {
	sets map[string][]string
}

// NewSelections returns an empty Selections
func NewSelections() Selections {
	return Selections{sets: make(map[string][]string)}
}

// Toggle adds path to dir's set, or removes it if already there.
// It returns true when path ends up selected.
func (sel *Selections) Toggle(dir, path string) bool {
	if sel.sets == nil {
		sel.sets = make(map[string][]string)
	}

	set := sel.sets[dir]
	for i, p := range set {
		if p == path {
			set = append(set[:i:i], set[i+1:]...)
			sel.store(dir, set)
			return false
		}
	}

	sel.sets[dir] = append(set, path)
	return true
}

// Remove forgets path and everything below it: matching entries leave every
// set, and sets of directories at or under path are dropped
func (sel *Selections) Remove(path string) {
	for dir, set := range sel.sets {
		if fileops.IsWithin(dir, path) {
			delete(sel.sets, dir)
			continue
		}
		kept := set[:0:0]
		for _, p := range set {
			if !fileops.IsWithin(p, path) {
				kept = append(kept, p)
			}
		}
		sel.store(dir, kept)
	}
}

// Clear drops dir's set
func (sel *Selections) Clear(dir string) {
	delete(sel.sets, dir)
}

// Get returns a copy of dir's set in selection order
func (sel Selections) Get(dir string) []string {
	set := sel.sets[dir]
	if len(set) == 0 {
		return nil
	}
	return append([]string(nil), set...)
}

// Has reports whether path is selected in dir
func (sel Selections) Has(dir, path string) bool {
	for _, p := range sel.sets[dir] {
		if p == path {
			return true
		}
	}
	return false
}

// Dirs returns how many directories have a selection
func (sel Selections) Dirs() int {
	return len(sel.sets)
}

// Contains reports whether dir has a selection at all
func (sel Selections) Contains(dir string) bool {
	_, ok := sel.sets[dir]
	return ok
}

func (sel *Selections) store(dir string, set []string) {
	if len(set) == 0 {
		delete(sel.sets, dir)
		return
	}
	sel.sets[dir] = set
}
