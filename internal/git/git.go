// Package git annotates a listing with the branch and working tree changes of
// the repository it lives in.
package git

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/LFroesch/burrow/internal/logger"
)

// lookupTimeout bounds every git invocation so a slow repository can't stall
// the UI
const lookupTimeout = 500 * time.Millisecond

// Status is the git state of a directory. The zero value means "not a repo".
type Status struct {
	Branch   string
	Root     string
	Modified map[string]bool
}

// InRepo reports whether the directory belongs to a git work tree
func (s Status) InRepo() bool {
	return s.Root != ""
}

// IsModified reports whether path, or anything below it, has changes
func (s Status) IsModified(path string) bool {
	return s.Modified[filepath.Clean(path)]
}

// Lookup returns the git status of dir. Any failure, including git missing
// from PATH, yields the zero Status.
func Lookup(ctx context.Context, dir string) Status {
	if _, err := exec.LookPath("git"); err != nil {
		return Status{}
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	root, err := run(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil || root == "" {
		return Status{}
	}

	st := Status{
		Root:     root,
		Branch:   branch(ctx, dir),
		Modified: make(map[string]bool),
	}

	out, err := run(ctx, dir, "status", "--porcelain")
	if err != nil {
		logger.Debug("git status in %s: %v", dir, err)
		return st
	}
	for _, line := range strings.Split(out, "\n") {
		if path := parsePorcelain(line); path != "" {
			st.markModified(filepath.Join(root, filepath.FromSlash(path)))
		}
	}
	return st
}

// markModified flags path and its ancestors up to the repository root, so a
// directory shows as changed when anything inside it is
func (s Status) markModified(path string) {
	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		s.Modified[p] = true
		if p == s.Root || p == filepath.Dir(p) {
			return
		}
	}
}

// parsePorcelain extracts the path from one `git status --porcelain` line.
// Renames report the new name.
func parsePorcelain(line string) string {
	if len(line) < 4 {
		return ""
	}
	path := strings.TrimSpace(line[3:])
	if i := strings.Index(path, " -> "); i >= 0 {
		path = path[i+len(" -> "):]
	}
	path = strings.Trim(path, `"`)
	return strings.TrimSuffix(path, "/")
}

// branch returns the checked out branch, which also works before the first
// commit. A detached HEAD gives "".
func branch(ctx context.Context, dir string) string {
	name, err := run(ctx, dir, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		return ""
	}
	return name
}

func run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
