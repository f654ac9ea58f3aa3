// Package command parses and runs the line typed after ":".
package command

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/unicode/norm"

	"github.com/LFroesch/burrow/internal/browser"
	"github.com/LFroesch/burrow/internal/fileops"
	"github.com/LFroesch/burrow/internal/logger"
)

var (
	// ErrUnknownCommand is returned for an empty line or an unknown verb
	ErrUnknownCommand = errors.New("not a valid command")
	// ErrMissingArgument is returned when a verb needs arguments it didn't get
	ErrMissingArgument = errors.New("missing argument")
	// ErrNoMatch is returned by find when nothing in the listing matches
	ErrNoMatch = errors.New("no match")
)

// Verb names a command
type Verb string

const (
	MkDir Verb = "mkdir"
	Find  Verb = "find"
	Cd    Verb = "cd"
)

var verbs = map[string]Verb{
	string(MkDir): MkDir,
	string(Find):  Find,
	string(Cd):    Cd,
}

// Command is a parsed command line
type Command struct {
	Verb Verb
	Args []string
}

// Parse splits line on whitespace; the first field is the verb
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrUnknownCommand
	}

	verb, ok := verbs[fields[0]]
	if !ok {
		return Command{}, fmt.Errorf("%q: %w", fields[0], ErrUnknownCommand)
	}

	return Command{Verb: verb, Args: fields[1:]}, nil
}

// Execute applies cmd to s. It returns a short message for the status bar.
func Execute(cmd Command, s *browser.State) (string, error) {
	switch cmd.Verb {
	case MkDir:
		return mkdir(cmd.Args, s)
	case Find:
		return find(cmd.Args, s)
	case Cd:
		return cd(cmd.Args, s)
	default:
		return "", fmt.Errorf("%q: %w", cmd.Verb, ErrUnknownCommand)
	}
}

// Run parses and executes line
func Run(line string, s *browser.State) (string, error) {
	cmd, err := Parse(line)
	if err != nil {
		return "", err
	}
	return Execute(cmd, s)
}

// mkdir creates each argument as a directory. Relative names resolve
// against the working directory burrow was launched from, not the one
// being viewed.
func mkdir(args []string, s *browser.State) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("mkdir: %w", ErrMissingArgument)
	}

	var batch fileops.Batch
	for _, name := range args {
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.LaunchDir, name)
		}
		batch.Mkdir(path)
	}

	report := batch.Run()
	if err := errors.Join(report.Err(), s.Reload()); err != nil {
		return "", err
	}

	logger.Info("mkdir created %d directories", report.Succeeded())
	if len(args) == 1 {
		return fmt.Sprintf("created %s", args[0]), nil
	}
	return fmt.Sprintf("created %d directories", len(args)), nil
}

// find moves the cursor to the entry best matching the query
func find(args []string, s *browser.State) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("find: %w", ErrMissingArgument)
	}
	query := norm.NFC.String(strings.Join(args, " "))

	names := make([]string, len(s.ChildFiles))
	for i, e := range s.ChildFiles {
		names[i] = norm.NFC.String(e.Name)
	}

	matches := fuzzy.Find(query, names)
	if len(matches) == 0 {
		return "", fmt.Errorf("find %q: %w", query, ErrNoMatch)
	}

	s.Cursor = matches[0].Index
	return fmt.Sprintf("found %s", s.ChildFiles[s.Cursor].Name), nil
}

// cd changes directory. Relative paths resolve against the viewed
// directory and a leading "~" expands to the home directory.
func cd(args []string, s *browser.State) (string, error) {
	target := "~"
	if len(args) > 0 {
		target = strings.Join(args, " ")
	}

	if target == "~" || strings.HasPrefix(target, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cd: cannot get home directory: %w", err)
		}
		target = filepath.Join(home, strings.TrimPrefix(target, "~"))
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(s.CurrentPath, target)
	}
	target = filepath.Clean(target)

	if err := s.ChangeDir(target); err != nil {
		return "", err
	}
	return target, nil
}
