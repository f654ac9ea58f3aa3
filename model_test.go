package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LFroesch/burrow/internal/browser"
	"github.com/LFroesch/burrow/internal/config"
)

func newTestModel(t *testing.T, paths ...string) (*model, string) {
	t.Helper()
	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, p)
		if p[len(p)-1] == '/' {
			require.NoError(t, os.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, os.WriteFile(full, []byte(p), 0644))
	}

	st, err := browser.New(root, browser.Options{LaunchDir: root})
	require.NoError(t, err)

	m := newModel(st, config.Default())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, root
}

func press(m *model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typeText(m *model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestWindowSizeReachesState(t *testing.T) {
	m, _ := newTestModel(t, "a")
	assert.Equal(t, browser.Screen{Width: 100, Height: 30}, m.state.Screen)
}

func TestNavigationKeys(t *testing.T) {
	m, root := newTestModel(t, "a/", "b/", "c")

	press(m, "j")
	assert.Equal(t, 1, m.state.Cursor)

	press(m, "l")
	assert.Equal(t, filepath.Join(root, "b"), m.state.CurrentPath)

	press(m, "h")
	assert.Equal(t, root, m.state.CurrentPath)
	assert.Equal(t, 1, m.state.Cursor)

	press(m, "G")
	assert.Equal(t, 2, m.state.Cursor)
	press(m, "g")
	assert.Equal(t, 0, m.state.Cursor)
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t, "a")
	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestCommandLineMkdir(t *testing.T) {
	m, root := newTestModel(t, "a")

	press(m, ":")
	assert.Equal(t, modeCommand, m.mode)

	typeText(m, "mkdir made")
	press(m, "enter")

	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, "created made", m.statusMsg)
	info, err := os.Stat(filepath.Join(root, "made"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCommandLineErrorGoesToStatus(t *testing.T) {
	m, _ := newTestModel(t, "a")

	press(m, ":")
	typeText(m, "bogus")
	press(m, "enter")

	assert.Equal(t, modeNormal, m.mode)
	assert.Contains(t, m.statusMsg, "not a valid command")
}

func TestCommandLineEscCancels(t *testing.T) {
	m, root := newTestModel(t, "a")

	press(m, ":")
	typeText(m, "mkdir nope")
	press(m, "esc")

	assert.Equal(t, modeNormal, m.mode)
	_, err := os.Stat(filepath.Join(root, "nope"))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	m, root := newTestModel(t, "a", "b")

	press(m, "D")
	assert.Equal(t, modeConfirmDelete, m.mode)
	press(m, "n")
	assert.Equal(t, modeNormal, m.mode)
	assert.FileExists(t, filepath.Join(root, "a"))

	press(m, "D", "y")
	assert.Equal(t, modeNormal, m.mode)
	assert.NoFileExists(t, filepath.Join(root, "a"))
	assert.Len(t, m.state.ChildFiles, 1)
}

func TestYankPasteKeys(t *testing.T) {
	m, root := newTestModel(t, "dst/", "f")

	press(m, "j", "y")
	require.Len(t, m.state.Clipboard, 1)

	press(m, "g", "l", "p")
	assert.FileExists(t, filepath.Join(root, "dst", "f"))
	assert.FileExists(t, filepath.Join(root, "f"))
}

func TestSelectionKeys(t *testing.T) {
	m, _ := newTestModel(t, "a", "b", "c")

	press(m, " ", " ")
	assert.Len(t, m.state.SelectedPaths(), 2)
	assert.Equal(t, 2, m.state.Cursor)

	press(m, "esc")
	assert.Empty(t, m.state.SelectedPaths())
}

func TestFailedPasteShowsErrorDialog(t *testing.T) {
	m, _ := newTestModel(t, "a/")

	// Cut a directory and paste it into itself
	press(m, "d", "l", "p")
	assert.Equal(t, modeErrorDialog, m.mode)
	assert.NotEmpty(t, m.errorDetails)

	press(m, "x")
	assert.Equal(t, modeNormal, m.mode)
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, "a")

	press(m, "?")
	assert.Equal(t, modeHelp, m.mode)
	assert.Contains(t, m.View(), "mkdir")

	press(m, "?")
	assert.Equal(t, modeNormal, m.mode)
}

func TestToggleHiddenKey(t *testing.T) {
	m, _ := newTestModel(t, ".hidden", "shown")
	require.Len(t, m.state.ChildFiles, 1)

	press(m, ".")
	assert.Len(t, m.state.ChildFiles, 2)
	assert.True(t, m.state.ShowHidden)
}

func TestViewRendersListing(t *testing.T) {
	m, _ := newTestModel(t, "alpha.txt", "beta/")

	out := m.View()
	assert.Contains(t, out, "alpha.txt")
	assert.Contains(t, out, "beta/")
	assert.Contains(t, out, "1/2")
	// File rows carry their size
	assert.Contains(t, out, "9 B")
}

func TestViewEmptyDirectory(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Contains(t, m.View(), "empty")

	// Every action is a no-op on an empty listing
	press(m, "j", "l", " ", "y", "D", "p")
	assert.Equal(t, modeNormal, m.mode)
	assert.Empty(t, m.state.Clipboard)
}

func TestEnterOnFileStartsEditor(t *testing.T) {
	lookPath = func(file string) (string, error) { return "/usr/bin/" + file, nil }
	t.Cleanup(func() { lookPath = exec.LookPath })

	m, _ := newTestModel(t, "notes.txt")
	cmd := press(m, "enter")
	assert.NotNil(t, cmd)
}

func TestResolveEditor(t *testing.T) {
	t.Cleanup(func() { lookPath = exec.LookPath })

	available := map[string]bool{"vim": true, "nano": true}
	lookPath = func(file string) (string, error) {
		if available[file] {
			return "/usr/bin/" + file, nil
		}
		return "", errors.New("not found")
	}

	got, err := resolveEditor("")
	require.NoError(t, err)
	assert.Equal(t, "vim", got)

	got, err = resolveEditor("nano")
	require.NoError(t, err)
	assert.Equal(t, "nano", got)

	got, err = resolveEditor("emacs")
	require.NoError(t, err)
	assert.Equal(t, "vim", got)

	available = map[string]bool{}
	_, err = resolveEditor("")
	assert.Error(t, err)
}

func TestEditorFinishedReloads(t *testing.T) {
	m, root := newTestModel(t, "a")
	require.NoError(t, os.WriteFile(filepath.Join(root, "b"), nil, 0644))

	m.Update(editorFinishedMsg{path: filepath.Join(root, "a")})
	assert.Len(t, m.state.ChildFiles, 2)

	m.Update(editorFinishedMsg{path: filepath.Join(root, "a"), err: errors.New("exit status 1")})
	assert.Contains(t, m.statusMsg, "exit status 1")
}

func TestDisplayResult(t *testing.T) {
	assert.Equal(t, "created x", displayResult("created x", "/home/u"))
	assert.Equal(t, "cd docs", displayResult("/home/u/docs", "/home/u"))
	assert.Equal(t, "cd /etc", displayResult("/etc", "/home/u"))
}
