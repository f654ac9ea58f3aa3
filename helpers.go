package main

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skratchdot/open-golang/open"

	"github.com/LFroesch/burrow/internal/logger"
)

// Editors tried in order when none is configured
var fallbackEditors = []string{"nvim", "vim", "vi", "nano"}

// lookPath is swapped out in tests
var lookPath = exec.LookPath

// resolveEditor returns the configured editor, or the first fallback found
// on PATH
func resolveEditor(configured string) (string, error) {
	candidates := fallbackEditors
	if configured != "" {
		candidates = append([]string{configured}, fallbackEditors...)
	}

	for _, editor := range candidates {
		if _, err := lookPath(editor); err == nil {
			return editor, nil
		}
	}
	return "", fmt.Errorf("no editor found (tried %v)", candidates)
}

// editFile hands the terminal to the editor until it exits
func (m *model) editFile(path string) tea.Cmd {
	editor, err := resolveEditor(m.config.Editor)
	if err != nil {
		m.setStatus("%v", err)
		return nil
	}

	logger.Info("editing %s with %s", path, editor)
	c := exec.Command(editor, path)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return editorFinishedMsg{path: path, err: err}
	})
}

// openFile opens path with the system default application
func (m *model) openFile(path string) tea.Cmd {
	return func() tea.Msg {
		if err := open.Start(path); err != nil {
			return fileOpenResultMsg{
				success: false,
				message: fmt.Sprintf("Failed to open: %v", err),
				path:    path,
			}
		}
		return fileOpenResultMsg{
			success: true,
			message: fmt.Sprintf("Opened %s", filepath.Base(path)),
			path:    path,
		}
	}
}

func (m *model) copyPath(path string) {
	if err := clipboard.WriteAll(path); err != nil {
		m.setStatus("Failed to copy: %v", err)
		return
	}
	m.setStatus("Copied: %s", path)
}
