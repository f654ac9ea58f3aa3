package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/burrow/internal/command"
	"github.com/LFroesch/burrow/internal/logger"
)

func (m *model) Init() tea.Cmd {
	return tea.SetWindowTitle("burrow")
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Clear expired status messages
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.state.Screen.Width = msg.Width
		m.state.Screen.Height = msg.Height
		m.help.Width = msg.Width
		m.commandInput.Width = msg.Width - 4
		m.ensureCursorVisible()
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			logger.Warn("editor exited for %s: %v", msg.path, msg.err)
			m.setStatus("editor: %v", msg.err)
		}
		if err := m.state.Reload(); err != nil {
			m.showError("Cannot reload directory", err)
		}
		m.refreshGit(true)
		return m, nil

	case fileOpenResultMsg:
		if !msg.success {
			logger.Warn("open %s: %s", msg.path, msg.message)
		}
		m.setStatus("%s", msg.message)
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeErrorDialog:
			// Any key dismisses error dialog
			m.mode = modeNormal
			return m, nil
		case modeHelp:
			return m.updateHelp(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modeCommand:
			return m.updateCommand(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	if m.mode == modeCommand {
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.state

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		st.Down()

	case key.Matches(msg, m.keys.Up):
		st.Up()

	case key.Matches(msg, m.keys.Top):
		st.Top()

	case key.Matches(msg, m.keys.Bottom):
		st.Bottom()

	case key.Matches(msg, m.keys.In):
		editPath, err := st.Enter()
		if err != nil {
			m.showError("Cannot open directory", err)
			return m, nil
		}
		if editPath != "" {
			m.ensureCursorVisible()
			return m, m.editFile(editPath)
		}
		m.scrollOffset = 0
		m.refreshGit(false)

	case key.Matches(msg, m.keys.Out):
		if err := st.Leave(); err != nil {
			m.showError("Cannot open parent directory", err)
			return m, nil
		}
		m.scrollOffset = 0
		m.refreshGit(false)

	case key.Matches(msg, m.keys.ToggleHidden):
		if err := st.ToggleHidden(); err != nil {
			m.showError("Cannot reload directory", err)
			return m, nil
		}
		if st.ShowHidden {
			m.setStatus("Showing hidden files")
		} else {
			m.setStatus("Hiding hidden files")
		}

	case key.Matches(msg, m.keys.Select):
		st.ToggleSelect()

	case key.Matches(msg, m.keys.ClearSelect):
		st.Selected.Clear(st.CurrentPath)

	case key.Matches(msg, m.keys.Yank), key.Matches(msg, m.keys.Cut):
		cut := key.Matches(msg, m.keys.Cut)
		st.Yank(cut)
		if len(st.Clipboard) > 0 {
			verb := "Yanked"
			if cut {
				verb = "Cut"
			}
			m.setStatus("%s %d item(s)", verb, len(st.Clipboard))
		}

	case key.Matches(msg, m.keys.Paste):
		if len(st.Clipboard) == 0 {
			m.setStatus("Clipboard is empty")
			return m, nil
		}
		report, err := st.Paste()
		m.reportBatch("Paste", report, err)

	case key.Matches(msg, m.keys.Delete):
		targets := st.SelectedPaths()
		if len(targets) == 0 && st.HasCursor() {
			targets = []string{st.CursorPath()}
		}
		if len(targets) == 0 {
			return m, nil
		}
		m.pendingDelete = targets
		m.mode = modeConfirmDelete

	case key.Matches(msg, m.keys.Command):
		m.mode = modeCommand
		m.commandInput.SetValue("")
		return m, m.commandInput.Focus()

	case key.Matches(msg, m.keys.CopyPath):
		if path := st.CursorPath(); path != "" {
			m.copyPath(path)
		}

	case key.Matches(msg, m.keys.Open):
		if path := st.CursorPath(); path != "" {
			return m, m.openFile(path)
		}

	case key.Matches(msg, m.keys.Refresh):
		if err := st.Reload(); err != nil {
			m.showError("Cannot reload directory", err)
			return m, nil
		}
		m.refreshGit(true)
		m.setStatus("Refreshed")

	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
	}

	m.ensureCursorVisible()
	return m, nil
}

func (m *model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		m.mode = modeNormal
		m.pendingDelete = nil
		report, err := m.state.Delete()
		m.reportBatch("Delete", report, err)
		m.ensureCursorVisible()
	case "n", "esc", "q":
		m.mode = modeNormal
		m.pendingDelete = nil
		m.setStatus("Delete cancelled")
	}
	return m, nil
}

func (m *model) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNormal
		m.commandInput.Blur()
		return m, nil

	case tea.KeyEnter:
		line := m.commandInput.Value()
		m.mode = modeNormal
		m.commandInput.Blur()
		m.commandInput.SetValue("")

		prevDir := m.state.CurrentPath
		result, err := command.Run(line, m.state)
		if err != nil {
			logger.Warn("command %q: %v", line, err)
			m.setStatus("%v", err)
			return m, nil
		}
		if m.state.CurrentPath != prevDir {
			m.scrollOffset = 0
		}
		m.refreshGit(true)
		m.ensureCursorVisible()
		m.setStatus("%s", displayResult(result, m.state.StartDir))
		return m, nil
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

func (m *model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit), msg.Type == tea.KeyEsc:
		m.mode = modeNormal
	}
	return m, nil
}

// displayResult shortens absolute paths in command output relative to base
func displayResult(result, base string) string {
	if !filepath.IsAbs(result) {
		return result
	}
	if rel, err := filepath.Rel(base, result); err == nil && !strings.HasPrefix(rel, "..") {
		return fmt.Sprintf("cd %s", rel)
	}
	return fmt.Sprintf("cd %s", result)
}
