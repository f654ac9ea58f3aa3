package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/burrow/internal/browser"
	"github.com/LFroesch/burrow/internal/config"
	"github.com/LFroesch/burrow/internal/fileops"
	"github.com/LFroesch/burrow/internal/git"
	"github.com/LFroesch/burrow/internal/logger"
)

// Editor exited; the file may have changed
type editorFinishedMsg struct {
	path string
	err  error
}

// File open result message
type fileOpenResultMsg struct {
	success bool
	message string
	path    string
}

// Terminal dimension constants
const (
	minTerminalWidth  = 40 // Minimum usable width
	minTerminalHeight = 10 // Minimum usable height
	uiOverhead        = 5  // Header (1) + status (1) + help/command line (1) + borders (2)
)

type mode int

const (
	modeNormal mode = iota
	modeCommand
	modeConfirmDelete
	modeHelp
	modeErrorDialog
)

type model struct {
	mode   mode
	state  *browser.State
	config *config.Config
	keys   keyMap
	help   help.Model

	commandInput textinput.Model

	git    git.Status
	gitDir string

	width        int
	height       int
	scrollOffset int

	statusMsg    string
	statusExpiry time.Time
	errorMsg     string
	errorDetails string

	// Paths pending confirmation in modeConfirmDelete
	pendingDelete []string
}

func newModel(st *browser.State, cfg *config.Config) *model {
	ti := textinput.New()
	ti.Prompt = ":"
	ti.Placeholder = "mkdir NAME | find QUERY | cd DIR"
	ti.CharLimit = 1024

	h := help.New()
	h.ShowAll = false

	m := &model{
		mode:         modeNormal,
		state:        st,
		config:       cfg,
		keys:         defaultKeyMap(),
		help:         h,
		commandInput: ti,
	}
	m.refreshGit(true)
	return m
}

// Helper methods for safe dimensions
func (m *model) getSafeWidth() int {
	if m.width < minTerminalWidth {
		return minTerminalWidth
	}
	return m.width
}

func (m *model) getSafeHeight() int {
	if m.height < minTerminalHeight {
		return minTerminalHeight
	}
	return m.height
}

// getContentHeight returns the number of listing rows that fit in a pane
func (m *model) getContentHeight() int {
	availableHeight := m.getSafeHeight() - uiOverhead
	if availableHeight < 1 {
		availableHeight = 1
	}
	return availableHeight
}

func (m *model) statusTimeout() time.Duration {
	return time.Duration(m.config.StatusTimeoutMs) * time.Millisecond
}

func (m *model) setStatus(format string, args ...interface{}) {
	m.statusMsg = fmt.Sprintf(format, args...)
	m.statusExpiry = time.Now().Add(m.statusTimeout())
}

func (m *model) showError(title string, err error) {
	logger.Error("%s: %v", title, err)
	m.errorMsg = title
	m.errorDetails = err.Error()
	m.mode = modeErrorDialog
}

// refreshGit re-reads the repository status when the directory changed or
// force is set
func (m *model) refreshGit(force bool) {
	if m.gitDir == m.state.CurrentPath && !force {
		return
	}
	m.gitDir = m.state.CurrentPath
	m.git = git.Lookup(context.Background(), m.gitDir)
}

// reportBatch surfaces the outcome of a paste or delete
func (m *model) reportBatch(action string, report fileops.Report, err error) {
	m.refreshGit(true)
	if err != nil {
		m.showError(fmt.Sprintf("%s: %d of %d failed", action, len(report.Failed()), len(report.Results)), err)
		return
	}
	if len(report.Results) == 0 {
		return
	}
	m.setStatus("%s: %d done", action, report.Succeeded())
}

// ensureCursorVisible keeps the cursor inside the visible window
func (m *model) ensureCursorVisible() {
	height := m.getContentHeight()
	cursor := m.state.Cursor

	if cursor < m.scrollOffset {
		m.scrollOffset = cursor
	}
	if cursor >= m.scrollOffset+height {
		m.scrollOffset = cursor - height + 1
	}

	maxOffset := len(m.state.ChildFiles) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.scrollOffset > maxOffset {
		m.scrollOffset = maxOffset
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

var _ tea.Model = (*model)(nil)
