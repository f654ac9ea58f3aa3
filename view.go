package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LFroesch/burrow/internal/fileops"
	"github.com/LFroesch/burrow/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	activePaneStyle = paneStyle.
			BorderForeground(lipgloss.Color("99"))

	dirStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	fileStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	hiddenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Background(lipgloss.Color("237")).Bold(true)
	gitMarkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()

	var mainContent string
	switch m.mode {
	case modeErrorDialog:
		mainContent = m.renderErrorDialog()
	case modeConfirmDelete:
		mainContent = m.renderConfirmDeleteView()
	case modeHelp:
		mainContent = m.renderHelpView()
	default:
		parentWidth := m.config.ParentPaneWidth
		if parentWidth > m.getSafeWidth()/2 {
			parentWidth = m.getSafeWidth() / 2
		}
		mainWidth := m.getSafeWidth() - parentWidth
		mainContent = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderParentPane(parentWidth),
			m.renderMainPane(mainWidth),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		mainContent,
		m.renderStatusBar(),
		m.renderBottomLine(),
	)
}

func (m *model) renderHeader() string {
	path := m.state.CurrentPath
	if m.git.Branch != "" {
		path += fmt.Sprintf("  [%s]", m.git.Branch)
	}
	return titleStyle.Render(utils.Truncate("🐇 "+path, m.getSafeWidth()-2))
}

// renderParentPane lists the parent directory with the current directory
// highlighted
func (m *model) renderParentPane(width int) string {
	height := m.getContentHeight()
	innerWidth := width - 2

	if _, ok := m.state.ParentDirectory(); !ok {
		return paneStyle.Width(innerWidth).Height(height).Render(dimStyle.Render("/"))
	}

	entries := m.state.ParentFiles

	current := fileops.IndexOf(entries, m.state.CurrentPath)
	offset := 0
	if current >= height {
		offset = current - height + 1
	}

	var lines []string
	for i := offset; i < len(entries) && i < offset+height; i++ {
		lines = append(lines, m.renderEntry(entries[i], innerWidth, i == current, false))
	}
	return paneStyle.Width(innerWidth).Height(height).Render(strings.Join(lines, "\n"))
}

func (m *model) renderMainPane(width int) string {
	height := m.getContentHeight()
	innerWidth := width - 2
	st := m.state

	if len(st.ChildFiles) == 0 {
		return activePaneStyle.Width(innerWidth).Height(height).Render(dimStyle.Render("empty"))
	}

	var lines []string
	end := m.scrollOffset + height
	for i := m.scrollOffset; i < len(st.ChildFiles) && i < end; i++ {
		entry := st.ChildFiles[i]
		selected := st.Selected.Has(st.CurrentPath, entry.Path)
		lines = append(lines, m.renderEntry(entry, innerWidth, i == st.Cursor, selected))
	}
	return activePaneStyle.Width(innerWidth).Height(height).Render(strings.Join(lines, "\n"))
}

// renderEntry draws one listing row: marker, icon, name and, for files, the size
func (m *model) renderEntry(e fileops.Entry, width int, isCursor, selected bool) string {
	marker := "  "
	if selected {
		marker = "▌ "
	}
	if m.git.IsModified(e.Path) {
		marker = marker[:len(marker)-1] + gitMarkStyle.Render("●")
	}

	icon := utils.GetFileIcon(e.Name, e.IsDir, e.IsSymlink)
	name := e.Name
	if e.IsDir {
		name += "/"
	}

	size := ""
	if !e.IsDir && width > 30 {
		size = utils.FormatFileSizeColored(e.Size)
	}

	nameWidth := width - lipgloss.Width(marker) - lipgloss.Width(icon) - 1 - lipgloss.Width(size) - 1
	name = utils.Truncate(name, utils.Max(nameWidth, 1))

	var style lipgloss.Style
	switch {
	case selected:
		style = selectedStyle
	case e.IsDir:
		style = dirStyle
	case m.state.Lister.IsHidden(e.Name):
		style = hiddenStyle
	default:
		style = fileStyle
	}
	if isCursor {
		style = style.Inherit(cursorStyle)
	}

	row := icon + " " + style.Render(name)
	if size != "" {
		pad := width - lipgloss.Width(marker) - lipgloss.Width(row) - lipgloss.Width(size)
		row += strings.Repeat(" ", utils.Max(pad, 1)) + size
	}
	return marker + row
}

func (m *model) renderStatusBar() string {
	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("240")).
		Padding(0, 1).
		Width(m.getSafeWidth())

	st := m.state
	var parts []string

	if len(st.ChildFiles) > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d", st.Cursor+1, len(st.ChildFiles)))
	}
	if n := len(st.SelectedPaths()); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if n := len(st.Clipboard); n > 0 {
		op := "yanked"
		if st.Clipboard[0].Cut {
			op = "cut"
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, op))
	}
	if st.ShowHidden {
		parts = append(parts, "hidden shown")
	}
	if m.statusMsg != "" {
		parts = append(parts, m.statusMsg)
	}

	statusText := strings.Join(parts, " | ")
	rightSide := "? for help"

	totalWidth := m.getSafeWidth() - 2 // Account for padding
	padding := totalWidth - lipgloss.Width(statusText) - lipgloss.Width(rightSide)
	if padding < 1 {
		statusText = utils.Truncate(statusText, utils.Max(totalWidth-lipgloss.Width(rightSide)-1, 0))
		padding = 1
	}
	statusText += strings.Repeat(" ", padding) + rightSide

	return statusStyle.Render(statusText)
}

// renderBottomLine is the command line while typing one, short help otherwise
func (m *model) renderBottomLine() string {
	if m.mode == modeCommand {
		return m.commandInput.View()
	}
	return m.help.View(m.keys)
}

func (m *model) renderHelpView() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("99")).
		Padding(1, 2)

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Render("Keys")
	commands := strings.Join([]string{
		":mkdir NAME...   create directories (relative to the launch directory)",
		":find QUERY      fuzzy-jump to an entry",
		":cd DIR          change directory (~ expands to home)",
	}, "\n")

	m.help.ShowAll = true
	keys := m.help.View(m.keys)
	m.help.ShowAll = false

	body := title + "\n\n" + keys + "\n\n" +
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Render("Commands") + "\n\n" +
		commands + "\n\n" + dimStyle.Render("esc or ? to close")

	return lipgloss.Place(m.getSafeWidth(), m.getContentHeight()+2, lipgloss.Center, lipgloss.Center, box.Render(body))
}

func (m *model) renderConfirmDeleteView() string {
	dialogStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("214")).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))

	var names []string
	for i, p := range m.pendingDelete {
		if i == 5 {
			names = append(names, fmt.Sprintf("... and %d more", len(m.pendingDelete)-5))
			break
		}
		names = append(names, "  "+filepath.Base(p))
	}

	title := titleStyle.Render(fmt.Sprintf("Delete %d item(s)?", len(m.pendingDelete)))
	body := title + "\n\n" + strings.Join(names, "\n") + "\n\n" + dimStyle.Render("y: delete | n/esc: cancel")

	return lipgloss.Place(m.getSafeWidth(), m.getContentHeight()+2, lipgloss.Center, lipgloss.Center, dialogStyle.Render(body))
}

func (m *model) renderErrorDialog() string {
	dialogWidth := utils.Max(m.getSafeWidth()-10, 30)
	if dialogWidth > 70 {
		dialogWidth = 70
	}

	dialogStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("196")).
		Padding(1, 2).
		Width(dialogWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("196"))

	contentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(1, 0)

	title := titleStyle.Render("❌ " + m.errorMsg)
	content := contentStyle.Render(m.errorDetails)
	prompt := dimStyle.Render("Press any key to continue")

	dialog := dialogStyle.Render(title + "\n" + content + "\n" + prompt)
	return lipgloss.Place(m.getSafeWidth(), m.getContentHeight()+2, lipgloss.Center, lipgloss.Center, dialog)
}
