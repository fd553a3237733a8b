// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aeondiff/aeondiff/internal/artifact"
)

var (
	browseTitleStyle = lipgloss.NewStyle().Bold(true)
	addedLineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	markerLineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Browse opens an interactive browser over the combined report: a file list
// on the first screen, the selected file's hunks in a scrolling viewport on
// the second.
func Browse(report artifact.CombinedDiff) error {
	p := tea.NewProgram(browseModel{files: report.Files}, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type browseModel struct {
	files   []artifact.FileEntry
	cursor  int
	showing bool
	vp      viewport.Model
	width   int
	height  int
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 2
		return m, nil

	case tea.KeyMsg:
		if m.showing {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "esc", "backspace":
				m.showing = false
				return m, nil
			}
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.files)-1 {
				m.cursor++
			}
		case "enter", " ":
			if len(m.files) > 0 {
				m.showing = true
				m.vp = viewport.New(m.width, m.height-2)
				m.vp.SetContent(renderHunks(m.files[m.cursor]))
			}
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	if len(m.files) == 0 {
		return "No changed files in this report.\n\nQ/ESCAPE: quit\n"
	}

	if m.showing {
		title := browseTitleStyle.Render(m.files[m.cursor].RelativePath)
		return title + "\n" + m.vp.View() + "\nESC: back, Q: quit\n"
	}

	s := browseTitleStyle.Render("Changed files:") + "\n\n"
	for i, f := range m.files {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s += fmt.Sprintf("%s %s (%d hunks)\n", cursor, f.RelativePath, len(f.Results.Hunks))
	}
	return s + "\nENTER: view hunks, Q/ESCAPE: quit\n"
}

// renderHunks colorizes the hunks of one file for the viewport.
func renderHunks(entry artifact.FileEntry) string {
	if len(entry.Results.Hunks) == 0 {
		return "(byte-level difference only; no line changes)"
	}

	var b strings.Builder
	for _, hunk := range entry.Results.Hunks {
		for _, line := range hunk {
			switch {
			case strings.HasPrefix(line, "@@"):
				b.WriteString(markerLineStyle.Render(line))
			case strings.HasPrefix(line, "+"):
				b.WriteString(addedLineStyle.Render(line))
			case strings.HasPrefix(line, "-"):
				b.WriteString(removedLineStyle.Render(line))
			default:
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
