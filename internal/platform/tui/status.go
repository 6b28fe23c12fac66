package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// statusView renders the status line and the short help line.
func (m Model) statusView() string {
	if m.prompting {
		return m.styles.Status.Width(m.width).Render(m.prompt.View()) + "\n" +
			m.styles.Help.Render("enter apply · esc cancel")
	}

	st := m.engine.Stats()
	parts := []string{
		m.styles.StatusKey.Render(" gen ") + m.styles.Status.Render(fmt.Sprint(st.Generation)),
		m.styles.StatusKey.Render(" pop ") + m.styles.Status.Render(fmt.Sprint(st.Population)),
		m.styles.StatusKey.Render(" grid ") + m.styles.Status.Render(fmt.Sprintf("%dx%d", st.Dims.Columns, st.Dims.Rows)),
		m.styles.StatusKey.Render(" rule ") + m.styles.Status.Render(m.ruleLabel(st.Rule)),
		m.styles.StatusKey.Render(" frame ") + m.styles.Status.Render(fmt.Sprintf("%dms", st.FrameLengthMs)),
		m.styles.StatusKey.Render(" brush ") + m.styles.Status.Render(fmt.Sprintf("%s/%d", st.Brush.Mode, st.Brush.Width)),
	}
	line := strings.Join(parts, m.styles.Status.Render(" "))
	if st.Paused {
		line = m.styles.Paused.Render(" PAUSED ") + line
	}
	if m.message != "" {
		line += m.styles.Message.Render(" " + m.message)
	}

	if w := lipgloss.Width(line); w < m.width {
		line += m.styles.Status.Render(strings.Repeat(" ", m.width-w))
	}
	return line + "\n" + m.help.View(m.keys)
}

func (m Model) ruleLabel(rule string) string {
	if m.preset == "" {
		return rule
	}
	return m.preset + " " + rule
}

// helpView renders the full key help in place of the board.
func (m Model) helpView() string {
	title := m.styles.StatusKey.Render(" Game of Life ")
	body := m.help.View(m.keys)
	hint := m.styles.Help.Render("prompt: " + promptHelp)
	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", hint)
}
