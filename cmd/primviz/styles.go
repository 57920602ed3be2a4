package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles renders CLI output; every method is the identity when color is off.
type styles struct {
	on     bool
	header lipgloss.Style
	edge   lipgloss.Style
	total  lipgloss.Style
	fail   lipgloss.Style
}

func newStyles(color bool) styles {
	return styles{
		on:     color,
		header: lipgloss.NewStyle().Bold(true),
		edge:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		total:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		fail:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (s styles) render(st lipgloss.Style, text string) string {
	if !s.on {
		return text
	}

	return st.Render(text)
}

func (s styles) failure(text string) string { return s.render(s.fail, text) }

// logLines styles a build log: header, edge lines, then the total.
func (s styles) logLines(lines []string) string {
	var b strings.Builder
	for i, line := range lines {
		switch {
		case i == 0:
			b.WriteString(s.render(s.header, line))
		case strings.HasPrefix(line, "Adding edge"):
			b.WriteString(s.render(s.edge, line))
		case strings.HasPrefix(line, "Total weight"):
			b.WriteString(s.render(s.total, line))
		default:
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
