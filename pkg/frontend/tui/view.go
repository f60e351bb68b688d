package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model.
func (m Model) View() string {
	s := m.app.Snapshot()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Todos"))
	b.WriteString("\n\n")

	if m.mode == modeAdd {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(mutedStyle.Render("> " + placeholderOr(s.Input, m.input.Placeholder)))
	}
	b.WriteString("\n\n")

	if len(s.Todos) == 0 {
		b.WriteString(mutedStyle.Render(EmptyListText))
		b.WriteString("\n")
	}
	for i, t := range s.Todos {
		prefix := "  "
		if i == m.cursor && m.mode == modeBrowse {
			prefix = selectedStyle.Render("> ")
		}
		text := t.Todo
		if m.mode == modeEdit && s.Editing(t.ID) {
			text = m.draft.View()
		}
		fmt.Fprintf(&b, "%s%s %s\n", prefix, idStyle.Render(fmt.Sprintf("#%d", t.ID)), text)
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("request failed: " + m.err.Error()))
		b.WriteString("\n")
	}

	if m.alert != "" {
		b.WriteString("\n")
		b.WriteString(alertStyle.Render(m.alert + "\n" + mutedStyle.Render("enter/esc to dismiss")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.mode == modeBrowse {
		b.WriteString(m.help.ShortHelpView(m.keys.browseHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.inputHelp()))
	}

	return panelStyle.Render(b.String())
}

func placeholderOr(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
