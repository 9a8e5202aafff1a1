package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/zident/internal/identity"
)

// listModel displays saved identities in a scrollable list.
type listModel struct {
	identities []identity.Identity
	favorites  bool
	cursor     int
	flash      string
}

// deleteIdentityMsg requests deletion of an identity.
type deleteIdentityMsg struct {
	id string
}

// viewIdentityMsg requests viewing a specific identity.
type viewIdentityMsg struct {
	identity identity.Identity
}

func newListModel(ids []identity.Identity, favorites bool) listModel {
	return listModel{identities: ids, favorites: favorites}
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m listModel) handleKey(msg tea.KeyMsg) (listModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if msg.String() == "f" {
		favorites := !m.favorites
		return m, func() tea.Msg { return navigateMsg{view: viewList, favorites: favorites} }
	}

	if len(m.identities) == 0 {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.identities)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		id := m.identities[m.cursor]
		return m, func() tea.Msg { return viewIdentityMsg{identity: id} }
	}

	if msg.String() == "d" {
		id := m.identities[m.cursor].ID
		return m, func() tea.Msg { return deleteIdentityMsg{id: id} }
	}

	return m, nil
}

func (m listModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(zstyle.ZburnAccent).Bold(true)

	s := "\n"
	if m.favorites {
		s += "  " + zstyle.Subtitle.Render("favorites") + "\n\n"
	}

	if len(m.identities) == 0 {
		empty := "no saved identities"
		if m.favorites {
			empty = "no favorites"
		}
		s += "  " + zstyle.MutedText.Render(empty) + "\n"
		s += "\n"
		s += m.flashLine()
		return s
	}

	for i, id := range m.identities {
		star := " "
		if id.Favorite {
			star = "*"
		}
		line := fmt.Sprintf("%s %-2s %s %s", star, id.Country, pad(truncate(id.Name, 20), 20), truncate(id.Email, 32))

		if i == m.cursor {
			s += "  " + accentStyle.Render("▸") + " " + line + "\n"
		} else {
			s += "    " + line + "\n"
		}
	}

	s += "\n"
	s += m.flashLine()
	return s
}

// flashLine always reserves a line to prevent layout shift.
func (m listModel) flashLine() string {
	if m.flash != "" {
		return "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	}
	return "\n"
}

// truncate shortens s to max display cells, counting wide characters as
// two cells.
func truncate(s string, max int) string {
	if lipgloss.Width(s) <= max {
		return s
	}
	var out []rune
	w := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if w+rw > max-1 {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out) + "…"
}

// pad right-pads s with spaces to width display cells.
func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + fmt.Sprintf("%*s", n, "")
	}
	return s
}
