package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/zident/internal/identity"
)

// toggleFavoriteMsg asks the root to persist a new favorite flag.
type toggleFavoriteMsg struct {
	id       string
	favorite bool
}

// detailModel displays all fields of a saved identity.
type detailModel struct {
	identity identity.Identity
	fields   []identityField
	cursor   int
	flash    string
}

func newDetailModel(id identity.Identity) detailModel {
	fields := identityFields(id)
	if len(id.Tags) > 0 {
		fields = append(fields, identityField{label: "tags", value: strings.Join(id.Tags, ", "), section: true})
	}
	if id.Notes != "" {
		fields = append(fields, identityField{label: "notes", value: id.Notes, section: len(id.Tags) == 0})
	}
	return detailModel{identity: id, fields: fields}
}

func (m detailModel) Init() tea.Cmd {
	return nil
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m detailModel) handleKey(msg tea.KeyMsg) (detailModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewList} }
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		m.flash = copyFlash(m.fields[m.cursor].value, "copied!")
		return m, clearFlashAfter()
	}

	switch msg.String() {
	case "c":
		m.flash = copyFlash(fieldsText(m.fields), "copied all!")
		return m, clearFlashAfter()

	case "f":
		id, fav := m.identity.ID, !m.identity.Favorite
		return m, func() tea.Msg { return toggleFavoriteMsg{id: id, favorite: fav} }

	case "d":
		id := m.identity.ID
		return m, func() tea.Msg { return deleteIdentityMsg{id: id} }
	}

	return m, nil
}

func (m detailModel) View() string {
	name := m.identity.Name
	if m.identity.Favorite {
		name += " *"
	}
	s := "\n  " + zstyle.Subtitle.Render(name) + "\n"

	s += renderFields(m.fields, m.cursor)
	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
