// Package tui implements the root Bubble Tea model for zident.
package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/zident/internal/identity"
	"github.com/zarlcorp/zident/internal/registry"
	"github.com/zarlcorp/zident/internal/store"
)

type viewID int

const (
	viewPassword viewID = iota
	viewMenu
	viewGenerate
	viewList
	viewDetail
)

// Model is the root TUI model.
type Model struct {
	version  string
	dataDir  string
	gen      *identity.Generator
	store    *store.Store
	firstRun bool

	// generation options, adjusted from the generate view
	opts identity.Options

	active   viewID
	password passwordModel
	menu     menuModel
	generate generateModel
	list     listModel
	detail   detailModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model. country is the initial generation country.
func New(version, dataDir string, gen *identity.Generator, country registry.Code, firstRun bool) Model {
	return Model{
		version:  version,
		dataDir:  dataDir,
		gen:      gen,
		firstRun: firstRun,
		opts:     identity.Options{Country: country},
		active:   viewPassword,
		password: newPasswordModel(firstRun),
		menu:     newMenuModel(version),
	}
}

func (m Model) Init() tea.Cmd {
	return m.password.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case passwordSubmitMsg:
		return m.openStore(msg.password)

	case navigateMsg:
		return m.navigate(msg)

	case saveIdentityMsg:
		return m.handleSave(msg.identity)

	case deleteIdentityMsg:
		return m.handleDelete(msg.id)

	case viewIdentityMsg:
		m.detail = newDetailModel(msg.identity)
		m.active = viewDetail
		return m, nil

	case toggleFavoriteMsg:
		return m.handleToggleFavorite(msg.id, msg.favorite)

	case cycleCountryMsg:
		m.opts.Country = nextCountry(m.opts.Country)
		m.opts.Region = ""
		return m.regenerate()

	case cycleGenderMsg:
		m.opts.Gender = nextGender(m.opts.Gender)
		return m.regenerate()
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	// password and menu carry their own logo
	switch m.active {
	case viewPassword:
		return m.password.View()
	case viewMenu:
		return m.menu.View()
	}

	var content string
	switch m.active {
	case viewGenerate:
		content = m.generate.View()
	case viewList:
		content = m.list.View()
	case viewDetail:
		content = m.detail.View()
	}

	header := zstyle.RenderHeader("zident", viewTitle(m.active), zstyle.ZburnAccent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewGenerate:
		return "Generate Identity"
	case viewList:
		return "Saved Identities"
	case viewDetail:
		return "Identity Details"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewGenerate:
		return []zstyle.HelpPair{
			{Key: "s", Desc: "save"},
			{Key: "c", Desc: "copy all"},
			{Key: "enter", Desc: "copy field"},
			{Key: "n", Desc: "new"},
			{Key: "t", Desc: "country"},
			{Key: "g", Desc: "gender"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewList:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "view"},
			{Key: "f", Desc: "favorites"},
			{Key: "d", Desc: "delete"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewDetail:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy field"},
			{Key: "c", Desc: "copy all"},
			{Key: "f", Desc: "favorite"},
			{Key: "d", Desc: "delete"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewPassword:
		m.password, cmd = m.password.Update(msg)
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewGenerate:
		m.generate, cmd = m.generate.Update(msg)
	case viewList:
		m.list, cmd = m.list.Update(msg)
	case viewDetail:
		m.detail, cmd = m.detail.Update(msg)
	}

	return m, cmd
}

func (m Model) openStore(password string) (tea.Model, tea.Cmd) {
	if err := os.MkdirAll(m.dataDir, 0o700); err != nil {
		m.password, _ = m.password.Update(passwordErrMsg{
			err: fmt.Errorf("create data dir: %w", err),
		})
		return m, nil
	}

	s, err := store.Open(zfilesystem.NewOSFileSystem(m.dataDir), password)
	if err != nil {
		m.password, _ = m.password.Update(passwordErrMsg{err: err})
		return m, nil
	}

	m.store = s
	return m.navigate(navigateMsg{view: viewMenu})
}

func (m Model) navigate(msg navigateMsg) (tea.Model, tea.Cmd) {
	switch msg.view {
	case viewMenu:
		mm := newMenuModel(m.version)
		if m.store != nil {
			if n, err := m.store.Count(); err == nil {
				mm.identityCount = n
			}
		}
		m.menu = mm
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewGenerate:
		m, cmd := m.regenerate()
		return m, tea.Batch(cmd, tea.ClearScreen)

	case viewList:
		m, cmd := m.loadList(msg.favorites)
		return m, tea.Batch(cmd, tea.ClearScreen)

	case viewDetail:
		m.active = viewDetail
		return m, tea.ClearScreen
	}

	return m, nil
}

// regenerate draws a fresh identity with the current options.
func (m Model) regenerate() (tea.Model, tea.Cmd) {
	id := m.gen.Generate(m.opts)
	m.generate = newGenerateModel(id, m.opts)
	m.active = viewGenerate
	return m, nil
}

func (m Model) loadList(favorites bool) (Model, tea.Cmd) {
	if m.store == nil {
		m.list = newListModel(nil, favorites)
		m.active = viewList
		return m, nil
	}

	ids, err := m.store.List(store.Filter{Favorites: favorites})
	if err != nil {
		// show empty list with error flash
		m.list = newListModel(nil, favorites)
		m.list.flash = "load: " + err.Error()
		m.active = viewList
		return m, clearFlashAfter()
	}

	m.list = newListModel(ids, favorites)
	m.active = viewList
	return m, nil
}

func (m Model) handleSave(id identity.Identity) (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}
	if err := m.store.Save(id); err != nil {
		m.generate.flash = "save: " + err.Error()
		return m, clearFlashAfter()
	}

	m.generate, _ = m.generate.Update(identitySavedMsg{})
	return m, clearFlashAfter()
}

func (m Model) handleDelete(id string) (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}
	if err := m.store.Delete(id); err != nil {
		if m.active == viewDetail {
			m.detail.flash = "delete: " + err.Error()
			return m, clearFlashAfter()
		}
		m.list.flash = "delete: " + err.Error()
		return m, clearFlashAfter()
	}

	m, cmd := m.loadList(m.list.favorites)
	m.list.flash = "deleted"
	return m, tea.Batch(cmd, clearFlashAfter())
}

func (m Model) handleToggleFavorite(id string, favorite bool) (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}
	updated, err := m.store.SetFavorite(id, favorite)
	if err != nil {
		m.detail.flash = "favorite: " + err.Error()
		return m, clearFlashAfter()
	}

	cursor := m.detail.cursor
	m.detail = newDetailModel(updated)
	m.detail.cursor = cursor
	if favorite {
		m.detail.flash = "added to favorites"
	} else {
		m.detail.flash = "removed from favorites"
	}
	return m, clearFlashAfter()
}

// nextCountry cycles through the supported countries in display order.
func nextCountry(c registry.Code) registry.Code {
	codes := registry.Codes()
	code, _ := registry.ParseCode(string(c))
	for i, v := range codes {
		if v == code {
			return codes[(i+1)%len(codes)]
		}
	}
	return codes[0]
}

// nextGender cycles random, male, female.
func nextGender(g identity.Gender) identity.Gender {
	switch g {
	case "":
		return identity.Male
	case identity.Male:
		return identity.Female
	default:
		return ""
	}
}

// Close cleans up resources. Call after the program exits.
func (m Model) Close() {
	if m.store != nil {
		m.store.Close()
	}
}
