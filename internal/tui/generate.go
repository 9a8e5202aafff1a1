package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/zident/internal/identity"
)

// identityField is a labeled value for display and copying. section marks
// the first field of a new display group.
type identityField struct {
	label   string
	value   string
	section bool
}

// generateModel displays a generated identity with actions.
type generateModel struct {
	identity identity.Identity
	opts     identity.Options
	fields   []identityField
	cursor   int
	flash    string
}

// saveIdentityMsg requests saving the current identity.
type saveIdentityMsg struct {
	identity identity.Identity
}

// identitySavedMsg confirms the identity was saved.
type identitySavedMsg struct{}

// cycleCountryMsg asks the root to switch to the next country and redraw.
type cycleCountryMsg struct{}

// cycleGenderMsg asks the root to switch gender (random, male, female).
type cycleGenderMsg struct{}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func newGenerateModel(id identity.Identity, opts identity.Options) generateModel {
	return generateModel{
		identity: id,
		opts:     opts,
		fields:   identityFields(id),
	}
}

// identityFields flattens an identity into display rows, skipping
// fields that were not generated.
func identityFields(id identity.Identity) []identityField {
	fields := []identityField{
		{label: "name", value: id.Name},
		{label: "gender", value: string(id.Gender)},
		{label: "birth date", value: id.BirthDate.String()},
		{label: "country", value: fmt.Sprintf("%s (%s)", id.Country, id.Nationality)},

		{label: "id number", value: id.IDNumber, section: true},
		{label: "passport", value: id.PassportNumber},
	}
	if id.DriversLicense != "" {
		fields = append(fields, identityField{label: "license", value: id.DriversLicense})
	}

	fields = append(fields,
		identityField{label: "address", value: id.Address, section: true},
		identityField{label: "region", value: id.Region},
		identityField{label: "phone", value: id.Phone},
		identityField{label: "email", value: id.Email},

		identityField{label: "occupation", value: id.Occupation, section: true},
		identityField{label: "education", value: id.Education},
	)

	if c := id.CreditCard; c != nil {
		fields = append(fields,
			identityField{label: "card", value: c.Number, section: true},
			identityField{label: "card type", value: c.Type},
			identityField{label: "expires", value: c.Expiration},
			identityField{label: "cvv", value: c.CVV},
		)
	}

	for i, s := range id.SocialMedia {
		v := s.Username
		if s.URL != "" {
			v = s.URL
		}
		fields = append(fields, identityField{label: strings.ToLower(s.Platform), value: v, section: i == 0})
	}

	if id.AvatarURL != "" {
		fields = append(fields, identityField{label: "avatar", value: id.AvatarURL, section: true})
	}

	return append(fields, identityField{label: "id", value: id.ID, section: true})
}

func (m generateModel) Init() tea.Cmd {
	return nil
}

func (m generateModel) Update(msg tea.Msg) (generateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case identitySavedMsg:
		m.flash = "saved"
		return m, clearFlashAfter()

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m generateModel) handleKey(msg tea.KeyMsg) (generateModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
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
	case "s":
		id := m.identity
		return m, func() tea.Msg { return saveIdentityMsg{identity: id} }

	case "c":
		m.flash = copyFlash(fieldsText(m.fields), "copied all!")
		return m, clearFlashAfter()

	case "n":
		return m, func() tea.Msg { return navigateMsg{view: viewGenerate} }

	case "t":
		return m, func() tea.Msg { return cycleCountryMsg{} }

	case "g":
		return m, func() tea.Msg { return cycleGenderMsg{} }
	}

	return m, nil
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

// copyFlash copies text and returns the flash to show.
func copyFlash(text, ok string) string {
	if err := copyToClipboard(text); err != nil {
		return "copy: " + err.Error()
	}
	return ok
}

func fieldsText(fields []identityField) string {
	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
	}
	return b.String()
}

func (m generateModel) View() string {
	gender := "any"
	if m.opts.Gender != "" {
		gender = string(m.opts.Gender)
	}
	hint := zstyle.MutedText.Render(fmt.Sprintf("country %s  gender %s", m.identity.Country, gender))
	s := "\n  " + hint + "\n"

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

// renderFields draws the rows with the cursor marker and group breaks.
func renderFields(fields []identityField, cursor int) string {
	var s string
	for i, f := range fields {
		if f.section || i == 0 {
			s += "\n"
		}
		label := zstyle.MutedText.Render(fmt.Sprintf("%-11s", f.label))
		if i == cursor {
			s += zstyle.ActiveBorder.Render(fmt.Sprintf("  > %s %s", label, f.value)) + "\n"
		} else {
			s += fmt.Sprintf("    %s %s\n", label, f.value)
		}
	}
	return s
}
