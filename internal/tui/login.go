package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type loginPage struct {
	name       textinput.Model
	email      textinput.Model
	focus      int
	submitting bool
}

func newLoginPage() loginPage {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.Prompt = "Name:  "
	name.CharLimit = 80
	name.Focus()

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "Email: "
	email.CharLimit = 120

	return loginPage{name: name, email: email}
}

func (p loginPage) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (p *loginPage) setFocus(i int) {
	p.focus = i
	if i == 0 {
		p.name.Focus()
		p.email.Blur()
		return
	}
	p.name.Blur()
	p.email.Focus()
}

// update handles one message and reports whether the form was submitted.
func (p *loginPage) update(msg tea.Msg) (bool, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, keys.NextFocus), key.Matches(km, keys.PrevFocus),
			key.Matches(km, keys.Up), key.Matches(km, keys.Down):
			if km.Type != tea.KeyRunes {
				p.setFocus(1 - p.focus)
				return false, nil
			}
		case key.Matches(km, keys.Submit):
			if p.submitting {
				return false, nil
			}
			if p.focus == 0 {
				p.setFocus(1)
				return false, nil
			}
			return true, nil
		}
	}

	var cmd tea.Cmd
	if p.focus == 0 {
		p.name, cmd = p.name.Update(msg)
	} else {
		p.email, cmd = p.email.Update(msg)
	}
	return false, cmd
}

func (p loginPage) view(s Styles, spin string) string {
	var b strings.Builder
	b.WriteString(s.Title.Render("Find your new best friend"))
	b.WriteString("\n")
	b.WriteString(p.name.View())
	b.WriteString("\n")
	b.WriteString(p.email.View())
	b.WriteString("\n\n")
	if p.submitting {
		b.WriteString(spin + " Logging in...")
	} else {
		b.WriteString(s.Help.Render("enter: log in • tab: switch field • ctrl+c: quit"))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
