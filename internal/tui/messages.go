package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rogerio-castellano/dogfinder/internal/area"
	"github.com/rogerio-castellano/dogfinder/internal/models"
	"github.com/rogerio-castellano/dogfinder/internal/search"
	"github.com/rogerio-castellano/dogfinder/internal/session"
)

type loginDoneMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

type breedsMsg struct {
	epoch  uint64
	breeds []string
	err    error
}

type searchDoneMsg struct {
	epoch   uint64
	outcome search.Outcome
}

type matchDoneMsg struct {
	epoch uint64
	dog   models.Dog
	err   error
}

type areaDoneMsg struct {
	epoch    uint64
	zipCodes []string
	err      error
}

type toastTickMsg time.Time

// epochMsg is implemented by replies that belong to one login.
type epochMsg interface {
	epochOf() uint64
}

func (m breedsMsg) epochOf() uint64     { return m.epoch }
func (m searchDoneMsg) epochOf() uint64 { return m.epoch }
func (m matchDoneMsg) epochOf() uint64  { return m.epoch }
func (m areaDoneMsg) epochOf() uint64   { return m.epoch }

// requestContext bounds one network call by the configured timeout.
func (a App) requestContext() (context.Context, context.CancelFunc) {
	if a.timeout > 0 {
		return context.WithTimeout(a.ctx, a.timeout)
	}
	return context.WithCancel(a.ctx)
}

func (a App) loginCmd(s *session.Session, name, email string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.requestContext()
		defer cancel()
		return loginDoneMsg{err: s.Login(ctx, name, email)}
	}
}

func (a App) logoutCmd(s *session.Session) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.requestContext()
		defer cancel()
		return logoutDoneMsg{err: s.Logout(ctx)}
	}
}

func (a App) breedsCmd() tea.Cmd {
	epoch := a.epoch
	return func() tea.Msg {
		ctx, cancel := a.requestContext()
		defer cancel()
		breeds, err := search.FetchBreeds(ctx, a.api)
		return breedsMsg{epoch: epoch, breeds: breeds, err: err}
	}
}

func (a App) searchCmd(p search.Pending) tea.Cmd {
	epoch := a.epoch
	return func() tea.Msg {
		ctx, cancel := a.requestContext()
		defer cancel()
		return searchDoneMsg{epoch: epoch, outcome: p.Run(ctx, a.api)}
	}
}

func (a App) matchCmd(ids []string) tea.Cmd {
	epoch := a.epoch
	return func() tea.Msg {
		ctx, cancel := a.requestContext()
		defer cancel()
		dog, err := search.FetchMatch(ctx, a.api, ids)
		return matchDoneMsg{epoch: epoch, dog: dog, err: err}
	}
}

func (a App) areaCmd(sel area.Selector) tea.Cmd {
	epoch := a.epoch
	return func() tea.Msg {
		ctx, cancel := a.requestContext()
		defer cancel()
		zips, err := sel.Resolve(ctx, a.api)
		return areaDoneMsg{epoch: epoch, zipCodes: zips, err: err}
	}
}

func toastTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}
