// Package tui is the terminal front end: a login page, the dog search page
// with its filter panel, the match modal, the map area overlay and toasts.
package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/dogfinder/internal/area"
	"github.com/rogerio-castellano/dogfinder/internal/notice"
	"github.com/rogerio-castellano/dogfinder/internal/search"
	"github.com/rogerio-castellano/dogfinder/internal/session"
)

const (
	MsgWelcome      = "Welcome to DogFinder!"
	MsgLoginFailed  = "Login failed. Please try again."
	MsgLogoutFailed = "Failed to logout"
	MsgAreaFailed   = "Failed to find zip codes in that area"
	MsgAreaEmpty    = "No zip codes in that area"
)

// API is everything the terminal app needs from the Fetch service.
type API interface {
	session.Authenticator
	search.DogAPI
	area.LocationSearcher
}

type Options struct {
	PageSize int
	Timeout  time.Duration
	Logger   *zap.Logger
	Context  context.Context
}

type page int

const (
	pageLogin page = iota
	pageSearch
)

// App is the root bubbletea model. It owns the session and, while logged in,
// the search machine; both are only touched from Update.
type App struct {
	ctx      context.Context
	api      API
	logger   *zap.Logger
	pageSize int
	timeout  time.Duration

	session *session.Session
	toasts  *notice.Queue
	styles  Styles
	spinner spinner.Model

	page   page
	login  loginPage
	search *searchPage
	epoch  uint64

	width  int
	height int

	toastTicking bool
}

func New(api API, opts Options) App {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.PageSize <= 0 {
		opts.PageSize = search.DefaultPageSize
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return App{
		ctx:      opts.Context,
		api:      api,
		logger:   opts.Logger,
		pageSize: opts.PageSize,
		timeout:  opts.Timeout,
		session:  session.New(api, opts.Logger.Named("session")),
		toasts:   notice.NewQueue(notice.DefaultTTL, 3),
		styles:   DefaultStyles(),
		spinner:  sp,
		page:     pageLogin,
		login:    newLoginPage(),
	}
}

func (a App) Init() tea.Cmd {
	return a.login.focusCmd()
}

// Session exposes the session for callers that need the logged in user.
func (a App) Session() *session.Session {
	return a.session
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return a, tea.Quit
		}

	case spinner.TickMsg:
		if !a.busy() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case toastTickMsg:
		a.toasts.Prune(time.Time(msg))
		if len(a.toasts.Visible()) > 0 {
			return a, toastTick(time.Second)
		}
		a.toastTicking = false
		return a, nil

	case loginDoneMsg:
		return a.onLogin(msg)

	case logoutDoneMsg:
		return a.onLogout(msg)
	}

	var cmd tea.Cmd
	switch a.page {
	case pageSearch:
		cmd = a.updateSearch(msg)
	default:
		cmd = a.updateLogin(msg)
	}
	cmd = tea.Batch(cmd, a.afterUpdate())
	return a, cmd
}

// afterUpdate starts the toast and spinner tickers when there is something
// for them to do.
func (a *App) afterUpdate() tea.Cmd {
	var cmds []tea.Cmd
	if len(a.toasts.Visible()) > 0 && !a.toastTicking {
		a.toastTicking = true
		cmds = append(cmds, toastTick(time.Second))
	}
	if a.busy() {
		cmds = append(cmds, a.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (a App) busy() bool {
	if a.page == pageLogin {
		return a.login.submitting
	}
	return a.search != nil && a.search.busy()
}

func (a *App) notify(level notice.Level, text string) {
	a.toasts.Push(notice.New(level, text))
}

func (a *App) updateLogin(msg tea.Msg) tea.Cmd {
	submit, cmd := a.login.update(msg)
	if !submit {
		return cmd
	}
	a.login.submitting = true
	return tea.Batch(cmd, a.loginCmd(a.session, a.login.name.Value(), a.login.email.Value()))
}

func (a App) onLogin(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	a.login.submitting = false
	if msg.err != nil {
		a.logger.Warn("login failed", zap.Error(msg.err))
		a.notify(notice.Error, loginErrorText(msg.err))
		cmd := a.afterUpdate()
		return a, cmd
	}

	a.notify(notice.Success, MsgWelcome)
	machine := search.NewMachine(a.api,
		search.WithNotifier(a.toasts),
		search.WithLogger(a.logger.Named("search")),
		search.WithPageSize(a.pageSize),
	)
	a.epoch++
	a.search = newSearchPage(machine)
	a.page = pageSearch
	a.login = newLoginPage()

	pending := machine.Begin(1)
	cmd := tea.Batch(a.breedsCmd(), a.searchCmd(pending), a.afterUpdate())
	return a, cmd
}

func (a App) onLogout(msg logoutDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.logger.Warn("logout failed", zap.Error(msg.err))
		a.notify(notice.Error, MsgLogoutFailed)
	}
	// favorites and filters belong to the search page and go with it
	a.search = nil
	a.page = pageLogin
	a.login = newLoginPage()
	cmd := tea.Batch(a.login.focusCmd(), a.afterUpdate())
	return a, cmd
}

// loginErrorText shows validation problems as they are and hides service
// errors behind a generic message.
func loginErrorText(err error) string {
	switch {
	case errors.Is(err, session.ErrNameRequired),
		errors.Is(err, session.ErrEmailRequired),
		errors.Is(err, session.ErrEmailInvalid):
		s := err.Error()
		return strings.ToUpper(s[:1]) + s[1:]
	default:
		return MsgLoginFailed
	}
}

func (a App) View() string {
	var body string
	switch a.page {
	case pageSearch:
		body = a.viewSearch()
	default:
		body = a.login.view(a.styles, a.spinner.View())
	}

	header := a.styles.Header.Render("DogFinder")
	if u, ok := a.session.User(); ok {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, a.styles.Muted.Render("  "+u.Name+" <"+u.Email+">"))
	}

	parts := []string{header, body}
	if toasts := a.viewToasts(); toasts != "" {
		parts = append(parts, toasts)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a App) viewToasts() string {
	var lines []string
	for _, n := range a.toasts.Visible() {
		style := a.styles.ToastInfo
		switch n.Level {
		case notice.Error:
			style = a.styles.ToastError
		case notice.Success:
			style = a.styles.ToastSuccess
		}
		lines = append(lines, style.Render("● "+n.Text))
	}
	return strings.Join(lines, "\n")
}
