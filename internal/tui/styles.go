package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("#6D28D9")
	muted   = lipgloss.Color("#6B7280")
	danger  = lipgloss.Color("#DC2626")
	success = lipgloss.Color("#059669")
)

// Styles groups the lipgloss styles used by every page.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Selected lipgloss.Style
	Favorite lipgloss.Style
	Panel    lipgloss.Style
	Modal    lipgloss.Style
	Help     lipgloss.Style

	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),
		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),
		Muted: lipgloss.NewStyle().Foreground(muted),
		Label: lipgloss.NewStyle().Bold(true),
		Focused: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		Selected: lipgloss.NewStyle().Reverse(true),
		Favorite: lipgloss.NewStyle().Foreground(danger),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(primary).
			Padding(1, 3),
		Help: lipgloss.NewStyle().Foreground(muted).Padding(0, 1),

		ToastInfo:    lipgloss.NewStyle().Foreground(primary),
		ToastSuccess: lipgloss.NewStyle().Foreground(success),
		ToastError:   lipgloss.NewStyle().Foreground(danger).Bold(true),
	}
}
