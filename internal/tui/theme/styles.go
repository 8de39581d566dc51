package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style

	// Step tabs
	TabActive   lipgloss.Style
	TabVisited  lipgloss.Style
	TabDisabled lipgloss.Style

	// Form fields
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	FieldError   lipgloss.Style
	Required     lipgloss.Style

	// Buttons
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style

	// Hint bar
	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	// Toasts
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style

	// Posts
	Card       lipgloss.Style
	CardAuthor lipgloss.Style
	CardLink   lipgloss.Style
}

func (t *Theme) buildStyles() *Styles {
	button := lipgloss.NewStyle().Padding(0, 2).MarginLeft(1).MarginRight(1)
	toast := lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgBase)).Padding(0, 1).Bold(true)
	tab := lipgloss.NewStyle().Padding(0, 1)

	return &Styles{
		Title:    color(t.Primary).Bold(true),
		Subtitle: color(t.FgSubtle),
		Muted:    color(t.FgMuted),

		TabActive: tab.
			Foreground(lipgloss.Color(t.BgBase)).
			Background(lipgloss.Color(t.Secondary)).
			Bold(true),
		TabVisited:  tab.Foreground(lipgloss.Color(t.FgBase)).Background(lipgloss.Color(t.BgSurface0)),
		TabDisabled: tab.Foreground(lipgloss.Color(t.FgMuted)).Faint(true),

		Label:        color(t.FgBright),
		LabelFocused: color(t.Secondary).Bold(true),
		FieldError:   color(t.Error),
		Required:     color(t.Error),

		Button:         button.Foreground(lipgloss.Color(t.FgBase)).Background(lipgloss.Color(t.BgSurface0)),
		ButtonFocused:  button.Foreground(lipgloss.Color(t.BgBase)).Background(lipgloss.Color(t.Secondary)).Bold(true),
		ButtonDisabled: button.Foreground(lipgloss.Color(t.FgMuted)).Background(lipgloss.Color(t.BgMantle)),

		HintKey:       color(t.FgBright).Bold(true),
		HintDesc:      color(t.FgSubtle),
		HintSeparator: color(t.BgSurface1),

		ToastSuccess: toast.Background(lipgloss.Color(t.Success)),
		ToastError:   toast.Background(lipgloss.Color(t.Error)),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BgSurface1)).
			Padding(0, 1),
		CardAuthor: color(t.Primary).Bold(true),
		CardLink:   color(t.FgMuted).Underline(true),
	}
}
