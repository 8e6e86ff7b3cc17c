package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Modal  ModalTheme
	Slider SliderTheme
}

// ModalTheme styles centered modal overlays (e.g., wizard).
type ModalTheme struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Step    lipgloss.Style
	Help    lipgloss.Style
	Muted   lipgloss.Style
	Notice  lipgloss.Style
	Warning lipgloss.Style
	Quote   lipgloss.Style
}

// SliderTheme styles the control level slider; In marks values inside the
// suggested range.
type SliderTheme struct {
	In  lipgloss.Style
	Out lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")
	faint := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	warn := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	return Theme{
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(1, 2),
			Title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
			Step:    faint,
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Muted:   faint,
			Notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
			Warning: warn,
			Quote:   lipgloss.NewStyle().Italic(true),
		},
		Slider: SliderTheme{
			In:  lipgloss.NewStyle().Foreground(accent),
			Out: faint,
		},
	}
}
