package style

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha tones used by boxed reports.
var (
	Text        = lipgloss.Color("#cdd6f4")
	AccentColor = lipgloss.Color("#cba6f7")
)
