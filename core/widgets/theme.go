package widgets

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha.
var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorOverlay  lipgloss.Color = "#6c7086"
	colorSurface0 lipgloss.Color = "#313244"
	colorSurface1 lipgloss.Color = "#45475a"
	colorMantle   lipgloss.Color = "#181825"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
)

var (
	cellStyle         = lipgloss.NewStyle().Foreground(colorText).Align(lipgloss.Center)
	cellOutsideStyle  = cellStyle.Foreground(colorOverlay)
	cellDisabledStyle = cellStyle.Foreground(colorSurface1).Strikethrough(true)
	cellSelectedStyle = cellStyle.Foreground(colorBase).Background(colorAccent).Bold(true)
	cellCursorStyle   = cellStyle.Foreground(colorPeach).Background(colorSurface0).Bold(true)
	weekdayStyle      = lipgloss.NewStyle().Foreground(colorMuted).Align(lipgloss.Center)

	statusBarStyle    = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().Foreground(colorError).Background(colorSurface0)
	footerStyle       = lipgloss.NewStyle().Background(colorMantle)
)
