package cli

import "github.com/charmbracelet/lipgloss"

// Neon palette shared by the help printer and status output.
var (
	NeonCyan    = lipgloss.Color("#00E5FF")
	NeonMagenta = lipgloss.Color("#FF00C8")
	NeonViolet  = lipgloss.Color("#8A2BE2")
	NeonRed     = lipgloss.Color("#FF3355")

	// Accent colours
	DimGray = lipgloss.Color("#8899AA")
	White   = lipgloss.Color("#FFFFFF")
)
