package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

const (
	appTitle       = "tunnelviz"
	appDescription = "Play an audio file through a reactive neon tunnel of rings and particles."
)

// Output destinations, swapped in tests.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(NeonCyan)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(DimGray).
			Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(NeonRed)

	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(NeonMagenta)

	KeyStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(White)
)

// PrintBanner prints the application banner
func PrintBanner() {
	fmt.Fprintln(Stdout, TitleStyle.Render(appTitle))
	fmt.Fprintln(Stdout, SubtitleStyle.Render(appDescription))
	fmt.Fprintln(Stdout)
}

// PrintVersion prints version information
func PrintVersion(version string) {
	fmt.Fprintln(Stdout, TitleStyle.Render(appTitle))
	fmt.Fprintf(Stdout, "%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Fprintf(Stderr, "%s %s\n", WarningStyle.Render("Warning:"), message)
}

// PrintInfo prints a key/value line
func PrintInfo(key, value string) {
	fmt.Fprintf(Stdout, "%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}
