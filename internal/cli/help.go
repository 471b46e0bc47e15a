package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

var (
	helpTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(NeonCyan)
	helpDescStyle    = lipgloss.NewStyle().Foreground(NeonViolet).Italic(true)
	helpSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(NeonMagenta).MarginTop(1)
	helpNameStyle    = lipgloss.NewStyle().Foreground(NeonCyan).Bold(true)
	helpDefaultStyle = lipgloss.NewStyle().Foreground(DimGray).Italic(true)
)

var keyRows = [][2]string{
	{"O", "open a file"},
	{"Space", "pause or resume"},
	{"R", "restart the track"},
	{"H", "show or hide the controls"},
	{"Esc, Q", "quit"},
}

// StyledHelpPrinter renders kong help with the neon theme: usage, then the
// file argument, flags and key bindings as aligned two-column tables.
func StyledHelpPrinter(kong.HelpOptions) kong.HelpPrinter {
	return func(_ kong.HelpOptions, ctx *kong.Context) error {
		node := ctx.Model.Node
		usage := []string{ctx.Model.Name}
		var args, flags [][2]string
		for _, p := range node.Positional {
			usage = append(usage, p.Summary())
			args = append(args, [2]string{p.Summary(), p.Help})
		}
		for _, f := range node.Flags {
			if f.Hidden {
				continue
			}
			desc := f.Help
			if f.HasDefault && !f.IsBool() && f.Default != "" {
				desc += " " + helpDefaultStyle.Render("(default: "+f.Default+")")
			}
			flags = append(flags, [2]string{flagName(f), desc})
		}
		usage = append(usage, "[flags]")

		var sb strings.Builder
		sb.WriteString(helpTitleStyle.Render(appTitle) + "\n")
		sb.WriteString(helpDescStyle.Render(appDescription) + "\n")
		writeSection(&sb, "Usage:", [][2]string{{strings.Join(usage, " "), ""}})
		writeSection(&sb, "Arguments:", args)
		writeSection(&sb, "Flags:", flags)
		writeSection(&sb, "Keys:", keyRows)
		sb.WriteString("\n")
		_, err := fmt.Fprint(ctx.Stdout, sb.String())
		return err
	}
}

func flagName(f *kong.Flag) string {
	name := "--" + f.Name
	if f.Short != 0 {
		name = fmt.Sprintf("-%c, %s", f.Short, name)
	}
	if !f.IsBool() && f.PlaceHolder != "" {
		name += "=" + strings.ToUpper(f.PlaceHolder)
	}
	return name
}

func writeSection(sb *strings.Builder, title string, rows [][2]string) {
	if len(rows) == 0 {
		return
	}
	sb.WriteString(helpSectionStyle.Render(title) + "\n")
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r[0]))
	}
	for _, r := range rows {
		line := "  " + helpNameStyle.Render(r[0])
		if r[1] != "" {
			line += strings.Repeat(" ", width-lipgloss.Width(r[0])+2) + r[1]
		}
		sb.WriteString(line + "\n")
	}
}
