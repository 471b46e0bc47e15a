package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	prevOut, prevErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut
	t.Cleanup(func() { Stdout, Stderr = prevOut, prevErr })
	return &out, &errOut
}

func TestPrintErrorGoesToStderr(t *testing.T) {
	out, errOut := capture(t)
	PrintError("boom")
	if out.Len() != 0 {
		t.Fatalf("stdout should be empty, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "Error:") || !strings.Contains(errOut.String(), "boom") {
		t.Fatalf("stderr = %q", errOut.String())
	}
}

func TestPrintInfo(t *testing.T) {
	out, _ := capture(t)
	PrintInfo("Monitor", "http://localhost:8080")
	if !strings.Contains(out.String(), "Monitor:") || !strings.Contains(out.String(), "http://localhost:8080") {
		t.Fatalf("stdout = %q", out.String())
	}
}

func TestStyledHelpPrinter(t *testing.T) {
	var cli struct {
		File  string `arg:"" optional:"" help:"Audio file to play."`
		Width int    `help:"Window width." default:"1024"`
		Debug bool   `help:"Verbose logging."`
	}
	var buf bytes.Buffer
	parser, err := kong.New(&cli,
		kong.Name("tunnelviz"),
		kong.Writers(&buf, &buf),
		kong.Exit(func(int) {}),
		kong.Help(StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)
	if err != nil {
		t.Fatalf("kong.New: %v", err)
	}
	_, _ = parser.Parse([]string{"--help"})

	help := buf.String()
	for _, want := range []string{"tunnelviz [<file>] [flags]", "--width", "(default: 1024)", "--debug", "Audio file to play.", "-h, --help", "Keys:", "Esc, Q"} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q:\n%s", want, help)
		}
	}
}
