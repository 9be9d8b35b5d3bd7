package shared

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Guerrilla-Interactive/eventgen-go-cli/app"
)

// Console prints styled status lines. The zero value writes to stdout.
type Console struct {
	Out io.Writer
}

func (c Console) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Success prints a green "➤" line.
func (c Console) Success(format string, a ...interface{}) {
	fmt.Fprintln(c.out(), app.SuccessStyle.Render("➤ "+fmt.Sprintf(format, a...)))
}

// Warn prints a yellow "!" line.
func (c Console) Warn(format string, a ...interface{}) {
	fmt.Fprintln(c.out(), app.WarningStyle.Render("! "+fmt.Sprintf(format, a...)))
}

// Error prints a red "✗" line.
func (c Console) Error(format string, a ...interface{}) {
	fmt.Fprintln(c.out(), app.ErrorStyle.Render("✗ "+fmt.Sprintf(format, a...)))
}

// Info prints an unstyled line.
func (c Console) Info(format string, a ...interface{}) {
	fmt.Fprintf(c.out(), format+"\n", a...)
}

// Muted prints a grey line.
func (c Console) Muted(format string, a ...interface{}) {
	fmt.Fprintln(c.out(), app.PathStyle.Render(fmt.Sprintf(format, a...)))
}

// Diff prints a unified diff, colouring added and removed lines.
func (c Console) Diff(diff string) {
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		text := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(text, "+++"), strings.HasPrefix(text, "---"):
			fmt.Fprintln(c.out(), app.SubtitleStyle.Render(text))
		case strings.HasPrefix(text, "+"):
			fmt.Fprintln(c.out(), app.DiffAddStyle.Render(text))
		case strings.HasPrefix(text, "-"):
			fmt.Fprintln(c.out(), app.DiffDelStyle.Render(text))
		case strings.HasPrefix(text, "@@"):
			fmt.Fprintln(c.out(), app.HighlightStyle.Render(text))
		default:
			fmt.Fprintln(c.out(), text)
		}
	}
}
