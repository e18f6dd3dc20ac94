package termstyle

import (
	"os"

	"github.com/mattn/go-isatty"
)

// enabled tracks whether ANSI styling is active.
// Defaults to true if stdout is a TTY.
var enabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// SetEnabled overrides the auto-detected TTY check.
func SetEnabled(on bool) {
	enabled = on
}

// Enabled returns whether styling is currently active.
func Enabled() bool {
	return enabled
}

func wrap(code, s string) string {
	if !enabled || s == "" {
		return s
	}
	return code + s + "\033[0m"
}

// Bold renders text in bold.
func Bold(s string) string { return wrap("\033[1m", s) }

// Dim renders text in dim/faint.
func Dim(s string) string { return wrap("\033[2m", s) }

// Inverse renders text in reverse video.
func Inverse(s string) string { return wrap("\033[7m", s) }

// Red renders text in red.
func Red(s string) string { return wrap("\033[31m", s) }

// Green renders text in green.
func Green(s string) string { return wrap("\033[32m", s) }

// Yellow renders text in yellow.
func Yellow(s string) string { return wrap("\033[33m", s) }

// Cyan renders text in cyan.
func Cyan(s string) string { return wrap("\033[36m", s) }

// Gray renders text in gray/white.
func Gray(s string) string { return wrap("\033[37m", s) }

// Tile renders an available letter tile.
func Tile(s string) string { return wrap("\033[1m\033[33m", s) }

// TileUsed renders a letter tile consumed by the current guess.
func TileUsed(s string) string { return wrap("\033[2m", s) }

// Prompt renders the input prompt.
func Prompt(s string) string { return wrap("\033[36m", s) }

// Selected renders the highlighted command-menu entry.
func Selected(s string) string { return wrap("\033[7m\033[36m", s) }

// Symbols for guess results.
func GreenCheck() string { return Green("✓") }
func RedX() string       { return Red("✗") }
