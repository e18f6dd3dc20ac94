// Package screen renders the static parts of the game display: homescreen
// banner, puzzle header, the letter tile row and the guess list. All output
// is plain styled lines; cursor choreography stays in the editor.
package screen

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"anagrid/internal/termstyle"
)

// Theme selects tile styling for light or dark backgrounds.
type Theme struct {
	Dark bool
}

// DetectTheme resolves the configured theme name. "auto" probes the real
// terminal background via termenv; "dark" and "light" force a choice.
func DetectTheme(name string) Theme {
	switch name {
	case "dark":
		return Theme{Dark: true}
	case "light":
		return Theme{Dark: false}
	}
	return Theme{Dark: termenv.NewOutput(os.Stdout).HasDarkBackground()}
}

// Home renders the startup banner.
func Home(username, version string) string {
	who := username
	if who == "" {
		who = "guest"
	}
	inner := 34
	top := "┌" + strings.Repeat("─", inner) + "┐"
	bottom := "└" + strings.Repeat("─", inner) + "┘"
	lines := []string{
		top,
		boxLine(inner, termstyle.Bold("A N A G R I D")),
		boxLine(inner, termstyle.Dim("daily word puzzle · v"+version)),
		boxLine(inner, "player: "+who),
		bottom,
	}
	return strings.Join(lines, "\r\n")
}

func boxLine(inner int, content string) string {
	pad := inner - visibleLen(content)
	left := pad / 2
	right := pad - left
	if left < 0 || right < 0 {
		left, right = 0, 0
	}
	return "│" + strings.Repeat(" ", left) + content + strings.Repeat(" ", right) + "│"
}

// visibleLen counts printable runes, skipping ANSI escape sequences.
func visibleLen(s string) int {
	n := 0
	inEsc := false
	for _, r := range s {
		switch {
		case inEsc:
			if r == 'm' {
				inEsc = false
			}
		case r == '\033':
			inEsc = true
		default:
			n++
		}
	}
	return n
}

// Header renders the per-puzzle status line.
func Header(date string, score, found, total int) string {
	left := termstyle.Bold(date)
	right := fmt.Sprintf("score %d · %d/%d words", score, found, total)
	return left + "  " + termstyle.Dim(right)
}

// Tiles renders the letter pool as a tile row. Positions listed in consumed
// are dimmed to show they are spent by the in-progress guess.
func Tiles(letters []rune, consumed []int, theme Theme) string {
	used := make(map[int]bool, len(consumed))
	for _, i := range consumed {
		used[i] = true
	}
	parts := make([]string, 0, len(letters))
	for i, l := range letters {
		tile := "[" + string(l) + "]"
		if used[i] {
			parts = append(parts, termstyle.TileUsed(tile))
		} else if theme.Dark {
			parts = append(parts, termstyle.Tile(tile))
		} else {
			parts = append(parts, termstyle.Bold(tile))
		}
	}
	return strings.Join(parts, " ")
}

// Guess renders one submitted guess with its verdict.
func Guess(word string, score int, valid bool) string {
	if !valid {
		return termstyle.RedX() + " " + termstyle.Dim(word)
	}
	return fmt.Sprintf("%s %s %s", termstyle.GreenCheck(), word, termstyle.Dim(fmt.Sprintf("+%d", score)))
}
