package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/shlex"

	"anagrid/internal/screen"
	"anagrid/internal/stats"
	"anagrid/internal/termstyle"
)

// dispatch executes a resolved palette command. The editor only returns the
// literal typed string; classifying unknown names happens here. Returns
// true when the session should end.
func (s *Session) dispatch(ctx context.Context, text string) bool {
	fields, err := shlex.Split(strings.TrimPrefix(text, "/"))
	if err != nil || len(fields) == 0 {
		s.printLine("\r\n" + termstyle.Red("unknown command: "+text))
		s.printLine(screen.Tiles(s.letters, nil, s.theme))
		return false
	}

	switch fields[0] {
	case "exit", "quit":
		s.printLine("\r\n" + termstyle.Dim("thanks for playing"))
		return true

	case "help":
		s.printLine("")
		for _, c := range Registry {
			s.printLine(fmt.Sprintf("  %-10s %s", c.Name, termstyle.Dim(c.Description)))
		}

	case "shuffle":
		s.shuffle(s.letters)
		s.printLine("")

	case "hint":
		h, err := s.client.Hint(ctx, s.puzzle.ID)
		if err != nil {
			s.printLine(fmt.Sprintf("\r\n%v", err))
			break
		}
		s.printLine("\r\n" + termstyle.Yellow("hint: "+h.Text))

	case "stats":
		st, err := stats.Load(s.dataDir)
		if err != nil {
			s.printLine(fmt.Sprintf("\r\n%v", err))
			break
		}
		s.printLine("")
		s.printLine(fmt.Sprintf("  played %d · words %d · best %d · streak %d (best %d)",
			st.Played, st.WordsFound, st.BestScore, st.CurrentStreak, st.BestStreak))

	default:
		s.printLine("\r\n" + termstyle.Red("unknown command: "+text))
	}

	s.printLine(screen.Tiles(s.letters, nil, s.theme))
	return false
}
