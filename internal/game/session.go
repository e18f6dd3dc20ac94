// Package game runs one interactive puzzle session: it owns the screen
// around the input line, constructs a fresh editor per submission and talks
// to the backend strictly between submissions, never during one.
package game

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"anagrid/internal/api"
	"anagrid/internal/editor"
	"anagrid/internal/screen"
	"anagrid/internal/stats"
)

// Registry is the command palette offered during play.
var Registry = editor.Registry{
	{Name: "/exit", Description: "leave the game"},
	{Name: "/help", Description: "list commands"},
	{Name: "/hint", Description: "reveal part of an unfound word"},
	{Name: "/quit", Description: "leave the game"},
	{Name: "/shuffle", Description: "reshuffle the letter tiles"},
	{Name: "/stats", Description: "show your statistics"},
}

// Session is one run of the daily puzzle for one player.
type Session struct {
	client  *api.Client
	dataDir string
	in      io.Reader
	out     io.Writer
	theme   screen.Theme

	puzzle  api.Puzzle
	letters []rune
	found   []foundWord
	score   int
	pending []byte
	shuffle func([]rune)
}

type foundWord struct {
	word  string
	score int
}

// NewSession creates a session over the given raw keystroke stream and
// terminal writer. The stream must already be in raw mode.
func NewSession(client *api.Client, dataDir string, in io.Reader, out io.Writer, theme screen.Theme) *Session {
	return &Session{
		client:  client,
		dataDir: dataDir,
		in:      in,
		out:     out,
		theme:   theme,
		shuffle: func(l []rune) {
			rand.Shuffle(len(l), func(i, j int) { l[i], l[j] = l[j], l[i] })
		},
	}
}

// Run fetches the puzzle and loops editor submissions until the player
// leaves. Each loop iteration builds a fresh editor over the current letter
// order; network calls happen only after the editor resolves.
func (s *Session) Run(ctx context.Context) error {
	puzzle, err := s.client.TodayPuzzle(ctx)
	if err != nil {
		return err
	}
	s.puzzle = puzzle
	s.letters = []rune(strings.ToUpper(puzzle.Letters))

	s.printLine(screen.Header(puzzle.Date, s.score, len(s.found), puzzle.WordCount))
	s.printLine(screen.Tiles(s.letters, nil, s.theme))

	for {
		ed := editor.New(editor.Options{
			Pool:     editor.NewPool(s.letters),
			Registry: Registry,
			Input:    s.input(),
			Output:   s.out,
			Prompt:   "guess> ",
			OnUpdate: s.redrawTiles,
		})
		res, err := ed.Run()
		s.pending = ed.Unread()
		if err != nil {
			return err
		}

		if res.IsCommand {
			quit := s.dispatch(ctx, res.Text)
			if quit {
				break
			}
			continue
		}
		if res.Text == "" {
			continue
		}
		s.submit(ctx, res.Text)
	}

	if _, err := stats.Update(s.dataDir, func(st *stats.Stats) {
		st.RecordSession(s.puzzle.Date, s.score, len(s.found))
	}); err != nil {
		return fmt.Errorf("record stats: %w", err)
	}
	return nil
}

// input returns the keystroke source for the next editor, replaying any
// type-ahead left over from the previous submission.
func (s *Session) input() io.Reader {
	if len(s.pending) == 0 {
		return s.in
	}
	return io.MultiReader(bytes.NewReader(s.pending), s.in)
}

// redrawTiles repaints the tile row one line above the input line after
// every word-mode keystroke. Movement is relative; the editor redraws the
// input line itself right after this callback returns.
func (s *Session) redrawTiles(_ string, consumed []int) {
	fmt.Fprintf(s.out, "\033[1A\r\033[2K%s\r\n", screen.Tiles(s.letters, consumed, s.theme))
}

func (s *Session) submit(ctx context.Context, word string) {
	res, err := s.client.SubmitGuess(ctx, s.puzzle.ID, word)
	if err != nil {
		s.printLine(fmt.Sprintf("\r\n%v", err))
		s.printLine(screen.Tiles(s.letters, nil, s.theme))
		return
	}
	if res.Valid {
		s.found = append(s.found, foundWord{word: word, score: res.Score})
		s.score += res.Score
	}

	// Start a fresh block: verdict, updated header, tiles. The editor has
	// already cleared its overlay, so plain scrolling output is safe here.
	s.printLine("\r\n" + screen.Guess(word, res.Score, res.Valid))
	if res.Message != "" {
		s.printLine(res.Message)
	}
	s.printLine(screen.Header(s.puzzle.Date, s.score, len(s.found), s.puzzle.WordCount))
	s.printLine(screen.Tiles(s.letters, nil, s.theme))
}

// printLine writes one line with the \r\n ending required in raw mode.
func (s *Session) printLine(line string) {
	fmt.Fprintf(s.out, "%s\r\n", line)
}
