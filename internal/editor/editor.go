// Package editor implements the constrained input line used for guesses,
// with an embedded command palette. Letters typed in word mode are checked
// against the puzzle's letter pool; a leading slash on an empty buffer
// switches to command mode with an autocomplete menu rendered below the
// input line.
package editor

import (
	"fmt"
	"io"
	"unicode"
)

// Mode is the editor's current input mode.
type Mode int

const (
	ModeWord Mode = iota
	ModeCommand
)

// Result is what an editing session resolves to on Enter.
type Result struct {
	Text      string
	IsCommand bool
}

// Options configures a single editing session.
type Options struct {
	Pool     *Pool
	Registry Registry
	Input    io.Reader
	Output   io.Writer
	Prompt   string
	// OnUpdate is invoked synchronously after every buffer-affecting
	// keystroke in word mode, before the next keystroke is processed. The
	// caller uses it to redraw the surrounding game screen.
	OnUpdate func(buffer string, consumed []int)
}

// Editor owns all state for one guess-or-command submission. Construct a
// fresh editor per submission; the pool, buffer, mode and selection are
// discarded on resolution. Keystrokes are processed one at a time to
// completion, so no locking is needed.
type Editor struct {
	pool     *Pool
	registry Registry
	renderer *Renderer
	input    io.Reader
	onUpdate func(string, []int)

	buffer    []rune
	mode      Mode
	filtered  []Command
	selection int
	menuLines int

	noticeShown bool
	done        bool
	result      Result
	unread      []byte
}

// New creates an editor for one submission over the given raw keystroke
// stream. The editor owns the stream until Run returns.
func New(opts Options) *Editor {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = "> "
	}
	return &Editor{
		pool:     opts.Pool,
		registry: opts.Registry,
		renderer: NewRenderer(opts.Output, prompt),
		input:    opts.Input,
		onUpdate: opts.OnUpdate,
	}
}

// Run blocks until Enter resolves the session, reading raw bytes from the
// input stream and processing exactly one keystroke at a time. The overlay
// is always fully erased before Run returns, on every exit path.
func (e *Editor) Run() (Result, error) {
	e.renderer.RenderInput(string(e.buffer))
	defer func() {
		e.menuLines = e.renderer.ClearMenu(e.menuLines)
	}()

	buf := make([]byte, 256)
	for {
		n, err := e.input.Read(buf)
		if err != nil {
			return Result{}, fmt.Errorf("read input: %w", err)
		}
		stop := e.processBytes(buf, n)
		if e.done {
			// Bytes typed ahead of Enter belong to the next submission.
			e.unread = append([]byte(nil), buf[stop:n]...)
			return e.result, nil
		}
	}
}

// Unread returns bytes read from the stream but not consumed before
// resolution. The caller replays them into the next editor so type-ahead
// across submissions is not lost.
func (e *Editor) Unread() []byte {
	return e.unread
}

// processBytes decodes and handles keystrokes in buf[:n] until the buffer
// is exhausted or the editor resolves, returning the stop index. Escape
// sequences spanning the end of the slice are treated as a bare Escape.
func (e *Editor) processBytes(buf []byte, n int) int {
	i := 0
	for i < n && !e.done {
		b := buf[i]
		i++
		if b == 0x1B {
			consumed, k := parseEscape(buf[i:n])
			i += consumed
			e.handleKey(k)
			continue
		}
		e.handleKey(keyFromByte(b))
	}
	return i
}

// handleKey is the single serialization point: every state transition of
// the mode/buffer machine happens here, followed by a full erase-then-redraw.
func (e *Editor) handleKey(k key) {
	switch k.kind {
	case keyRune:
		e.handleRune(k.r)
	case keyBackspace:
		e.handleBackspace()
	case keyUp:
		e.moveSelection(-1)
	case keyDown:
		e.moveSelection(1)
	case keyTab:
		e.completeSelection()
	case keyEscape:
		e.reset()
	case keyEnter:
		e.resolve()
	case keyCtrlC:
		e.interruptNotice()
	}
}

func (e *Editor) handleRune(r rune) {
	if e.mode == ModeCommand {
		// Command input is unconstrained; commands are not limited to
		// pool letters.
		e.buffer = append(e.buffer, r)
		e.selection = 0
		e.refilter()
		e.redrawMenu()
		return
	}

	if r == CommandPrefix && len(e.buffer) == 0 {
		e.buffer = append(e.buffer, r)
		e.mode = ModeCommand
		e.selection = 0
		e.refilter()
		e.redrawMenu()
		return
	}

	// Word mode: the keystroke only lands if an unconsumed instance of the
	// letter remains. A slash mid-word goes through the same check and is
	// rejected like any non-pool letter.
	if _, ok := e.pool.TryConsume(r); ok {
		e.buffer = append(e.buffer, unicode.ToUpper(r))
		e.notifyUpdate()
		e.renderer.RenderInput(string(e.buffer))
	}
}

func (e *Editor) handleBackspace() {
	if len(e.buffer) == 0 {
		return
	}
	last := e.buffer[len(e.buffer)-1]
	e.buffer = e.buffer[:len(e.buffer)-1]

	if e.mode == ModeWord {
		e.pool.Release(last)
		e.notifyUpdate()
		e.renderer.RenderInput(string(e.buffer))
		return
	}

	if len(e.buffer) == 0 || e.buffer[0] != CommandPrefix {
		e.mode = ModeWord
		e.filtered = nil
		e.selection = 0
		e.menuLines = e.renderer.ClearMenu(e.menuLines)
		e.notifyUpdate()
		e.renderer.RenderInput(string(e.buffer))
		return
	}
	e.refilter()
	e.redrawMenu()
}

func (e *Editor) moveSelection(delta int) {
	if e.mode != ModeCommand || len(e.filtered) == 0 {
		return
	}
	e.selection = (e.selection + delta + len(e.filtered)) % len(e.filtered)
	e.redrawMenu()
}

func (e *Editor) completeSelection() {
	if e.mode != ModeCommand || len(e.filtered) == 0 {
		return
	}
	e.buffer = []rune(e.filtered[e.selection].Name)
	e.selection = 0
	e.refilter()
	e.redrawMenu()
}

// reset is the Escape path: a soft reset of buffer, consumed marking,
// selection and mode, not a cancellation of the editor itself.
func (e *Editor) reset() {
	e.buffer = e.buffer[:0]
	e.pool.Reset()
	e.mode = ModeWord
	e.filtered = nil
	e.selection = 0
	e.menuLines = e.renderer.ClearMenu(e.menuLines)
	e.notifyUpdate()
	e.renderer.RenderInput("")
}

func (e *Editor) resolve() {
	if e.mode == ModeCommand && len(e.filtered) > 0 {
		e.buffer = []rune(e.filtered[e.selection].Name)
	}
	e.result = Result{Text: string(e.buffer), IsCommand: e.mode == ModeCommand}
	e.done = true
}

// interruptNotice handles Ctrl-C: the editor never exits on it, it shows a
// one-time hint and otherwise ignores the keystroke.
func (e *Editor) interruptNotice() {
	if e.noticeShown {
		return
	}
	e.noticeShown = true
	e.menuLines = e.renderer.Notice("ctrl-c does nothing here, use /exit or /quit", e.menuLines)
	e.renderer.RenderInput(string(e.buffer))
}

// refilter recomputes the filtered command list from the current buffer and
// clamps the selection into range.
func (e *Editor) refilter() {
	e.filtered = e.registry.Filter(string(e.buffer))
	if e.selection >= len(e.filtered) {
		e.selection = 0
	}
}

func (e *Editor) redrawMenu() {
	e.menuLines = e.renderer.RenderMenu(e.filtered, e.selection, e.menuLines)
	e.renderer.RenderInput(string(e.buffer))
}

func (e *Editor) notifyUpdate() {
	if e.onUpdate != nil {
		e.onUpdate(string(e.buffer), e.pool.Consumed())
	}
}
