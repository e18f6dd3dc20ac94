package editor

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"anagrid/internal/termstyle"
)

// Renderer draws the input line and the command menu overlay using only
// relative cursor movement and line-wise erase. It never patches a line in
// place: every call erases before writing, so the line count it reports is
// exactly what remains on screen.
type Renderer struct {
	out    io.Writer
	prompt string
}

// NewRenderer creates a renderer writing to out with the given prompt.
func NewRenderer(out io.Writer, prompt string) *Renderer {
	return &Renderer{out: out, prompt: prompt}
}

// RenderInput erases the current line and redraws the prompt followed by
// the buffer, leaving the cursor at the end of the input. Safe to call any
// number of times.
func (r *Renderer) RenderInput(buffer string) {
	fmt.Fprintf(r.out, "\r\033[2K%s%s", termstyle.Prompt(r.prompt), buffer)
}

// RenderMenu erases exactly prevLines below the cursor, writes one line per
// entry with the selection highlighted, and repositions the cursor to the
// input line (column 0). Returns the number of lines written; the caller
// must pass that value back as prevLines on the next call. An empty list
// leaves no residual lines and returns 0.
func (r *Renderer) RenderMenu(items []Command, selection, prevLines int) int {
	var buf bytes.Buffer
	buf.WriteString("\033[?25l")
	eraseBelow(&buf, prevLines)
	for i, c := range items {
		buf.WriteString("\r\n\033[2K")
		line := " " + c.Name + "  " + c.Description
		if i == selection {
			buf.WriteString(termstyle.Selected(line))
		} else {
			buf.WriteString(termstyle.Dim(line))
		}
	}
	if len(items) > 0 {
		fmt.Fprintf(&buf, "\033[%dA\r", len(items))
	}
	buf.WriteString("\033[?25h")
	r.out.Write(buf.Bytes())
	return len(items)
}

// ClearMenu erases exactly lines below the cursor and returns the cursor to
// the input line. Returns the new overlay line count, always 0.
func (r *Renderer) ClearMenu(lines int) int {
	if lines == 0 {
		return 0
	}
	var buf bytes.Buffer
	eraseBelow(&buf, lines)
	buf.WriteString("\r")
	r.out.Write(buf.Bytes())
	return 0
}

// Notice replaces the overlay with a single dimmed message line below the
// input line. Returns the new overlay line count, always 1.
func (r *Renderer) Notice(text string, prevLines int) int {
	var buf bytes.Buffer
	eraseBelow(&buf, prevLines)
	buf.WriteString("\r\n\033[2K")
	buf.WriteString(termstyle.Dim(" " + text))
	buf.WriteString("\033[1A\r")
	r.out.Write(buf.Bytes())
	return 1
}

// eraseBelow erases n lines below the cursor and moves the cursor back up
// to the line it started on. Movement is strictly relative; at no point is
// an absolute cursor address used.
func eraseBelow(buf *bytes.Buffer, n int) {
	if n <= 0 {
		return
	}
	buf.WriteString(strings.Repeat("\033[B\033[2K", n))
	fmt.Fprintf(buf, "\033[%dA", n)
}
