package editor

import "strings"

// CommandPrefix starts command input. Typing it on an empty buffer switches
// the editor into command mode.
const CommandPrefix = '/'

// Command is one entry of the command palette.
type Command struct {
	Name        string
	Description string
}

// Registry is the fixed set of commands offered by the palette. It is
// supplied once at startup and never mutated during a session.
type Registry []Command

// Filter returns the commands whose names start with prefix, preserving
// registry order.
func (r Registry) Filter(prefix string) []Command {
	var out []Command
	for _, c := range r {
		if strings.HasPrefix(c.Name, prefix) {
			out = append(out, c)
		}
	}
	return out
}
