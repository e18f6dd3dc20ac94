package editor

import "unicode"

// Pool holds the scrambled letters available for one puzzle attempt and
// tracks which positions are consumed by the in-progress guess. Identity is
// by pool index, not letter value, so duplicate letters are freed one at a
// time on backspace.
type Pool struct {
	letters  []rune
	consumed map[int]bool
}

// NewPool creates a pool from the given letters. The letter sequence is
// fixed for the pool's lifetime; only the consumed marking changes.
func NewPool(letters []rune) *Pool {
	p := &Pool{
		letters:  make([]rune, len(letters)),
		consumed: make(map[int]bool, len(letters)),
	}
	copy(p.letters, letters)
	return p
}

// Letters returns the pool's letter sequence.
func (p *Pool) Letters() []rune {
	out := make([]rune, len(p.letters))
	copy(out, p.letters)
	return out
}

// TryConsume finds the first unconsumed position matching r
// (case-insensitively) and marks it consumed. Returns false when no
// unconsumed instance of the letter remains.
func (p *Pool) TryConsume(r rune) (int, bool) {
	u := unicode.ToUpper(r)
	for i, l := range p.letters {
		if unicode.ToUpper(l) == u && !p.consumed[i] {
			p.consumed[i] = true
			return i, true
		}
	}
	return -1, false
}

// Release frees one consumed position matching r. Which of several
// matching positions is freed is unspecified. Releasing a letter with no
// consumed instance is a no-op.
func (p *Pool) Release(r rune) (int, bool) {
	u := unicode.ToUpper(r)
	for i, l := range p.letters {
		if unicode.ToUpper(l) == u && p.consumed[i] {
			delete(p.consumed, i)
			return i, true
		}
	}
	return -1, false
}

// Reset clears the consumed marking.
func (p *Pool) Reset() {
	clear(p.consumed)
}

// Consumed returns the consumed positions in ascending order.
func (p *Pool) Consumed() []int {
	out := make([]int, 0, len(p.consumed))
	for i := range p.letters {
		if p.consumed[i] {
			out = append(out, i)
		}
	}
	return out
}

// ConsumedCount returns the number of consumed positions.
func (p *Pool) ConsumedCount() int {
	return len(p.consumed)
}
