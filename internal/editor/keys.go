package editor

type keyKind int

const (
	keyNone keyKind = iota
	keyRune
	keyEnter
	keyBackspace
	keyTab
	keyEscape
	keyUp
	keyDown
	keyCtrlC
)

type key struct {
	kind keyKind
	r    rune
}

// keyFromByte classifies a single non-escape input byte. Control bytes the
// editor does not handle decode to keyNone and are dropped.
func keyFromByte(b byte) key {
	switch b {
	case 0x03:
		return key{kind: keyCtrlC}
	case 0x0D, 0x0A:
		return key{kind: keyEnter}
	case 0x7F, 0x08:
		return key{kind: keyBackspace}
	case 0x09:
		return key{kind: keyTab}
	}
	if b >= 0x20 && b < 0x7F {
		return key{kind: keyRune, r: rune(b)}
	}
	return key{kind: keyNone}
}

// parseEscape decodes the bytes following an ESC (0x1B). It returns how
// many bytes were consumed and the decoded key. A lone ESC at the end of a
// read is the Escape key.
func parseEscape(remaining []byte) (consumed int, k key) {
	if len(remaining) == 0 {
		return 0, key{kind: keyEscape}
	}

	switch remaining[0] {
	case '[': // CSI sequence
		return parseCSI(remaining[1:])
	case 'O': // SS3 sequence (e.g. some function keys)
		if len(remaining) >= 2 {
			switch remaining[1] {
			case 'A':
				return 2, key{kind: keyUp}
			case 'B':
				return 2, key{kind: keyDown}
			}
			return 2, key{kind: keyNone}
		}
		return 1, key{kind: keyNone}
	}
	// ESC followed by an unrelated byte: treat as a bare Escape and leave
	// the byte for the caller to reprocess.
	return 0, key{kind: keyEscape}
}

// parseCSI decodes a CSI sequence (after ESC [).
// Parameter bytes: 0x30-0x3F, intermediate bytes: 0x20-0x2F,
// final byte: 0x40-0x7E.
func parseCSI(remaining []byte) (consumed int, k key) {
	if len(remaining) == 0 {
		return 1, key{kind: keyNone} // consumed the '['
	}

	i := 0
	for i < len(remaining) && remaining[i] >= 0x30 && remaining[i] <= 0x3F {
		i++ // parameter bytes
	}
	for i < len(remaining) && remaining[i] >= 0x20 && remaining[i] <= 0x2F {
		i++ // intermediate bytes
	}
	if i >= len(remaining) {
		return 1 + i, key{kind: keyNone} // incomplete sequence, skip what we have
	}

	final := remaining[i]
	totalConsumed := 1 + i + 1 // '[' + params/intermediates + final byte

	switch final {
	case 'A':
		return totalConsumed, key{kind: keyUp}
	case 'B':
		return totalConsumed, key{kind: keyDown}
	}
	// All other CSI sequences (left, right, home, etc.) are ignored.
	return totalConsumed, key{kind: keyNone}
}
