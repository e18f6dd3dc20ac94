package editor

import "testing"

func TestKeyFromByte_Printable(t *testing.T) {
	k := keyFromByte('a')
	if k.kind != keyRune || k.r != 'a' {
		t.Fatalf("expected rune key 'a', got %+v", k)
	}
}

func TestKeyFromByte_Controls(t *testing.T) {
	cases := map[byte]keyKind{
		0x03: keyCtrlC,
		0x0D: keyEnter,
		0x0A: keyEnter,
		0x7F: keyBackspace,
		0x08: keyBackspace,
		0x09: keyTab,
		0x01: keyNone,
	}
	for b, want := range cases {
		if got := keyFromByte(b).kind; got != want {
			t.Fatalf("byte 0x%02X: expected kind %d, got %d", b, want, got)
		}
	}
}

func TestParseEscape_BareEscape(t *testing.T) {
	consumed, k := parseEscape(nil)
	if consumed != 0 || k.kind != keyEscape {
		t.Fatalf("expected bare escape, got consumed=%d kind=%d", consumed, k.kind)
	}
}

func TestParseEscape_ArrowUp(t *testing.T) {
	consumed, k := parseEscape([]byte("[A"))
	if k.kind != keyUp {
		t.Fatalf("expected up, got kind %d", k.kind)
	}
	if consumed != 2 {
		t.Fatalf("expected 2 bytes consumed, got %d", consumed)
	}
}

func TestParseEscape_ArrowDown(t *testing.T) {
	_, k := parseEscape([]byte("[B"))
	if k.kind != keyDown {
		t.Fatalf("expected down, got kind %d", k.kind)
	}
}

func TestParseEscape_SS3Arrows(t *testing.T) {
	if _, k := parseEscape([]byte("OA")); k.kind != keyUp {
		t.Fatalf("expected SS3 up, got kind %d", k.kind)
	}
	if _, k := parseEscape([]byte("OB")); k.kind != keyDown {
		t.Fatalf("expected SS3 down, got kind %d", k.kind)
	}
}

func TestParseEscape_UnrelatedCSIIgnored(t *testing.T) {
	consumed, k := parseEscape([]byte("[3~"))
	if k.kind != keyNone {
		t.Fatalf("expected ignored key, got kind %d", k.kind)
	}
	if consumed != 3 {
		t.Fatalf("expected 3 bytes consumed, got %d", consumed)
	}
}

func TestParseEscape_UnrelatedByteLeavesItForCaller(t *testing.T) {
	consumed, k := parseEscape([]byte("x"))
	if consumed != 0 || k.kind != keyEscape {
		t.Fatalf("expected escape with 0 consumed, got consumed=%d kind=%d", consumed, k.kind)
	}
}
