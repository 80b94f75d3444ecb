package erase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSGRMousePress(t *testing.T) {
	n, ev := ParseEvent([]byte("\x1b[<0;11;21M"))
	assert.Equal(t, 11, n)
	assert.Equal(t, EventMouse, ev.Kind)
	assert.Equal(t, MousePress, ev.Action)
	assert.Equal(t, ButtonLeft, ev.Button)
	assert.Equal(t, 10, ev.X, "terminal columns are 1-based")
	assert.Equal(t, 20, ev.Y)
	assert.True(t, ev.IsClick())
}

func TestParseSGRMouseRelease(t *testing.T) {
	n, ev := ParseEvent([]byte("\x1b[<0;1;1m"))
	assert.Equal(t, 9, n)
	assert.Equal(t, MouseRelease, ev.Action)
	assert.Equal(t, 0, ev.X)
	assert.Equal(t, 0, ev.Y)
	assert.False(t, ev.IsClick())
}

func TestParseSGRMouseMotion(t *testing.T) {
	// 35 = motion (32) with no button (3)
	_, ev := ParseEvent([]byte("\x1b[<35;5;7M"))
	assert.Equal(t, MouseMotion, ev.Action)
	assert.Equal(t, ButtonNone, ev.Button)
	assert.Equal(t, 4, ev.X)
	assert.Equal(t, 6, ev.Y)

	// 32 = drag with the left button held
	_, ev = ParseEvent([]byte("\x1b[<32;2;2M"))
	assert.Equal(t, MouseMotion, ev.Action)
	assert.Equal(t, ButtonLeft, ev.Button)
	assert.False(t, ev.IsClick())
}

func TestParseSGRMouseModifiersAndWheel(t *testing.T) {
	_, ev := ParseEvent([]byte("\x1b[<20;3;3M"))
	assert.Equal(t, ModShift|ModCtrl, ev.Modifiers)
	_, ev = ParseEvent([]byte("\x1b[<64;3;3M"))
	assert.Equal(t, MouseWheel, ev.Action)
}

func TestParseIncompleteSequences(t *testing.T) {
	for _, s := range []string{
		"",
		"\x1b",
		"\x1b[",
		"\x1b[<",
		"\x1b[<0;12",
		"\x1b[<0;12;4",
		"\x1b[1;5",
		"\xc3", // first byte of a two byte rune
	} {
		n, _ := ParseEvent([]byte(s))
		assert.Zero(t, n, "%q", s)
	}
}

func TestParseTwoEventsInOneBuffer(t *testing.T) {
	buf := []byte("\x1b[<35;5;5M\x1b[<0;6;6M")
	n, first := ParseEvent(buf)
	assert.Equal(t, MouseMotion, first.Action)
	n2, second := ParseEvent(buf[n:])
	assert.Equal(t, len(buf), n+n2)
	assert.True(t, second.IsClick())
	assert.Equal(t, 5, second.X)
}

func TestParseKeys(t *testing.T) {
	cases := []struct {
		in  string
		key int
		n   int
	}{
		{"\x1b[A", KeyUp, 3},
		{"\x1b[B", KeyDown, 3},
		{"\x1b[C", KeyRight, 3},
		{"\x1b[D", KeyLeft, 3},
		{"\x1bOA", KeyUp, 3},
		{"\x1b[3~", KeyDelete, 4},
		{"\x1b[5~", KeyPageUp, 4},
		{"\r", KeyEnter, 1},
		{"\n", KeyEnter, 1},
		{"\x7f", KeyBackspace, 1},
		{"\x03", KeyCtrlC, 1},
		{"q", 'q', 1},
		{" ", KeySpace, 1},
		{"ø", 'ø', 2},
	}
	for _, c := range cases {
		n, ev := ParseEvent([]byte(c.in))
		assert.Equal(t, c.n, n, "%q", c.in)
		assert.Equal(t, EventKey, ev.Kind, "%q", c.in)
		assert.Equal(t, c.key, ev.Key, "%q", c.in)
	}
}

func TestParseModifiedArrow(t *testing.T) {
	n, ev := ParseEvent([]byte("\x1b[1;5C"))
	assert.Equal(t, 6, n)
	assert.Equal(t, KeyRight, ev.Key)
	assert.Equal(t, ModCtrl, ev.Modifiers)
}

func TestParseAltKey(t *testing.T) {
	n, ev := ParseEvent([]byte("\x1bx"))
	assert.Equal(t, 2, n)
	assert.Equal(t, 'x', ev.Rune)
	assert.Equal(t, ModAlt, ev.Modifiers&ModAlt)
}

func TestParseUnknownSequenceIsSkipped(t *testing.T) {
	n, ev := ParseEvent([]byte("\x1b[99zq"))
	assert.Equal(t, 5, n)
	assert.Equal(t, EventNone, ev.Kind)
}

func TestQuitKeys(t *testing.T) {
	for _, s := range []string{"q", "Q", "\x03", "\x1b\x1b"} {
		_, ev := ParseEvent([]byte(s))
		assert.True(t, ev.IsQuit(), "%q", s)
	}
	_, ev := ParseEvent([]byte("x"))
	assert.False(t, ev.IsQuit())
	_, ev = ParseEvent([]byte("\x1b[<0;1;1M"))
	assert.False(t, ev.IsQuit())
}

func TestEventString(t *testing.T) {
	_, ev := ParseEvent([]byte("\x1b[<0;3;4M"))
	assert.Equal(t, "mouse press button=0 at 2,3", ev.String())
	_, ev = ParseEvent([]byte("\x1b[A"))
	assert.Equal(t, "key ↑", ev.String())
	_, ev = ParseEvent([]byte("a"))
	assert.Equal(t, `key 'a'`, ev.String())
}
