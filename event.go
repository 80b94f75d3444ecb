package erase

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Key constants. Printable keys use their rune value.
const (
	KeyCtrlC     = 3
	KeyTab       = 9
	KeyLineFeed  = 10
	KeyEnter     = 13
	KeyEsc       = 27
	KeySpace     = 32
	KeyBackspace = 127

	KeyLeft     = 1000
	KeyRight    = 1001
	KeyUp       = 1002
	KeyDown     = 1003
	KeyDelete   = 1004
	KeyHome     = 1005
	KeyEnd      = 1006
	KeyPageUp   = 1007
	KeyPageDown = 1008
)

// Modifiers
const (
	ModNone  = 0
	ModCtrl  = 1 << 0
	ModAlt   = 1 << 1
	ModShift = 1 << 2
)

// EventKind tells keyboard and mouse events apart.
type EventKind int

const (
	EventNone EventKind = iota
	EventKey
	EventMouse
)

// MouseAction is what happened to the mouse.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
	MouseWheel
)

// Mouse buttons, as reported in the low bits of an SGR button code.
const (
	ButtonLeft   = 0
	ButtonMiddle = 1
	ButtonRight  = 2
	ButtonNone   = 3
)

// Event is one decoded unit of terminal input.
type Event struct {
	Kind      EventKind
	Key       int  // for EventKey: one of the Key constants or a rune value
	Rune      rune // for printable keys
	X, Y      int  // for EventMouse: 0-based cell coordinates
	Button    int
	Action    MouseAction
	Modifiers int
}

// IsClick reports whether the event is a left button press.
func (ev Event) IsClick() bool {
	return ev.Kind == EventMouse && ev.Action == MousePress && ev.Button == ButtonLeft
}

// IsQuit reports whether the event asks the program to stop.
func (ev Event) IsQuit() bool {
	if ev.Kind != EventKey {
		return false
	}
	switch ev.Key {
	case KeyCtrlC, KeyEsc, 'q', 'Q':
		return true
	}
	return false
}

func (ev Event) String() string {
	switch ev.Kind {
	case EventKey:
		if ev.Rune != 0 {
			return fmt.Sprintf("key %q", ev.Rune)
		}
		if name, ok := keyNames[ev.Key]; ok {
			return "key " + name
		}
		return "key c:" + strconv.Itoa(ev.Key)
	case EventMouse:
		return fmt.Sprintf("mouse %s button=%d at %d,%d", actionNames[ev.Action], ev.Button, ev.X, ev.Y)
	}
	return "none"
}

var keyNames = map[int]string{
	KeyCtrlC:     "C-c",
	KeyTab:       "⇥",
	KeyEnter:     "⏎",
	KeyEsc:       "⎋",
	KeyBackspace: "⌫",
	KeyLeft:      "←",
	KeyRight:     "→",
	KeyUp:        "↑",
	KeyDown:      "↓",
	KeyDelete:    "⌦",
	KeyHome:      "⇱",
	KeyEnd:       "⇲",
	KeyPageUp:    "⇞",
	KeyPageDown:  "⇟",
}

var actionNames = map[MouseAction]string{
	MousePress:   "press",
	MouseRelease: "release",
	MouseMotion:  "motion",
	MouseWheel:   "wheel",
}

// Key codes for ESC [ x and ESC O x sequences
var csiLookup = map[byte]int{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// Key codes for ESC [ n ~ sequences
var tildeLookup = map[int]int{
	1: KeyHome,
	3: KeyDelete,
	4: KeyEnd,
	5: KeyPageUp,
	6: KeyPageDown,
	7: KeyHome,
	8: KeyEnd,
}

// maxSequence is the longest escape sequence ParseEvent waits for.
const maxSequence = 32

// ParseEvent decodes one event from the front of buf and returns how many
// bytes it used. A zero count means buf holds an incomplete sequence and
// more input is needed. Unrecognized sequences are consumed and returned
// as an EventNone event.
func ParseEvent(buf []byte) (int, Event) {
	if len(buf) == 0 {
		return 0, Event{}
	}
	if buf[0] == KeyEsc {
		return parseEscape(buf)
	}
	switch b := buf[0]; {
	case b == KeyEnter || b == KeyLineFeed:
		return 1, Event{Kind: EventKey, Key: KeyEnter}
	case b == KeyBackspace || b == 8:
		return 1, Event{Kind: EventKey, Key: KeyBackspace}
	case b < 32:
		return 1, Event{Kind: EventKey, Key: int(b), Modifiers: ModCtrl}
	}
	if !utf8.FullRune(buf) {
		return 0, Event{}
	}
	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		return size, Event{}
	}
	return size, Event{Kind: EventKey, Key: int(r), Rune: r}
}

func parseEscape(buf []byte) (int, Event) {
	if len(buf) < 2 {
		return 0, Event{}
	}
	switch buf[1] {
	case '[':
		return parseCSI(buf)
	case 'O':
		if len(buf) < 3 {
			return 0, Event{}
		}
		if key, ok := csiLookup[buf[2]]; ok {
			return 3, Event{Kind: EventKey, Key: key}
		}
		return 3, Event{}
	case KeyEsc:
		// ESC ESC: the first one stands on its own
		return 1, Event{Kind: EventKey, Key: KeyEsc}
	}
	// ESC followed by a plain key is Alt+key
	n, ev := ParseEvent(buf[1:])
	if n == 0 {
		return 0, Event{}
	}
	if ev.Kind == EventKey {
		ev.Modifiers |= ModAlt
	}
	return n + 1, ev
}

// parseCSI handles sequences starting with ESC [.
func parseCSI(buf []byte) (int, Event) {
	if len(buf) < 3 {
		return 0, Event{}
	}
	if buf[2] == '<' {
		return parseSGRMouse(buf)
	}
	if key, ok := csiLookup[buf[2]]; ok {
		return 3, Event{Kind: EventKey, Key: key}
	}
	// Parameter bytes are 0x30-0x3F, the final byte is 0x40-0x7E
	for i := 2; i < len(buf); i++ {
		b := buf[i]
		if b >= 0x30 && b <= 0x3F {
			continue
		}
		if b < 0x40 || b > 0x7E {
			// Not a valid sequence, drop the introducer
			return 2, Event{}
		}
		params := splitParams(buf[2:i])
		switch {
		case b == '~' && len(params) > 0:
			if key, ok := tildeLookup[params[0]]; ok {
				ev := Event{Kind: EventKey, Key: key}
				if len(params) > 1 {
					ev.Modifiers = xtermModifiers(params[1])
				}
				return i + 1, ev
			}
		case len(params) == 2 && params[0] == 1:
			// ESC [ 1 ; m X, a modified arrow/Home/End
			if key, ok := csiLookup[b]; ok {
				return i + 1, Event{Kind: EventKey, Key: key, Modifiers: xtermModifiers(params[1])}
			}
		}
		return i + 1, Event{}
	}
	if len(buf) >= maxSequence {
		return 2, Event{}
	}
	return 0, Event{}
}

// parseSGRMouse decodes ESC [ < b ; x ; y M (press/motion) or ... m (release).
func parseSGRMouse(buf []byte) (int, Event) {
	for i := 3; i < len(buf); i++ {
		b := buf[i]
		if (b >= '0' && b <= '9') || b == ';' {
			continue
		}
		if b != 'M' && b != 'm' {
			return i, Event{}
		}
		params := splitParams(buf[3:i])
		if len(params) != 3 {
			return i + 1, Event{}
		}
		code, x, y := params[0], params[1], params[2]
		ev := Event{
			Kind:   EventMouse,
			X:      max(x-1, 0),
			Y:      max(y-1, 0),
			Button: code & 3,
		}
		if code&4 != 0 {
			ev.Modifiers |= ModShift
		}
		if code&8 != 0 {
			ev.Modifiers |= ModAlt
		}
		if code&16 != 0 {
			ev.Modifiers |= ModCtrl
		}
		switch {
		case code&64 != 0:
			ev.Action = MouseWheel
		case code&32 != 0:
			ev.Action = MouseMotion
		case b == 'm':
			ev.Action = MouseRelease
		default:
			ev.Action = MousePress
		}
		return i + 1, ev
	}
	if len(buf) >= maxSequence {
		return 3, Event{}
	}
	return 0, Event{}
}

// splitParams parses the ;-separated decimal numbers of a sequence.
// Empty parameters count as 0.
func splitParams(b []byte) []int {
	if len(b) == 0 {
		return nil
	}
	var params []int
	n := 0
	for _, c := range b {
		if c == ';' {
			params = append(params, n)
			n = 0
			continue
		}
		if c >= '0' && c <= '9' {
			n = n*10 + int(c-'0')
		}
	}
	return append(params, n)
}

// xtermModifiers converts an xterm modifier parameter (1 + bitmask) to Mod flags.
func xtermModifiers(p int) int {
	if p <= 1 {
		return ModNone
	}
	bits := p - 1
	mods := ModNone
	if bits&1 != 0 {
		mods |= ModShift
	}
	if bits&2 != 0 {
		mods |= ModAlt
	}
	if bits&4 != 0 {
		mods |= ModCtrl
	}
	return mods
}
