package erase

import (
	"context"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// Input decodes terminal input in a background goroutine and keeps track
// of where the pointer is. It implements Pointer.
type Input struct {
	src    io.Reader
	onQuit func()

	events chan Event
	clicks chan Event
	done   chan struct{}

	mut    sync.RWMutex
	x, y   int
	bounds Box // the pointer is kept inside when moved by keys
	err    error
}

// NewInput reads events from src, which should return (0, nil) when no
// input is available yet. onQuit, if not nil, is called for q, Esc and Ctrl-C.
func NewInput(src io.Reader, onQuit func()) *Input {
	return &Input{
		src:    src,
		onQuit: onQuit,
		events: make(chan Event, 128),
		clicks: make(chan Event, 16),
		done:   make(chan struct{}),
	}
}

// SetBounds limits keyboard pointer movement to the given area.
func (in *Input) SetBounds(b Box) {
	in.mut.Lock()
	defer in.mut.Unlock()
	in.bounds = b
}

// Start launches the reader goroutine. It stops when ctx is done or the
// source fails.
func (in *Input) Start(ctx context.Context) {
	go in.run(ctx)
}

// Events returns every decoded event. Events are dropped when nobody keeps up.
func (in *Input) Events() <-chan Event {
	return in.events
}

// Done is closed when the reader goroutine has stopped.
func (in *Input) Done() <-chan struct{} {
	return in.done
}

// Err returns the error that stopped the reader, if any.
func (in *Input) Err() error {
	in.mut.RLock()
	defer in.mut.RUnlock()
	return in.err
}

// Position returns the last known pointer position.
func (in *Input) Position() (int, int) {
	in.mut.RLock()
	defer in.mut.RUnlock()
	return in.x, in.y
}

// WaitForClick blocks until the next left click, or Enter/Space.
func (in *Input) WaitForClick(ctx context.Context) (int, int, error) {
	select {
	case ev := <-in.clicks:
		return ev.X, ev.Y, nil
	case <-ctx.Done():
		return 0, 0, ctx.Err()
	case <-in.done:
		select {
		case ev := <-in.clicks:
			return ev.X, ev.Y, nil
		default:
		}
		if err := in.Err(); err != nil {
			return 0, 0, err
		}
		return 0, 0, io.EOF
	}
}

func (in *Input) run(ctx context.Context) {
	defer close(in.done)
	buf := make([]byte, 256)
	var pending []byte
	for ctx.Err() == nil {
		n, err := in.src.Read(buf)
		if err != nil {
			in.flushEsc(pending)
			if !errors.Is(err, io.EOF) {
				err = errors.Wrap(err, "read input")
			}
			in.mut.Lock()
			in.err = err
			in.mut.Unlock()
			return
		}
		if n == 0 {
			// Nothing more arrived, so a held back ESC was the Esc key
			if in.flushEsc(pending) {
				pending = pending[:0]
			}
			continue
		}
		pending = in.feed(append(pending, buf[:n]...))
	}
}

// flushEsc handles pending as the Esc key if it is a lone ESC byte.
func (in *Input) flushEsc(pending []byte) bool {
	if len(pending) != 1 || pending[0] != KeyEsc {
		return false
	}
	in.handle(Event{Kind: EventKey, Key: KeyEsc})
	return true
}

// feed handles every complete event in data and returns what is left over.
// A trailing ESC is kept, since it may start a report that is still on its way.
func (in *Input) feed(data []byte) []byte {
	for len(data) > 0 {
		consumed, ev := ParseEvent(data)
		if consumed == 0 {
			break
		}
		data = data[consumed:]
		if ev.Kind != EventNone {
			in.handle(ev)
		}
	}
	rest := make([]byte, len(data))
	copy(rest, data)
	return rest
}

func (in *Input) handle(ev Event) {
	switch ev.Kind {
	case EventMouse:
		in.mut.Lock()
		in.x, in.y = ev.X, ev.Y
		in.mut.Unlock()
		if ev.IsClick() {
			in.click(ev)
		}
	case EventKey:
		switch ev.Key {
		case KeyLeft:
			in.nudge(-1, 0)
		case KeyRight:
			in.nudge(1, 0)
		case KeyUp:
			in.nudge(0, -1)
		case KeyDown:
			in.nudge(0, 1)
		case KeyEnter, KeySpace:
			x, y := in.Position()
			in.click(Event{Kind: EventMouse, Action: MousePress, Button: ButtonLeft, X: x, Y: y})
		}
		if ev.IsQuit() && in.onQuit != nil {
			in.onQuit()
		}
	}
	select {
	case in.events <- ev:
	default:
	}
}

func (in *Input) click(ev Event) {
	select {
	case in.clicks <- ev:
	default:
	}
}

// nudge moves the pointer by (dx, dy), staying inside the bounds if set.
func (in *Input) nudge(dx, dy int) {
	in.mut.Lock()
	defer in.mut.Unlock()
	x, y := in.x+dx, in.y+dy
	if !in.bounds.Empty() {
		x = min(max(x, in.bounds.Left), in.bounds.Right-1)
		y = min(max(y, in.bounds.Top), in.bounds.Bottom-1)
	}
	in.x, in.y = max(x, 0), max(y, 0)
}
