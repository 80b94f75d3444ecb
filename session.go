package erase

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Status bar colors
var (
	StatusText       = Black
	StatusBackground = LightGray
	StatusDone       = Green
)

// Session is one run of the eraser program: a grid of cells on a canvas,
// an eraser following the pointer and the loop that ties them together.
type Session struct {
	cfg     Config
	palette Palette
	log     logrus.FieldLogger

	reg     *Registry
	canvas  *Canvas
	pointer Pointer

	cells  []ShapeID
	eraser *Eraser
	erased int
}

// NewSession validates cfg and builds the grid. The canvas must be at
// least as large as the configured grid area.
func NewSession(cfg Config, canvas *Canvas, pointer Pointer, log logrus.FieldLogger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	s := &Session{
		cfg:     cfg,
		palette: palette,
		log:     log,
		reg:     NewRegistry(),
		canvas:  canvas,
		pointer: pointer,
	}
	g := cfg.Grid(palette)
	if s.cells, err = BuildGrid(s.reg, g); err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"rows":    g.Rows(),
		"columns": g.Columns(),
		"cells":   len(s.cells),
	}).Info("grid built")
	return s, nil
}

// Registry returns the shapes on the canvas.
func (s *Session) Registry() *Registry {
	return s.reg
}

// Cells returns the ids of the grid cells, row by row.
func (s *Session) Cells() []ShapeID {
	return s.cells
}

// Eraser returns the eraser, or nil before it has been placed.
func (s *Session) Eraser() *Eraser {
	return s.eraser
}

// Erased returns how many cells have the blank color.
func (s *Session) Erased() int {
	return s.reg.CountFill(s.cells, s.palette.Blank)
}

// Place waits for the first click and puts the eraser there.
func (s *Session) Place(ctx context.Context) error {
	if s.eraser != nil {
		return nil
	}
	if err := s.Render(); err != nil {
		s.log.WithError(err).Warn("could not draw the canvas")
	}
	e, err := PlaceEraser(ctx, s.reg, s.pointer, s.cfg.EraserSize, s.palette.Eraser, s.palette.Blank)
	if err != nil {
		return err
	}
	s.eraser = e
	b := e.Bounds()
	s.log.WithFields(logrus.Fields{"x": b.Left, "y": b.Top}).Info("eraser placed")
	return nil
}

// Tick moves the eraser to the pointer, erases what it touches and draws
// the result.
func (s *Session) Tick() error {
	if s.eraser == nil {
		return errors.New("the eraser has not been placed")
	}
	x, y := s.pointer.Position()
	n, err := s.eraser.Step(s.reg, x, y)
	if err != nil {
		return err
	}
	if n > 0 {
		s.erased = s.Erased()
		s.log.WithFields(logrus.Fields{"x": x, "y": y, "hit": n, "erased": s.erased}).Debug("erase")
	}
	if err := s.Render(); err != nil {
		// The next tick draws again
		s.log.WithError(err).Warn("could not draw the canvas")
	}
	return nil
}

// Render paints the registry and the status bar and draws the canvas.
func (s *Session) Render() error {
	s.canvas.Paint(s.reg, DefaultBackground)
	s.drawStatus()
	_, err := s.canvas.Draw()
	return err
}

func (s *Session) status() string {
	total := len(s.cells)
	switch {
	case s.eraser == nil:
		return " click to place the eraser · q quits"
	case s.erased == total:
		return fmt.Sprintf(" all clear! %d/%d · q quits", s.erased, total)
	}
	return fmt.Sprintf(" erased %d/%d · q quits", s.erased, total)
}

func (s *Session) drawStatus() {
	w, h := s.canvas.Size()
	y := uint(s.cfg.Height)
	if y >= h {
		return
	}
	fg := StatusText
	if s.eraser != nil && s.erased == len(s.cells) {
		fg = StatusDone
	}
	text := s.status()
	if pad := int(w) - len([]rune(text)); pad > 0 {
		text += fmt.Sprintf("%*s", pad, "")
	}
	s.canvas.WriteString(0, y, fg, StatusBackground, text)
}

// Run places the eraser and then moves it with the pointer every
// configured interval until ctx is done. A cancelled context is a normal
// end and returns nil.
func (s *Session) Run(ctx context.Context) error {
	start := time.Now()
	resize := make(chan os.Signal, 1)
	SetupResizeHandler(resize)
	defer signal.Stop(resize)

	if err := s.Place(ctx); err != nil {
		if ctx.Err() != nil {
			s.log.Info("quit before the eraser was placed")
			return nil
		}
		return err
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.WithFields(logrus.Fields{
				"erased":   s.Erased(),
				"cells":    len(s.cells),
				"duration": time.Since(start).Round(time.Millisecond),
			}).Info("session ended")
			return nil
		case <-resize:
			w, h := MustTermSize()
			s.canvas.Resize(w, h)
			s.log.WithFields(logrus.Fields{"width": w, "height": h}).Info("terminal resized")
			if err := s.Render(); err != nil {
				s.log.WithError(err).Warn("could not draw the canvas")
			}
		case <-ticker.C:
			if err := s.Tick(); err != nil {
				return err
			}
		}
	}
}
