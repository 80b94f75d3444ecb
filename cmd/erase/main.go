package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mgutz/ansi"
	"github.com/xyproto/erase"
)

const helpBanner = `
┌─┐┬─┐┌─┐┌─┐┌─┐
├┤ ├┬┘├─┤└─┐├┤
└─┘┴└─┴ ┴└─┘└─┘

Drag the eraser over the grid to blank it out.
    Version: %s

Click to place the eraser, then move the mouse (or use the arrow keys).
Press q, Esc or Ctrl-C to quit.

`

// Version indicates the current build version.
var Version = "1.0.0"

var (
	width        = flag.Int("width", 0, "Canvas width in columns (0 for the terminal width)")
	height       = flag.Int("height", 0, "Canvas height in rows (0 for the terminal height)")
	cellSize     = flag.Int("cell", erase.DefaultCellSize, "Cell size")
	eraserSize   = flag.Int("eraser", erase.DefaultEraserSize, "Eraser size")
	interval     = flag.Duration("interval", erase.DefaultInterval, "Delay between eraser updates")
	fillColor    = flag.String("fill", "blue", "Cell color")
	outlineColor = flag.String("outline", "black", "Cell outline color")
	blankColor   = flag.String("blank", "white", "Color of erased cells")
	penColor     = flag.String("pen", "lightmagenta", "Eraser color")
	logFile      = flag.String("log", "", "Append log entries to this file")
	envFile      = flag.String("env", erase.DefaultEnvFile, "Optional file with ERASE_* settings")
	version      = flag.Bool("version", false, "Show version and exit")
)

var errorStyle = ansi.ColorFunc("red+b")

func fail(err error) {
	fmt.Fprintln(os.Stderr, errorStyle("erase: "+err.Error()))
	os.Exit(1)
}

// applyFlags overrides the loaded configuration with the flags that were
// given on the command line.
func applyFlags(cfg erase.Config) erase.Config {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "cell":
			cfg.CellSize = *cellSize
		case "eraser":
			cfg.EraserSize = *eraserSize
		case "interval":
			cfg.Interval = *interval
		case "fill":
			cfg.FillColor = *fillColor
		case "outline":
			cfg.OutlineColor = *outlineColor
		case "blank":
			cfg.BlankColor = *blankColor
		case "pen":
			cfg.EraserColor = *penColor
		case "log":
			cfg.LogFile = *logFile
		}
	})
	return cfg
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println("erase " + Version)
		return
	}

	cfg, err := erase.LoadConfig(*envFile)
	if err != nil {
		fail(err)
	}
	cfg = applyFlags(cfg)

	if !erase.IsTerminal() {
		fail(erase.ErrNotATerminal)
	}
	termWidth, termHeight := erase.MustTermSize()
	cfg = cfg.Resolve(termWidth, termHeight)
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	log, closeLog, err := erase.NewLogger(cfg.LogFile)
	if err != nil {
		fail(err)
	}
	defer closeLog()
	log.WithFields(cfg.Fields()).Info("starting")
	cfg.WarnLowContrast(log)

	tty, err := erase.NewTTY()
	if err != nil {
		closeLog()
		fail(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	input := erase.NewInput(tty, cancel)
	input.SetBounds(erase.Rect(0, 0, cfg.Width, cfg.Height))

	canvas := erase.NewCanvas(termWidth, termHeight)
	session, err := erase.NewSession(cfg, canvas, input, log)
	if err != nil {
		cancel()
		tty.Close()
		closeLog()
		fail(err)
	}

	terminal := erase.NewTerminal(os.Stdout)
	if err := terminal.Init(); err != nil {
		terminal.Close()
		cancel()
		tty.Close()
		closeLog()
		fail(err)
	}

	input.Start(ctx)
	runErr := session.Run(ctx)

	// Let the reader notice the cancellation before the terminal is restored
	cancel()
	select {
	case <-input.Done():
	case <-time.After(time.Second):
		log.Warn("input reader did not stop in time")
	}
	terminal.Close()
	tty.Close()

	if runErr != nil {
		log.WithError(runErr).Error("session failed")
		closeLog()
		fail(runErr)
	}
	fmt.Printf("erased %d of %d cells\n", session.Erased(), len(session.Cells()))
}
