package erase

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xyproto/env/v2"
)

// Default settings
const (
	DefaultCellSize   = 2
	DefaultEraserSize = 2
	DefaultInterval   = 50 * time.Millisecond
	DefaultEnvFile    = ".env"
)

// Config holds everything that can be tuned without recompiling.
type Config struct {
	Width      int // 0 means the terminal width
	Height     int // 0 means the terminal height, minus the status bar
	CellSize   int
	EraserSize int
	Interval   time.Duration

	FillColor    string
	OutlineColor string
	BlankColor   string
	EraserColor  string
	LightTheme   bool

	LogFile string
}

// Palette holds the resolved colors of a Config.
type Palette struct {
	Fill    AttributeColor
	Outline AttributeColor
	Blank   AttributeColor
	Eraser  AttributeColor
}

// DefaultConfig returns a blue grid with black outlines, a white blank
// color and a pink eraser.
func DefaultConfig() Config {
	return Config{
		CellSize:     DefaultCellSize,
		EraserSize:   DefaultEraserSize,
		Interval:     DefaultInterval,
		FillColor:    "blue",
		OutlineColor: "black",
		BlankColor:   "white",
		EraserColor:  "lightmagenta",
	}
}

// LoadConfig returns the default configuration overridden by the optional
// envFile (missing files are skipped) and then by ERASE_* environment variables.
func LoadConfig(envFile string) (Config, error) {
	cfg := DefaultConfig()
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, errors.Wrapf(err, "load %s", envFile)
		}
	}

	var err error
	if cfg.Width, err = envInt("ERASE_WIDTH", cfg.Width); err != nil {
		return cfg, err
	}
	if cfg.Height, err = envInt("ERASE_HEIGHT", cfg.Height); err != nil {
		return cfg, err
	}
	if cfg.CellSize, err = envInt("ERASE_CELL_SIZE", cfg.CellSize); err != nil {
		return cfg, err
	}
	if cfg.EraserSize, err = envInt("ERASE_ERASER_SIZE", cfg.EraserSize); err != nil {
		return cfg, err
	}
	ms, err := envInt("ERASE_INTERVAL_MS", int(cfg.Interval/time.Millisecond))
	if err != nil {
		return cfg, err
	}
	cfg.Interval = time.Duration(ms) * time.Millisecond

	cfg.FillColor = env.Str("ERASE_FILL", cfg.FillColor)
	cfg.OutlineColor = env.Str("ERASE_OUTLINE", cfg.OutlineColor)
	cfg.BlankColor = env.Str("ERASE_BLANK", cfg.BlankColor)
	cfg.EraserColor = env.Str("ERASE_PEN", cfg.EraserColor)
	cfg.LightTheme = env.Bool("ERASE_LIGHT")
	cfg.LogFile = env.Str("ERASE_LOG", cfg.LogFile)
	return cfg, nil
}

// envInt reads an integer environment variable, rejecting values that are
// set but not numbers.
func envInt(name string, defaultValue int) (int, error) {
	if !env.Has(name) {
		return defaultValue, nil
	}
	s := strings.TrimSpace(env.Str(name))
	n, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue, errors.Wrapf(ErrInvalidConfig, "%s must be a whole number, got %q", name, s)
	}
	return n, nil
}

// Resolve fills in a zero width or height from the terminal size.
// One row is kept free for the status bar.
func (cfg Config) Resolve(termWidth, termHeight uint) Config {
	if cfg.Width == 0 {
		cfg.Width = int(termWidth)
	}
	if cfg.Height == 0 {
		cfg.Height = int(termHeight) - 1
	}
	return cfg
}

// Grid returns the grid described by the configuration.
func (cfg Config) Grid(p Palette) Grid {
	return Grid{
		Width:    cfg.Width,
		Height:   cfg.Height,
		CellSize: cfg.CellSize,
		Fill:     p.Fill,
		Outline:  p.Outline,
	}
}

// Palette resolves the color names.
func (cfg Config) Palette() (Palette, error) {
	var (
		p   Palette
		err error
	)
	if p.Fill, err = ColorByName(cfg.FillColor, cfg.LightTheme); err != nil {
		return p, errors.Wrap(err, "fill color")
	}
	if p.Outline, err = ColorByName(cfg.OutlineColor, cfg.LightTheme); err != nil {
		return p, errors.Wrap(err, "outline color")
	}
	if p.Blank, err = ColorByName(cfg.BlankColor, cfg.LightTheme); err != nil {
		return p, errors.Wrap(err, "blank color")
	}
	if p.Eraser, err = ColorByName(cfg.EraserColor, cfg.LightTheme); err != nil {
		return p, errors.Wrap(err, "eraser color")
	}
	return p, nil
}

// Validate checks that every size is positive, the eraser fits on the
// canvas and every color name is known.
func (cfg Config) Validate() error {
	var problems []string
	if cfg.Width <= 0 || cfg.Height <= 0 {
		problems = append(problems, "canvas size must be positive, got "+strconv.Itoa(cfg.Width)+"x"+strconv.Itoa(cfg.Height))
	}
	if cfg.CellSize <= 0 {
		problems = append(problems, "cell size must be positive, got "+strconv.Itoa(cfg.CellSize))
	} else if cfg.Width > 0 && cfg.Height > 0 && (cfg.CellSize > cfg.Width || cfg.CellSize > cfg.Height) {
		problems = append(problems, "cell size "+strconv.Itoa(cfg.CellSize)+" does not fit on the canvas")
	}
	if cfg.EraserSize <= 0 {
		problems = append(problems, "eraser size must be positive, got "+strconv.Itoa(cfg.EraserSize))
	} else if cfg.Width > 0 && cfg.Height > 0 && (cfg.EraserSize > cfg.Width || cfg.EraserSize > cfg.Height) {
		problems = append(problems, "eraser size "+strconv.Itoa(cfg.EraserSize)+" does not fit on the canvas")
	}
	if cfg.Interval <= 0 {
		problems = append(problems, "interval must be positive, got "+cfg.Interval.String())
	}
	if _, err := cfg.Palette(); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return errors.Wrap(ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// WarnLowContrast logs a warning when erased cells are hard to tell apart
// from filled ones.
func (cfg Config) WarnLowContrast(log logrus.FieldLogger) {
	p, err := cfg.Palette()
	if err != nil {
		return
	}
	if LowContrast(p.Blank, p.Fill.Background(), cfg.LightTheme) {
		log.WithFields(logrus.Fields{
			"fill":  cfg.FillColor,
			"blank": cfg.BlankColor,
		}).Warn("blank and fill colors are hard to tell apart")
	}
}

// Fields returns the configuration as log fields.
func (cfg Config) Fields() logrus.Fields {
	return logrus.Fields{
		"width":    cfg.Width,
		"height":   cfg.Height,
		"cell":     cfg.CellSize,
		"eraser":   cfg.EraserSize,
		"interval": cfg.Interval,
		"fill":     cfg.FillColor,
		"outline":  cfg.OutlineColor,
		"blank":    cfg.BlankColor,
		"pen":      cfg.EraserColor,
		"light":    cfg.LightTheme,
	}
}
