package erase

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger that appends to the file at path.
// The terminal belongs to the canvas, so with an empty path log entries
// are discarded. The returned close function must be called when done.
func NewLogger(path string) (*logrus.Logger, func() error, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	if path == "" {
		log.SetOutput(io.Discard)
		return log, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log file")
	}
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	return log, f.Close, nil
}
