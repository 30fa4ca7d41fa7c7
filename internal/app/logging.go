package app

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// OpenLog returns a logger writing to path, for use while the viewer owns
// the terminal. An empty path discards logs. The returned close function
// must be called on exit.
func OpenLog(path string) (logr.Logger, func() error, error) {
	if path == "" {
		return logr.Discard(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return logr.Discard(), nil, err
	}
	logger := stdr.New(log.New(f, "", log.LstdFlags)).WithName("mazegen")
	return logger, f.Close, nil
}
