// Package logging sets up the developer-facing log file. The terminal
// itself belongs to the UI, so nothing is ever written to stdout.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const logFileName = "adminforge.log"

// New returns a logger writing to ~/.config/adminforge/adminforge.log.
// When the file cannot be opened the logger discards output rather than
// corrupting the TUI.
func New() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	if os.Getenv("ADMINFORGE_DEBUG") != "" {
		log.SetLevel(logrus.DebugLevel)
	}

	log.SetOutput(io.Discard)
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return log
	}
	dir := filepath.Join(homeDir, ".config", "adminforge")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return log
	}
	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return log
	}
	log.SetOutput(f)
	return log
}
