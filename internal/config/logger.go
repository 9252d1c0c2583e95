package config

import (
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// NewLogger builds the process logger from the log section. Unknown levels
// fall back to warn so a typo never silences errors.
func NewLogger(cfg Log, out io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.WarnLevel
	}
	logger.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}
	return logger
}
