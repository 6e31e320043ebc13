package infra

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log output formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// NewLogger builds the process logger. level is a logrus level name
// ("debug", "info", ...); format is json or text.
func NewLogger(level, format string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	lvl := logrus.InfoLevel
	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}
	logger.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", LogFormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	case LogFormatText:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q: want json or text", format)
	}

	return logger, nil
}
