package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// New returns a logrus logger writing prefixed text to out at the given
// level. A nil writer falls back to stderr so stdout stays free for command
// output.
func New(out io.Writer, level string) (*logrus.Logger, error) {
	if out == nil {
		out = os.Stderr
	}

	logger := logrus.New()
	logger.Out = out
	logger.Formatter = &prefixed.TextFormatter{FullTimestamp: true}
	logger.Level = logrus.InfoLevel

	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		logger.Level = parsed
	}
	return logger, nil
}
