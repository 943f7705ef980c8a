package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logger writing to stderr so progress bars on stdout stay
// intact. Unknown level strings fall back to info.
func New(level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return l
}
