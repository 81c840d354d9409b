package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

type StderrHook struct{}

func (h *StderrHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.WarnLevel, logrus.ErrorLevel, logrus.FatalLevel}
}

func (h *StderrHook) Fire(entry *logrus.Entry) error {
	entry.Logger.Out = os.Stderr
	return nil
}

// SetupLogger routes logs to stdout with warnings and above mirrored to
// stderr. An unparseable level falls back to info.
func SetupLogger(level string) {
	logrus.SetOutput(os.Stdout)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	hook := &StderrHook{}
	logrus.AddHook(hook)
}
