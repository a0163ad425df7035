package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It discards output until bootstrapped so
// packages can log from tests without setup.
var Log = &logrus.Logger{
	Out:       io.Discard,
	Formatter: &logrus.TextFormatter{},
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.InfoLevel,
	ExitFunc:  os.Exit,
}

// BootstrapLogger points Log at stderr with the named level. Unknown levels
// fall back to info.
func BootstrapLogger(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	Log = &logrus.Logger{
		Out:   os.Stderr,
		Hooks: make(logrus.LevelHooks),
		Formatter: &logrus.TextFormatter{
			DisableQuote:  false,
			FullTimestamp: true,
		},
		ReportCaller: lvl >= logrus.DebugLevel,
		Level:        lvl,
		ExitFunc:     os.Exit,
	}

	if err != nil {
		Log.Warnf("unknown log level %q, using %s", level, lvl)
	}
}
