package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

type Level logging.Level

// Verbosity levels accepted by SetLevel.
const (
	Debug Level = iota
	Info
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{module} %{level:.4s}%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is the leveled logging interface handed out to the rest of the
// renderer. It is satisfied by go-logging's named loggers.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns a named logger.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all logger output to the given writer.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	withFormat := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(withFormat)
	leveledBackend.SetLevel(logging.WARNING, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel adjusts the global verbosity.
func SetLevel(level Level) {
	var l logging.Level
	switch level {
	case Debug:
		l = logging.DEBUG
	case Info:
		l = logging.INFO
	case Warning:
		l = logging.WARNING
	case Error:
		l = logging.ERROR
	}
	leveledBackend.SetLevel(l, "")
}

// The default is Warning so normal runs stay quiet; -v raises to Info
// and -vv to Debug.
func init() {
	SetSink(os.Stderr)
	SetLevel(Warning)
}
