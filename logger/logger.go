package logger

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
)

var (
	log zerolog.Logger

	// ErrorsFieldName is the field used for a []error argument.
	ErrorsFieldName = "errors"

	EmptyMessage = ""
)

// Builder lets callers append fields directly to the event.
type Builder func(event *zerolog.Event)

func Log() *zerolog.Logger {
	return &log
}

func init() {
	setCallerFormatter()

	// Quiet by default; the generators only log lifecycle events.
	SetConsoleWriter()
	SetLevel(zerolog.WarnLevel)
}

func setCallerFormatter() {
	_, file, _, _ := runtime.Caller(0)
	prefix := path.Dir(path.Dir(file))
	if len(prefix) > 0 && prefix[len(prefix)-1] != os.PathSeparator {
		prefix += "/"
	}

	zerolog.CallerMarshalFunc = func(file string, line int) string {
		if prefix == "" {
			return fmt.Sprintf("%s:%d", file, line)
		}
		index := strings.Index(file, prefix)
		if index > -1 {
			file = file[index+len(prefix):]
		}
		return fmt.Sprintf("%s:%d", file, line)
	}
}

func SetWriter(w io.Writer) {
	log = zerolog.New(w).Level(log.GetLevel())
}

func SetLogger(logger zerolog.Logger) {
	log = logger
}

// SetLevel sets the minimum level of the package logger.
func SetLevel(level zerolog.Level) {
	log = log.Level(level)
}

// ParseLevel accepts zerolog level names plus "silent".
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(s) {
	case "silent", "off":
		return zerolog.Disabled, nil
	case "verb", "verbose":
		return zerolog.TraceLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(s))
}

// doLog treats args as alternating key/value pairs. A leading error is
// attached with Err, and a trailing lone string becomes the message.
func doLog(skip int, event *zerolog.Event, args []interface{}) {
	if event == nil {
		return
	}
	event.Timestamp()
	event.Caller(skip)

	if len(args) == 0 {
		event.Msg(EmptyMessage)
		return
	}

	if err, ok := args[0].(error); ok {
		event.Err(err)
		args = args[1:]
	}

	for i := 0; i < len(args); i += 2 {
		switch k := args[i].(type) {
		case string:
			if i+1 == len(args) {
				event.Msg(k)
				return
			}
			switch v := args[i+1].(type) {
			case string:
				event.Str(k, v)
			case int:
				event.Int(k, v)
			case uint32:
				event.Uint32(k, v)
			case uint64:
				event.Uint64(k, v)
			case float64:
				event.Float64(k, v)
			case bool:
				event.Bool(k, v)
			case error:
				event.AnErr(k, v)
			case Builder:
				v(event)
			default:
				event.Interface(k, v)
			}
		case []error:
			event.Errs(ErrorsFieldName, k)
			i--
		case Builder:
			k(event)
			i--
		default:
			i--
		}
	}

	event.Msg(EmptyMessage)
}

// Trace logs a message at level Trace on the standard logger.
func Trace(args ...interface{}) {
	doLog(2, log.Trace(), args)
}

// Debug logs a message at level Debug on the standard logger.
func Debug(args ...interface{}) {
	doLog(2, log.Debug(), args)
}

// Info logs a message at level Info on the standard logger.
func Info(args ...interface{}) {
	doLog(2, log.Info(), args)
}

// Warn logs a message at level Warn on the standard logger.
func Warn(args ...interface{}) {
	doLog(2, log.Warn(), args)
}

// WarnErr logs a message at level Warn with err attached.
func WarnErr(err error, args ...interface{}) {
	doLog(2, log.Warn().Err(err), args)
}

// Error logs a message at level Error on the standard logger.
func Error(err error, args ...interface{}) {
	doLog(2, log.Error().Err(err), args)
}
