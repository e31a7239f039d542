package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/neuronlabs/uni-logger"

	"github.com/maxgabut/pitest/class"
	"github.com/maxgabut/pitest/errors"
)

const (
	// LDEBUG3 is the logger DEBUG3 level.
	LDEBUG3 = unilogger.DEBUG3
	// LDEBUG2 is the logger DEBUG2 level.
	LDEBUG2 = unilogger.DEBUG2
	// LDEBUG is the logger DEBUG level.
	LDEBUG = unilogger.DEBUG
	// LINFO is the logger INFO level.
	LINFO = unilogger.INFO
	// LWARNING is the logger WARNING level.
	LWARNING = unilogger.WARNING
	// LERROR is the logger ERROR level.
	LERROR = unilogger.ERROR
	// LCRITICAL is the logger CRITICAL level.
	LCRITICAL = unilogger.CRITICAL
	// LUNKNOWN is the unspecified logger level.
	LUNKNOWN = unilogger.UNKNOWN
)

// outputDepth is the number of frames between the logging caller and the basic logger output.
const outputDepth = 5

var (
	std          *sink
	currentLevel = LINFO
)

// Default sets new unilogger.BasicLogger that writes to the 'os.Stderr'.
func Default() {
	New(os.Stderr, "", log.Ldate|log.Ltime|log.Lshortfile)
}

// New sets new unilogger.BasicLogger that writes to provided 'out' io.Writer
// with specific 'prefix' and provided 'flags'.
func New(out io.Writer, prefix string, flags int) {
	basic := unilogger.NewBasicLogger(out, prefix, flags)
	basic.SetOutputDepth(outputDepth)
	SetLogger(basic)
}

// SetLogger sets the 'logger' as the current logger. The modules that don't have their own
// logger get the sub loggers of the 'logger' if it is possible.
func SetLogger(logger unilogger.LeveledLogger) {
	std = newSink(logger)
	std.setLevel(currentLevel)

	for _, m := range modules {
		if m.sink == nil {
			m.sink = std.sub()
		}
		m.inherit(currentLevel)
		m.sink.setLevel(m.level)
	}
	Debugf("New logger set with level: %s", currentLevel)
}

// Logger returns current logger.
func Logger() unilogger.LeveledLogger {
	if std == nil {
		return nil
	}
	return std.logger
}

// Level returns current logger Level.
func Level() unilogger.Level {
	return currentLevel
}

// ParseLevel parses the level from its name i.e. 'debug3' or 'WARNING'.
// Returns LUNKNOWN for unsupported names.
func ParseLevel(level string) unilogger.Level {
	level = strings.TrimSpace(level)
	if strings.EqualFold(level, "warn") {
		level = "warning"
	}
	return unilogger.ParseLevel(level)
}

// SetLevel sets the level of the current logger and of the modules that have no level set on their own.
func SetLevel(level unilogger.Level) error {
	if level == LUNKNOWN {
		return errors.NewDet(class.CommonLoggerUnknownLevel, "can't set unknown logger level. provided level is not valid")
	}
	if level == currentLevel {
		return nil
	}

	currentLevel = level
	for _, m := range modules {
		m.inherit(level)
	}
	if std == nil {
		return nil
	}
	if !std.filters() {
		return errors.NewDet(class.CommonLoggerNotImplement, "logger doesn't implement LevelSetter interface")
	}
	std.setLevel(level)
	return nil
}

// Debug3f writes the formatted LDEBUG3 level log.
func Debug3f(format string, args ...interface{}) {
	std.write(LDEBUG3, format, args...)
}

// Debug2f writes the formatted LDEBUG2 level log.
func Debug2f(format string, args ...interface{}) {
	std.write(LDEBUG2, format, args...)
}

// Debugf writes the formatted LDEBUG level log.
func Debugf(format string, args ...interface{}) {
	std.write(LDEBUG, format, args...)
}

// Infof writes the formatted LINFO level log.
func Infof(format string, args ...interface{}) {
	std.write(LINFO, format, args...)
}

// Warningf writes the formatted LWARNING level log.
func Warningf(format string, args ...interface{}) {
	std.write(LWARNING, format, args...)
}

// Errorf writes the formatted LERROR level log.
func Errorf(format string, args ...interface{}) {
	std.write(LERROR, format, args...)
}

// Panicf writes the formatted message and panics.
func Panicf(format string, args ...interface{}) {
	if std != nil {
		std.logger.Panicf(format, args...)
	}
	panic(fmt.Sprintf(format, args...))
}
