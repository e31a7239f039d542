package log

import (
	"github.com/neuronlabs/uni-logger"
)

var modules []*ModuleLogger

// ModuleLogger is the logger of a single package, i.e. the 'mutator' catalog.
// Its level might differ from the level of the current logger.
// If the current logger can't create the sub loggers, the module writes through
// the current logger and filters the messages by its own level.
type ModuleLogger struct {
	Name string

	sink  *sink
	level unilogger.Level
	// own is set when the level was set on the module, so it no longer follows the current logger level.
	own bool
}

// NewModuleLogger creates and registers the module logger with given 'name'.
func NewModuleLogger(name string) *ModuleLogger {
	m := &ModuleLogger{Name: name, level: currentLevel, sink: std.sub()}
	m.sink.setLevel(m.level)
	modules = append(modules, m)
	return m
}

// Level gets the module logger level.
func (m *ModuleLogger) Level() unilogger.Level {
	return m.level
}

// SetLevel sets the module logger level. From now on the module keeps its level
// when the level of the current logger changes.
func (m *ModuleLogger) SetLevel(level unilogger.Level) {
	m.own = true
	m.setLevel(level)
}

func (m *ModuleLogger) inherit(level unilogger.Level) {
	if !m.own {
		m.setLevel(level)
	}
}

func (m *ModuleLogger) setLevel(level unilogger.Level) {
	m.level = level
	m.sink.setLevel(level)
}

// Debug3f writes the formatted debug3 log.
func (m *ModuleLogger) Debug3f(format string, args ...interface{}) {
	m.write(LDEBUG3, format, args...)
}

// Debug2f writes the formatted debug2 log.
func (m *ModuleLogger) Debug2f(format string, args ...interface{}) {
	m.write(LDEBUG2, format, args...)
}

// Debugf writes the formatted debug log.
func (m *ModuleLogger) Debugf(format string, args ...interface{}) {
	m.write(LDEBUG, format, args...)
}

// Infof writes the formatted info log.
func (m *ModuleLogger) Infof(format string, args ...interface{}) {
	m.write(LINFO, format, args...)
}

// Warningf writes the formatted warning log.
func (m *ModuleLogger) Warningf(format string, args ...interface{}) {
	m.write(LWARNING, format, args...)
}

// Errorf writes the formatted error log.
func (m *ModuleLogger) Errorf(format string, args ...interface{}) {
	m.write(LERROR, format, args...)
}

func (m *ModuleLogger) write(level unilogger.Level, format string, args ...interface{}) {
	if !m.sink.filters() && m.level != LUNKNOWN && level < m.level {
		return
	}
	format = "[" + m.Name + "] " + format
	if m.sink != nil {
		m.sink.write(level, format, args...)
		return
	}
	std.write(level, format, args...)
}
