package log

import (
	"github.com/neuronlabs/uni-logger"
)

// subLogger is the logger that creates the loggers for the modules.
type subLogger interface {
	SubLogger() unilogger.LeveledLogger
}

// sink is the leveled logger with its optional capabilities resolved on creation.
type sink struct {
	logger       unilogger.LeveledLogger
	debugLeveled unilogger.DebugLeveledLogger
	levelSetter  unilogger.LevelSetter
}

func newSink(logger unilogger.LeveledLogger) *sink {
	if logger == nil {
		return nil
	}
	s := &sink{logger: logger}
	s.debugLeveled, _ = logger.(unilogger.DebugLeveledLogger)
	s.levelSetter, _ = logger.(unilogger.LevelSetter)
	return s
}

// filters checks if the sink drops the messages below its level on its own.
func (s *sink) filters() bool {
	return s != nil && s.levelSetter != nil
}

func (s *sink) setLevel(level unilogger.Level) {
	if s.filters() {
		s.levelSetter.SetLevel(level)
	}
}

// sub creates the sink for a module. Returns nil if the logger can't create sub loggers.
func (s *sink) sub() *sink {
	if s == nil {
		return nil
	}
	creator, ok := s.logger.(subLogger)
	if !ok {
		return nil
	}
	logger := creator.SubLogger()
	getter, isGetter := s.logger.(unilogger.OutputDepthGetter)
	setter, isSetter := logger.(unilogger.OutputDepthSetter)
	if isGetter && isSetter {
		// the module logger adds a frame.
		setter.SetOutputDepth(getter.GetOutputDepth() + 1)
	}
	return newSink(logger)
}

// write writes the message on the 'level'. The debug2 and debug3 messages are written
// as debug if the logger doesn't support these levels.
func (s *sink) write(level unilogger.Level, format string, args ...interface{}) {
	if s == nil {
		return
	}
	switch level {
	case LDEBUG3:
		if s.debugLeveled != nil {
			s.debugLeveled.Debug3f(format, args...)
			return
		}
		s.logger.Debugf(format, args...)
	case LDEBUG2:
		if s.debugLeveled != nil {
			s.debugLeveled.Debug2f(format, args...)
			return
		}
		s.logger.Debugf(format, args...)
	case LDEBUG:
		s.logger.Debugf(format, args...)
	case LINFO:
		s.logger.Infof(format, args...)
	case LWARNING:
		s.logger.Warningf(format, args...)
	default:
		s.logger.Errorf(format, args...)
	}
}
