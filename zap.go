package pplog

import (
	"errors"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapSink forwards messages to an existing zap logger, so an application
// already built around zap can sit behind the facade. The level tag travels
// as the "tag" field. LVL_FATAL is sent as zap Error level: logging through
// this facility never terminates the process.
//
// Capabilities: Logger, Initializable (Close syncs the zap logger),
// LevelFilter.
type ZapSink struct {
	levelGate
	log *zap.Logger
}

// Creates a zap sink (a no-op zap logger is used for nil).
func NewZapSink(z *zap.Logger) *ZapSink {
	if z == nil {
		z = zap.NewNop()
	}
	return &ZapSink{log: z}
}

// Log forwards one message if level passes the sink's minimal level. zap
// cores serialize their own writes.
func (s *ZapSink) Log(level LogLevel, message string) {
	if !s.passes(level) {
		return
	}
	if ce := s.log.Check(toZapLevel(level), message); ce != nil {
		ce.Write(zap.String("tag", level.Tag()))
	}
}

// Init does nothing: the zap logger is configured by its owner.
func (s *ZapSink) Init(string) {}

// Close flushes buffered zap entries. Sync errors go to the fallback writer,
// except EINVAL/ENOTTY which terminals and pipes return for every sync.
func (s *ZapSink) Close() {
	if err := s.log.Sync(); err != nil && !isTerminalSyncError(err) {
		handleLogWriteError("zap sink: sync: " + err.Error())
	}
}

// Returns the wrapped zap logger.
func (s *ZapSink) Zap() *zap.Logger {
	return s.log
}

func isTerminalSyncError(err error) bool {
	return errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY)
}

func toZapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LVL_DEBUG:
		return zapcore.DebugLevel
	case LVL_INFO:
		return zapcore.InfoLevel
	case LVL_WARN:
		return zapcore.WarnLevel
	case LVL_ERROR, LVL_FATAL:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
