package pplog

import (
	"bytes"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotateOptions configures RotatingFileSink. Zero values keep lumberjack
// defaults (100 MB, no backup limit, no age limit, no compression).
type RotateOptions struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	Compress   bool `mapstructure:"compress"`
	LocalTime  bool `mapstructure:"local_time"`
}

// RotatingFileSink writes the same lines as FileSink, but to a lumberjack
// logger that rotates the file once it grows past MaxSizeMB. The file is
// created lazily on the first line, in append mode.
//
// Capabilities: Logger, Initializable, LevelFilter.
type RotatingFileSink struct {
	lineSink
	opts RotateOptions
	lj   *lumberjack.Logger
}

// Creates a rotating file sink without an open file.
func NewRotatingFileSink(opts RotateOptions) *RotatingFileSink {
	s := &RotatingFileSink{opts: opts}
	s.setup(nil)
	return s
}

// Log appends one line if Init was called and level passes the sink's
// minimal level.
func (s *RotatingFileSink) Log(level LogLevel, message string) {
	s.emit(level, func(outBuffer *bytes.Buffer) {
		buildFileLine(outBuffer, level, message, timeNow())
	})
}

// Init points the sink to the file at path. An empty path does nothing.
// A previously configured file is closed first.
func (s *RotatingFileSink) Init(path string) {
	if path == "" {
		return
	}
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    s.opts.MaxSizeMB,
		MaxBackups: s.opts.MaxBackups,
		MaxAge:     s.opts.MaxAgeDays,
		Compress:   s.opts.Compress,
		LocalTime:  s.opts.LocalTime,
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.closeLocked()
	s.lj = lj
	s.out = lj
}

// Close releases the current file. Idempotent, and harmless without Init.
func (s *RotatingFileSink) Close() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.closeLocked()
}

// Rotate forces a rotation of the current file. No-op without Init.
func (s *RotatingFileSink) Rotate() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.lj == nil {
		return
	}
	if err := s.lj.Rotate(); err != nil {
		handleLogWriteError("rotating file sink: rotate: " + err.Error())
	}
}

func (s *RotatingFileSink) closeLocked() {
	if s.lj == nil {
		return
	}
	if err := s.lj.Close(); err != nil {
		handleLogWriteError("rotating file sink: close: " + err.Error())
	}
	s.lj = nil
	s.out = nil
}
