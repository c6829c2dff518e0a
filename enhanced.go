package pplog

import (
	"bytes"

	"github.com/mattn/go-colorable"
)

// EnhancedSink writes "[HH:MM:SS] [TAG] message" lines where the time, the
// tag and the message body are painted independently (dim, level color,
// white). It is the default sink of development builds.
//
// Capabilities: Logger, LevelFilter, ColorControl.
type EnhancedSink struct {
	lineSink
	colorSwitch
}

// Creates an enhanced console sink writing to out (colorable stdout for nil).
func NewEnhancedSink(out OutType) *EnhancedSink {
	if out == nil {
		out = colorable.NewColorableStdout()
	}
	s := &EnhancedSink{}
	s.setup(out)
	return s
}

// Log writes one line if level passes the sink's minimal level.
func (s *EnhancedSink) Log(level LogLevel, message string) {
	s.emit(level, func(outBuffer *bytes.Buffer) {
		buildEnhancedLine(outBuffer, level, message, timeNow(), s.IsColorEnabled())
	})
}
