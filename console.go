package pplog

import (
	"bytes"

	"github.com/mattn/go-colorable"
)

// ConsoleSink writes "[TAG] message" lines, optionally painted with the level
// color. By default it writes to a go-colorable stdout, which goes through
// the console color API on Windows and is plain stdout elsewhere.
//
// Capabilities: Logger, LevelFilter, ColorControl.
type ConsoleSink struct {
	lineSink
	colorSwitch
}

// Creates a console sink writing to out (colorable stdout for nil).
func NewConsoleSink(out OutType) *ConsoleSink {
	if out == nil {
		out = colorable.NewColorableStdout()
	}
	s := &ConsoleSink{}
	s.setup(out)
	return s
}

// Log writes one line if level passes the sink's minimal level.
func (s *ConsoleSink) Log(level LogLevel, message string) {
	s.emit(level, func(outBuffer *bytes.Buffer) {
		buildConsoleLine(outBuffer, level, message, s.IsColorEnabled())
	})
}
