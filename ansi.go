package pplog

import (
	"bytes"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
)

// AnsiSink is the portable console sink: colors are raw ANSI escape
// sequences written to a plain stdout. Init performs the one-time platform
// setup that makes the terminal interpret them (virtual terminal processing
// on Windows 10+, nothing elsewhere); Close restores the previous mode.
//
// Capabilities: Logger, Initializable, LevelFilter, ColorControl.
type AnsiSink struct {
	lineSink
	colorSwitch
	initMtx sync.Mutex
	restore func() // non-nil between Init and Close
	vtReady bool   // escape sequences are interpreted by the terminal
}

// Creates an ANSI sink writing to out (os.Stdout for nil).
func NewAnsiSink(out OutType) *AnsiSink {
	if out == nil {
		out = os.Stdout
	}
	s := &AnsiSink{}
	s.setup(out)
	return s
}

// Log writes one line if level passes the sink's minimal level.
func (s *AnsiSink) Log(level LogLevel, message string) {
	s.emit(level, func(outBuffer *bytes.Buffer) {
		buildAnsiLine(outBuffer, level, message, s.IsColorEnabled())
	})
}

// Init enables escape-sequence interpretation on the process console. The
// parameter is ignored. Repeated calls do nothing until Close.
func (s *AnsiSink) Init(param string) {
	s.initMtx.Lock()
	defer s.initMtx.Unlock()
	if s.restore != nil {
		return
	}
	s.restore = colorable.EnableColorsStdout(&s.vtReady)
}

// Close restores the console mode changed by Init. Idempotent.
func (s *AnsiSink) Close() {
	s.initMtx.Lock()
	defer s.initMtx.Unlock()
	if s.restore != nil {
		s.restore()
		s.restore = nil
	}
}

// True if the last Init managed to enable escape-sequence interpretation.
func (s *AnsiSink) IsTerminalReady() bool {
	s.initMtx.Lock()
	defer s.initMtx.Unlock()
	return s.vtReady
}
