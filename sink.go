package pplog

import (
	"bytes"
	"sync"
	"sync/atomic"
)

// levelGate is an embeddable LevelFilter. The level is atomic so the
// below-threshold path of Log never touches a mutex. Zero value is LVL_DEBUG.
type levelGate struct {
	min atomic.Uint32
}

// Sets the minimal level. Messages below it are dropped by the sink.
func (g *levelGate) SetMinLevel(level LogLevel) {
	g.min.Store(uint32(level))
}

// Returns the current minimal level.
func (g *levelGate) MinLevel() LogLevel {
	return LogLevel(g.min.Load())
}

func (g *levelGate) passes(level LogLevel) bool {
	return Compare(level, g.MinLevel()) >= 0
}

// colorSwitch is an embeddable ColorControl. Zero value means enabled.
type colorSwitch struct {
	off atomic.Bool
}

// Enables or disables colored output.
func (c *colorSwitch) SetColorEnabled(enabled bool) {
	c.off.Store(!enabled)
}

// True if colored output is enabled.
func (c *colorSwitch) IsColorEnabled() bool {
	return !c.off.Load()
}

/////////////////////////////////////////////////////////////////////////////////////////

// lineSink is the shared core of the writer-backed sinks: a minimal level,
// an output and a reusable line buffer, guarded by one mutex.
type lineSink struct {
	levelGate
	mtx   sync.Mutex
	out   OutType
	flush func() error // optional, called after every successful write
	buf   *bytes.Buffer
}

// Must be called once by constructors, before the sink is shared.
func (s *lineSink) setup(out OutType) {
	s.out = out
	s.buf = bytes.NewBuffer(make([]byte, 0, DEFAULT_OUT_BUFF))
}

// emit applies the threshold, renders a line with build and writes it with a
// single Write under the sink mutex. A panicking output is detached to avoid
// repeated panics; errors go to the fallback writer.
func (s *lineSink) emit(level LogLevel, build func(outBuffer *bytes.Buffer)) {
	if !s.passes(level) {
		return
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.out == nil {
		return
	}
	s.buf.Reset()
	build(s.buf)
	panicked, err := writeLine(s.out, s.buf)
	if panicked {
		s.out = nil
		s.flush = nil
	}
	if err != nil {
		handleLogWriteError(err.Error())
		return
	}
	if s.flush != nil {
		if err := s.flush(); err != nil {
			handleLogWriteError("error flushing log output: " + err.Error())
		}
	}
}
