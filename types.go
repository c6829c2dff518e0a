package pplog

/*
Defines the core data types used by the logging facility:
  - basetype and a small set of typed aliases for clarity
  - the mandatory Logger capability and the optional ones (Initializable,
    LevelFilter, ColorControl) a sink may implement in addition
  - Caps: a small descriptor of which optional capabilities a sink exposes

Package-wide constants, level/color maps and helpers live in common.go.
*/

import (
	"io"
)

type basetype byte // basetype is the underlying byte-sized representation used for enums

type LogLevel basetype  // Log severity (alias for byte), ordered by numeric rank
type ColorHint basetype // Rendering hint for a level or a line segment, no I/O attached
type Caps basetype      // Set of optional capabilities supported by a sink

type OutType io.Writer // Sink outputs (alias for io.Writer)

// LevelMap is a fixed-size array with one entry per known log level. Used for
// level tags and names.
type LevelMap [_LVL_MAX_for_checks_only]string

// HintMap is a fixed-size array with one entry per color hint.
type HintMap [_HINT_MAX_for_checks_only]string

/////////////////////////////////////////////////////////////////////////////////////////

// Logger is the only capability every sink must support: emit one leveled,
// already formatted message.
//
// Implementations must be safe for concurrent use, must never interleave the
// bytes of two messages and must drop messages below their own minimal level
// before taking any lock.
type Logger interface {
	Log(level LogLevel, message string)
}

// Initializable is implemented by sinks that acquire external resources.
// An empty param means "no parameter". Close must be idempotent and harmless
// without a prior Init.
type Initializable interface {
	Init(param string)
	Close()
}

// LevelFilter is implemented by sinks with an adjustable minimal level.
type LevelFilter interface {
	SetMinLevel(level LogLevel)
	MinLevel() LogLevel
}

// ColorControl is implemented by sinks able to switch colored output on and off.
type ColorControl interface {
	SetColorEnabled(enabled bool)
	IsColorEnabled() bool
}
