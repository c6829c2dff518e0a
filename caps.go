package pplog

import "strings"

const (
	// Optional capabilities a sink may expose besides Logger.
	CAP_LIFECYCLE Caps = 1 << iota
	CAP_LEVEL_FILTER
	CAP_COLOR_CONTROL

	CAP_NONE Caps = 0
	CAP_ALL       = CAP_LIFECYCLE | CAP_LEVEL_FILTER | CAP_COLOR_CONTROL
)

var capNames = [...]struct {
	c    Caps
	name string
}{
	{CAP_LIFECYCLE, "lifecycle"},
	{CAP_LEVEL_FILTER, "level"},
	{CAP_COLOR_CONTROL, "color"},
}

// CapsOf builds the capability descriptor of a sink. A nil sink has none.
func CapsOf(l Logger) (c Caps) {
	if l == nil {
		return CAP_NONE
	}
	if _, ok := l.(Initializable); ok {
		c |= CAP_LIFECYCLE
	}
	if _, ok := l.(LevelFilter); ok {
		c |= CAP_LEVEL_FILTER
	}
	if _, ok := l.(ColorControl); ok {
		c |= CAP_COLOR_CONTROL
	}
	return c
}

// True if every capability from want is present.
func (c Caps) Has(want Caps) bool {
	return c&want == want
}

// Returns a "|" separated list like "lifecycle|level", or "none".
func (c Caps) String() string {
	names := make([]string, 0, len(capNames))
	for _, cn := range capNames {
		if c.Has(cn.c) {
			names = append(names, cn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

/////////////////////////////////////////////////////////////////////////////////////////
// Capability dispatch helpers. Every helper is a silent no-op when the sink
// lacks the capability; the bool result tells whether anything was called.

func initSink(l Logger, param string) bool {
	if lc, ok := l.(Initializable); ok {
		lc.Init(param)
		return true
	}
	return false
}

func closeSink(l Logger) bool {
	if lc, ok := l.(Initializable); ok {
		lc.Close()
		return true
	}
	return false
}

func setSinkMinLevel(l Logger, level LogLevel) bool {
	if f, ok := l.(LevelFilter); ok {
		f.SetMinLevel(level)
		return true
	}
	return false
}

func sinkMinLevel(l Logger) (LogLevel, bool) {
	if f, ok := l.(LevelFilter); ok {
		return f.MinLevel(), true
	}
	return DEFAULT_LOG_LEVEL, false
}

func setSinkColor(l Logger, enabled bool) bool {
	if cc, ok := l.(ColorControl); ok {
		cc.SetColorEnabled(enabled)
		return true
	}
	return false
}

func sinkColor(l Logger) (enabled, ok bool) {
	if cc, ok := l.(ColorControl); ok {
		return cc.IsColorEnabled(), true
	}
	return false, false
}
