package pplog

import (
	"sync"
)

// Manager is the facade over exactly one active sink and the formatter bound
// to it. Configuration calls are routed to the active sink only if it has
// the matching capability and are silent no-ops otherwise.
//
// The process-wide instance is obtained with Default(); tests and embedding
// programs can build independent instances with NewManager.
type Manager struct {
	mtx       sync.RWMutex // write-locked by SetSink, read-locked by everything else
	sink      Logger
	formatter *Formatter
}

// Creates a manager owning sink (a null sink for nil).
func NewManager(sink Logger) *Manager {
	m := new(Manager)
	m.SetSink(sink)
	return m
}

// SetSink closes the current sink (if it is Initializable), then makes sink
// the active one and rebinds the formatter to it. Both steps happen under
// the manager write lock, so no log call observes a half-done swap. The old
// sink is dropped. A nil sink is replaced by a null sink. Setting the active
// sink again only rebinds the formatter.
func (m *Manager) SetSink(sink Logger) *Manager {
	if sink == nil {
		sink = NewNullSink()
	}
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if m.sink != nil && m.sink != sink {
		closeSink(m.sink)
	}
	m.sink = sink
	m.formatter = NewFormatter(sink)
	return m
}

// Returns the active sink.
func (m *Manager) Sink() Logger {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.sink
}

// Returns the formatter bound to the active sink.
func (m *Manager) Formatter() *Formatter {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.formatter
}

// Returns the capability descriptor of the active sink.
func (m *Manager) Capabilities() Caps {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return CapsOf(m.sink)
}

/////////////////////////////////////////////////////////////////////////////////////////
// Capability-routed configuration

// Forwards Init(param) to the active sink if it is Initializable.
func (m *Manager) Init(param string) *Manager {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	initSink(m.sink, param)
	return m
}

// Forwards Close() to the active sink if it is Initializable.
func (m *Manager) Close() *Manager {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	closeSink(m.sink)
	return m
}

// Forwards the minimal level to the active sink if it is a LevelFilter.
func (m *Manager) SetMinLevel(level LogLevel) *Manager {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	setSinkMinLevel(m.sink, level)
	return m
}

// Returns the active sink's minimal level; ok is false if the sink has no
// LevelFilter capability.
func (m *Manager) MinLevel() (level LogLevel, ok bool) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return sinkMinLevel(m.sink)
}

// Forwards the color switch to the active sink if it is a ColorControl.
func (m *Manager) SetColorEnabled(enabled bool) *Manager {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	setSinkColor(m.sink, enabled)
	return m
}

// Returns the active sink's color state; ok is false if the sink has no
// ColorControl capability.
func (m *Manager) IsColorEnabled() (enabled, ok bool) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return sinkColor(m.sink)
}

/////////////////////////////////////////////////////////////////////////////////////////
// Logging, forwarded to the formatter

// Renders format with args and emits the result at level.
func (m *Manager) Log(level LogLevel, format string, args ...any) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	m.formatter.Log(level, format, args...)
}

// Emits message at level as is.
func (m *Manager) LogMessage(level LogLevel, message string) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	m.formatter.LogMessage(level, message)
}

func (m *Manager) Debugf(format string, args ...any)   { m.Log(LVL_DEBUG, format, args...) }
func (m *Manager) Infof(format string, args ...any)    { m.Log(LVL_INFO, format, args...) }
func (m *Manager) Warningf(format string, args ...any) { m.Log(LVL_WARN, format, args...) }
func (m *Manager) Warnf(format string, args ...any)    { m.Log(LVL_WARN, format, args...) }
func (m *Manager) Errorf(format string, args ...any)   { m.Log(LVL_ERROR, format, args...) }
func (m *Manager) Fatalf(format string, args ...any)   { m.Log(LVL_FATAL, format, args...) }

func (m *Manager) Debug(message string)   { m.LogMessage(LVL_DEBUG, message) }
func (m *Manager) Info(message string)    { m.LogMessage(LVL_INFO, message) }
func (m *Manager) Warning(message string) { m.LogMessage(LVL_WARN, message) }
func (m *Manager) Error(message string)   { m.LogMessage(LVL_ERROR, message) }
func (m *Manager) Fatal(message string)   { m.LogMessage(LVL_FATAL, message) }
