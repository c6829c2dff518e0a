package pplog

import (
	"sync"
	"sync/atomic"
)

/*
Process-wide entry points. They all go through the Default() manager and are
guarded by the build constant Enabled: with `-tags release` their bodies are
dead code, nothing is constructed, formatted or written.

Typical use:

	func main() {
		defer pplog.Shutdown()
		pplog.Init("app.log")
		pplog.Infof("started, pid %d", os.Getpid())
	}
*/

var (
	defaultOnce    sync.Once
	defaultManager *Manager
	defaultBuilt   atomic.Bool
)

// Default returns the process-wide manager, constructing it on first use.
// Development builds start with an enhanced console sink at LVL_DEBUG,
// release builds with a null sink.
func Default() *Manager {
	defaultOnce.Do(func() {
		var sink Logger = NewNullSink()
		if Enabled {
			es := NewEnhancedSink(nil)
			es.SetMinLevel(LVL_DEBUG)
			sink = es
		}
		defaultManager = NewManager(sink)
		defaultBuilt.Store(true)
	})
	return defaultManager
}

// Shutdown closes the default manager's sink, if the manager was ever built.
// Meant to be deferred in main.
func Shutdown() {
	if !Enabled || !defaultBuilt.Load() {
		return
	}
	Default().Close()
}

/////////////////////////////////////////////////////////////////////////////////////////

// Replaces the default manager's sink, closing the previous one.
func SetSink(sink Logger) {
	if !Enabled {
		return
	}
	Default().SetSink(sink)
}

// Initializes the active sink with param (a file path for file sinks).
// No-op if the sink has no lifecycle.
func Init(param string) {
	if !Enabled {
		return
	}
	Default().Init(param)
}

// Closes the active sink, releasing its resources. Logging may go on
// afterwards; file sinks then drop messages until the next Init.
func Close() {
	if !Enabled {
		return
	}
	Default().Close()
}

// Sets the minimal level of the active sink. Messages below it are dropped.
func SetMinLevel(level LogLevel) {
	if !Enabled {
		return
	}
	Default().SetMinLevel(level)
}

// Switches colored output of the active sink on or off.
func SetColorEnabled(enabled bool) {
	if !Enabled {
		return
	}
	Default().SetColorEnabled(enabled)
}

/////////////////////////////////////////////////////////////////////////////////////////

// Logs a formatted message at DEBUG level.
//
// Intended for developer-focused debugging output.
func Debugf(format string, args ...any) {
	if !Enabled {
		return
	}
	Default().Log(LVL_DEBUG, format, args...)
}

// Logs a formatted message at INFO level.
func Infof(format string, args ...any) {
	if !Enabled {
		return
	}
	Default().Log(LVL_INFO, format, args...)
}

// Logs a formatted message at WARN level.
func Warningf(format string, args ...any) {
	if !Enabled {
		return
	}
	Default().Log(LVL_WARN, format, args...)
}

// Short alias of Warningf.
func Warnf(format string, args ...any) {
	if !Enabled {
		return
	}
	Default().Log(LVL_WARN, format, args...)
}

// Logs a formatted message at ERROR level.
func Errorf(format string, args ...any) {
	if !Enabled {
		return
	}
	Default().Log(LVL_ERROR, format, args...)
}

// Logs at FATAL level. The program keeps running.
func Fatalf(format string, args ...any) {
	if !Enabled {
		return
	}
	Default().Log(LVL_FATAL, format, args...)
}
