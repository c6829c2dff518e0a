package pplog

import (
	"fmt"
)

/*
The formatter is a thin helper bound to one sink. It centralizes the "format
then emit" step and provides per-level convenience calls. It keeps no state
besides the sink reference, which it does not own.

Formatting uses fmt: a wrong verb or argument count renders as a visible
"%!d(string=...)" marker. The format is always rendered, even without
arguments ("100%%" gives "100%"); LogMessage and the plain helpers emit raw
text. The rendered message is cut to MAX_MESSAGE_SIZE
bytes on a UTF-8 boundary.

Nothing is ever returned to the caller: a panicking sink is recovered and
reported to the fallback writer.
*/

// Formatter binds the per-level helpers to one sink.
type Formatter struct {
	sink Logger
}

// Constructs a formatter bound to sink. A nil sink makes every call a no-op.
func NewFormatter(sink Logger) *Formatter {
	return &Formatter{sink: sink}
}

// Returns the bound sink.
func (f *Formatter) Sink() Logger {
	return f.sink
}

// Renders format with args and emits the result at level.
func (f *Formatter) Log(level LogLevel, format string, args ...any) {
	if f == nil || f.sink == nil {
		return
	}
	f.emit(level, fmt.Sprintf(format, args...))
}

// Emits message at level as is (no formatting, only truncation).
func (f *Formatter) LogMessage(level LogLevel, message string) {
	if f == nil || f.sink == nil {
		return
	}
	f.emit(level, message)
}

func (f *Formatter) emit(level LogLevel, message string) {
	defer func() {
		if r := recover(); r != nil {
			handleLogWriteError("panic emitting log message" + panicDesc(r))
		}
	}()
	f.sink.Log(level, truncateMessage(message, MAX_MESSAGE_SIZE))
}

/////////////////////////////////////////////////////////////////////////////////////////
/*
Convenience level-specific helpers. The *f variants format their arguments,
the plain ones emit the message text as is.
*/

// Logs a formatted message at DEBUG level.
//
// Intended for developer-focused debugging output.
func (f *Formatter) Debugf(format string, args ...any) {
	f.Log(LVL_DEBUG, format, args...)
}

// Logs a formatted message at INFO level.
func (f *Formatter) Infof(format string, args ...any) {
	f.Log(LVL_INFO, format, args...)
}

// Logs a formatted message at WARN level.
//
// Use for recoverable or noteworthy conditions that deserve attention.
func (f *Formatter) Warningf(format string, args ...any) {
	f.Log(LVL_WARN, format, args...)
}

// Short alias of Warningf.
func (f *Formatter) Warnf(format string, args ...any) {
	f.Log(LVL_WARN, format, args...)
}

// Logs a formatted message at ERROR level.
func (f *Formatter) Errorf(format string, args ...any) {
	f.Log(LVL_ERROR, format, args...)
}

// Logs a formatted message at FATAL level. Does not exit the program.
func (f *Formatter) Fatalf(format string, args ...any) {
	f.Log(LVL_FATAL, format, args...)
}

func (f *Formatter) Debug(message string)   { f.LogMessage(LVL_DEBUG, message) }
func (f *Formatter) Info(message string)    { f.LogMessage(LVL_INFO, message) }
func (f *Formatter) Warning(message string) { f.LogMessage(LVL_WARN, message) }
func (f *Formatter) Error(message string)   { f.LogMessage(LVL_ERROR, message) }
func (f *Formatter) Fatal(message string)   { f.LogMessage(LVL_FATAL, message) }

// LogErr logs an error value at ERROR level. Semantically equivalent to
//
//	Error(err.Error())
//
// but clearer at call sites when you already have an error object. A nil
// error is ignored.
func (f *Formatter) LogErr(e error) {
	if e == nil {
		return
	}
	f.LogMessage(LVL_ERROR, e.Error())
}

/////////////////////////////////////////////////////////////////////////////////////////
// io.Writer adapter

// levelWriter emits every Write as one message at a fixed level.
type levelWriter struct {
	f     *Formatter
	level LogLevel
}

// Lvl returns an io.Writer emitting each written chunk as one message at
// level (a single trailing newline is dropped). This allows patterns like:
//
//	fmt.Fprintf(formatter.Lvl(LVL_WARN), "disk low: %d%%", percent)
func (f *Formatter) Lvl(level LogLevel) OutType {
	return levelWriter{f: f, level: level}
}

// Write implements io.Writer. A nil payload is a zero-length write.
func (w levelWriter) Write(p []byte) (n int, err error) {
	if p == nil {
		return 0, nil
	}
	msg := p
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	w.f.LogMessage(w.level, string(msg))
	return len(p), nil
}
