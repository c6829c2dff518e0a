package pplog

import (
	"errors"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"
)

const testlogstr = "Test log АБВ こんにちは, 世界`'é\"\\\x5A\254\a\b\t\f\vи други глупости!"
const panicStr = "panic generated in writer"
const errorStr = "error generated in writer"

type PanicWriter struct{}

func (p *PanicWriter) Write(b []byte) (int, error) { panic(panicStr) }

type NilPanicWriter struct{}

// &runtime.PanicNilError{} instead of nil to prevent "panic with nil value" warnings
func (p *NilPanicWriter) Write(b []byte) (int, error) { panic(&runtime.PanicNilError{}) }

type ZeroPanicWriter struct{}

func (p *ZeroPanicWriter) Write(b []byte) (int, error) { panic(0) }

type ErrorWriter struct{}

func (e *ErrorWriter) Write(b []byte) (int, error) { return 0, errors.New(errorStr) }

// FakeWriter collects everything written to it. Safe for concurrent use.
type FakeWriter struct {
	mtx    sync.Mutex
	buffer []byte
	writes int
}

func (f *FakeWriter) Write(b []byte) (int, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.buffer = append(f.buffer, b...)
	f.writes++
	return len(b), nil
}

func (f *FakeWriter) String() string {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return string(f.buffer)
}

func (f *FakeWriter) Writes() int {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.writes
}

func (f *FakeWriter) Clear() {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.buffer = f.buffer[:0]
	f.writes = 0
}

// Lines returns the written text split into lines (without terminators).
func (f *FakeWriter) Lines() []string {
	s := strings.TrimSuffix(f.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// recordingSink is a full-capability sink remembering every call.
type recordingSink struct {
	mtx      sync.Mutex
	messages []string
	levels   []LogLevel
	inits    []string
	closes   int
	min      LogLevel
	color    bool
}

func (r *recordingSink) Log(level LogLevel, message string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if level < r.min {
		return
	}
	r.levels = append(r.levels, level)
	r.messages = append(r.messages, message)
}

func (r *recordingSink) Init(param string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.inits = append(r.inits, param)
}

func (r *recordingSink) Close() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.closes++
}

func (r *recordingSink) SetMinLevel(level LogLevel) { r.min = level }
func (r *recordingSink) MinLevel() LogLevel         { return r.min }
func (r *recordingSink) SetColorEnabled(e bool)     { r.color = e }
func (r *recordingSink) IsColorEnabled() bool       { return r.color }

func (r *recordingSink) Messages() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return append([]string(nil), r.messages...)
}

func (r *recordingSink) Closes() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.closes
}

// emitOnlySink has no optional capability at all.
type emitOnlySink struct {
	count int
}

func (e *emitOnlySink) Log(LogLevel, string) { e.count++ }

// panicSink panics on every Log.
type panicSink struct{}

func (panicSink) Log(LogLevel, string) { panic(panicStr) }

var testTime = time.Date(2024, time.March, 7, 9, 5, 3, 0, time.Local)

// fixClock freezes the timestamp clock for the duration of the test.
func fixClock(t *testing.T) {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return testTime }
	t.Cleanup(func() { timeNow = prev })
}

// captureFallback redirects internal error reports for the duration of the test.
func captureFallback(t *testing.T) *FakeWriter {
	t.Helper()
	prev := Fallback()
	ferr := &FakeWriter{}
	SetFallback(ferr)
	t.Cleanup(func() { SetFallback(prev) })
	return ferr
}
