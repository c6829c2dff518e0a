package pplog

/*
Line rendering and output writing shared by all writer-backed sinks:
  - building the textual line for every sink format
  - painting colored segments (each segment restores the default color itself)
  - panic-safe writes to outputs
  - error reporting to the fallback writer
*/

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/fatih/color"
)

const (
	_ERROR_UNKNOWN_PANIC_TEXT = "[no panic description]"
)

// Clock used for timestamps (replaced in tests).
var timeNow = time.Now

var fbck struct {
	mtx sync.RWMutex
	out OutType
}

func init() {
	fbck.out = os.Stderr
}

// Sets the fallback output used to report internal errors (failed opens,
// failed or panicking writes). io.Discard is used instead of nil to silently
// drop fallback messages. Default is os.Stderr.
//
// The operation is protected by mutex for thread safety.
func SetFallback(f OutType) {
	fbck.mtx.Lock()
	defer fbck.mtx.Unlock()
	if f != nil {
		fbck.out = f
	} else {
		fbck.out = io.Discard
	}
}

// Fallback returns the current fallback output.
func Fallback() OutType {
	fbck.mtx.RLock()
	defer fbck.mtx.RUnlock()
	return fbck.out
}

// handleLogWriteError writes a human-readable error message to the fallback
// writer. Panics of the fallback itself are swallowed: there is nowhere left
// to report them.
func handleLogWriteError(errormsg string) {
	fbck.mtx.RLock()
	defer fbck.mtx.RUnlock()
	defer func() { _ = recover() }()
	if fbck.out != nil {
		fbck.out.Write([]byte(errormsg + "\n"))
	}
}

// writeLine writes the buffer to output with a single Write call. It returns
// panicked=true if the output panicked (the panic is converted to err).
func writeLine(output OutType, line *bytes.Buffer) (panicked bool, err error) {
	// only returns of named result values can be changed by defer
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			err = errors.New("panic writing log to output" + panicDesc(r))
		}
	}()
	n, e := output.Write(line.Bytes())
	if e != nil {
		err = errors.New("error writing log to output (" + strconv.Itoa(n) + " bytes written): " + e.Error())
	}
	return
}

/////////////////////////////////////////////////////////////////////////////////////////
// Colors

var hintPalette = newHintPalette()

// Builds one fatih/color painter per hint. Painters are forced on: whether
// a sink colors at all is decided by its own ColorControl state, not by the
// terminal detection done globally by fatih/color.
func newHintPalette() *[_HINT_MAX_for_checks_only]*color.Color {
	attrs := [_HINT_MAX_for_checks_only]color.Attribute{
		color.Reset,       //HINT_DEFAULT
		color.FgHiBlack,   //HINT_DIM
		color.FgHiCyan,    //HINT_CYAN
		color.FgHiYellow,  //HINT_YELLOW
		color.FgHiRed,     //HINT_RED
		color.FgHiMagenta, //HINT_MAGENTA
		color.FgHiWhite,   //HINT_WHITE
	}
	var palette [_HINT_MAX_for_checks_only]*color.Color
	for i, attr := range attrs {
		palette[i] = color.New(attr)
		palette[i].EnableColor()
	}
	return &palette
}

// paint returns s wrapped into the hint's color and a reset sequence, so the
// color never leaks past the segment. HINT_DEFAULT leaves s as is.
func paint(hint ColorHint, s string) string {
	hint = normHint(hint)
	if hint == HINT_DEFAULT {
		return s
	}
	return hintPalette[hint].Sprint(s)
}

// Same as paint, but with raw ANSI escape sequences instead of the palette.
func paintAnsi(outBuffer *bytes.Buffer, hint ColorHint, s string) {
	outBuffer.WriteString(ANSI_COL_PRFX)
	outBuffer.WriteString(HintAnsiCodes[normHint(hint)])
	outBuffer.WriteString(ANSI_COL_SUFX)
	outBuffer.WriteString(s)
	outBuffer.WriteString(ANSI_COL_RESET)
}

/////////////////////////////////////////////////////////////////////////////////////////
// Line builders. Each appends exactly one terminated line to outBuffer.

// "[TAG] message\n", the whole text painted with the level color.
func buildConsoleLine(outBuffer *bytes.Buffer, level LogLevel, message string, colored bool) {
	text := level.Tag() + " " + message
	if colored {
		text = paint(ColorHintFor(level), text)
	}
	outBuffer.WriteString(text)
	outBuffer.WriteByte('\n')
}

// "ESC[<code>m[TAG] messageESC[0m\n" when colored, "[TAG] message\n" otherwise.
func buildAnsiLine(outBuffer *bytes.Buffer, level LogLevel, message string, colored bool) {
	text := level.Tag() + " " + message
	if colored {
		paintAnsi(outBuffer, ColorHintFor(level), text)
	} else {
		outBuffer.WriteString(text)
	}
	outBuffer.WriteByte('\n')
}

// "[HH:MM:SS] [TAG] message\n" with three independently colored segments.
func buildEnhancedLine(outBuffer *bytes.Buffer, level LogLevel, message string, t time.Time, colored bool) {
	stamp := "[" + t.Format(CONSOLE_TIME_FORMAT) + "] "
	tag := level.Tag() + " "
	if colored {
		stamp = paint(HINT_TIMESTAMP, stamp)
		tag = paint(ColorHintFor(level), tag)
		message = paint(HINT_MESSAGE, message)
	}
	outBuffer.WriteString(stamp)
	outBuffer.WriteString(tag)
	outBuffer.WriteString(message)
	outBuffer.WriteByte('\n')
}

// "[YYYY-MM-DD HH:MM:SS] [TAG] message\r\n", never colored.
func buildFileLine(outBuffer *bytes.Buffer, level LogLevel, message string, t time.Time) {
	outBuffer.WriteByte('[')
	outBuffer.WriteString(t.Format(FILE_TIME_FORMAT))
	outBuffer.WriteString("] ")
	outBuffer.WriteString(level.Tag())
	outBuffer.WriteByte(' ')
	outBuffer.WriteString(message)
	outBuffer.WriteString(FILE_LINE_END)
}
