package pplog

import (
	"unicode/utf8"
)

const (
	// Log level values ordered by severity. The trailing _LVL_MAX_for_checks_only
	// is an exclusive upper bound: anything at or above it is an unknown level,
	// which is rendered as UNKNOWN but never rejected.
	LVL_DEBUG LogLevel = iota
	LVL_INFO
	LVL_WARN
	LVL_ERROR
	LVL_FATAL
	_LVL_MAX_for_checks_only
)

// LVL_WARNING is the long spelling of LVL_WARN.
const LVL_WARNING = LVL_WARN

const (
	DEFAULT_LOG_LEVEL = LVL_DEBUG // default minimal level of every filtering sink
	DEFAULT_OUT_BUFF  = 256       // initial buffer size for a rendered line
	MAX_MESSAGE_SIZE  = 1024      // formatted messages are truncated to this many bytes

	UNKNOWN_TAG  = "[UNKNOWN]"
	UNKNOWN_NAME = "UNKNOWN"

	CONSOLE_TIME_FORMAT = "15:04:05"
	FILE_TIME_FORMAT    = "2006-01-02 15:04:05"
	FILE_LINE_END       = "\r\n"
)

const (
	// ANSI colored text fragments prefix/suffix used when colors are requested.
	// For a colored piece of text the sequence will be:
	// ANSI_COL_PRFX + colorSpec + ANSI_COL_SUFX + text + ANSI_COL_RESET
	ANSI_COL_PRFX  = "\033["
	ANSI_COL_SUFX  = "m"
	ANSI_COL_RESET = ANSI_COL_PRFX + "0" + ANSI_COL_SUFX
)

const (
	// Color hints. HINT_DEFAULT is the neutral hint used for anything unrecognized.
	HINT_DEFAULT ColorHint = iota
	HINT_DIM
	HINT_CYAN
	HINT_YELLOW
	HINT_RED
	HINT_MAGENTA
	HINT_WHITE
	_HINT_MAX_for_checks_only

	HINT_TIMESTAMP = HINT_DIM   // hint for the enhanced sink time segment
	HINT_MESSAGE   = HINT_WHITE // hint for the enhanced sink message segment
)

/////////////////////////////////////////////////////////////////////////////////////////

// Level tags written by every sink
var LevelTags = &LevelMap{
	"[DEBUG]", //LVL_DEBUG
	"[INFO]",  //LVL_INFO
	"[WARN]",  //LVL_WARN
	"[ERROR]", //LVL_ERROR
	"[FATAL]", //LVL_FATAL
}

// Level names (used for parsing and by adapters)
var LevelFullNames = &LevelMap{
	"DEBUG", //LVL_DEBUG
	"INFO",  //LVL_INFO
	"WARN",  //LVL_WARN
	"ERROR", //LVL_ERROR
	"FATAL", //LVL_FATAL
}

// Level to color hint
var levelHints = [_LVL_MAX_for_checks_only]ColorHint{
	HINT_DIM,     //LVL_DEBUG
	HINT_CYAN,    //LVL_INFO
	HINT_YELLOW,  //LVL_WARN
	HINT_RED,     //LVL_ERROR
	HINT_MAGENTA, //LVL_FATAL
}

// Bright ANSI SGR codes per hint (for ANSI_COL_PRFX + code + ANSI_COL_SUFX)
var HintAnsiCodes = &HintMap{
	"0",  //HINT_DEFAULT
	"90", //HINT_DIM
	"96", //HINT_CYAN
	"93", //HINT_YELLOW
	"91", //HINT_RED
	"95", //HINT_MAGENTA
	"97", //HINT_WHITE
}

/////////////////////////////////////////////////////////////////////////////////////////

// Generic byte normalization helper.
func norm_byte[T ~byte](val, overlimit, def T) T {
	if val < overlimit {
		return val
	} else {
		return def
	}
}

// Ensures a provided ColorHint is within the valid range
func normHint(hint ColorHint) ColorHint {
	return norm_byte(hint, _HINT_MAX_for_checks_only, HINT_DEFAULT)
}

// True for the five known severities.
func (level LogLevel) IsKnown() bool {
	return level < _LVL_MAX_for_checks_only
}

// Returns the bracketed tag written to outputs, like "[WARN]". Unknown levels
// give "[UNKNOWN]".
func (level LogLevel) Tag() string {
	if !level.IsKnown() {
		return UNKNOWN_TAG
	}
	return LevelTags[level]
}

// Returns the bare level name, like "WARN". Unknown levels give "UNKNOWN".
func (level LogLevel) String() string {
	if !level.IsKnown() {
		return UNKNOWN_NAME
	}
	return LevelFullNames[level]
}

// Compare orders two levels by rank: -1 if a is less severe than b, 0 if equal,
// +1 otherwise. This is the order used by every minimal-level filter.
func Compare(a, b LogLevel) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ColorHintFor maps a level to its rendering hint. Pure function; unknown
// levels give HINT_DEFAULT.
func ColorHintFor(level LogLevel) ColorHint {
	if !level.IsKnown() {
		return HINT_DEFAULT
	}
	return levelHints[level]
}

// Converts a panic value into a compact readable string (used when
// translating panics into fallback messages)
func panicDesc(panic any) (errtext string) {
	switch v := panic.(type) {
	case string:
		errtext = ": `" + v + "`"
	case error:
		errtext = ": (error) `" + v.Error() + "`"
	default:
		errtext = " " + _ERROR_UNKNOWN_PANIC_TEXT
	}
	return errtext
}

// Cuts s to at most max bytes without splitting a UTF-8 sequence.
func truncateMessage(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
