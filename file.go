package pplog

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
)

const FILE_PERM = 0o644 // permissions of newly created log files

// FileSink appends "[YYYY-MM-DD HH:MM:SS] [TAG] message\r\n" lines to a file,
// syncing it to storage after every line. Nothing is written until Init has
// opened the file; Log before Init (or after a failed Init) is a no-op.
//
// An open *os.File is closed by the runtime when the sink is garbage
// collected, so a forgotten Close never leaks the descriptor for long.
//
// Capabilities: Logger, Initializable, LevelFilter.
type FileSink struct {
	lineSink
	file *os.File
	path string
}

// Creates a file sink without an open file.
func NewFileSink() *FileSink {
	s := &FileSink{}
	s.setup(nil)
	return s
}

// Log appends one line if the file is open and level passes the sink's
// minimal level.
func (s *FileSink) Log(level LogLevel, message string) {
	s.emit(level, func(outBuffer *bytes.Buffer) {
		buildFileLine(outBuffer, level, message, timeNow())
	})
}

// Init opens (or creates) the file at path in append mode. Existing content
// is never truncated. An empty path does nothing. A previously opened file
// is closed first. Errors are reported to the fallback writer.
func (s *FileSink) Init(path string) {
	if err := s.Init_with_err(path); err != nil {
		handleLogWriteError(err.Error())
	}
}

// Same as Init() but returns the open error to the caller instead of
// reporting it to the fallback writer.
func (s *FileSink) Init_with_err(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, FILE_PERM)
	if err != nil {
		return errors.Wrap(err, "file sink: open log file")
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.closeLocked()
	s.file = f
	s.path = path
	s.out = f
	s.flush = f.Sync
	return nil
}

// Close releases the file handle. Idempotent, and harmless without Init.
func (s *FileSink) Close() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.closeLocked()
}

func (s *FileSink) closeLocked() {
	if s.file == nil {
		return
	}
	if err := s.file.Close(); err != nil {
		handleLogWriteError(errors.Wrap(err, "file sink: close log file").Error())
	}
	s.file = nil
	s.path = ""
	s.out = nil
	s.flush = nil
}

// Path of the currently open file, empty if none.
func (s *FileSink) Path() string {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.path
}

// True if a file is open.
func (s *FileSink) IsOpen() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.file != nil
}
