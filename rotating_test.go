package pplog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RotatingFileSink_Write(t *testing.T) {
	fixClock(t)
	path := filepath.Join(t.TempDir(), "rot.log")
	s := NewRotatingFileSink(RotateOptions{MaxSizeMB: 1, MaxBackups: 2})
	s.Log(LVL_INFO, "before init")
	s.Init(path)
	s.SetMinLevel(LVL_INFO)
	s.Log(LVL_DEBUG, "hidden")
	s.Log(LVL_INFO, "hello")
	s.Close()
	s.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[2024-03-07 09:05:03] [INFO] hello\r\n", string(data))
}

func Test_RotatingFileSink_Rotate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rot.log")
	s := NewRotatingFileSink(RotateOptions{})
	assert.NotPanics(t, s.Rotate, "rotate without Init")
	s.Init(path)
	s.Log(LVL_WARN, "first")
	s.Rotate()
	s.Log(LVL_WARN, "second")
	s.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "current file and one backup")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "second")
	assert.NotContains(t, string(data), "first")
}

func Test_RotatingFileSink_EmptyInit(t *testing.T) {
	s := NewRotatingFileSink(RotateOptions{})
	s.Init("")
	assert.NotPanics(t, func() {
		s.Log(LVL_FATAL, "nowhere")
		s.Close()
	})
}
