package pplog

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Formatter_Log(t *testing.T) {
	r := &recordingSink{}
	f := NewFormatter(r)
	assert.Same(t, r, f.Sink())

	f.Log(LVL_INFO, "value=%d name=%s", 42, "x")
	f.LogMessage(LVL_INFO, "100% literal")
	badVerb := "bad verb %d"
	f.Log(LVL_INFO, badVerb, "str")
	assert.Equal(t, []string{"value=42 name=x", "100% literal", "bad verb %!d(string=str)"}, r.Messages())
}

func Test_Formatter_Log_NoArgs(t *testing.T) {
	r := &recordingSink{}
	f := NewFormatter(r)
	f.Infof("100%%")
	f.Infof("progress %d%%", 100)
	f.Warnf("plain text")
	f.Info("raw 100%%")
	assert.Equal(t, []string{"100%", "progress 100%", "plain text", "raw 100%%"}, r.Messages())
}

func Test_Formatter_Levels(t *testing.T) {
	r := &recordingSink{}
	f := NewFormatter(r)
	f.Debugf("%s", "d")
	f.Infof("%s", "i")
	f.Warningf("%s", "w")
	f.Warnf("%s", "w2")
	f.Errorf("%s", "e")
	f.Fatalf("%s", "f")
	f.Debug("D")
	f.Info("I")
	f.Warning("W")
	f.Error("E")
	f.Fatal("F %d")
	f.LogErr(errors.New("oops"))
	f.LogErr(nil)
	assert.Equal(t, []LogLevel{LVL_DEBUG, LVL_INFO, LVL_WARN, LVL_WARN, LVL_ERROR, LVL_FATAL,
		LVL_DEBUG, LVL_INFO, LVL_WARN, LVL_ERROR, LVL_FATAL, LVL_ERROR}, r.levels)
	assert.Equal(t, []string{"d", "i", "w", "w2", "e", "f", "D", "I", "W", "E", "F %d", "oops"}, r.Messages())
}

func Test_Formatter_Truncation(t *testing.T) {
	r := &recordingSink{}
	f := NewFormatter(r)
	f.Infof("%s", strings.Repeat("a", 5000))
	f.Info(strings.Repeat("é", 600)) // 2 bytes each
	msgs := r.Messages()
	assert.Len(t, msgs[0], MAX_MESSAGE_SIZE)
	assert.Len(t, msgs[1], MAX_MESSAGE_SIZE)
}

func Test_Formatter_Nil(t *testing.T) {
	var nilf *Formatter
	assert.NotPanics(t, func() {
		NewFormatter(nil).Infof("x %d", 1)
		NewFormatter(nil).Error("x")
		nilf.Fatalf("x")
		nilf.LogErr(errors.New("x"))
	})
}

func Test_Formatter_PanickingSink(t *testing.T) {
	ferr := captureFallback(t)
	f := NewFormatter(panicSink{})
	assert.NotPanics(t, func() { f.Errorf("x %d", 1) })
	assert.Contains(t, ferr.String(), "`"+panicStr+"`\n")
}

func Test_Formatter_Lvl(t *testing.T) {
	out := &FakeWriter{}
	s := NewConsoleSink(out)
	s.SetColorEnabled(false)
	f := NewFormatter(s)

	t.Run("fprintf", func(t *testing.T) {
		out.Clear()
		n, err := fmt.Fprintf(f.Lvl(LVL_WARN), "disk low: %d%%\n", 93)
		assert.NoError(t, err)
		assert.Equal(t, len("disk low: 93%\n"), n)
		assert.Equal(t, "[WARN] disk low: 93%\n", out.String())
	})
	t.Run("nil_message", func(t *testing.T) {
		out.Clear()
		n, err := f.Lvl(LVL_WARN).Write(nil)
		assert.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, out.String())
	})
	t.Run("full_message", func(t *testing.T) {
		out.Clear()
		n, err := fmt.Fprint(f.Lvl(LVL_ERROR), testlogstr)
		assert.NoError(t, err)
		assert.Equal(t, len(testlogstr), n)
		assert.Equal(t, "[ERROR] "+testlogstr+"\n", out.String())
	})
	t.Run("filtered", func(t *testing.T) {
		out.Clear()
		s.SetMinLevel(LVL_FATAL)
		defer s.SetMinLevel(LVL_DEBUG)
		n, err := fmt.Fprint(f.Lvl(LVL_INFO), "hidden")
		assert.NoError(t, err)
		assert.Equal(t, 6, n)
		assert.Empty(t, out.String())
	})
}
