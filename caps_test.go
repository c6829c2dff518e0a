package pplog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CapsOf(t *testing.T) {
	tests := []struct {
		name string
		sink Logger
		want Caps
	}{
		{"console", NewConsoleSink(&FakeWriter{}), CAP_LEVEL_FILTER | CAP_COLOR_CONTROL},
		{"ansi", NewAnsiSink(&FakeWriter{}), CAP_ALL},
		{"enhanced", NewEnhancedSink(&FakeWriter{}), CAP_LEVEL_FILTER | CAP_COLOR_CONTROL},
		{"file", NewFileSink(), CAP_LIFECYCLE | CAP_LEVEL_FILTER},
		{"rotating", NewRotatingFileSink(RotateOptions{}), CAP_LIFECYCLE | CAP_LEVEL_FILTER},
		{"composite", NewCompositeSink(&FakeWriter{}), CAP_ALL},
		{"zap", NewZapSink(nil), CAP_LIFECYCLE | CAP_LEVEL_FILTER},
		{"null", NewNullSink(), CAP_LIFECYCLE | CAP_LEVEL_FILTER},
		{"emit_only", &emitOnlySink{}, CAP_NONE},
		{"nil", nil, CAP_NONE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CapsOf(tt.sink), CapsOf(tt.sink).String())
		})
	}
}

func Test_Caps_String(t *testing.T) {
	assert.Equal(t, "none", CAP_NONE.String())
	assert.Equal(t, "lifecycle|level|color", CAP_ALL.String())
	assert.Equal(t, "level|color", (CAP_LEVEL_FILTER | CAP_COLOR_CONTROL).String())
	assert.True(t, CAP_ALL.Has(CAP_LIFECYCLE|CAP_COLOR_CONTROL))
	assert.False(t, CAP_LEVEL_FILTER.Has(CAP_LEVEL_FILTER|CAP_LIFECYCLE))
}

func Test_Caps_Helpers_NoCapability(t *testing.T) {
	s := &emitOnlySink{}
	assert.NotPanics(t, func() {
		assert.False(t, initSink(s, "x"))
		assert.False(t, closeSink(s))
		assert.False(t, setSinkMinLevel(s, LVL_ERROR))
		assert.False(t, setSinkColor(s, false))
	})
	level, ok := sinkMinLevel(s)
	assert.False(t, ok)
	assert.Equal(t, DEFAULT_LOG_LEVEL, level)
	enabled, ok := sinkColor(s)
	assert.False(t, ok)
	assert.False(t, enabled)
}
