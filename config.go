package pplog

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sink kinds accepted by Config.Sink.
const (
	SINK_CONSOLE   = "console"
	SINK_ANSI      = "ansi"
	SINK_ENHANCED  = "enhanced"
	SINK_FILE      = "file"
	SINK_ROTATING  = "rotating"
	SINK_COMPOSITE = "composite"
	SINK_ZAP       = "zap"
	SINK_NULL      = "null"
)

// Color modes accepted by Config.Color.
const (
	COLOR_AUTO   = "auto"   // on if stdout is a terminal
	COLOR_ALWAYS = "always" // on
	COLOR_NEVER  = "never"  // off
)

const ENV_PREFIX = "PPLOG"

var sinkKinds = []string{SINK_CONSOLE, SINK_ANSI, SINK_ENHANCED, SINK_FILE,
	SINK_ROTATING, SINK_COMPOSITE, SINK_ZAP, SINK_NULL}

// Config describes one sink: its kind, threshold, color mode and target file.
type Config struct {
	Sink   string        `mapstructure:"sink"`
	Level  string        `mapstructure:"level"`
	Color  string        `mapstructure:"color"`
	File   string        `mapstructure:"file"`
	Rotate RotateOptions `mapstructure:"rotate"`
}

// Returns the configuration of the default development sink.
func DefaultConfig() Config {
	return Config{
		Sink:  SINK_ENHANCED,
		Level: LVL_DEBUG.String(),
		Color: COLOR_AUTO,
	}
}

// LoadConfig reads a Config from v: registered defaults, then PPLOG_*
// environment variables ("rotate.max_size_mb" is PPLOG_ROTATE_MAX_SIZE_MB),
// then anything already Set or bound on v (flags). No config file is read.
func LoadConfig(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	def := DefaultConfig()
	v.SetDefault("sink", def.Sink)
	v.SetDefault("level", def.Level)
	v.SetDefault("color", def.Color)
	v.SetDefault("file", def.File)
	v.SetDefault("rotate.max_size_mb", def.Rotate.MaxSizeMB)
	v.SetDefault("rotate.max_backups", def.Rotate.MaxBackups)
	v.SetDefault("rotate.max_age_days", def.Rotate.MaxAgeDays)
	v.SetDefault("rotate.compress", def.Rotate.Compress)
	v.SetDefault("rotate.local_time", def.Rotate.LocalTime)
	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal logger config")
	}
	cfg.Sink = strings.ToLower(strings.TrimSpace(cfg.Sink))
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the sink kind, level and color mode. File-backed kinds
// need a file.
func (c Config) Validate() error {
	known := false
	for _, k := range sinkKinds {
		if c.Sink == k {
			known = true
			break
		}
	}
	if !known {
		return errors.Errorf("unknown sink kind %q (want one of %s)", c.Sink, strings.Join(sinkKinds, ", "))
	}
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	switch c.Color {
	case COLOR_AUTO, COLOR_ALWAYS, COLOR_NEVER:
	default:
		return errors.Errorf("unknown color mode %q", c.Color)
	}
	if (c.Sink == SINK_FILE || c.Sink == SINK_ROTATING) && c.File == "" {
		return errors.Errorf("sink %q needs a file", c.Sink)
	}
	if c.Rotate.MaxSizeMB < 0 || c.Rotate.MaxBackups < 0 || c.Rotate.MaxAgeDays < 0 {
		return errors.New("rotation limits must not be negative")
	}
	return nil
}

// Build constructs the configured sink, console kinds writing to out (their
// own default for nil). The threshold and color mode are applied through
// the sink capabilities, then Init(File) is called. File open errors are
// returned instead of going to the fallback.
func (c Config) Build(out OutType) (Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	level, _ := ParseLevel(c.Level)

	var sink Logger
	switch c.Sink {
	case SINK_CONSOLE:
		sink = NewConsoleSink(out)
	case SINK_ANSI:
		sink = NewAnsiSink(out)
	case SINK_ENHANCED:
		sink = NewEnhancedSink(out)
	case SINK_FILE:
		fs := NewFileSink()
		if err := fs.Init_with_err(c.File); err != nil {
			return nil, err
		}
		sink = fs
	case SINK_ROTATING:
		sink = NewRotatingFileSink(c.Rotate)
	case SINK_COMPOSITE:
		fs := NewFileSink()
		if err := fs.Init_with_err(c.File); err != nil {
			return nil, err
		}
		sink = NewCompositeOf(NewEnhancedSink(out), fs)
	case SINK_ZAP:
		sink = NewZapSink(newZapLogger(out))
	case SINK_NULL:
		sink = NewNullSink()
	}

	setSinkMinLevel(sink, level)
	setSinkColor(sink, c.colorEnabled(out))
	switch c.Sink {
	case SINK_FILE, SINK_COMPOSITE:
		// already opened above
	default:
		initSink(sink, c.File)
	}
	return sink, nil
}

func (c Config) colorEnabled(out OutType) bool {
	switch c.Color {
	case COLOR_ALWAYS:
		return true
	case COLOR_NEVER:
		return false
	}
	if out == nil {
		return isTerminal(os.Stdout.Fd())
	}
	f, ok := out.(*os.File)
	return ok && isTerminal(f.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Console encoded zap logger writing to out (stdout for nil). The facade
// filters by itself, so the core lets everything through.
func newZapLogger(out OutType) *zap.Logger {
	if out == nil {
		out = os.Stdout
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(out)),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

// ParseLevel converts a level name (any case, WARNING accepted for WARN)
// into a LogLevel.
func ParseLevel(name string) (LogLevel, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if upper == "WARNING" {
		return LVL_WARN, nil
	}
	for i, n := range LevelFullNames {
		if n == upper {
			return LogLevel(i), nil
		}
	}
	return DEFAULT_LOG_LEVEL, errors.Errorf("unknown log level %q", name)
}
