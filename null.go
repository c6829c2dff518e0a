package pplog

// NullSink accepts every call and does nothing. It is the default sink of
// release builds. MinLevel reports LVL_FATAL; SetMinLevel is ignored.
//
// Capabilities: Logger, Initializable, LevelFilter.
type NullSink struct{}

func NewNullSink() *NullSink { return &NullSink{} }

func (*NullSink) Log(LogLevel, string)  {}
func (*NullSink) Init(string)          {}
func (*NullSink) Close()               {}
func (*NullSink) SetMinLevel(LogLevel) {}
func (*NullSink) MinLevel() LogLevel   { return LVL_FATAL }
