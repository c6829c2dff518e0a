package pplog

// CompositeSink fans every message out to two inner sinks it owns. The
// composite applies its own minimal level first; each child then applies
// its own, so per child the stricter of the two wins.
//
// Configuration is routed by capability, discovered once at construction:
//   - SetMinLevel goes to the composite record and to every filtering child
//   - SetColorEnabled/IsColorEnabled go to the first color-capable child
//   - Init (with a non-empty param) and Close go to every lifecycle child
//
// Capabilities: Logger, Initializable, LevelFilter, ColorControl.
type CompositeSink struct {
	levelGate
	primary   Logger
	secondary Logger
	inits     []Initializable
	filters   []LevelFilter
	colors    ColorControl
}

// Creates the default composite: an enhanced console sink writing to out
// (colorable stdout for nil) and a file sink opened later by Init(path).
func NewCompositeSink(out OutType) *CompositeSink {
	return NewCompositeOf(NewEnhancedSink(out), NewFileSink())
}

// Creates a composite of two arbitrary sinks. Nil children are replaced by
// null sinks. The composite takes ownership of both.
func NewCompositeOf(primary, secondary Logger) *CompositeSink {
	if primary == nil {
		primary = NewNullSink()
	}
	if secondary == nil {
		secondary = NewNullSink()
	}
	c := &CompositeSink{primary: primary, secondary: secondary}
	for _, child := range []Logger{primary, secondary} {
		if lc, ok := child.(Initializable); ok {
			c.inits = append(c.inits, lc)
		}
		if f, ok := child.(LevelFilter); ok {
			c.filters = append(c.filters, f)
		}
		if cc, ok := child.(ColorControl); ok && c.colors == nil {
			c.colors = cc
		}
	}
	return c
}

// Log forwards the message to both children if it passes the composite's
// own minimal level.
func (c *CompositeSink) Log(level LogLevel, message string) {
	if !c.passes(level) {
		return
	}
	c.primary.Log(level, message)
	c.secondary.Log(level, message)
}

// Init forwards param to the lifecycle children. Empty param does nothing.
func (c *CompositeSink) Init(param string) {
	if param == "" {
		return
	}
	for _, lc := range c.inits {
		lc.Init(param)
	}
}

// Close forwards to the lifecycle children. Idempotent if they are.
func (c *CompositeSink) Close() {
	for _, lc := range c.inits {
		lc.Close()
	}
}

// Sets the composite's minimal level and propagates it to filtering children.
func (c *CompositeSink) SetMinLevel(level LogLevel) {
	c.levelGate.SetMinLevel(level)
	for _, f := range c.filters {
		f.SetMinLevel(level)
	}
}

// Forwards to the color-capable child, if any.
func (c *CompositeSink) SetColorEnabled(enabled bool) {
	if c.colors != nil {
		c.colors.SetColorEnabled(enabled)
	}
}

// Reports the color-capable child's state; false if there is none.
func (c *CompositeSink) IsColorEnabled() bool {
	if c.colors != nil {
		return c.colors.IsColorEnabled()
	}
	return false
}

// Returns the first child (the console sink for NewCompositeSink).
func (c *CompositeSink) Primary() Logger {
	return c.primary
}

// Returns the second child (the file sink for NewCompositeSink).
func (c *CompositeSink) Secondary() Logger {
	return c.secondary
}
