package logger

// Log level constants accepted by Config.Level.
const (
	// Debug enables all log output, including per-attribute diagnostics.
	Debug = "debug"

	// Info enables informational output and above. The default.
	Info = "info"

	// Warning enables warnings and errors only. Attribute rejections are
	// logged at this level.
	Warning = "warning"

	// Error enables error output only.
	Error = "error"
)

// Config defines the configuration for the logger.
type Config struct {
	// Level is the minimum level emitted, one of the level constants above.
	// Unknown values fall back to Info.
	Level string

	// ServiceName identifies the service in log output. It is attached to
	// every entry as the "service" field.
	ServiceName string

	// CallerSkip adjusts how many stack frames are skipped when resolving
	// the caller for the "caller" field. The default of 1 is correct when
	// calling the LoggerClient directly; set 2 when wrapping it in another
	// logging layer.
	CallerSkip int

	// EnableTracing turns on trace correlation: the *WithContext methods
	// read the active span from the context and attach trace_id and
	// span_id fields. When false the context variants behave exactly like
	// their plain counterparts.
	EnableTracing bool
}
