package port

// Fields carries structured data attached to a log entry.
type Fields map[string]interface{}

// LoggerPort abstracts the application core from the concrete logging
// implementation.
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)

	// WithFields returns a new logger with the fields already attached,
	// used to carry context such as trace_id.
	WithFields(fields Fields) LoggerPort
}
