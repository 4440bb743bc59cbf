package scopehint

import "time"

// LogKind classifies resolver log events.
type LogKind string

const (
	LogKindLookup    LogKind = "lookup"
	LogKindDirectory LogKind = "directory"
	LogKindRule      LogKind = "rule"
	LogKindFlag      LogKind = "flag"
	LogKindActivity  LogKind = "activity"
	LogKindTooltip   LogKind = "tooltip"
	LogKindPathHint  LogKind = "path_hint"
)

// LogEvent describes something the resolver did or failed to do.
type LogEvent struct {
	Kind     LogKind
	Path     string
	Scope    string
	Lines    int
	Duration time.Duration
	Err      error
}

// Logger records resolver events.
type Logger interface {
	LogHint(LogEvent)
}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(LogEvent)

// LogHint implements Logger.
func (f LoggerFunc) LogHint(event LogEvent) {
	if f != nil {
		f(event)
	}
}

type noopLogger struct{}

func (noopLogger) LogHint(LogEvent) {}

// WithLogger attaches a logger to the resolver. A nil logger disables logging.
func WithLogger(logger Logger) Option {
	return func(cfg *config) {
		if logger == nil {
			cfg.logger = noopLogger{}
			return
		}
		cfg.logger = logger
	}
}
