// Package logsink forwards scopehint log events to structured loggers.
package logsink

import (
	"github.com/rs/zerolog"

	scopehint "github.com/goliatone/go-scopehint"
)

// Component is the value of the "component" field on every entry.
const Component = "scopehint"

// Zerolog returns a scopehint.Logger writing to logger. Events carrying an
// error are logged at warn level, everything else at debug.
func Zerolog(logger zerolog.Logger) scopehint.Logger {
	return zerologSink{logger: logger.With().Str("component", Component).Logger()}
}

type zerologSink struct {
	logger zerolog.Logger
}

func (s zerologSink) LogHint(event scopehint.LogEvent) {
	entry := s.logger.Debug()
	if event.Err != nil {
		entry = s.logger.Warn().Err(event.Err)
	}
	entry = entry.Str("kind", string(event.Kind))
	if event.Path != "" {
		entry = entry.Str("path", event.Path)
	}
	if event.Scope != "" {
		entry = entry.Str("scope", event.Scope)
	}
	if event.Lines > 0 {
		entry = entry.Int("lines", event.Lines)
	}
	if event.Duration > 0 {
		entry = entry.Dur("duration", event.Duration)
	}
	entry.Msg("scope hint")
}
