package scopehint

import (
	"errors"
	"strings"

	"github.com/goliatone/go-scopehint/pkg/activity"
)

const (
	// DefaultShowPathFlag is the global flag gating path hints.
	DefaultShowPathFlag = "dev/debug/show_path_in_adminhtml"
	// DefaultSeparator joins tooltip lines.
	DefaultSeparator = "<br />"
	// PathHintKey is the field data key holding the rendered path hint.
	PathHintKey = "path_hint"
)

var (
	// ErrConfigReaderRequired indicates New was called without a ConfigReader.
	ErrConfigReaderRequired = errors.New("scopehint: config reader is required")
	// ErrDirectoryRequired indicates New was called without website or store
	// directories.
	ErrDirectoryRequired = errors.New("scopehint: website and store directories are required")
)

// Option configures a Resolver.
type Option func(*config)

type config struct {
	escaper       Escaper
	formatter     Formatter
	logger        Logger
	separator     string
	showPathFlag  string
	lineFilter    string
	evaluator     Evaluator
	evaluatorSet  bool
	programCache  ProgramCache
	functions     *FunctionRegistry
	activityHooks activity.Hooks
	activityCfg   activity.Config
}

func applyOptions(opts []Option) config {
	cfg := config{
		separator:    DefaultSeparator,
		showPathFlag: DefaultShowPathFlag,
		activityCfg:  activity.Config{Enabled: true, Channel: "scopehint"},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.escaper == nil {
		cfg.escaper = HTMLEscaper{}
	}
	if cfg.formatter == nil {
		cfg.formatter = NewPhraseFormatter()
	}
	if cfg.logger == nil {
		cfg.logger = noopLogger{}
	}
	return cfg
}

// WithEscaper replaces the default HTML escaper.
func WithEscaper(escaper Escaper) Option {
	return func(cfg *config) {
		cfg.escaper = escaper
	}
}

// WithFormatter replaces the default phrase formatter.
func WithFormatter(formatter Formatter) Option {
	return func(cfg *config) {
		cfg.formatter = formatter
	}
}

// WithSeparator sets the string used to join tooltip lines.
func WithSeparator(separator string) Option {
	return func(cfg *config) {
		cfg.separator = separator
	}
}

// WithShowPathFlag overrides the config flag path that enables path hints.
func WithShowPathFlag(path string) Option {
	return func(cfg *config) {
		path = strings.TrimSpace(path)
		if path == "" {
			return
		}
		cfg.showPathFlag = path
	}
}

// WithLineFilter attaches a boolean rule evaluated for every candidate
// override line. Lines are dropped when the rule yields false or fails.
func WithLineFilter(expression string) Option {
	return func(cfg *config) {
		cfg.lineFilter = strings.TrimSpace(expression)
	}
}

// WithEvaluator selects the rule engine used by WithLineFilter.
func WithEvaluator(e Evaluator) Option {
	return func(cfg *config) {
		cfg.evaluator = e
		cfg.evaluatorSet = true
	}
}

// WithActivityHooks attaches activity hooks notified about detected overrides
// and annotated paths. Nil hooks are dropped.
func WithActivityHooks(hooks activity.Hooks) Option {
	normalized := cloneActivityHooks(hooks)
	return func(cfg *config) {
		cfg.activityHooks = normalized
	}
}

// WithActivityConfig controls activity emission defaults.
func WithActivityConfig(activityCfg activity.Config) Option {
	return func(cfg *config) {
		cfg.activityCfg = activityCfg
	}
}

func cloneActivityHooks(hooks activity.Hooks) activity.Hooks {
	if len(hooks) == 0 {
		return nil
	}
	normalized := make([]activity.ActivityHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		normalized = append(normalized, hook)
	}
	if len(normalized) == 0 {
		return nil
	}
	return activity.Hooks(normalized)
}
