package scopehint

import (
	"html"
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// HTMLEscaper escapes text with html.EscapeString.
type HTMLEscaper struct{}

// EscapeHTML implements Escaper.
func (HTMLEscaper) EscapeHTML(text string) string {
	return html.EscapeString(text)
}

// PhraseFormatter renders %1 style templates through an x/text message
// printer so templates can be translated by catalog.
type PhraseFormatter struct {
	printer *message.Printer
}

// PhraseOption configures a PhraseFormatter.
type PhraseOption func(*phraseConfig)

type phraseConfig struct {
	tag          language.Tag
	translations map[string]string
}

// WithLanguage sets the language used for catalog lookups.
func WithLanguage(tag language.Tag) PhraseOption {
	return func(cfg *phraseConfig) {
		cfg.tag = tag
	}
}

// WithTranslations registers translated templates keyed by the source
// template. Both sides use %1 style placeholders.
func WithTranslations(translations map[string]string) PhraseOption {
	return func(cfg *phraseConfig) {
		if cfg.translations == nil {
			cfg.translations = make(map[string]string, len(translations))
		}
		for source, translated := range translations {
			cfg.translations[source] = translated
		}
	}
}

// NewPhraseFormatter builds a formatter. Without translations templates are
// rendered as given.
func NewPhraseFormatter(opts ...PhraseOption) *PhraseFormatter {
	cfg := phraseConfig{tag: language.English}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	builder := catalog.NewBuilder(catalog.Fallback(cfg.tag))
	for source, translated := range cfg.translations {
		_ = builder.SetString(cfg.tag, source, toPrintf(translated))
	}
	return &PhraseFormatter{
		printer: message.NewPrinter(cfg.tag, message.Catalog(builder)),
	}
}

// Format implements Formatter.
func (f *PhraseFormatter) Format(template string, args ...any) string {
	if f == nil || f.printer == nil {
		return NewPhraseFormatter().Format(template, args...)
	}
	return f.printer.Sprintf(message.Key(template, toPrintf(template)), args...)
}

var placeholderPattern = regexp.MustCompile(`%(\d+)|%`)

// toPrintf converts %1 placeholders into explicit printf argument indexes
// and escapes any other percent sign.
func toPrintf(template string) string {
	if !strings.Contains(template, "%") {
		return template
	}
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		if match == "%" {
			return "%%"
		}
		return "%[" + match[1:] + "]v"
	})
}
