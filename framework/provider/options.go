package provider

import (
	"fmt"

	"go.uber.org/zap"
)

// PrefixPolicy namespaces service ids by plain concatenation.
// The zero value is the identity.
type PrefixPolicy string

// Apply returns prefix + id.
func (p PrefixPolicy) Apply(id string) string { return string(p) + id }

// Translator renders user-facing messages, e.g. for localization.
type Translator interface {
	Translate(format string, args ...any) string
}

// TranslatorFunc adapts a plain func to Translator.
type TranslatorFunc func(format string, args ...any) string

func (f TranslatorFunc) Translate(format string, args ...any) string { return f(format, args...) }

// DefaultTranslator formats with fmt.Sprintf and translates nothing.
var DefaultTranslator Translator = TranslatorFunc(fmt.Sprintf)

// Option configures a Base.
type Option func(*Base)

// WithPrefix sets the id prefix used by Prefix and Prepare.
func WithPrefix(prefix string) Option {
	return func(b *Base) { b.prefix = PrefixPolicy(prefix) }
}

// WithPrefixPolicy is WithPrefix for an existing policy value.
func WithPrefixPolicy(p PrefixPolicy) Option {
	return func(b *Base) { b.prefix = p }
}

// WithTranslator sets the translator for error messages. nil keeps the default.
func WithTranslator(t Translator) Option {
	return func(b *Base) {
		if t != nil {
			b.translator = t
		}
	}
}

// WithLogger sets the logger. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(b *Base) {
		if l != nil {
			b.log = l
		}
	}
}
