package provider

import "go.uber.org/zap"

// Base carries what every provider needs besides storage: the owning
// instance that bound methods dispatch to, the id prefix, the translator for
// error messages and a logger.
//
// Embed it (usually through Static) and pass the outer struct as owner:
//
//	type MailProvider struct{ *provider.Static }
//
//	func NewMailProvider() *MailProvider {
//	    p := &MailProvider{}
//	    p.Static = provider.NewStatic(p, provider.WithPrefix("mail."))
//	    return p
//	}
//
// The zero value is usable: it has no owner, no prefix, the default
// translator and a no-op logger.
type Base struct {
	owner      any
	prefix     PrefixPolicy
	translator Translator
	log        *zap.Logger
}

// NewBase creates a Base for owner.
func NewBase(owner any, opts ...Option) Base {
	b := Base{
		owner:      owner,
		translator: DefaultTranslator,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// messages returns the translator, falling back to DefaultTranslator on a
// zero Base.
func (b *Base) messages() Translator {
	if b.translator == nil {
		return DefaultTranslator
	}
	return b.translator
}

func (b *Base) logger() *zap.Logger {
	if b.log == nil {
		return zap.NewNop()
	}
	return b.log
}

// Prefix returns id namespaced with the provider's prefix.
func (b *Base) Prefix(id string) string { return b.prefix.Apply(id) }

// ServicePrefix returns the raw prefix.
func (b *Base) ServicePrefix() string { return string(b.prefix) }

// Owner returns the instance bound methods dispatch to.
func (b *Base) Owner() any { return b.owner }

// Method wraps a method of the owner as a definition.
func (b *Base) Method(name string) BoundMethod {
	return BoundMethod{Target: b.owner, Method: name}
}

// Prepare turns a map of id → owner method name into prefixed BoundMethod
// definitions, then overlays extra as-is. Ids in extra are not prefixed and
// win over generated ids on collision.
//
//	p.Prepare(map[string]string{"now": "Now"}, map[string]provider.Definition{
//	    "clock.zone": provider.NamedGlobal("clock.zone"),
//	})
//	// → {"clock.now": BoundMethod{p, "Now"}, "clock.zone": NamedGlobal("clock.zone")}
func (b *Base) Prepare(methods map[string]string, extra map[string]Definition) map[string]Definition {
	out := make(map[string]Definition, len(methods)+len(extra))
	for id, method := range methods {
		out[b.Prefix(id)] = b.Method(method)
	}
	for id, def := range extra {
		out[id] = def
	}
	return out
}
