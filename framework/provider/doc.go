// Package provider is the declaring half of dependency injection: service
// providers that map string ids to factory definitions, ready to be handed to
// a container.
//
// # Definitions
//
// A definition is invoked by the container with itself and the value produced
// by any earlier definition for the same id:
//
//	provider.Func(func(c provider.Container, prev any) (any, error) { ... })
//	provider.Invocable{Fn: func() *Clock { return &Clock{} }}
//	provider.BoundMethod{Target: p, Method: "Mailer"}
//	provider.NamedGlobal("mail.transport")   // see RegisterFunc
//
// AddService also accepts the raw shapes: plain funcs, strings and
// [2]any{target, "Method"} pairs. Only the shape is checked on registration;
// methods and global funcs are looked up when the definition is invoked.
//
// # Static providers
//
//	type ClockProvider struct{ *provider.Static }
//
//	func NewClockProvider() *ClockProvider {
//	    p := &ClockProvider{}
//	    p.Static = provider.NewStatic(p, provider.WithPrefix("clock."))
//	    _ = p.AddDefinitions(p.Prepare(map[string]string{"now": "Now"}, nil))
//	    return p
//	}
//
//	func (p *ClockProvider) Now() time.Time { return time.Now() }
//
// GetServices then returns {"clock.now": BoundMethod{p, "Now"}}.
//
// Providers do not resolve, cache or scope anything; that is the container's
// job (see package container).
package provider
