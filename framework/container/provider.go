package container

import (
	"fmt"
	"reflect"

	"github.com/km-arc/go-provider/framework/provider"
)

// ── Booter ────────────────────────────────────────────────────────────────────

// Booter is implemented by providers that need to run code once every
// provider has been registered, e.g. to resolve and warm up a service.
//
//	func (p *ClockServiceProvider) Boot(c *container.Container) error {
//	    _, err := c.Get("clock.zone")
//	    return err
//	}
type Booter interface {
	Boot(c *Container) error
}

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry registers providers into a container and boots them.
type ProviderRegistry struct {
	app        *Container
	providers  []provider.ServiceProvider
	registered map[uintptr]bool
	booted     bool
}

// NewProviderRegistry creates a registry bound to app.
func NewProviderRegistry(app *Container) *ProviderRegistry {
	return &ProviderRegistry{
		app:        app,
		registered: make(map[uintptr]bool),
	}
}

// Register hands p's definitions to the container. Registering the same
// pointer provider twice is a no-op; providers passed by value are never
// deduplicated. Once the registry has booted, p is booted immediately.
func (r *ProviderRegistry) Register(p provider.ServiceProvider) error {
	if key, ok := identity(p); ok {
		if r.registered[key] {
			return nil
		}
		r.registered[key] = true
	}

	r.app.Register(p)
	r.providers = append(r.providers, p)

	if r.booted {
		return r.boot(p)
	}
	return nil
}

// Boot calls Boot on every registered Booter, in registration order, and
// stops at the first error. Later calls are no-ops.
func (r *ProviderRegistry) Boot() error {
	if r.booted {
		return nil
	}
	r.booted = true
	for _, p := range r.providers {
		if err := r.boot(p); err != nil {
			return err
		}
	}
	return nil
}

// identity keys p by address. Interface values are not used as map keys
// since a provider's dynamic type need not be comparable.
func identity(p provider.ServiceProvider) (uintptr, bool) {
	v := reflect.ValueOf(p)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return 0, false
	}
	return v.Pointer(), true
}

func (r *ProviderRegistry) boot(p provider.ServiceProvider) error {
	b, ok := p.(Booter)
	if !ok {
		return nil
	}
	if err := b.Boot(r.app); err != nil {
		return fmt.Errorf("container: booting %T: %w", p, err)
	}
	return nil
}

// Booted returns true if Boot() has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns registered providers in registration order.
func (r *ProviderRegistry) Providers() []provider.ServiceProvider { return r.providers }
