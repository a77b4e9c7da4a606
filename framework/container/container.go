package container

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/km-arc/go-provider/framework/provider"
)

// ── Errors ────────────────────────────────────────────────────────────────────

// NotFoundError is returned by Get for an id nothing was registered under.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("container: no definition registered for [%s]", e.ID)
}

// ResolveError wraps a failure raised while invoking a definition.
type ResolveError struct {
	ID  string
	Err error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("container: resolving [%s]: %v", e.ID, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// ── Container ─────────────────────────────────────────────────────────────────

// Container consumes service providers: it collects their definitions and
// invokes them on demand.
//
// Registering an id that already has a definition extends it: the new
// definition is invoked with the value produced by the earlier one as
// previous. Nothing is cached; every Get runs the definitions again.
type Container struct {
	mu sync.RWMutex

	// id → definitions, oldest first
	definitions map[string][]provider.Definition

	// alias → id
	aliases map[string]string

	afterResolving []func(string, any)

	log *zap.Logger
}

// Option configures a Container.
type Option func(*Container)

// WithLogger sets the container's logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Container) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a container that already resolves "container" to itself.
func New(opts ...Option) *Container {
	c := &Container{
		definitions: make(map[string][]provider.Definition),
		aliases:     make(map[string]string),
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Set("container", provider.Func(func(provider.Container, any) (any, error) {
		return c, nil
	}))
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Register reads every definition from p once and adds it.
func (c *Container) Register(p provider.ServiceProvider) *Container {
	services := p.GetServices()

	ids := make([]string, 0, len(services))
	for id := range services {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		c.Set(id, services[id])
	}
	c.log.Debug("provider registered",
		zap.String("provider", fmt.Sprintf("%T", p)),
		zap.Int("services", len(ids)))
	return c
}

// Set adds a single definition, extending any existing one for id.
func (c *Container) Set(id string, def provider.Definition) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(id)
	c.definitions[key] = append(c.definitions[key], def)
}

// Alias makes alias resolve to id.
func (c *Container) Alias(id, alias string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id == alias {
		panic(fmt.Sprintf("container: [%s] is aliased to itself", id))
	}
	c.aliases[alias] = c.canonical(id)
}

// AfterResolving registers a callback fired after every successful Get.
func (c *Container) AfterResolving(cb func(id string, instance any)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.afterResolving = append(c.afterResolving, cb)
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Get invokes the definitions registered for id, oldest first, passing each
// the previous one's value.
func (c *Container) Get(id string) (any, error) {
	c.mu.RLock()
	key := c.canonical(id)
	defs := c.definitions[key]
	cbs := c.afterResolving
	c.mu.RUnlock()

	if len(defs) == 0 {
		return nil, &NotFoundError{ID: id}
	}

	var instance any
	for _, def := range defs {
		v, err := def.Invoke(c, instance)
		if err != nil {
			c.log.Warn("service resolution failed",
				zap.String("id", key),
				zap.String("kind", def.Kind()),
				zap.Error(err))
			return nil, &ResolveError{ID: key, Err: err}
		}
		instance = v
	}

	for _, cb := range cbs {
		cb(key, instance)
	}
	return instance, nil
}

// Has reports whether id (or an alias of it) has a definition.
func (c *Container) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.definitions[c.canonical(id)]) > 0
}

// Make is Get for bootstrap code that treats a failure as fatal.
func (c *Container) Make(id string) any {
	instance, err := c.Get(id)
	if err != nil {
		panic(err)
	}
	return instance
}

// ── Introspection ─────────────────────────────────────────────────────────────

// IDs returns every registered id, sorted.
func (c *Container) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.definitions))
	for id := range c.definitions {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Definitions returns the definitions registered for id, oldest first.
func (c *Container) Definitions(id string) []provider.Definition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	defs := c.definitions[c.canonical(id)]
	out := make([]provider.Definition, len(defs))
	copy(out, defs)
	return out
}

// canonical resolves an alias to its id (must hold mu).
func (c *Container) canonical(id string) string {
	if target, ok := c.aliases[id]; ok {
		return target
	}
	return id
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve calls Get and type-asserts the result.
//
//	clock, err := container.Resolve[*Clock](c, "clock")
func Resolve[T any](c *Container, id string) (T, error) {
	var zero T
	instance, err := c.Get(id)
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("container: Resolve[%T]: [%s] resolved to %T", zero, id, instance)
	}
	return typed, nil
}

// MustResolve is Resolve for bootstrap code; it panics on failure.
func MustResolve[T any](c *Container, id string) T {
	typed, err := Resolve[T](c, id)
	if err != nil {
		panic(err)
	}
	return typed
}
