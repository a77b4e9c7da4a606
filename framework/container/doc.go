// Package container is a minimal consumer of service providers.
//
// It implements provider.Container: providers declare definitions, the
// container collects them and invokes them when asked. It deliberately has
// no singleton caching, scoping or cycle detection.
//
// # Lifecycle
//
//  1. Create: c := container.New()
//  2. Register providers: registry.Register(providers.NewClockServiceProvider())
//  3. Boot: registry.Boot()
//  4. Resolve: c.Get("clock.now")
//
// # Extending a definition
//
// A second definition for the same id receives the first one's value:
//
//	c.Set("greeting", provider.Func(func(provider.Container, any) (any, error) {
//	    return "hello", nil
//	}))
//	c.Set("greeting", provider.Invocable{Fn: func(_ provider.Container, prev string) string {
//	    return prev + ", world"
//	}})
//	c.Get("greeting") // "hello, world"
//
// # Resolving
//
//	raw, err := c.Get("clock.now")
//	now, err := container.Resolve[time.Time](c, "clock.now")
//
// # Aliases
//
//	c.Alias("clock.now", "now")
package container
