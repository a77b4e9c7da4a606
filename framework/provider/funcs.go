package provider

import (
	"fmt"
	"reflect"
	"sync"
)

// funcTable backs NamedGlobal definitions. Go has no runtime lookup of
// package-level funcs by name, so they are registered explicitly.
type funcTable struct {
	mu    sync.RWMutex
	funcs map[string]any
}

var globals = &funcTable{funcs: make(map[string]any)}

// RegisterFunc makes fn callable through NamedGlobal(name). fn must have a
// factory shape (see Invocable). Registering a name again replaces it.
//
//	provider.RegisterFunc("clock.now", func() time.Time { return time.Now() })
func RegisterFunc(name string, fn any) error {
	if name == "" {
		return fmt.Errorf("provider: global func name must not be empty")
	}
	if fn == nil {
		return fmt.Errorf("provider: global func %q is nil", name)
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return fmt.Errorf("provider: global func %q is a %T, not a func", name, fn)
	}
	if err := checkShape(v.Type()); err != nil {
		return fmt.Errorf("provider: global func %q: %w", name, err)
	}

	globals.mu.Lock()
	defer globals.mu.Unlock()
	globals.funcs[name] = fn
	return nil
}

// LookupFunc returns the func registered under name.
func LookupFunc(name string) (any, bool) {
	globals.mu.RLock()
	defer globals.mu.RUnlock()
	fn, ok := globals.funcs[name]
	return fn, ok
}

// UnregisterFunc removes name from the table.
func UnregisterFunc(name string) {
	globals.mu.Lock()
	defer globals.mu.Unlock()
	delete(globals.funcs, name)
}
