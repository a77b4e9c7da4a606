package provider

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"
)

// ── Interop interfaces ────────────────────────────────────────────────────────

// Container is the consuming side of a provider: anything that can look up a
// service by id. Definitions receive it as their first argument.
type Container interface {
	Get(id string) (any, error)
	Has(id string) bool
}

// ServiceProvider is implemented by anything that declares service
// definitions. The consuming container calls GetServices once.
type ServiceProvider interface {
	GetServices() map[string]Definition
}

// ── Definition variants ───────────────────────────────────────────────────────

// Definition is a factory the container invokes with itself and the value
// produced by any earlier definition registered under the same id.
//
// The set of implementations is closed: Func, Invocable, BoundMethod and
// NamedGlobal.
type Definition interface {
	Invoke(c Container, previous any) (any, error)
	Kind() string

	valid() bool
}

// Func is the canonical definition signature.
//
//	provider.Func(func(c provider.Container, prev any) (any, error) {
//	    return &Mailer{}, nil
//	})
type Func func(c Container, previous any) (any, error)

func (f Func) Invoke(c Container, previous any) (any, error) { return f(c, previous) }
func (f Func) Kind() string                                   { return "func" }
func (f Func) valid() bool                                    { return f != nil }

// Invocable wraps any other Go func with up to two parameters
// (container, previous) and one result, optionally followed by an error.
//
//	provider.Invocable{Fn: func() *Clock { return NewClock() }}
//	provider.Invocable{Fn: func(c provider.Container) (*DB, error) { ... }}
type Invocable struct {
	Fn any
}

func (d Invocable) Invoke(c Container, previous any) (any, error) {
	if !d.valid() {
		return nil, &SignatureError{Name: "invocable", Reason: "not a factory func"}
	}
	return call(reflect.ValueOf(d.Fn), "invocable", c, previous)
}

func (d Invocable) Kind() string { return "invocable" }

func (d Invocable) valid() bool {
	if d.Fn == nil {
		return false
	}
	v := reflect.ValueOf(d.Fn)
	return v.Kind() == reflect.Func && !v.IsNil() && checkShape(v.Type()) == nil
}

// BoundMethod dispatches to an exported method of Target. The method is
// looked up when the definition is invoked, not when it is registered.
type BoundMethod struct {
	Target any
	Method string
}

func (d BoundMethod) Invoke(c Container, previous any) (any, error) {
	name := d.String()
	if d.Target == nil {
		return nil, &UndefinedMethodError{Type: "<nil>", Method: d.Method}
	}
	m := reflect.ValueOf(d.Target).MethodByName(d.Method)
	if !m.IsValid() {
		return nil, &UndefinedMethodError{Type: fmt.Sprintf("%T", d.Target), Method: d.Method}
	}
	if err := checkShape(m.Type()); err != nil {
		return nil, &SignatureError{Name: name, Reason: err.Error()}
	}
	return call(m, name, c, previous)
}

func (d BoundMethod) Kind() string { return "method" }

func (d BoundMethod) valid() bool {
	return d.Target != nil && isExportedIdent(d.Method)
}

func (d BoundMethod) String() string {
	return fmt.Sprintf("%T.%s", d.Target, d.Method)
}

// NamedGlobal names a func registered with RegisterFunc. The name is resolved
// on every invocation, so the func may be registered after the definition.
type NamedGlobal string

func (d NamedGlobal) Invoke(c Container, previous any) (any, error) {
	fn, ok := LookupFunc(string(d))
	if !ok {
		return nil, &UndefinedFunctionError{Name: string(d)}
	}
	return call(reflect.ValueOf(fn), string(d), c, previous)
}

func (d NamedGlobal) Kind() string { return "global" }
func (d NamedGlobal) valid() bool  { return d != "" }

// ── Shape check ───────────────────────────────────────────────────────────────

// Normalize converts v into a Definition when its shape can represent a
// factory. Only the format is checked: methods and global names are not
// required to exist yet.
//
// Accepted shapes:
//   - a Definition value
//   - func(Container, any) (any, error)
//   - any func with up to two parameters returning T or (T, error)
//   - a non-empty string, as a NamedGlobal
//   - [2]any{target, "Method"} or []any{target, "Method"}, as a BoundMethod
func Normalize(v any) (Definition, bool) {
	var def Definition

	switch d := v.(type) {
	case nil:
		return nil, false
	case Definition:
		def = d
	case func(Container, any) (any, error):
		def = Func(d)
	case string:
		def = NamedGlobal(d)
	case [2]any:
		def = pair(d[0], d[1])
	case []any:
		if len(d) != 2 {
			return nil, false
		}
		def = pair(d[0], d[1])
	default:
		if reflect.TypeOf(v).Kind() != reflect.Func {
			return nil, false
		}
		def = Invocable{Fn: v}
	}

	if def == nil || !def.valid() {
		return nil, false
	}
	return def, true
}

func pair(target, method any) Definition {
	name, ok := method.(string)
	if !ok {
		return nil
	}
	return BoundMethod{Target: target, Method: name}
}

func isExportedIdent(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	if !unicode.IsUpper(r) {
		return false
	}
	for _, r := range name {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ── Reflection call ───────────────────────────────────────────────────────────

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// checkShape validates a factory signature: at most two non-variadic
// parameters, one result optionally followed by an error. A lone error
// result is a factory that produces nil.
func checkShape(t reflect.Type) error {
	if t.Kind() != reflect.Func {
		return fmt.Errorf("%s is not a func", t)
	}
	if t.IsVariadic() || t.NumIn() > 2 {
		return fmt.Errorf("%s takes more than (container, previous)", t)
	}
	switch t.NumOut() {
	case 1:
		return nil
	case 2:
		if t.Out(1) == errorType {
			return nil
		}
	}
	return fmt.Errorf("%s must return (T) or (T, error)", t)
}

func call(fn reflect.Value, name string, c Container, previous any) (any, error) {
	t := fn.Type()
	if err := checkShape(t); err != nil {
		return nil, &SignatureError{Name: name, Reason: err.Error()}
	}

	args := make([]reflect.Value, t.NumIn())
	for i := range args {
		var v any = previous
		if i == 0 {
			v = c
		}
		arg, err := argument(t.In(i), v)
		if err != nil {
			return nil, &SignatureError{Name: name, Reason: fmt.Sprintf("argument %d: %v", i, err)}
		}
		args[i] = arg
	}

	out := fn.Call(args)
	if len(out) == 1 && t.Out(0) == errorType {
		if out[0].IsNil() {
			return nil, nil
		}
		return nil, out[0].Interface().(error)
	}
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}

func argument(want reflect.Type, v any) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(want), nil
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(want) {
		return reflect.Value{}, fmt.Errorf("cannot use %s as %s", rv.Type(), want)
	}
	return rv, nil
}
