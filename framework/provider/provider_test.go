package provider_test

import (
	"errors"
	"time"

	"github.com/km-arc/go-provider/framework/provider"
)

// ── fixtures ──────────────────────────────────────────────────────────────────

// fixtureProvider is a concrete provider whose methods back BoundMethod
// definitions.
type fixtureProvider struct {
	*provider.Static
}

func newFixture(opts ...provider.Option) *fixtureProvider {
	p := &fixtureProvider{}
	p.Static = provider.NewStatic(p, opts...)
	return p
}

var fixedTime = time.Date(2017, 3, 1, 12, 0, 0, 0, time.UTC)

func (p *fixtureProvider) GetIterator() []int      { return []int{1, 2, 3} }
func (p *fixtureProvider) GetDateTime() time.Time  { return fixedTime }
func (p *fixtureProvider) Test() string            { return "12345" }
func (p *fixtureProvider) TooMany(a, b, c int) int { return a + b + c }

func (p *fixtureProvider) Previous(_ provider.Container, prev any) (any, error) {
	return prev, nil
}

func (p *fixtureProvider) Lookup(c provider.Container) (any, error) {
	return c.Get("dep")
}

// mapContainer is the smallest Container a definition can be invoked with.
type mapContainer map[string]any

var errMissing = errors.New("missing")

func (m mapContainer) Get(id string) (any, error) {
	v, ok := m[id]
	if !ok {
		return nil, errMissing
	}
	return v, nil
}

func (m mapContainer) Has(id string) bool {
	_, ok := m[id]
	return ok
}

// value builds a definition that returns v regardless of its arguments.
func value(v any) provider.Func {
	return func(provider.Container, any) (any, error) { return v, nil }
}
