package container_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-provider/framework/container"
	"github.com/km-arc/go-provider/framework/provider"
)

func constant(v any) provider.Func {
	return func(provider.Container, any) (any, error) { return v, nil }
}

func TestContainer_ResolvesItself(t *testing.T) {
	c := container.New()

	got, err := c.Get("container")
	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestContainer_Get_NotFound(t *testing.T) {
	_, err := container.New().Get("missing")

	var nf *container.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "missing", nf.ID)
}

func TestContainer_Get_InvokesEveryTime(t *testing.T) {
	c := container.New()
	calls := 0
	c.Set("counter", provider.Invocable{Fn: func() int {
		calls++
		return calls
	}})

	first := c.Make("counter")
	second := c.Make("counter")

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestContainer_Set_ExtendsWithPrevious(t *testing.T) {
	c := container.New()
	c.Set("greeting", constant("hello"))
	c.Set("greeting", provider.Invocable{Fn: func(_ provider.Container, prev string) string {
		return prev + ", world"
	}})

	got, err := c.Get("greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello, world", got)
	assert.Len(t, c.Definitions("greeting"), 2)
}

func TestContainer_DefinitionsResolveDependencies(t *testing.T) {
	c := container.New()
	c.Set("dsn", constant("sqlite://memory"))
	c.Set("db", provider.Invocable{Fn: func(c provider.Container) (string, error) {
		dsn, err := c.Get("dsn")
		if err != nil {
			return "", err
		}
		return "db(" + dsn.(string) + ")", nil
	}})

	got, err := container.Resolve[string](c, "db")
	require.NoError(t, err)
	assert.Equal(t, "db(sqlite://memory)", got)
}

func TestContainer_Get_WrapsDefinitionError(t *testing.T) {
	c := container.New()
	c.Set("late", provider.NamedGlobal("container_test.neverRegistered"))

	_, err := c.Get("late")

	var re *container.ResolveError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "late", re.ID)
	var undef *provider.UndefinedFunctionError
	assert.True(t, errors.As(err, &undef))
	assert.Panics(t, func() { c.Make("late") })
}

func TestContainer_Register_ReadsProviderServices(t *testing.T) {
	p := newMultiProvider()
	c := container.New().Register(p)

	assert.True(t, c.Has("alpha"))
	assert.True(t, c.Has("beta"))
	assert.Equal(t, []string{"alpha", "beta", "container"}, c.IDs())
}

func TestContainer_Alias(t *testing.T) {
	c := container.New()
	c.Set("clock.now", constant("noon"))
	c.Alias("clock.now", "now")

	assert.True(t, c.Has("now"))
	assert.Equal(t, "noon", c.Make("now"))
	assert.Panics(t, func() { c.Alias("x", "x") })
}

func TestContainer_AfterResolving(t *testing.T) {
	c := container.New()
	c.Set("svc", constant(42))

	var seen []string
	c.AfterResolving(func(id string, _ any) { seen = append(seen, id) })

	_ = c.Make("svc")
	_, _ = c.Get("missing")

	assert.Equal(t, []string{"svc"}, seen)
}

func TestResolve_TypeMismatch(t *testing.T) {
	c := container.New()
	c.Set("n", constant(1))

	_, err := container.Resolve[string](c, "n")
	assert.Error(t, err)
	assert.Panics(t, func() { container.MustResolve[string](c, "n") })
	assert.Equal(t, 1, container.MustResolve[int](c, "n"))
}
