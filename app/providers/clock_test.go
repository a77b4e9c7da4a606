package providers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-provider/app/providers"
	"github.com/km-arc/go-provider/framework/container"
	"github.com/km-arc/go-provider/framework/provider"
)

var noon = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func fixed() time.Time { return noon }

func TestClockServiceProvider_Definitions(t *testing.T) {
	p, err := providers.NewClockServiceProvider(fixed, provider.WithPrefix("app."))
	require.NoError(t, err)

	services := p.GetServices()

	assert.Equal(t, provider.BoundMethod{Target: p, Method: "Now"}, services["app.clock.now"])
	assert.Equal(t, provider.BoundMethod{Target: p, Method: "Location"}, services["app.clock.location"])
	assert.Equal(t, provider.NamedGlobal(providers.LayoutFunc), services[providers.LayoutFunc], "extras are not prefixed")
	assert.Equal(t, "invocable", services["app.clock.stamp"].Kind())
	assert.Len(t, services, 4)
}

func TestClockServiceProvider_ResolvesThroughContainer(t *testing.T) {
	p, err := providers.NewClockServiceProvider(fixed)
	require.NoError(t, err)

	c := container.New()
	reg := container.NewProviderRegistry(c)
	require.NoError(t, reg.Register(p))
	require.NoError(t, reg.Boot())

	now, err := container.Resolve[time.Time](c, "clock.now")
	require.NoError(t, err)
	assert.True(t, noon.Equal(now))

	loc, err := container.Resolve[*time.Location](c, "clock.location")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	stamp, err := container.Resolve[string](c, "clock.stamp")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T12:00:00Z", stamp)
}

func TestClockServiceProvider_DefaultsToTimeNow(t *testing.T) {
	p, err := providers.NewClockServiceProvider(nil)
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now(), p.Now(), time.Minute)
}
