package providers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/km-arc/go-provider/framework/config"
	"github.com/km-arc/go-provider/framework/container"
	"github.com/km-arc/go-provider/framework/provider"
	"github.com/km-arc/go-provider/framework/providers"
	"github.com/km-arc/go-provider/framework/routing"
)

func TestConfigServiceProvider(t *testing.T) {
	cfg := &config.Config{
		App:      config.AppConfig{Name: "Test"},
		Services: config.ServicesConfig{Prefix: "svc."},
	}
	c := container.New().Register(providers.NewConfigServiceProvider(cfg))

	got, err := container.Resolve[*config.Config](c, "config")
	require.NoError(t, err)
	assert.Same(t, cfg, got)

	appCfg, err := container.Resolve[config.AppConfig](c, "config.app")
	require.NoError(t, err)
	assert.Equal(t, "Test", appCfg.Name)

	svcCfg, err := container.Resolve[config.ServicesConfig](c, "config.services")
	require.NoError(t, err)
	assert.Equal(t, "svc.", svcCfg.Prefix)
}

func TestConfigServiceProvider_Prefixed(t *testing.T) {
	p := providers.NewConfigServiceProvider(&config.Config{}, provider.WithPrefix("fw."))

	assert.ElementsMatch(t, []string{"fw.config", "fw.config.app", "fw.config.services"}, p.IDs())
}

func TestRoutingServiceProvider_WithoutLogger(t *testing.T) {
	c := container.New().Register(providers.NewRoutingServiceProvider())

	r, err := container.Resolve[*routing.Router](c, "router")
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/services/router", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRoutingServiceProvider_WrongLoggerType(t *testing.T) {
	c := container.New().Register(providers.NewRoutingServiceProvider())
	c.Set("logger", provider.Invocable{Fn: func() string { return "not a logger" }})

	_, err := c.Get("router")
	assert.Error(t, err)

	c.Set("logger", provider.Invocable{Fn: func(_ provider.Container, _ string) *zap.Logger { return zap.NewNop() }})
	_, err = c.Get("router")
	assert.NoError(t, err, "extending logger with a real *zap.Logger fixes resolution")
}
