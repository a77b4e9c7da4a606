package app_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/km-arc/go-provider/framework/app"
	"github.com/km-arc/go-provider/framework/config"
	"github.com/km-arc/go-provider/framework/container"
	"github.com/km-arc/go-provider/framework/provider"
)

func newApp(t *testing.T, prefix string) *app.Application {
	t.Helper()
	cfg := &config.Config{
		App:      config.AppConfig{Name: "Test", Env: "testing", Port: "0"},
		Log:      config.LogConfig{Level: "debug"},
		Services: config.ServicesConfig{Prefix: prefix},
	}
	return app.NewWith(cfg, nil)
}

type greeter struct{ *provider.Static }

func (g *greeter) Hello() string { return "hello" }

func TestApplication_CoreServices(t *testing.T) {
	a := newApp(t, "")

	cfg, err := container.Resolve[*config.Config](a.Container, "config")
	require.NoError(t, err)
	assert.Same(t, a.Config, cfg)

	self, err := container.Resolve[*app.Application](a.Container, "app")
	require.NoError(t, err)
	assert.Same(t, a, self)

	_, err = container.Resolve[*zap.Logger](a.Container, "logger")
	require.NoError(t, err)
}

func TestApplication_RegisterWithProviderOptions(t *testing.T) {
	a := newApp(t, "greet.")
	g := &greeter{}
	g.Static = provider.NewStatic(g, a.ProviderOptions()...)
	require.NoError(t, g.AddDefinitions(g.Prepare(map[string]string{"hello": "Hello"}, nil)))

	require.NoError(t, a.Register(g))
	require.NoError(t, a.Boot())

	got, err := a.Get("greet.hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestApplication_Environment(t *testing.T) {
	a := newApp(t, "")

	assert.True(t, a.IsTesting())
	assert.False(t, a.IsLocal())
	assert.False(t, a.IsProduction())
	assert.False(t, a.IsDebug())
}

func TestApplication_Handler(t *testing.T) {
	a := newApp(t, "")

	rr := httptest.NewRecorder()
	h, err := a.Handler()
	require.NoError(t, err)
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/services", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	ids := make([]string, len(body.Data))
	for i, d := range body.Data {
		ids[i] = d.ID
	}
	assert.Equal(t, []string{"app", "config", "config.app", "config.services", "container", "logger", "router"}, ids)
}
