package providers

import (
	"go.uber.org/zap"

	"github.com/km-arc/go-provider/framework/config"
	"github.com/km-arc/go-provider/framework/container"
	"github.com/km-arc/go-provider/framework/inspect"
	"github.com/km-arc/go-provider/framework/provider"
	"github.com/km-arc/go-provider/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider exposes the loaded configuration.
//
// Provided ids:
//   - "config"          → *config.Config
//   - "config.app"      → config.AppConfig
//   - "config.services" → config.ServicesConfig
type ConfigServiceProvider struct {
	*provider.Static
	cfg *config.Config
}

func NewConfigServiceProvider(cfg *config.Config, opts ...provider.Option) *ConfigServiceProvider {
	p := &ConfigServiceProvider{cfg: cfg}
	p.Static = provider.NewStatic(p, opts...)
	if err := p.AddDefinitions(p.Prepare(map[string]string{
		"config":          "Config",
		"config.app":      "App",
		"config.services": "Services",
	}, nil)); err != nil {
		panic(err)
	}
	return p
}

func (p *ConfigServiceProvider) Config() *config.Config           { return p.cfg }
func (p *ConfigServiceProvider) App() config.AppConfig            { return p.cfg.App }
func (p *ConfigServiceProvider) Services() config.ServicesConfig { return p.cfg.Services }

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router serving the inspection
// routes.
//
// Provided ids:
//   - "router" → *routing.Router
//
// Reads "logger" (*zap.Logger) from the container when it is bound.
type RoutingServiceProvider struct {
	*provider.Static
}

func NewRoutingServiceProvider(opts ...provider.Option) *RoutingServiceProvider {
	p := &RoutingServiceProvider{}
	p.Static = provider.NewStatic(p, opts...)
	p.MustAddService("router", p.Router)
	return p
}

// Router builds a router with the inspection routes mounted on c.
func (p *RoutingServiceProvider) Router(c *container.Container) (*routing.Router, error) {
	log := zap.NewNop()
	if c.Has("logger") {
		l, err := container.Resolve[*zap.Logger](c, "logger")
		if err != nil {
			return nil, err
		}
		log = l.Named("http")
	}
	r := routing.New(log)
	inspect.Mount(r, c)
	return r, nil
}
