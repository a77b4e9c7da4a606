package app

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/km-arc/go-provider/framework/config"
	"github.com/km-arc/go-provider/framework/container"
	"github.com/km-arc/go-provider/framework/logging"
	"github.com/km-arc/go-provider/framework/provider"
	"github.com/km-arc/go-provider/framework/providers"
	"github.com/km-arc/go-provider/framework/routing"
)

// Application is the top-level application container.
// It embeds the Container and ProviderRegistry so user code can call
// app.Get(), app.Register() directly.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
	Config    *config.Config
	Log       *logging.Logger
}

// New loads configuration and creates the application.
// cfg, the logger, the application and the router are resolvable as
// "config", "logger", "app" and "router".
func New(envFiles ...string) (*Application, error) {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(logging.FromConfig(cfg.Log))
	if err != nil {
		return nil, err
	}
	return NewWith(cfg, log), nil
}

// NewWith creates the application from an existing config and logger.
func NewWith(cfg *config.Config, log *logging.Logger) *Application {
	if log == nil {
		log = logging.NewNop()
	}
	c := container.New(container.WithLogger(log.Named("container")))

	a := &Application{
		Container: c,
		Providers: container.NewProviderRegistry(c),
		Config:    cfg,
		Log:       log,
	}

	// core provider exposing the application's own services
	plog := provider.WithLogger(log.Named("provider"))
	core := provider.NewStatic(a, plog)
	core.MustAddService("app", [2]any{a, "Self"}).
		MustAddService("logger", [2]any{a, "Logger"})

	for _, p := range []provider.ServiceProvider{
		core,
		providers.NewConfigServiceProvider(cfg, plog),
		providers.NewRoutingServiceProvider(plog),
	} {
		// none of these boot, so registration cannot fail
		_ = a.Providers.Register(p)
	}
	return a
}

// Self returns a, for the "app" definition.
func (a *Application) Self() *Application { return a }

// Logger returns the zap logger, for the "logger" definition.
func (a *Application) Logger() *zap.Logger { return a.Log.Logger }

// ProviderOptions returns the options application providers should be
// built with: the configured id prefix and a named logger.
func (a *Application) ProviderOptions() []provider.Option {
	return []provider.Option{
		provider.WithPrefix(a.Config.Services.Prefix),
		provider.WithLogger(a.Log.Named("provider")),
	}
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(p provider.ServiceProvider) error {
	return a.Providers.Register(p)
}

// Boot runs the Boot() phase on all providers.
func (a *Application) Boot() error {
	return a.Providers.Boot()
}

// Handler returns the HTTP handler serving the inspection routes, as bound
// under "router".
func (a *Application) Handler() (http.Handler, error) {
	r, err := container.Resolve[*routing.Router](a.Container, "router")
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Run boots the application (if needed) and serves the inspection routes.
func (a *Application) Run() error {
	if !a.Providers.Booted() {
		if err := a.Boot(); err != nil {
			return err
		}
	}
	addr := ":" + a.Config.App.Port
	a.Log.Info(fmt.Sprintf("%s running on http://localhost%s", a.Config.App.Name, addr),
		zap.String("env", a.Config.App.Env),
		zap.Int("services", len(a.IDs())))
	h, err := a.Handler()
	if err != nil {
		return err
	}
	return http.ListenAndServe(addr, h)
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config.App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config.App.Debug }
