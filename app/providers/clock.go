package providers

import (
	"time"

	"github.com/km-arc/go-provider/framework/container"
	"github.com/km-arc/go-provider/framework/provider"
)

// LayoutFunc is the global func the "clock.layout" definition names.
const LayoutFunc = "clock.layout"

func init() {
	if err := provider.RegisterFunc(LayoutFunc, func() string { return time.RFC3339 }); err != nil {
		panic(err)
	}
}

// ClockServiceProvider provides time services.
//
// Provided ids (before the configured prefix):
//   - "clock.now"      → time.Time        (bound to Now)
//   - "clock.location" → *time.Location   (bound to Location)
//   - "clock.layout"   → string           (global func, never prefixed)
//   - "clock.stamp"    → string           (now formatted with layout)
type ClockServiceProvider struct {
	*provider.Static

	now      func() time.Time
	location *time.Location
}

// NewClockServiceProvider builds the provider. now defaults to time.Now.
func NewClockServiceProvider(now func() time.Time, opts ...provider.Option) (*ClockServiceProvider, error) {
	if now == nil {
		now = time.Now
	}
	p := &ClockServiceProvider{now: now, location: time.UTC}
	p.Static = provider.NewStatic(p, opts...)

	err := p.AddDefinitions(p.Prepare(map[string]string{
		"clock.now":      "Now",
		"clock.location": "Location",
	}, map[string]provider.Definition{
		LayoutFunc: provider.NamedGlobal(LayoutFunc),
	}))
	if err != nil {
		return nil, err
	}

	err = p.AddServices(
		provider.Service(p.Prefix("clock.stamp"), p.Stamp),
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Now returns the current time in the provider's location.
func (p *ClockServiceProvider) Now() time.Time { return p.now().In(p.location) }

// Location returns the provider's location.
func (p *ClockServiceProvider) Location() *time.Location { return p.location }

// Stamp formats "clock.now" with "clock.layout", both resolved through c.
func (p *ClockServiceProvider) Stamp(c provider.Container) (string, error) {
	now, err := c.Get(p.Prefix("clock.now"))
	if err != nil {
		return "", err
	}
	layout, err := c.Get(LayoutFunc)
	if err != nil {
		return "", err
	}
	return now.(time.Time).Format(layout.(string)), nil
}

// Boot resolves every provided id once so broken definitions fail at startup.
func (p *ClockServiceProvider) Boot(c *container.Container) error {
	for _, id := range p.IDs() {
		if _, err := c.Get(id); err != nil {
			return err
		}
	}
	return nil
}
