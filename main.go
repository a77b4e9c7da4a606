package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/km-arc/go-provider/app/providers"
	"github.com/km-arc/go-provider/framework/app"
)

func main() {
	application, err := app.New() // loads .env automatically
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer func() { _ = application.Log.Sync() }()

	clock, err := providers.NewClockServiceProvider(nil, application.ProviderOptions()...)
	if err != nil {
		application.Log.Fatal("clock provider", zap.Error(err))
	}
	if err := application.Register(clock); err != nil {
		application.Log.Fatal("register clock provider", zap.Error(err))
	}

	// GET /services, GET /services/{id}
	if err := application.Run(); err != nil {
		application.Log.Fatal("server error", zap.Error(err))
	}
}
