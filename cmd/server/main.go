// Command server runs the favourite-things GraphQL API.
//
// Configuration is read from config.yaml and environment variables; see
// internal/config for the full list of settings.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/kampkelly/favourite-things/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
