package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/velvetbox/settlecore/internal/app"
)

// @title Settlecore API
// @version 1.0
// @description Order settlement and delivery-notification service for the gifting marketplace.
// @BasePath /
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	application := app.New()
	if err := application.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start application")
	}
	if err := application.Wait(ctx, cancel); err != nil {
		log.Fatal().Err(err).Msg("application terminated with error")
	}
}
