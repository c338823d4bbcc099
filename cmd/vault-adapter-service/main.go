package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/omnistake/vault-adapter-service/cmd/vault-adapter-service/cli"
	"github.com/omnistake/vault-adapter-service/cmd/vault-adapter-service/scripts"
	"github.com/omnistake/vault-adapter-service/internal/api"
	"github.com/omnistake/vault-adapter-service/internal/clients"
	"github.com/omnistake/vault-adapter-service/internal/config"
	"github.com/omnistake/vault-adapter-service/internal/db/model"
	"github.com/omnistake/vault-adapter-service/internal/observability/healthcheck"
	"github.com/omnistake/vault-adapter-service/internal/observability/metrics"
	"github.com/omnistake/vault-adapter-service/internal/queue"
	"github.com/omnistake/vault-adapter-service/internal/queue/client"
	"github.com/omnistake/vault-adapter-service/internal/services"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("failed to load .env file")
	}
}

// @title Vault Adapter Service API
// @version 1.0
// @description Adapter between a share-based vault and a delegation gateway. Tracks per-depositor unstake and withdraw requests and enforces the gateway call ordering.
func main() {
	ctx := context.Background()

	// setup cli commands and flags
	if err := cli.Setup(); err != nil {
		log.Fatal().Err(err).Msg("error while setting up cli")
	}

	// load config
	cfgPath := cli.GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	err = model.Setup(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up vault adapter db model")
	}

	clients := clients.New(cfg)

	// Notifications about ledger transitions are published on this queue
	eventEmitterClient, err := client.NewQueueClient(
		cfg.Queue.Url, cfg.Queue.QueueUser, cfg.Queue.QueuePassword, client.VaultEventsQueueName,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating vault events queue client")
	}

	services, err := services.New(ctx, cfg, clients, eventEmitterClient)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up vault adapter services layer")
	}

	// Start the event queue processing
	queues := queue.New(cfg.Queue, services)

	// Check if the replay flag is set
	if cli.GetReplayFlag() {
		log.Info().Msg("Replay flag is set. Starting replay of unprocessable messages.")
		err := scripts.ReplayUnprocessableMessages(ctx, cfg, queues, services.DbClient)
		if err != nil {
			log.Fatal().Err(err).Msg("error while replaying unprocessable messages")
		}
		return
	}

	queues.StartReceivingMessages()

	healthcheck.StartHealthCheckCron(ctx, queues, cfg.Server.HealthCheckInterval)

	apiServer, err := api.New(ctx, cfg, services)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up vault adapter api service")
	}
	if err = apiServer.Start(); err != nil {
		log.Fatal().Err(err).Msg("error while starting vault adapter api service")
	}
}
