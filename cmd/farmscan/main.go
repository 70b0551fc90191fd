package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/farmscan/farmscan/internal/aggregator"
	"github.com/farmscan/farmscan/internal/chain"
	"github.com/farmscan/farmscan/internal/config"
	"github.com/farmscan/farmscan/internal/datafetcher"
	"github.com/farmscan/farmscan/internal/logger"
	"github.com/farmscan/farmscan/internal/pools"
	"github.com/farmscan/farmscan/internal/web"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// main is the entry point for the farmscan service.
func main() {
	// --- 1. Initialization Phase ---
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("Warning: .env file not found. Relying on OS environment variables.")
	}

	if err := config.LoadConfig(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Initialize(os.Getenv("LOG_LEVEL"))
	log.Info().Msg("farmscan starting...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- 2. Chain and Oracle Clients ---
	app, err := chain.Dial(ctx, config.EthRPCURL, config.WalletAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Ethereum RPC")
	}
	log.Info().Str("endpoint", config.EthRPCURL).Str("account", config.WalletAddress).Msg("Ethereum RPC connected")

	priceClient := datafetcher.NewPriceClient(config.PriceAPIURL)

	// --- 3. Engine over the Static Adapter Registry ---
	registry := pools.DefaultRegistry(priceClient)
	engine, err := aggregator.NewEngine(registry)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create aggregation engine")
	}

	snapshots := aggregator.NewSnapshotHolder()

	// Manual refresh requests from the web layer collapse into a single
	// pending trigger; each completed refresh overwrites the snapshot
	// wholesale, so the last completion wins.
	trigger := make(chan struct{}, 1)
	requestRefresh := func() {
		select {
		case trigger <- struct{}{}:
		default:
		}
	}

	// --- 4. Web Server ---
	webServer := web.NewWebServer(config.WebPort, snapshots, requestRefresh)
	go func() {
		log.Info().Str("port", config.WebPort).Str("url", "http://localhost:"+config.WebPort).Msg("Starting farmscan API")
		if err := webServer.Start(); err != nil {
			log.Error().Err(err).Msg("Web server failed to start")
		}
	}()

	// --- 5. Refresh Loop ---
	log.Info().Str("interval", config.RefreshInterval.String()).Msg("Starting refresh loop")
	aggregator.RunLoop(ctx, engine, app, snapshots, trigger, config.RefreshInterval)

	log.Info().Msg("farmscan stopped")
}
