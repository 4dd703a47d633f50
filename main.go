package main

import (
	"context"
	"os"

	"github.com/artisora/artisan-BE/api"
	db "github.com/artisora/artisan-BE/internal/db/sqlc"
	"github.com/artisora/artisan-BE/internal/delivery"
	"github.com/artisora/artisan-BE/internal/geocode"
	"github.com/artisora/artisan-BE/internal/stockwatch"
	"github.com/artisora/artisan-BE/internal/util"
	"github.com/artisora/artisan-BE/internal/worker"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}

	log.Info().Msg("configurations loaded successfully ✅")

	// Create connection pool
	connPool, err := pgxpool.New(context.Background(), config.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to validate db connection string 😣")
	}

	pingErr := connPool.Ping(context.Background())
	if pingErr != nil {
		log.Fatal().Err(pingErr).Msg("failed to connect to db 😣")
	}
	log.Info().Msg("connected to db ✅")

	store := db.NewStore(connPool)

	redisDb := redis.NewClient(&redis.Options{
		Addr:     config.RedisServerAddress,
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	redisOpt := asynq.RedisClientOpt{
		Addr: config.RedisServerAddress,
	}

	taskDistributor := worker.NewTaskDistributor(redisOpt)

	go runTaskProcessor(redisOpt, store)

	// Routing and geocoding providers
	osrmService := delivery.NewOSRMService(config.OSRMBaseURL, config.RoutingRequestTimeout)
	deliveryResolver := delivery.NewResolver(osrmService)

	geocoder := geocode.NewReverseGeocoder(config.NominatimBaseURL, config.RoutingRequestTimeout, redisDb)

	// Periodic repair of drifted in_stock flags
	watcher, err := stockwatch.NewWatcher(store, config.StockRepairInterval)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create stock watcher 😣")
	}
	if err = watcher.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start stock watcher 😣")
	}
	log.Info().Msg("stock watcher started successfully ✅")

	runHTTPServer(config, store, taskDistributor, deliveryResolver, geocoder)
}

func runTaskProcessor(redisOpt asynq.RedisClientOpt, store db.Store) {
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, store)

	log.Info().Msg("task processor started successfully ✅")
	if err := taskProcessor.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start task processor 😣")
	}
}

func runHTTPServer(config util.Config, store db.Store, taskDistributor worker.TaskDistributor, deliveryResolver *delivery.Resolver, geocoder *geocode.ReverseGeocoder) {
	server, err := api.NewServer(store, taskDistributor, &config, deliveryResolver, geocoder)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP server 😣")
	}

	err = server.Start(config.HTTPServerAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
	}
}
