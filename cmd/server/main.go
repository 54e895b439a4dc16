package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/salahapp/salah-server/internal/config"
	"github.com/salahapp/salah-server/internal/db"
	"github.com/salahapp/salah-server/internal/notify"
	"github.com/salahapp/salah-server/internal/redis"
	"github.com/salahapp/salah-server/internal/schedule"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	env := LoadEnvironment()

	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}

	if cfg.RedisAddress != "" {
		redis.InitRedis(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword)
	}

	store := db.NewStore(nil)
	storageSystem := InitStorage(env)
	resolver := schedule.NewResolver(store)

	// the server runs without a notifier when no broker is configured or
	// the broker is down; boards just miss live refreshes
	var notifier *notify.BoardNotifier
	if cfg.MQTTBrokerURL != "" {
		notifier, err = notify.NewBoardNotifier(cfg.MQTTBrokerURL, resolver)
		if err != nil {
			log.Error().Err(err).Msg("board notifier disabled")
			notifier = nil
		}
	}

	r := gin.Default()
	RegisterRoutes(r, cfg, env, store, storageSystem, resolver, notifier)

	log.Info().Str("address", cfg.ServerAddress).Msg("listening")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
