package main

import (
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/thomasnguyen/corgi-quest-sub001/internal/bootstrap"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/config"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/server"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect(cfg.DatabaseURL)
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := bootstrap.SeedItems(db); err != nil {
		log.Fatalf("failed to seed item catalog: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	} else {
		log.Println("⚠️ REDIS_URL not set, presence and rate limiting disabled")
	}

	srv := server.NewServer(cfg, db, redisClient)
	defer srv.Shutdown()

	log.Printf("🚀 Server listening on :%s", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
