package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/mizutanik/roadquest/internal/config"
	"github.com/mizutanik/roadquest/internal/repositories/battles"
	"github.com/mizutanik/roadquest/internal/repositories/characters"
	"github.com/mizutanik/roadquest/internal/repositories/items"
	"github.com/mizutanik/roadquest/internal/repositories/monsters"
	"github.com/mizutanik/roadquest/internal/repositories/roads"
	"github.com/mizutanik/roadquest/internal/server"
	"github.com/mizutanik/roadquest/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	providerConfig := &services.ProviderConfig{}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		log.Printf("Connecting to Redis at: %s", redisURL)

		opts, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory repositories")
		} else {
			redisClient = redis.NewClient(opts)
		}
	} else {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	if redisClient != nil {
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Printf("Redis not reachable: %v", err)
			log.Println("Falling back to in-memory repositories")
			_ = redisClient.Close()
			redisClient = nil
		}
		cancel()
	}

	if redisClient != nil {
		providerConfig.BattleRepository = battles.NewRedisRepository(&battles.RedisRepoConfig{Client: redisClient})
		providerConfig.CharacterRepository = characters.NewRedisRepository(&characters.RedisRepoConfig{Client: redisClient})
		providerConfig.ItemRepository = items.NewRedisRepository(&items.RedisRepoConfig{Client: redisClient})
		providerConfig.MonsterRepository = monsters.NewRedisRepository(&monsters.RedisRepoConfig{Client: redisClient})
		providerConfig.RoadRepository = roads.NewRedisRepository(&roads.RedisRepoConfig{Client: redisClient})
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Failed to close Redis client: %v", err)
			}
		}()
	}

	provider := services.NewProvider(providerConfig)

	srv := server.New(&server.Config{
		Addr:     cfg.Server.Addr,
		Provider: provider,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return srv.ListenAndServe()
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server stopped")
}
