package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Talha3818/gaming-site-sub001/internal/common/clock"
	"github.com/Talha3818/gaming-site-sub001/internal/common/uuid"
	"github.com/Talha3818/gaming-site-sub001/internal/notify"
	accountRepo "github.com/Talha3818/gaming-site-sub001/internal/repositories/account"
	challengeRepo "github.com/Talha3818/gaming-site-sub001/internal/repositories/challenge"
	challengeService "github.com/Talha3818/gaming-site-sub001/internal/services/challenge"
	"github.com/Talha3818/gaming-site-sub001/internal/services/scheduler"
	"github.com/Talha3818/gaming-site-sub001/internal/workers/expiry"
)

func main() {
	// Load a local .env if present
	_ = godotenv.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	challenges, err := challengeRepo.NewRedis(&challengeRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create challenge repository: %v", err)
	}

	accounts, err := accountRepo.NewRedis(&accountRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create account repository: %v", err)
	}

	systemClock := &clock.DefaultClock{}
	uuidGenerator := uuid.New()

	// Initialize the notifier; without a token events are dropped
	var notifier notify.Notifier = notify.NewNoop()
	if token := getEnv("DISCORD_TOKEN", ""); token != "" {
		session, err := discordgo.New("Bot " + token)
		if err != nil {
			log.Fatalf("Failed to create Discord session: %v", err)
		}
		if err := session.Open(); err != nil {
			log.Fatalf("Failed to open Discord session: %v", err)
		}
		defer session.Close()

		notifier, err = notify.NewDiscord(&notify.DiscordConfig{Session: session})
		if err != nil {
			log.Fatalf("Failed to create Discord notifier: %v", err)
		}
	}

	// Initialize services
	schedulerSvc, err := scheduler.New(&scheduler.Config{
		ChallengeRepo: challenges,
		Clock:         systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create scheduler service: %v", err)
	}

	challengeSvc, err := challengeService.New(&challengeService.Config{
		ChallengeRepo: challenges,
		AccountRepo:   accounts,
		Scheduler:     schedulerSvc,
		Notifier:      notifier,
		Clock:         systemClock,
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		log.Fatalf("Failed to create challenge service: %v", err)
	}

	// Start the expiry sweep
	sweepInterval := time.Duration(getEnvInt("EXPIRY_SWEEP_SECONDS", 60)) * time.Second
	worker, err := expiry.New(&expiry.Config{
		ChallengeService: challengeSvc,
		Interval:         sweepInterval,
	})
	if err != nil {
		log.Fatalf("Failed to create expiry worker: %v", err)
	}

	if err := worker.Start(); err != nil {
		log.Fatalf("Failed to start expiry worker: %v", err)
	}

	log.Println("Challenge engine is running. Press CTRL-C to exit.")

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := worker.Stop(); err != nil {
		log.Printf("Error stopping expiry worker: %v", err)
	}

	log.Println("Challenge engine has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return parsed
}
