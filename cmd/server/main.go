package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/smashcrew/teambalance/internal/common/clock"
	"github.com/smashcrew/teambalance/internal/common/uuid"
	"github.com/smashcrew/teambalance/internal/handlers/web"
	"github.com/smashcrew/teambalance/internal/models"
	"github.com/smashcrew/teambalance/internal/random"
	appStateRepo "github.com/smashcrew/teambalance/internal/repositories/appstate"
	participantRepo "github.com/smashcrew/teambalance/internal/repositories/participant"
	teamRepo "github.com/smashcrew/teambalance/internal/repositories/team"
	"github.com/smashcrew/teambalance/internal/services/tournament"
)

// defaultTeamNames seed the four fixed teams on first boot
var defaultTeamNames = []string{"Team A", "Team B", "Team C", "Team D"}

func main() {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

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
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}

	// Initialize repositories
	participants, err := participantRepo.NewRedis(&participantRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("failed to create participant repository", zap.Error(err))
	}

	teams, err := teamRepo.NewRedis(&teamRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("failed to create team repository", zap.Error(err))
	}

	appState, err := appStateRepo.NewRedis(&appStateRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("failed to create app state repository", zap.Error(err))
	}

	systemClock := &clock.DefaultClock{}
	idGenerator := uuid.New()

	// Ensure the four fixed teams exist
	if err := seedTeams(ctx, teams, systemClock, idGenerator); err != nil {
		logger.Fatal("failed to seed teams", zap.Error(err))
	}

	// Initialize the tournament service
	svc, err := tournament.New(&tournament.Config{
		ParticipantRepo: participants,
		TeamRepo:        teams,
		AppStateRepo:    appState,
		Random:          random.New(&random.Config{}),
		Clock:           systemClock,
		UUIDGenerator:   idGenerator,
	})
	if err != nil {
		logger.Fatal("failed to create tournament service", zap.Error(err))
	}

	// Admin credentials are required
	adminPassword := getEnv("ADMIN_PASSWORD", "")
	if adminPassword == "" {
		logger.Fatal("ADMIN_PASSWORD environment variable is required")
	}

	sessionSecret := getEnv("SESSION_SECRET", "")
	if sessionSecret == "" {
		logger.Fatal("SESSION_SECRET environment variable is required")
	}

	handler, err := web.New(&web.Config{
		Service:       svc,
		AdminPassword: adminPassword,
		SessionSecret: sessionSecret,
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal("failed to create web handler", zap.Error(err))
	}

	server := &http.Server{
		Addr:    getEnv("LISTEN_ADDR", ":8080"),
		Handler: web.Routes(handler),
	}

	go func() {
		logger.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutting down server", zap.Error(err))
	}

	logger.Info("server has been shut down")
}

// seedTeams creates the four fixed teams when none exist yet
func seedTeams(ctx context.Context, repo teamRepo.Repository, c clock.Clock, gen uuid.Generator) error {
	output, err := repo.ListTeams(ctx, &teamRepo.ListTeamsInput{})
	if err != nil {
		return err
	}

	if len(output.Teams) >= models.TeamCount {
		return nil
	}

	now := c.Now()
	for _, name := range defaultTeamNames[len(output.Teams):] {
		err := repo.SaveTeam(ctx, &teamRepo.SaveTeamInput{
			Team: &models.Team{
				ID:        gen.NewID(),
				Name:      name,
				CreatedAt: now,
			},
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
