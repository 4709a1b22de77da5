package main

import (
	"context"
	"edushelf/internal/config"
	"edushelf/pkg/log"
	"edushelf/pkg/redis"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatal(log.Fields{"error": err.Error()}, "Error loading configuration")
	}

	logger := log.NewLogger()

	db, err := config.OpenDatabase(env)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	var redisServer redis.IRedis
	if env.CacheEnabled() {
		redisServer = redis.New(redis.Options{
			Address:  env.RedisAddress,
			Password: env.RedisPassword,
			DB:       env.RedisDB,
		}, logger)
	}

	server, err := config.NewServer(
		config.WithFiber(config.NewFiber(logger, env)),
		config.WithLogger(logger),
		config.WithEnv(env),
		config.WithValidator(config.NewValidator()),
		config.WithDatabase(db),
		config.WithRedisServer(redisServer),
		config.WithUtils(),
		config.WithMiddleware(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	if err := server.RegisterHandler(context.Background()); err != nil {
		logger.Fatal(err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
