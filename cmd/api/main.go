package main

import (
	"context"
	"errors"
	"log"
	"time"

	"relay-chat/config"
	"relay-chat/internal/broadcast"
	"relay-chat/internal/handler"
	"relay-chat/internal/redis"
	"relay-chat/internal/repository"
	"relay-chat/internal/server"
	"relay-chat/internal/services"
	"relay-chat/internal/websocket"
	"relay-chat/pkg/database"
	"relay-chat/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	mode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		mode = logger.ProductionMode
	}
	l := logger.New(mode)
	defer l.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	tokens := services.NewTokenService(
		[]byte(cfg.JWTSecret),
		time.Duration(cfg.JWTExpiryMin)*time.Minute,
	)

	broadcaster := broadcast.New()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// With Redis configured, creation events flow through the shared channel
	// so every API instance fans them out. Without it the broadcaster is fed
	// directly.
	var publisher services.EventPublisher = broadcast.Local{Broadcaster: broadcaster}
	if cfg.RedisHost != "" {
		client := redis.NewClient(redis.Config{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
		})
		bridge := broadcast.NewRedisBridge(
			redis.NewPublisher(client),
			redis.NewSubscriber(client),
			broadcaster,
			l,
		)
		publisher = bridge
		go func() {
			if err := bridge.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				l.Errorf("redis bridge stopped: %s", err)
			}
		}()
	}

	userService := services.NewUserService(userRepo, tokens)
	messageService := services.NewMessageService(messageRepo, userRepo, publisher, l)

	handlers := &server.Handlers{
		Auth:    handler.NewAuthHandler(userService),
		User:    handler.NewUserHandler(userService),
		Message: handler.NewMessageHandler(messageService),
		Socket:  websocket.NewHandler(tokens, broadcaster, l),
	}

	srv := server.New(cfg, l, db)
	srv.SetupRoutes(handlers, tokens)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
