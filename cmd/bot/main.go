package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/halcyon-network/faucet-bot/internal/api"
	"github.com/halcyon-network/faucet-bot/internal/bot"
	"github.com/halcyon-network/faucet-bot/internal/config"
	"github.com/halcyon-network/faucet-bot/internal/ethereum"
	"github.com/halcyon-network/faucet-bot/internal/faucet"
	"github.com/halcyon-network/faucet-bot/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting faucet bot",
		zap.String("network", cfg.Network),
		zap.String("channel", cfg.FaucetChannelID),
	)

	// Initialize chain client
	logger.Info("Connecting to chain RPC...")
	chain, err := ethereum.NewClient(context.Background(), cfg.RPCURL, cfg.FaucetPrivateKey)
	if err != nil {
		logger.Fatal("Failed to create chain client", zap.Error(err))
	}
	defer chain.Close()
	logger.Info("Chain client initialized",
		zap.String("faucet_address", chain.FaucetAddress()),
	)

	// Initialize faucet service
	limiter := faucet.NewRateLimiter(time.Duration(cfg.CooldownHours) * time.Hour)
	svc := faucet.NewService(limiter, chain, logger, cfg.TokenCount)
	logger.Info("Faucet service initialized",
		zap.Int("tokens_per_send", cfg.TokenCount),
		zap.Int("cooldown_hours", cfg.CooldownHours),
	)

	// Start Discord bot
	discordBot, err := bot.New(cfg.DiscordToken, cfg.FaucetChannelID, cfg.Network, svc, logger)
	if err != nil {
		logger.Fatal("Failed to create Discord bot", zap.Error(err))
	}
	if err := discordBot.Start(); err != nil {
		logger.Fatal("Failed to connect to Discord", zap.Error(err))
	}
	logger.Info("Discord bot connected")

	// Create ops API handler
	handler := api.NewHandler(cfg, logger, svc, chain.FaucetAddress())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:               "Faucet Bot Ops API",
		DisableStartupMessage: false,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Setup routes
	api.SetupRoutes(app, handler)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logger.Info("Ops API starting", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			logger.Fatal("Ops API failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	if err := discordBot.Close(); err != nil {
		logger.Error("Discord shutdown error", zap.Error(err))
	}
	if err := app.Shutdown(); err != nil {
		logger.Error("Ops API shutdown error", zap.Error(err))
	}

	logger.Info("Stopped")
}
