package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port     string
	LogLevel string
	Network  string

	// Discord
	DiscordToken    string
	FaucetChannelID string

	// Chain
	RPCURL           string
	FaucetPrivateKey string

	// Faucet settings
	TokenCount    int // whole tokens per grant
	CooldownHours int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	config := &Config{
		// Server defaults
		Port:     getEnv("PORT", "3000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Network:  getEnv("NETWORK", "devnet"),

		// Discord (required)
		DiscordToken:    getEnv("DISCORD_TOKEN", ""),
		FaucetChannelID: getEnv("FAUCET_CHANNEL_ID", ""),

		// Chain (required)
		RPCURL:           getEnv("RPC_URL", ""),
		FaucetPrivateKey: getEnv("FAUCET_PRIVATE_KEY", ""),

		// Faucet settings
		TokenCount:    getEnvAsInt("TOKEN_COUNT", 10),
		CooldownHours: getEnvAsInt("COOLDOWN_HOURS", 1),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.FaucetChannelID == "" {
		return fmt.Errorf("FAUCET_CHANNEL_ID is required")
	}
	if c.RPCURL == "" {
		return fmt.Errorf("RPC_URL is required")
	}
	if c.FaucetPrivateKey == "" {
		return fmt.Errorf("FAUCET_PRIVATE_KEY is required")
	}
	if c.TokenCount <= 0 {
		return fmt.Errorf("TOKEN_COUNT must be positive")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
