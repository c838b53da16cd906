package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Mail     MailConfig
	Payment  PaymentConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// MailConfig configures the order notification mail.
// APIKey may be empty: delivery then fails at the provider instead of at startup.
type MailConfig struct {
	APIKey string
	To     string
	From   string
}

// PaymentConfig configures the Swish payment request shown to the customer.
type PaymentConfig struct {
	SwishNumber string // merchant phone number the payment is addressed to
	UnitPrice   int    // price per copy in SEK, tax and shipping included
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Mail: MailConfig{
			APIKey: os.Getenv("SENDGRID_API_KEY"),
			To:     getEnv("MAIL_TO", "jesper@journeyman.se"),
			From:   getEnv("MAIL_FROM", "sendgrid@journeyman.se"),
		},
		Payment: PaymentConfig{
			SwishNumber: getEnv("SWISH_NUMBER", "0708761043"),
			UnitPrice:   getEnvAsInt("UNIT_PRICE", 285),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Mail.To == "" {
		return fmt.Errorf("MAIL_TO is required")
	}

	if c.Mail.From == "" {
		return fmt.Errorf("MAIL_FROM is required")
	}

	if c.Payment.SwishNumber == "" {
		return fmt.Errorf("SWISH_NUMBER is required")
	}

	if c.Payment.UnitPrice <= 0 {
		return fmt.Errorf("UNIT_PRICE must be positive, got %d", c.Payment.UnitPrice)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

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
