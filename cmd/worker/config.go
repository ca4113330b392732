package main

import (
	"log"
	"os"
)

// Config holds everything the worker needs. The worker touches only Redis
// and SMTP, so it does not load the full application config.
type Config struct {
	Environment string
	RedisAddr   string
	RedisPass   string
	RedisDB     int
	SMTPHost    string
	SMTPPort    string
	EmailFrom   string
}

func loadConfig() *Config {
	cfg := &Config{
		Environment: getEnv("APP_ENV", "development"),
		RedisAddr:   getEnv("REDIS_HOST", "localhost:6379"),
		RedisPass:   getEnv("REDIS_PASSWORD", ""),
		SMTPHost:    getEnv("SMTP_HOST", "localhost"),
		SMTPPort:    getEnv("SMTP_PORT", "1025"),
		EmailFrom:   getEnv("EMAIL_FROM", "noreply@giftlist.local"),
	}

	log.Printf("[worker] redis=%s smtp=%s:%s", cfg.RedisAddr, cfg.SMTPHost, cfg.SMTPPort)

	return cfg
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
