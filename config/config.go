// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by every front end.
type Config struct {
	HighScoreBackend string
	HighScorePath    string

	RedisAddr     string
	RedisPassword string
	RedisKey      string

	DatabaseURL string

	Audio  bool
	Volume float64

	// Seed fixes the piece sequence when non-zero.
	Seed    int64
	DebugUI bool
}

// Load reads .env if present and builds a Config from the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[CONFIG] Could not read .env: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		HighScoreBackend: GetEnv("BLOCKFALL_HIGHSCORE_BACKEND", "file"),
		HighScorePath:    GetEnv("BLOCKFALL_HIGHSCORE_PATH", "highscores.txt"),
		RedisAddr:        GetEnv("BLOCKFALL_REDIS_ADDR", "localhost:6379"),
		RedisPassword:    GetEnv("BLOCKFALL_REDIS_PASSWORD", ""),
		RedisKey:         GetEnv("BLOCKFALL_REDIS_KEY", "blockfall:highscores"),
		DatabaseURL:      GetEnv("BLOCKFALL_DATABASE_URL", ""),
		Audio:            GetEnvAsBool("BLOCKFALL_AUDIO", true),
		Volume:           GetEnvAsFloat("BLOCKFALL_VOLUME", 0.5),
		Seed:             int64(GetEnvAsInt("BLOCKFALL_SEED", 0)),
		DebugUI:          GetEnvAsBool("BLOCKFALL_DEBUG_UI", false),
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("[CONFIG] Invalid float value for %s: %s, using default: %v", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
