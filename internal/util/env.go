package util

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/citenet/backend/pkg/logger"
)

// LoadEnv loads a .env file from the working directory when present.
// Variables already set in the process environment take precedence.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using process environment")
	}
}

// EnvString returns the value of key, or fallback when key is unset.
func EnvString(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

// EnvInt returns the value of key parsed as an integer, or fallback when
// key is unset or not parseable.
func EnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logger.Warn("Ignoring malformed numeric environment variable", "key", key, "value", value)
		return fallback
	}
	return parsed
}

// EnvBool returns the value of key parsed as a boolean, or fallback when
// key is unset or not parseable. Parsing follows strconv.ParseBool.
func EnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logger.Warn("Ignoring malformed boolean environment variable", "key", key, "value", value)
		return fallback
	}
	return parsed
}
