package config

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// AppConfig holds all application configuration loaded from environment
// variables. These are populated at startup by the LoadConfig function.
var (
	// EthRPCURL is the Ethereum JSON-RPC endpoint used for contract reads.
	EthRPCURL string
	// WalletAddress is the account whose stakes and claimable rewards are
	// reported. Read-only; no key material is ever loaded.
	WalletAddress string

	// PriceAPIURL overrides the price oracle endpoint. Empty selects the
	// public CoinGecko API.
	PriceAPIURL string

	// WebPort is the port the JSON API listens on.
	WebPort string
	// RefreshInterval is the period between automatic pool refreshes.
	RefreshInterval time.Duration
)

// LoadConfig loads configuration from environment variables and sets the
// global config vars. ETH_RPC_URL and WALLET_ADDRESS are required.
func LoadConfig() error {
	log.Info().Msg("Loading application configuration from environment variables...")

	var err error

	EthRPCURL, err = getEnv("ETH_RPC_URL")
	if err != nil {
		return err
	}

	WalletAddress, err = getEnv("WALLET_ADDRESS")
	if err != nil {
		return err
	}

	PriceAPIURL = getEnvOrDefault("PRICE_API_URL", "")
	WebPort = getEnvOrDefault("WEB_PORT", "8080")

	RefreshInterval, err = getEnvAsDuration("REFRESH_INTERVAL", 5*time.Minute)
	if err != nil {
		return err
	}

	log.Debug().
		Str("EthRPCURL", EthRPCURL).
		Str("WalletAddress", WalletAddress).
		Str("WebPort", WebPort).
		Dur("RefreshInterval", RefreshInterval).
		Msg("Configuration loaded successfully.")

	return nil
}

// getEnv retrieves a string environment variable. Returns error if not set.
func getEnv(key string) (string, error) {
	if value, exists := os.LookupEnv(key); exists {
		return value, nil
	}
	return "", errors.New("environment variable " + key + " is required but not set")
}

// getEnvOrDefault retrieves a string environment variable with a fallback.
func getEnvOrDefault(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// getEnvAsDuration retrieves an environment variable as a time.Duration with
// a fallback. Returns error if set but invalid.
func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, errors.New("environment variable " + key + " must be a valid duration, got: " + valueStr)
	}
	if value <= 0 {
		return 0, errors.New("environment variable " + key + " must be positive, got: " + valueStr)
	}
	return value, nil
}
