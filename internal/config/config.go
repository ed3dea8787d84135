package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr             string
	DirectoryBaseURL string
	PaymentDelay     time.Duration
	BrowseCacheSize  int
}

// Load reads configuration from environment variables.
func Load() Config {
	addr := os.Getenv("DRINK_SHOP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	delay := 1500 * time.Millisecond
	if v := os.Getenv("PAYMENT_SIM_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			delay = time.Duration(ms) * time.Millisecond
		}
	}

	cacheSize := 128
	if v := os.Getenv("BROWSE_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cacheSize = n
		}
	}

	return Config{
		Addr:             addr,
		DirectoryBaseURL: os.Getenv("DIRECTORY_BASE_URL"),
		PaymentDelay:     delay,
		BrowseCacheSize:  cacheSize,
	}
}
