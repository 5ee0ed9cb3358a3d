package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the binaries read from the environment. The
// defaults reproduce the canonical dashboard with no configuration at
// all.
type Config struct {
	Seed        int64  // SALES_SEED
	OutputPath  string // SALES_OUTPUT
	ServerAddr  string // SERVER_ADDR
	PreviewRows int    // SALES_PREVIEW_ROWS
}

// Load reads the environment, honoring a .env file when present.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		Seed:        getInt64("SALES_SEED", 42),
		OutputPath:  getEnv("SALES_OUTPUT", "dashboard.png"),
		ServerAddr:  getEnv("SERVER_ADDR", ":8080"),
		PreviewRows: int(getInt64("SALES_PREVIEW_ROWS", 5)),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
