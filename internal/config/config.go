package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server ServerConfig
	Share  ShareConfig
	Export ExportConfig
}

type ServerConfig struct {
	Port string
	// BaseURL is the public origin embedded in share links.
	BaseURL      string
	TemplatesDir string
}

type ShareConfig struct {
	// DatabaseURL selects the postgres-backed store when set; otherwise
	// blobs persist as JSON files under StoreDir.
	DatabaseURL string
	StoreDir    string
}

type ExportConfig struct {
	ChromePath string
	Timeout    time.Duration
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			BaseURL:      getEnv("BASE_URL", "http://localhost:3000"),
			TemplatesDir: getEnv("TEMPLATES_DIR", "templates"),
		},
		Share: ShareConfig{
			DatabaseURL: getEnv("SHARE_DATABASE_URL", ""),
			StoreDir:    getEnv("SHARE_STORE_DIR", "data"),
		},
		Export: ExportConfig{
			ChromePath: getEnv("CHROME_PATH", ""),
			Timeout:    getEnvDuration("EXPORT_TIMEOUT_SECONDS", 60*time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return fallback
}
