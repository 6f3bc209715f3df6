package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Auth
		CORS
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path               string
		MaxConnectAttempts int
		ConnectRetryDelay  time.Duration
	}
	Auth struct {
		TokenSecret string
		TokenExpiry time.Duration
		BcryptCost  int
	}
	CORS struct {
		AllowedOrigins []string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	// Database defaults
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_max_connect_attempts", 5)
	v.SetDefault("database_connect_retry_delay", "2s")

	// Auth defaults
	v.SetDefault("auth_token_secret", "") // Must be set; entrypoint refuses to start without it
	v.SetDefault("auth_token_expiry", "24h")
	v.SetDefault("auth_bcrypt_cost", 12)

	// Dev frontend origins; override in production
	v.SetDefault("cors_allowed_origins", "http://localhost:5173,http://localhost:5174,http://localhost:5175")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path:               v.GetString("DATABASE_PATH"),
			MaxConnectAttempts: v.GetInt("DATABASE_MAX_CONNECT_ATTEMPTS"),
			ConnectRetryDelay:  v.GetDuration("DATABASE_CONNECT_RETRY_DELAY"),
		},
		Auth: Auth{
			TokenSecret: v.GetString("AUTH_TOKEN_SECRET"),
			TokenExpiry: v.GetDuration("AUTH_TOKEN_EXPIRY"),
			BcryptCost:  v.GetInt("AUTH_BCRYPT_COST"),
		},
		CORS: CORS{
			AllowedOrigins: splitOrigins(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
