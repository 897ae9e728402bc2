package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds settings for the bid service and the bidwatch client
type Config struct {
	ServerAddress     string        `mapstructure:"SERVER_ADDRESS"`
	RedisURL          string        `mapstructure:"REDIS_URL"`
	RealtimeTransport string        `mapstructure:"REALTIME_TRANSPORT"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	TokenTTL          time.Duration `mapstructure:"TOKEN_TTL"`
	APIBaseURL        string        `mapstructure:"API_BASE_URL"`
	TokenFile         string        `mapstructure:"TOKEN_FILE"`
	RequestTimeout    time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":     ":8080",
	"REDIS_URL":          "redis://localhost:6379/0",
	"REALTIME_TRANSPORT": "memory",
	"JWT_SECRET":         "dev-secret-change-me",
	"TOKEN_TTL":          "24h",
	"API_BASE_URL":       "http://localhost:8080",
	"TOKEN_FILE":         ".skillswap/token",
	"REQUEST_TIMEOUT":    "15s",
	"LOG_LEVEL":          "info",
}

// LoadConfig reads app.env from path when present; environment variables
// take precedence over the file and the file over the defaults.
func LoadConfig(path string) (cfg Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}
	err = v.Unmarshal(&cfg)
	return
}
