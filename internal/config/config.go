package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"github.com/wearapparel/admin-console/internal/mailsvc"
)

// Config holds everything the server needs at boot. Values come from
// an optional config.yaml in the working directory, overridden by
// environment variables of the same (upper-cased) name.
type Config struct {
	Addr         string
	DatabaseURL  string
	RedisAddr    string
	JWTSecret    string
	ResetURLBase string
	AlertTo      string
	SMTP         mailsvc.SMTPConfig
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("reset_url_base", "http://localhost:8080/password/reset")
	v.SetDefault("smtp_port", "587")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	v.AutomaticEnv()

	cfg := &Config{
		Addr:         v.GetString("addr"),
		DatabaseURL:  v.GetString("database_url"),
		RedisAddr:    v.GetString("redis_addr"),
		JWTSecret:    v.GetString("jwt_secret"),
		ResetURLBase: v.GetString("reset_url_base"),
		AlertTo:      v.GetString("alert_to"),
		SMTP: mailsvc.SMTPConfig{
			Host:         v.GetString("smtp_server"),
			Port:         v.GetString("smtp_port"),
			From:         v.GetString("smtp_from"),
			User:         v.GetString("smtp_user"),
			Password:     v.GetString("smtp_pass"),
			AuthDisabled: v.GetBool("smtp_auth_disabled"),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}
