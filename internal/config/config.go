package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/denimatfire/warm-corporate-canvas/blog"
	"github.com/denimatfire/warm-corporate-canvas/internal/logger"
)

const configFilename = "config.yaml"

// SetupConfig loads file-based configuration needed for bootstrap and
// initializes the logger. A missing config file is created with
// defaults.
func SetupConfig() *blog.Config {
	viper.SetDefault("dbfile", "canvas.db")
	viper.SetDefault("host", "0.0.0.0:8080")
	viper.SetDefault("base_url", "http://localhost:8080")
	viper.SetDefault("cors_origin", "http://localhost:5173")
	viper.SetDefault("log_format", "pretty") // pretty, json, or text
	viper.SetDefault("log_level", "info")    // debug, info, warn, error
	viper.SetDefault("cookie_expiry", 86400)

	viper.SetConfigFile(configFilename)
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()

	createDefaultConfigFile := false

	if err != nil {
		if strings.Contains(err.Error(), "no such file or directory") {
			createDefaultConfigFile = true
		} else {
			slog.Error("failed to read config", "error", err)
			os.Exit(1)
		}
	}

	// Initialize logger with configured format and level
	logger.InitLogger(
		logger.ParseLogFormat(viper.GetString("log_format")),
		logger.ParseLogLevel(viper.GetString("log_level")),
	)

	config := &blog.Config{
		DatabaseFile:      viper.GetString("dbfile"),
		Host:              viper.GetString("host"),
		BaseURL:           viper.GetString("base_url"),
		CORSOrigin:        viper.GetString("cors_origin"),
		LogFormat:         viper.GetString("log_format"),
		LogLevel:          viper.GetString("log_level"),
		CookieExpiry:      viper.GetInt("cookie_expiry"),
		AdminPasswordHash: viper.GetString("admin_password_hash"),
	}

	// The session cookie secret never lives in the config file; it is
	// regenerated per process unless supplied via environment.
	if secret := os.Getenv("CANVAS_COOKIE_SECRET"); secret != "" {
		config.CookieSecret = []byte(secret)
	} else {
		config.CookieSecret = securecookie.GenerateRandomKey(32)
	}

	if createDefaultConfigFile {
		slog.Info("config not found, writing defaults", "file", configFilename)
		conf, err := os.Create(configFilename)
		if err != nil {
			slog.Error("failed to create config file", "error", err)
			os.Exit(1)
		}

		if err := yaml.NewEncoder(conf).Encode(config); err != nil {
			slog.Error("failed to write config file", "error", err)
			os.Exit(1)
		}
	}

	return config
}
