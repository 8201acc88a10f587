// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	configPath        = pflag.String("config", ".", "Directory containing config.toml")
	validLogLevels    = []string{"debug", "info", "warn", "error", "fatal"}
	validStorageTypes = []string{"sqlite", "postgres"}
)

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	// Optional .env file for local runs, same keys as the env bindings below
	godotenv.Load()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(*configPath)

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.cors", "host_cors")

	v.BindEnv("jwt.secret", "jwt_secret")

	v.BindEnv("storage.type", "storage_type")
	v.BindEnv("storage.path", "storage_path")
	v.BindEnv("storage.dsn", "storage_dsn")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 3001)
	v.SetDefault("host.cors", []string{"http://localhost:5173"})

	v.SetDefault("storage.type", "sqlite")
	v.SetDefault("storage.path", "database.db")

	if err := v.ReadInConfig(); err != nil {
		// The config file is optional, everything can come from envs
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if v.GetString("jwt.secret") == "" {
		fmt.Println("WARNING: You haven't set a JWT secret, so it has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random JWT secret:\n\n" + genSecret() + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	switch v.GetString("storage.type") {
	case "sqlite":
		if v.GetString("storage.path") == "" {
			return errors.New("sqlite database path can't be empty")
		}
	case "postgres":
		if v.GetString("storage.dsn") == "" {
			return errors.New("postgres DSN can't be empty")
		}
	default:
		return errors.New("invalid storage type provided")
	}

	return nil
}
