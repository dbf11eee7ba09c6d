// Package config loads the relay's settings from the environment, an optional
// developer .env file and an optional YAML file. Configuration is read once at
// startup and treated as read-only afterwards.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	LegiScan LegiScanConfig `mapstructure:"legiscan" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
}

// ServerConfig controls where the relay listens
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
}

// LegiScanConfig holds the upstream API settings and the default request
// parameters used by routes that take none.
type LegiScanConfig struct {
	APIKey    string        `mapstructure:"api_key" validate:"required"`
	BaseURL   string        `mapstructure:"base_url" validate:"required,url"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"required,gt=0"`
	State     string        `mapstructure:"state" validate:"required,len=2,alpha"`
	SessionID uint32        `mapstructure:"session_id" validate:"required"`
	Year      int           `mapstructure:"year" validate:"required,gte=1900,lte=2200"`
}

// LogConfig selects the zap log level
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// Addr returns the host:port listen address
func (s ServerConfig) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}
