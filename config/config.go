package config

import (
	"time"

	"github.com/spf13/viper"
)

const appname = "dmhyfeed"

// Config is the subset of settings access the rest of the app needs.
// Kept as an interface so commands and the server can be tested without
// touching the global viper state.
type Config interface {
	GetString(param string) string
	GetInt(param string) int
	Set(key string, value interface{})
}

type ViperConfig struct{}

func (v *ViperConfig) GetString(param string) string {
	return viper.GetString(param)
}

func (v *ViperConfig) GetInt(param string) int {
	return viper.GetInt(param)
}

func (v *ViperConfig) Set(key string, value interface{}) {
	viper.Set(key, value)
}

// SetDefaults seeds the settings a fresh install runs with.
func SetDefaults(cfg Config) {
	cfg.Set("feed_url", "")
	cfg.Set("timeout", 30)
	cfg.Set("port", 5000)
	cfg.Set("hostname", "localhost")
}

// FeedURL returns the configured endpoint override, empty for the default.
func FeedURL(cfg Config) string {
	return cfg.GetString("feed_url")
}

// Timeout returns the HTTP client timeout.
func Timeout(cfg Config) time.Duration {
	seconds := cfg.GetInt("timeout")
	if seconds <= 0 {
		seconds = 30
	}
	return time.Duration(seconds) * time.Second
}

func Appname() string {
	return appname
}
