package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the configuration settings for the travel planning service.
// Values come from an optional YAML file plus TRIPCOMPASS_* environment
// variables, with environment taking precedence.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the HTTP API and monitoring server.
// - Language: The language code passed to the place providers.
// - RequestTimeout: The bounded timeout applied to outbound provider calls.
// - Google: Credentials and rate limit for the Google Maps/Places APIs.
// - Naver: Credentials and rate limit for the Naver DataLab/Search APIs.
type Config struct {
	Env            string        `yaml:"env"`
	Port           int           `yaml:"port"`
	Language       string        `yaml:"language"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	Google         GoogleConfig  `yaml:"google"`
	Naver          NaverConfig   `yaml:"naver"`
}

// GoogleConfig holds the Google Maps Platform credentials.
type GoogleConfig struct {
	APIKey    string `yaml:"api_key"`    // APIKey is the Google Cloud API key.
	RateLimit int    `yaml:"rate_limit"` // RateLimit is the allowed requests per second.
}

// NaverConfig holds the Naver open-API credentials used by the trend side.
type NaverConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RateLimit    int    `yaml:"rate_limit"` // RateLimit is the allowed requests per second.
}

// MustLoad loads the configuration and panics when a value cannot be parsed.
// An optional config file is read from TRIPCOMPASS_CONFIG.
func MustLoad() *Config {
	vpr := viper.New()

	vpr.SetDefault("env", "production")
	vpr.SetDefault("port", 8080)
	vpr.SetDefault("language", "ko")
	vpr.SetDefault("request_timeout", "10s")
	vpr.SetDefault("google.rate_limit", 10)
	vpr.SetDefault("naver.rate_limit", 5)

	vpr.SetEnvPrefix("TRIPCOMPASS")
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vpr.AutomaticEnv()

	if path := vpr.GetString("config"); path != "" {
		vpr.SetConfigFile(path)
		if err := vpr.ReadInConfig(); err != nil {
			panic("failed to read configuration file: " + err.Error())
		}
	}

	port := vpr.GetInt("port")
	if port <= 0 {
		panic("failed to parse port from configuration, must be a positive integer")
	}

	timeout := vpr.GetDuration("request_timeout")
	if timeout <= 0 {
		panic("failed to parse request timeout from configuration")
	}

	return &Config{
		Env:            vpr.GetString("env"),
		Port:           port,
		Language:       vpr.GetString("language"),
		RequestTimeout: timeout,
		Google: GoogleConfig{
			APIKey:    vpr.GetString("google.api_key"),
			RateLimit: vpr.GetInt("google.rate_limit"),
		},
		Naver: NaverConfig{
			ClientID:     vpr.GetString("naver.client_id"),
			ClientSecret: vpr.GetString("naver.client_secret"),
			RateLimit:    vpr.GetInt("naver.rate_limit"),
		},
	}
}
