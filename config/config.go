package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Oracles
	Voyage      VoyageConfig
	IntentModel IntentModelConfig

	// Routing policy
	Routing RoutingConfig

	// API protection
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type VoyageConfig struct {
	APIKey string
	Model  string
}

// IntentModelConfig points at the intent classifier inference service.
// Enabled false or an empty URL runs the router semantic-only.
type IntentModelConfig struct {
	URL     string
	Enabled bool
}

// RoutingConfig exposes the hybrid policy parameters. Zero values fall
// back to the engine defaults.
type RoutingConfig struct {
	ClassifierThreshold float64
	BaseThreshold       float64
	HinglishFactor      float64
	HindiFactor         float64
	ClassifierTimeout   time.Duration
	EmbeddingTimeout    time.Duration
	EmbeddingCacheSize  int
}

type AuthConfig struct {
	Enabled bool
	Token   string
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., and /etc/app/.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Voyage AI
	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	cfg.Voyage.Model = viper.GetString("voyage.model")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}
	if cfg.Voyage.APIKey == "" {
		return nil, fmt.Errorf("voyage.api_key is required")
	}

	// Intent classifier service
	cfg.IntentModel.URL = viper.GetString("intent_model.url")
	cfg.IntentModel.Enabled = viper.GetBool("intent_model.enabled")
	if intentURL := viper.GetString("intent_model_url"); intentURL != "" {
		cfg.IntentModel.URL = intentURL
	}

	// Routing policy
	cfg.Routing.ClassifierThreshold = viper.GetFloat64("routing.classifier_threshold")
	cfg.Routing.BaseThreshold = viper.GetFloat64("routing.base_threshold")
	cfg.Routing.HinglishFactor = viper.GetFloat64("routing.hinglish_factor")
	cfg.Routing.HindiFactor = viper.GetFloat64("routing.hindi_factor")
	cfg.Routing.ClassifierTimeout = viper.GetDuration("routing.classifier_timeout")
	cfg.Routing.EmbeddingTimeout = viper.GetDuration("routing.embedding_timeout")
	cfg.Routing.EmbeddingCacheSize = viper.GetInt("routing.embedding_cache_size")

	if err := validateRoutingConfig(&cfg.Routing); err != nil {
		return nil, err
	}

	// API protection
	cfg.Auth.Enabled = viper.GetBool("auth.enabled")
	cfg.Auth.Token = viper.GetString("auth.token")
	if authToken := viper.GetString("auth_token"); authToken != "" {
		cfg.Auth.Token = authToken
	}
	if cfg.Auth.Enabled && cfg.Auth.Token == "" {
		return nil, fmt.Errorf("auth.token is required when auth.enabled is true")
	}
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("voyage.model", "voyage-multilingual-2")
	viper.SetDefault("intent_model.enabled", true)

	// Routing defaults tuned on the builtin evaluation dataset.
	viper.SetDefault("routing.classifier_threshold", 0.55)
	viper.SetDefault("routing.base_threshold", 0.30)
	viper.SetDefault("routing.hinglish_factor", 0.85)
	viper.SetDefault("routing.hindi_factor", 0.95)
	viper.SetDefault("routing.classifier_timeout", "5s")
	viper.SetDefault("routing.embedding_timeout", "10s")
	viper.SetDefault("routing.embedding_cache_size", 512)

	viper.SetDefault("auth.enabled", false)
	viper.SetDefault("rate_limit.per_min", 60)
}

// validateRoutingConfig rejects out-of-range policy values early rather
// than at first request.
func validateRoutingConfig(cfg *RoutingConfig) error {
	inUnit := func(name string, v float64) error {
		if v < 0 || v > 1 {
			return fmt.Errorf("routing.%s must be within [0, 1], got %v", name, v)
		}
		return nil
	}

	if err := inUnit("classifier_threshold", cfg.ClassifierThreshold); err != nil {
		return err
	}
	if err := inUnit("base_threshold", cfg.BaseThreshold); err != nil {
		return err
	}
	if err := inUnit("hinglish_factor", cfg.HinglishFactor); err != nil {
		return err
	}
	if err := inUnit("hindi_factor", cfg.HindiFactor); err != nil {
		return err
	}
	if cfg.EmbeddingCacheSize < 0 {
		return fmt.Errorf("routing.embedding_cache_size must not be negative, got %d", cfg.EmbeddingCacheSize)
	}
	return nil
}
