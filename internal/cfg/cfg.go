// Package cfg loads service configuration from an optional YAML file with
// environment variable overrides. PORT alone is enough to deploy: every
// other setting has a default.
package cfg

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings is the resolved runtime configuration.
type Settings struct {
	Port          int
	ModelPath     string
	EncoderPath   string
	LogLevel      string
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	IdleTimeout   time.Duration
	ClientTimeout time.Duration
}

// ConfigFile mirrors the optional YAML config layout.
type ConfigFile struct {
	Server struct {
		Port         int    `yaml:"port"`
		ReadTimeout  string `yaml:"readTimeout"`
		WriteTimeout string `yaml:"writeTimeout"`
		IdleTimeout  string `yaml:"idleTimeout"`
	} `yaml:"server"`

	Model struct {
		Path        string `yaml:"path"`
		EncoderPath string `yaml:"encoderPath"`
	} `yaml:"model"`

	System struct {
		LogLevel      string `yaml:"logLevel"`
		ClientTimeout string `yaml:"clientTimeout"`
	} `yaml:"system"`
}

const (
	defaultPort        = 5000
	defaultModelPath   = "models/personality_model.json"
	defaultEncoderPath = "models/personality_label_encoder.json"
)

// Load resolves settings. A YAML file named by CONFIG_FILE is read first
// when present; environment variables override it either way.
func Load() (Settings, error) {
	if configPath := os.Getenv("CONFIG_FILE"); configPath != "" {
		return loadFromYAML(configPath)
	}
	return loadFromEnv()
}

func loadFromYAML(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Settings{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	settings := Settings{
		Port:          getIntFromEnvOrConfig("PORT", config.Server.Port, defaultPort),
		ModelPath:     getEnvOrDefault("MODEL_PATH", orDefault(config.Model.Path, defaultModelPath)),
		EncoderPath:   getEnvOrDefault("LABEL_ENCODER_PATH", orDefault(config.Model.EncoderPath, defaultEncoderPath)),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", orDefault(config.System.LogLevel, "info")),
		ReadTimeout:   durationFromEnvOrConfig("READ_TIMEOUT", config.Server.ReadTimeout, 10*time.Second),
		WriteTimeout:  durationFromEnvOrConfig("WRITE_TIMEOUT", config.Server.WriteTimeout, 10*time.Second),
		IdleTimeout:   durationFromEnvOrConfig("IDLE_TIMEOUT", config.Server.IdleTimeout, 120*time.Second),
		ClientTimeout: durationFromEnvOrConfig("CLIENT_TIMEOUT", config.System.ClientTimeout, 5*time.Second),
	}

	if err := validateSettings(&settings); err != nil {
		return Settings{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return settings, nil
}

func loadFromEnv() (Settings, error) {
	settings := Settings{
		Port:          getIntOrDefault("PORT", defaultPort),
		ModelPath:     getEnvOrDefault("MODEL_PATH", defaultModelPath),
		EncoderPath:   getEnvOrDefault("LABEL_ENCODER_PATH", defaultEncoderPath),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		ReadTimeout:   getDurationOrDefault("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:  getDurationOrDefault("WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:   getDurationOrDefault("IDLE_TIMEOUT", 120*time.Second),
		ClientTimeout: getDurationOrDefault("CLIENT_TIMEOUT", 5*time.Second),
	}

	if err := validateSettings(&settings); err != nil {
		return Settings{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return settings, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func orDefault(v, defaultValue string) string {
	if v != "" {
		return v
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getIntFromEnvOrConfig(key string, configValue, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	if configValue != 0 {
		return configValue
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func durationFromEnvOrConfig(key, configValue string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	if configValue != "" {
		if d, err := time.ParseDuration(configValue); err == nil {
			return d
		}
	}
	return defaultValue
}

// validateSettings rejects configurations that cannot serve.
func validateSettings(s *Settings) error {
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", s.Port)
	}
	if s.ModelPath == "" {
		return fmt.Errorf("model path cannot be empty")
	}
	if s.EncoderPath == "" {
		return fmt.Errorf("label encoder path cannot be empty")
	}
	if ext := filepath.Ext(s.ModelPath); ext == "" {
		return fmt.Errorf("model path %s has no file extension", s.ModelPath)
	}
	if s.ReadTimeout < time.Second || s.ReadTimeout > time.Minute {
		return fmt.Errorf("read timeout must be between 1s and 1m, got %v", s.ReadTimeout)
	}
	if s.WriteTimeout < time.Second || s.WriteTimeout > time.Minute {
		return fmt.Errorf("write timeout must be between 1s and 1m, got %v", s.WriteTimeout)
	}
	if s.IdleTimeout < time.Second || s.IdleTimeout > 10*time.Minute {
		return fmt.Errorf("idle timeout must be between 1s and 10m, got %v", s.IdleTimeout)
	}
	if s.ClientTimeout < time.Second || s.ClientTimeout > time.Minute {
		return fmt.Errorf("client timeout must be between 1s and 1m, got %v", s.ClientTimeout)
	}
	return nil
}
