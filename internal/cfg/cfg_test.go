package cfg

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_FILE", "PORT", "MODEL_PATH", "LABEL_ENCODER_PATH", "LOG_LEVEL",
		"READ_TIMEOUT", "WRITE_TIMEOUT", "IDLE_TIMEOUT", "CLIENT_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		wantErr  bool
		validate func(t *testing.T, settings Settings)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{},
			validate: func(t *testing.T, settings Settings) {
				if settings.Port != 5000 {
					t.Errorf("expected default port 5000, got %d", settings.Port)
				}
				if settings.ModelPath != "models/personality_model.json" {
					t.Errorf("unexpected default model path %s", settings.ModelPath)
				}
				if settings.EncoderPath != "models/personality_label_encoder.json" {
					t.Errorf("unexpected default encoder path %s", settings.EncoderPath)
				}
				if settings.ReadTimeout != 10*time.Second {
					t.Errorf("expected default read timeout 10s, got %v", settings.ReadTimeout)
				}
				if settings.LogLevel != "info" {
					t.Errorf("expected default log level info, got %s", settings.LogLevel)
				}
			},
		},
		{
			name: "PORT override",
			envVars: map[string]string{
				"PORT": "8080",
			},
			validate: func(t *testing.T, settings Settings) {
				if settings.Port != 8080 {
					t.Errorf("expected port 8080, got %d", settings.Port)
				}
			},
		},
		{
			name: "custom paths and timeouts",
			envVars: map[string]string{
				"MODEL_PATH":         "artifacts/clf.json",
				"LABEL_ENCODER_PATH": "artifacts/le.json",
				"READ_TIMEOUT":       "30s",
				"LOG_LEVEL":          "debug",
			},
			validate: func(t *testing.T, settings Settings) {
				if settings.ModelPath != "artifacts/clf.json" {
					t.Errorf("unexpected model path %s", settings.ModelPath)
				}
				if settings.EncoderPath != "artifacts/le.json" {
					t.Errorf("unexpected encoder path %s", settings.EncoderPath)
				}
				if settings.ReadTimeout != 30*time.Second {
					t.Errorf("expected read timeout 30s, got %v", settings.ReadTimeout)
				}
				if settings.LogLevel != "debug" {
					t.Errorf("expected log level debug, got %s", settings.LogLevel)
				}
			},
		},
		{
			name: "invalid port rejected",
			envVars: map[string]string{
				"PORT": "70000",
			},
			wantErr: true,
		},
		{
			name: "unparseable port keeps default",
			envVars: map[string]string{
				"PORT": "not-a-port",
			},
			validate: func(t *testing.T, settings Settings) {
				if settings.Port != 5000 {
					t.Errorf("expected fallback to default port, got %d", settings.Port)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}

			settings, err := Load()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.validate != nil {
				tc.validate(t, settings)
			}
		})
	}
}

func TestLoadFromYAML(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9000
  readTimeout: 15s
model:
  path: artifacts/model.json
  encoderPath: artifacts/encoder.json
system:
  logLevel: warn
`
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", configPath)

	settings, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Port != 9000 {
		t.Errorf("expected port 9000, got %d", settings.Port)
	}
	if settings.ReadTimeout != 15*time.Second {
		t.Errorf("expected read timeout 15s, got %v", settings.ReadTimeout)
	}
	if settings.ModelPath != "artifacts/model.json" {
		t.Errorf("unexpected model path %s", settings.ModelPath)
	}
	if settings.LogLevel != "warn" {
		t.Errorf("expected log level warn, got %s", settings.LogLevel)
	}
}

func TestLoadFromYAML_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("server:\n  port: 9000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", configPath)
	t.Setenv("PORT", "7777")

	settings, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Port != 7777 {
		t.Errorf("PORT env must override the config file, got %d", settings.Port)
	}
}

func TestLoadFromYAML_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadFromYAML_MalformedFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("server: [not: valid"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", configPath)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}
