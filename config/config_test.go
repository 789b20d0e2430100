package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "8080",
			MaxBodyBytes: 1024,
		},
		EmailJS: EmailJSConfig{
			ServiceID:      "service_abc",
			TemplateID:     "template_abc",
			PublicKey:      "public-key",
			PrivateKey:     "private-key",
			URL:            "https://api.emailjs.com/api/v1.0/email/send",
			TimeoutSeconds: 10,
		},
	}
}

// chdirTemp moves the test into an empty directory so no .env file is picked up
func chdirTemp(t *testing.T) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(originalDir) })
}

func setProviderEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SERVICE_ID", "service_env")
	t.Setenv("TEMPLATE_ID", "template_env")
	t.Setenv("EMAILJS_PUBLIC_KEY", "public_env")
	t.Setenv("EMAILJS_PRIVATE_KEY", "private_env")
	t.Setenv("EMAILJS_URL", "https://emailjs.example.com/send")
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name: "development environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "development"},
			},
			expected: true,
		},
		{
			name: "debug gin mode",
			config: &Config{
				Server: ServerConfig{GinMode: "debug"},
			},
			expected: true,
		},
		{
			name: "release mode",
			config: &Config{
				Server: ServerConfig{GinMode: "release", AppEnv: "production"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.IsDevelopment())
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	assert.True(t, (&Config{Server: ServerConfig{AppEnv: "production"}}).IsProduction())
	assert.False(t, (&Config{Server: ServerConfig{AppEnv: "staging"}}).IsProduction())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		errorMsg string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:     "missing service id",
			mutate:   func(c *Config) { c.EmailJS.ServiceID = "" },
			errorMsg: "SERVICE_ID is required",
		},
		{
			name:     "missing template id",
			mutate:   func(c *Config) { c.EmailJS.TemplateID = "" },
			errorMsg: "TEMPLATE_ID is required",
		},
		{
			name:     "missing public key",
			mutate:   func(c *Config) { c.EmailJS.PublicKey = "" },
			errorMsg: "EMAILJS_PUBLIC_KEY is required",
		},
		{
			name:     "missing url",
			mutate:   func(c *Config) { c.EmailJS.URL = "" },
			errorMsg: "EMAILJS_URL is required",
		},
		{
			name:     "missing private key",
			mutate:   func(c *Config) { c.EmailJS.PrivateKey = "" },
			errorMsg: "EMAILJS_PRIVATE_KEY is required",
		},
		{
			name:     "non-positive timeout",
			mutate:   func(c *Config) { c.EmailJS.TimeoutSeconds = 0 },
			errorMsg: "EMAILJS_TIMEOUT_SECONDS must be positive",
		},
		{
			name:     "profiling without endpoint",
			mutate:   func(c *Config) { c.Profiling.Enabled = true },
			errorMsg: "O11Y_PROFILING_ENDPOINT is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.errorMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEmailJSConfig_Timeout(t *testing.T) {
	assert.Equal(t, 7*time.Second, EmailJSConfig{TimeoutSeconds: 7}.Timeout())
}

func TestLoad_WithDefaults(t *testing.T) {
	chdirTemp(t)
	setProviderEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "production", cfg.Server.AppEnv)
	assert.Empty(t, cfg.Server.AllowedOrigins)
	assert.Equal(t, int64(64*1024), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 10, cfg.EmailJS.TimeoutSeconds)
	assert.Equal(t, "docs-feedback", cfg.Observability.ServiceName)
	assert.False(t, cfg.Profiling.Enabled)

	assert.Equal(t, "service_env", cfg.EmailJS.ServiceID)
	assert.Equal(t, "template_env", cfg.EmailJS.TemplateID)
	assert.Equal(t, "public_env", cfg.EmailJS.PublicKey)
	assert.Equal(t, "private_env", cfg.EmailJS.PrivateKey)
	assert.Equal(t, "https://emailjs.example.com/send", cfg.EmailJS.URL)
}

func TestLoad_WithEnvironmentVariables(t *testing.T) {
	chdirTemp(t)
	setProviderEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "development")
	t.Setenv("ALLOWED_CORS_ORIGINS", "https://docs.example.com, https://www.example.com,")
	t.Setenv("EMAILJS_TIMEOUT_SECONDS", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"https://docs.example.com", "https://www.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.EmailJS.Timeout())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_MissingProviderSettings(t *testing.T) {
	chdirTemp(t)
	setProviderEnv(t)
	t.Setenv("EMAILJS_PRIVATE_KEY", "")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "EMAILJS_PRIVATE_KEY is required")
	assert.Nil(t, cfg)
}
