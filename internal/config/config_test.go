package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "BASE_PATH", "DB_DRIVER", "JWT_SECRET", "JWT_TTL", "BCRYPT_COST", "METRICS_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/api", cfg.BasePath)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.True(t, cfg.MetricsEnabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BASE_PATH", "v2/")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("BCRYPT_COST", "5")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := Load()

	assert.Equal(t, "/v2", cfg.BasePath)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
	assert.Equal(t, 5, cfg.BcryptCost)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("JWT_TTL", "soon")
	t.Setenv("BCRYPT_COST", "lots")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"unknown driver", func(c *Config) { c.DBDriver = "oracle" }, "unsupported DB_DRIVER"},
		{"release without secret", func(c *Config) { c.GinMode = "release"; c.JWTSecret = "" }, "JWT_SECRET is required"},
		{"zero ttl", func(c *Config) { c.JWTTTL = 0 }, "JWT_TTL must be positive"},
		{"cost too high", func(c *Config) { c.BcryptCost = 40 }, "BCRYPT_COST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				DBDriver:   DriverSQLite,
				GinMode:    "debug",
				JWTTTL:     time.Hour,
				BcryptCost: 10,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSigningSecret(t *testing.T) {
	assert.NotEmpty(t, (&Config{}).SigningSecret())
	assert.Equal(t, "s3cret", (&Config{JWTSecret: "s3cret"}).SigningSecret())
}
