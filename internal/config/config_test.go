package config_test

import (
	"testing"
	"time"

	"bopLand/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvConfig_Defaults(t *testing.T) {
	// Arrange
	t.Setenv("JWT_SECRET", "secret")

	// Act
	cfg, err := config.NewEnvConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.ProductionTypeDebug, cfg.ProductionType)
	assert.Equal(t, config.DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 10*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "http://servicos.cptec.inpe.br", cfg.Forecast.BaseURL)
	assert.Equal(t, "admin@admin.com", cfg.Seed.AdminEmail)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.SeedData)
}

func TestNewEnvConfig_Overrides(t *testing.T) {
	// Arrange
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("APP_PRODUCTION_TYPE", "prod")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/bop.db")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.local,http://b.local")

	// Act
	cfg, err := config.NewEnvConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, config.ProductionTypeProd, cfg.ProductionType)
	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/bop.db", cfg.Database.SQLitePath)
	assert.Equal(t, 30*time.Minute, cfg.JWT.TTL)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.CORSAllowedOrigins)
}

func TestNewEnvConfig_MissingSecret(t *testing.T) {
	// Arrange
	t.Setenv("JWT_SECRET", "")

	// Act
	cfg, err := config.NewEnvConfig()

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestNewEnvConfig_UnknownDriver(t *testing.T) {
	// Arrange
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_DRIVER", "mysql")

	// Act
	_, err := config.NewEnvConfig()

	// Assert
	assert.ErrorContains(t, err, "DB_DRIVER")
}
