package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	ProductionTypeDebug = "debug"
	ProductionTypeProd  = "prod"
	ProductionTypeTest  = "test"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port           string `env:"APP_PORT" envDefault:"8080"`
	ProductionType string `env:"APP_PRODUCTION_TYPE" envDefault:"debug"`
	LogPath        string `env:"APP_LOG_PATH" envDefault:"logs/bopland.log"`
	SeedData       bool   `env:"APP_SEED_INITIAL_DATA" envDefault:"true"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	Database Database `envPrefix:"DB_"`
	JWT      JWT      `envPrefix:"JWT_"`
	Forecast Forecast `envPrefix:"FORECAST_"`
	Seed     Seed     `envPrefix:"SEED_"`
}

type Database struct {
	Driver     string `env:"DRIVER" envDefault:"postgres"`
	Host       string `env:"HOST" envDefault:"localhost"`
	Port       string `env:"PORT" envDefault:"5432"`
	User       string `env:"USER"`
	Password   string `env:"PASSWORD"`
	Name       string `env:"NAME"`
	SSLMode    string `env:"SSLMODE" envDefault:"disable"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/bopland.db"`
}

type JWT struct {
	Secret string        `env:"SECRET"`
	TTL    time.Duration `env:"TTL" envDefault:"10h"`
}

type Forecast struct {
	BaseURL string        `env:"BASE_URL" envDefault:"http://servicos.cptec.inpe.br"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Seed - учётная запись администратора, создаваемая при первом запуске
type Seed struct {
	AdminName     string `env:"ADMIN_NAME" envDefault:"admin"`
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@admin.com"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"12345"`
}

// NewEnvConfig читает конфигурацию из переменных окружения и проверяет её
func NewEnvConfig() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse env config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (config *Config) validate() error {
	switch config.ProductionType {
	case ProductionTypeDebug, ProductionTypeProd, ProductionTypeTest:
	default:
		return fmt.Errorf("unknown APP_PRODUCTION_TYPE %q", config.ProductionType)
	}

	switch config.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", config.Database.Driver)
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if config.JWT.TTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}

	return nil
}

func (config *Config) PrintConfigWithHiddenSecrets() {
	// Функция для маскировки секретов
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return strings.Repeat("*", len(s))
	}

	fmt.Println("========== Configuration ==========")

	fmt.Println("\nApp Configuration:")
	fmt.Printf("\tPort: %s\n", config.Port)
	fmt.Printf("\tProductionType: %s\n", config.ProductionType)
	fmt.Printf("\tLogPath: %s\n", config.LogPath)
	fmt.Printf("\tSeedData: %t\n", config.SeedData)
	fmt.Printf("\tCORSAllowedOrigins: %s\n", strings.Join(config.CORSAllowedOrigins, ","))

	fmt.Println("\nDatabase Configuration:")
	fmt.Printf("\tDriver: %s\n", config.Database.Driver)
	if config.Database.Driver == DriverSQLite {
		fmt.Printf("\tSQLitePath: %s\n", config.Database.SQLitePath)
	} else {
		fmt.Printf("\tHost: %s\n", config.Database.Host)
		fmt.Printf("\tPort: %s\n", config.Database.Port)
		fmt.Printf("\tUser: %s\n", config.Database.User)
		fmt.Printf("\tPassword: %s\n", mask(config.Database.Password))
		fmt.Printf("\tName: %s\n", config.Database.Name)
		fmt.Printf("\tSSLMode: %s\n", config.Database.SSLMode)
	}

	fmt.Println("\nAuth Configuration:")
	fmt.Printf("\tJWTSecret: %s\n", mask(config.JWT.Secret))
	fmt.Printf("\tJWTTTL: %s\n", config.JWT.TTL)

	fmt.Println("\nForecast Configuration:")
	fmt.Printf("\tBaseURL: %s\n", config.Forecast.BaseURL)
	fmt.Printf("\tTimeout: %s\n", config.Forecast.Timeout)

	fmt.Println("\nSeed Configuration:")
	fmt.Printf("\tAdminEmail: %s\n", config.Seed.AdminEmail)
	fmt.Printf("\tAdminPassword: %s\n", mask(config.Seed.AdminPassword))

	fmt.Println("\n===================================")
}
