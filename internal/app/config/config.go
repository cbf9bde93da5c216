package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"hurghada-dream/go_backend/internal/domain/money"
	"hurghada-dream/go_backend/internal/domain/settings"
)

type Config struct {
	HTTPAddr        string `envconfig:"HTTP_ADDR" default:":8080"`
	InternalToken   string `envconfig:"INTERNAL_TOKEN"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string `envconfig:"LOG_FORMAT" default:"json"`
	CORSAllowOrigin string `envconfig:"CORS_ALLOW_ORIGIN" default:"*"`

	StoreDriver string `envconfig:"STORE_DRIVER" default:"badger"`
	StorePath   string `envconfig:"STORE_PATH" default:"./data"`
	RedisURL    string `envconfig:"REDIS_URL"`

	DatabaseURL     string        `envconfig:"DATABASE_URL"`
	SupabaseURL     string        `envconfig:"SUPABASE_URL"`
	SupabaseAnonKey string        `envconfig:"SUPABASE_ANON_KEY"`
	SyncInterval    time.Duration `envconfig:"SYNC_INTERVAL" default:"3s"`
	QuoteDraftTTL   time.Duration `envconfig:"QUOTE_DRAFT_TTL" default:"12h"`

	DefaultCurrency string `envconfig:"DEFAULT_CURRENCY" default:"EGP"`
	AgencyName      string `envconfig:"AGENCY_NAME"`
	AgencyPhone     string `envconfig:"AGENCY_PHONE"`
	AgencyAddress   string `envconfig:"AGENCY_ADDRESS"`
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := money.ParseCurrency(cfg.DefaultCurrency); err != nil {
		return Config{}, fmt.Errorf("DEFAULT_CURRENCY: %w", err)
	}
	if cfg.SyncInterval <= 0 {
		return Config{}, fmt.Errorf("SYNC_INTERVAL must be positive, got %s", cfg.SyncInterval)
	}
	return cfg, nil
}

func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// SeedSettings are the settings used until the operator saves their own.
func (c Config) SeedSettings() settings.Settings {
	return settings.Defaults().Merge(settings.Settings{
		AgencyName: c.AgencyName,
		Phone:      c.AgencyPhone,
		Address:    c.AgencyAddress,
		Currency:   money.Currency(c.DefaultCurrency),
		RemoteURL:  c.SupabaseURL,
		RemoteKey:  c.SupabaseAnonKey,
	})
}
