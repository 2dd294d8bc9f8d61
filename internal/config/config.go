package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is every operational knob of the capture core. Everything here is
// adjustable through environment variables (MALETAS_ prefix) or an optional
// config file; nothing is hard-coded at call sites.
type Config struct {
	Env        string `mapstructure:"env"`
	ListenAddr string `mapstructure:"listen_addr"`
	LogLevel   string `mapstructure:"log_level"`

	// Persistence: "badger" (embedded, default) or "postgres".
	StoreDriver string `mapstructure:"store_driver"`
	BadgerPath  string `mapstructure:"badger_path"`
	DatabaseURL string `mapstructure:"database_url"`

	// Submission transport.
	EndpointURL  string        `mapstructure:"endpoint_url"`
	SourceTag    string        `mapstructure:"source_tag"`
	SendTimeout  time.Duration `mapstructure:"send_timeout"`
	ProbeTimeout time.Duration `mapstructure:"probe_timeout"`
	MaxAttempts  int           `mapstructure:"max_attempts"`
	BackoffUnit  time.Duration `mapstructure:"backoff_unit"`

	// Shift windows and finalize gates (local hours).
	EarlyShiftStartHour int    `mapstructure:"early_shift_start_hour"`
	LateShiftStartHour  int    `mapstructure:"late_shift_start_hour"`
	EarlyFinalizeHour   int    `mapstructure:"early_finalize_hour"`
	LateFinalizeHour    int    `mapstructure:"late_finalize_hour"`
	EarlyShiftLabel     string `mapstructure:"early_shift_label"`
	LateShiftLabel      string `mapstructure:"late_shift_label"`

	// Advisory minimum records per finalized batch.
	MinRecords int `mapstructure:"min_records"`

	// Day-boundary expiry.
	ExpiryHour   int           `mapstructure:"expiry_hour"`
	ExpiryMinute int           `mapstructure:"expiry_minute"`
	ExpirySecond int           `mapstructure:"expiry_second"`
	ExpiryPoll   time.Duration `mapstructure:"expiry_poll"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("log_level", "info")

	v.SetDefault("store_driver", "badger")
	v.SetDefault("badger_path", "./data/session")
	v.SetDefault("database_url", "")

	v.SetDefault("endpoint_url", "")
	v.SetDefault("source_tag", "regis-danos")
	v.SetDefault("send_timeout", 15*time.Second)
	v.SetDefault("probe_timeout", 5*time.Second)
	v.SetDefault("max_attempts", 3)
	v.SetDefault("backoff_unit", time.Second)

	v.SetDefault("early_shift_start_hour", 4)
	v.SetDefault("late_shift_start_hour", 13)
	v.SetDefault("early_finalize_hour", 12)
	v.SetDefault("late_finalize_hour", 21)
	v.SetDefault("early_shift_label", "BRC-ERC")
	v.SetDefault("late_shift_label", "IRC-KRC")

	v.SetDefault("min_records", 50)

	v.SetDefault("expiry_hour", 23)
	v.SetDefault("expiry_minute", 59)
	v.SetDefault("expiry_second", 59)
	v.SetDefault("expiry_poll", time.Second)
}

// Load reads config.yaml from the working directory when present, then lets
// MALETAS_* environment variables override.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("MALETAS")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StoreDriver {
	case "badger", "postgres":
	default:
		return fmt.Errorf("store_driver must be badger or postgres, got %q", c.StoreDriver)
	}
	if c.StoreDriver == "postgres" && c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required for the postgres store")
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1")
	}
	for _, h := range []int{c.EarlyShiftStartHour, c.LateShiftStartHour, c.EarlyFinalizeHour, c.LateFinalizeHour, c.ExpiryHour} {
		if h < 0 || h > 23 {
			return fmt.Errorf("hour values must be within 0-23")
		}
	}
	return nil
}
