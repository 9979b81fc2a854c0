// Package config loads service settings from defaults, an optional YAML file
// and FLEET_-prefixed environment variables, in increasing precedence.
package config

import (
	"errors"
	"fleet-route-service/internal/platform/logging"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	BaselineFixed     = "fixed"
	BaselineWaypoints = "waypoints"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Logging   logging.Config  `mapstructure:"logging"`
	Estimator EstimatorConfig `mapstructure:"estimator"`
	Fixtures  FixturesConfig  `mapstructure:"fixtures"`
	Markers   MarkersConfig   `mapstructure:"markers"`
}

type ServerConfig struct {
	Port      string  `mapstructure:"port"`
	RateLimit float64 `mapstructure:"rate_limit"` // requests per second, 0 disables
	RateBurst int     `mapstructure:"rate_burst"`
}

// EstimatorConfig selects the baseline source and the fuel price.
type EstimatorConfig struct {
	Baseline           string  `mapstructure:"baseline"` // fixed, waypoints
	BaselineDistanceKm float64 `mapstructure:"baseline_distance_km"`
	BaselineAreaKm2    float64 `mapstructure:"baseline_area_km2"`
	FuelPricePerLiter  float64 `mapstructure:"fuel_price_per_liter"`
	Currency           string  `mapstructure:"currency"`
}

// FixturesConfig points at a reference dataset; empty uses the embedded one.
type FixturesConfig struct {
	Path string `mapstructure:"path"`
}

type MarkersConfig struct {
	Interval  time.Duration `mapstructure:"interval"`
	Amplitude float64       `mapstructure:"amplitude"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.rate_limit", 20.0)
	v.SetDefault("server.rate_burst", 40)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output_file", "")

	v.SetDefault("estimator.baseline", BaselineFixed)
	v.SetDefault("estimator.baseline_distance_km", 160.8)
	v.SetDefault("estimator.baseline_area_km2", 450.0)
	v.SetDefault("estimator.fuel_price_per_liter", 2.50)
	v.SetDefault("estimator.currency", "MYR")

	v.SetDefault("fixtures.path", "")

	v.SetDefault("markers.interval", "5s")
	v.SetDefault("markers.amplitude", 0.002)
}

// Load reads configuration. An empty path skips the config file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("FLEET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("load config: read %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("load config: decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Server.Port) == "" {
		errs = append(errs, errors.New("server.port must be non-empty"))
	}
	if c.Server.RateLimit < 0 {
		errs = append(errs, errors.New("server.rate_limit must not be negative"))
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst < 1 {
		errs = append(errs, errors.New("server.rate_burst must be at least 1 when rate limiting"))
	}

	switch c.Estimator.Baseline {
	case BaselineFixed:
		if c.Estimator.BaselineDistanceKm < 0 || c.Estimator.BaselineAreaKm2 < 0 {
			errs = append(errs, errors.New("estimator baseline distance and area must not be negative"))
		}
	case BaselineWaypoints:
	default:
		errs = append(errs, fmt.Errorf("estimator.baseline %q must be %q or %q", c.Estimator.Baseline, BaselineFixed, BaselineWaypoints))
	}
	if c.Estimator.FuelPricePerLiter < 0 {
		errs = append(errs, errors.New("estimator.fuel_price_per_liter must not be negative"))
	}

	if c.Markers.Interval <= 0 {
		errs = append(errs, errors.New("markers.interval must be positive"))
	}
	if c.Markers.Amplitude < 0 {
		errs = append(errs, errors.New("markers.amplitude must not be negative"))
	}

	return errors.Join(errs...)
}

// Get returns the environment variable key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
