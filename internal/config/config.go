// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers a YAML file and SCOUT_* env vars on top of the defaults.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"github.com/okian/hoopscout/internal/domain/model"
	"github.com/okian/hoopscout/internal/domain/percentile"
	"github.com/okian/hoopscout/internal/domain/prospect"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxReportBytes caps the body size accepted by POST /report.
	MaxReportBytes int64 `koanf:"max_report_bytes"`

	// Percentile bands for the athleticism calculator.
	SpeedMin         float64 `koanf:"speed_min"`
	SpeedMax         float64 `koanf:"speed_max"`
	SpeedInverted    bool    `koanf:"speed_inverted"`
	AgilityMin       float64 `koanf:"agility_min"`
	AgilityMax       float64 `koanf:"agility_max"`
	AgilityInverted  bool    `koanf:"agility_inverted"`
	VerticalMin      float64 `koanf:"vertical_min"`
	VerticalMax      float64 `koanf:"vertical_max"`
	VerticalInverted bool    `koanf:"vertical_inverted"`

	// Prospect overall weights.
	AgeWeight      float64 `koanf:"age_weight"`
	HeightWeight   float64 `koanf:"height_weight"`
	WingspanWeight float64 `koanf:"wingspan_weight"`
}

// New creates a Config populated with defaults.
func New() *Config {
	bands := percentile.DefaultBands()
	weights := prospect.DefaultWeights()
	return &Config{
		LogLevel:         "info",
		LogFormat:        "text",
		Addr:             ":9080",
		MaxReportBytes:   64 << 10,
		SpeedMin:         bands.Speed.Min,
		SpeedMax:         bands.Speed.Max,
		SpeedInverted:    bands.Speed.Inverted,
		AgilityMin:       bands.Agility.Min,
		AgilityMax:       bands.Agility.Max,
		AgilityInverted:  bands.Agility.Inverted,
		VerticalMin:      bands.Vertical.Min,
		VerticalMax:      bands.Vertical.Max,
		VerticalInverted: bands.Vertical.Inverted,
		AgeWeight:        weights.Age,
		HeightWeight:     weights.Height,
		WingspanWeight:   weights.Wingspan,
	}
}

// Bands returns the configured athleticism percentile bands.
func (c *Config) Bands() percentile.Bands {
	return percentile.Bands{
		Speed:    model.ScoreRange{Min: c.SpeedMin, Max: c.SpeedMax, Inverted: c.SpeedInverted},
		Agility:  model.ScoreRange{Min: c.AgilityMin, Max: c.AgilityMax, Inverted: c.AgilityInverted},
		Vertical: model.ScoreRange{Min: c.VerticalMin, Max: c.VerticalMax, Inverted: c.VerticalInverted},
	}
}

// Weights returns the configured prospect weights.
func (c *Config) Weights() prospect.Weights {
	return prospect.Weights{Age: c.AgeWeight, Height: c.HeightWeight, Wingspan: c.WingspanWeight}
}
