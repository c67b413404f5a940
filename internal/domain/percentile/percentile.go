// Package percentile maps raw athletic test scores onto a 0-100 percentile.
package percentile

import (
	"math"

	"github.com/okian/hoopscout/internal/domain/model"
)

// Percentile bounds and the value used for a degenerate band.
const (
	minPercentile        = 0
	maxPercentile        = 100
	degeneratePercentile = 50
)

// Compute scales value within [min,max] to a percentile in [0,100].
// Out-of-band values saturate. A band with min == max yields 50.
func Compute(value, min, max float64, inverted bool) float64 {
	if min == max {
		return degeneratePercentile
	}
	clamped := math.Max(min, math.Min(max, value))

	var score float64
	if inverted {
		score = (max - clamped) / (max - min)
	} else {
		score = (clamped - min) / (max - min)
	}
	return math.Max(minPercentile, math.Min(maxPercentile, score*maxPercentile))
}

// Of computes the percentile of value within r.
func Of(value float64, r model.ScoreRange) float64 {
	return Compute(value, r.Min, r.Max, r.Inverted)
}

// Bands holds the raw-score band for each athletic test.
type Bands struct {
	Speed    model.ScoreRange `json:"speed"`
	Agility  model.ScoreRange `json:"agility"`
	Vertical model.ScoreRange `json:"vertical"`
}

// DefaultBands returns the standard test bands. Higher raw scores are better
// on every test.
func DefaultBands() Bands {
	return Bands{
		Speed:    model.ScoreRange{Min: 45, Max: 95},
		Agility:  model.ScoreRange{Min: 45, Max: 95},
		Vertical: model.ScoreRange{Min: 50, Max: 99},
	}
}

// Result contains the per-test percentiles and their unweighted mean.
type Result struct {
	Overall  float64 `json:"overall"`
	Speed    float64 `json:"speed"`
	Agility  float64 `json:"agility"`
	Vertical float64 `json:"vertical"`
}

// Athleticism computes the overall athleticism percentile for in.
func Athleticism(in model.AthleticismInput, bands Bands) Result {
	r := Result{
		Speed:    Of(in.Speed, bands.Speed),
		Agility:  Of(in.Agility, bands.Agility),
		Vertical: Of(in.Vertical, bands.Vertical),
	}
	r.Overall = (r.Speed + r.Agility + r.Vertical) / 3
	return r
}

// Option applies a configuration option to the Normalizer.
type Option func(*Normalizer)

// WithBands overrides the test bands.
func WithBands(b Bands) Option {
	return func(n *Normalizer) {
		n.bands = b
	}
}

// Normalizer computes athleticism percentiles over a fixed set of bands.
type Normalizer struct {
	bands Bands
}

// NewNormalizer creates a Normalizer using DefaultBands unless overridden.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{bands: DefaultBands()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Bands returns the configured bands.
func (n *Normalizer) Bands() Bands { return n.bands }

// Athleticism computes the overall percentile using the configured bands.
func (n *Normalizer) Athleticism(in model.AthleticismInput) Result {
	return Athleticism(in, n.bands)
}
