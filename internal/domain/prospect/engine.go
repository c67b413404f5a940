package prospect

import (
	"fmt"
	"math"

	"github.com/okian/hoopscout/internal/domain/model"
)

// Default sub-rating weights; they sum to 1.
const (
	DefaultAgeWeight      = 0.30
	DefaultHeightWeight   = 0.35
	DefaultWingspanWeight = 0.35

	maxOverall = 100
)

// Weights controls how much each sub-rating contributes to the overall score.
type Weights struct {
	Age      float64 `json:"age"`
	Height   float64 `json:"height"`
	Wingspan float64 `json:"wingspan"`
}

// DefaultWeights returns the standard 30/35/35 split.
func DefaultWeights() Weights {
	return Weights{Age: DefaultAgeWeight, Height: DefaultHeightWeight, Wingspan: DefaultWingspanWeight}
}

// Validate requires non-negative weights with a positive sum.
func (w Weights) Validate() error {
	if w.Age < 0 || w.Height < 0 || w.Wingspan < 0 {
		return fmt.Errorf("%w: weights must not be negative", ErrInvalidWeights)
	}
	if w.sum() <= 0 {
		return fmt.Errorf("%w: weights must sum to a positive value", ErrInvalidWeights)
	}
	return nil
}

func (w Weights) sum() float64 { return w.Age + w.Height + w.Wingspan }

// Rating is the outcome of evaluating one prospect.
type Rating struct {
	Age          float64 `json:"age_rating"`
	Height       float64 `json:"height_rating"`
	Wingspan     float64 `json:"wingspan_rating"`
	Differential float64 `json:"wingspan_differential"`
	Overall      float64 `json:"overall"`
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithWeights overrides the sub-rating weights. Invalid weights are ignored.
func WithWeights(w Weights) Option {
	return func(e *Engine) {
		if w.Validate() == nil {
			e.weights = w
		}
	}
}

// Engine combines the age, height and wingspan sub-ratings.
type Engine struct {
	weights Weights
}

// NewEngine creates an Engine with DefaultWeights unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{weights: DefaultWeights()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Weights returns the weights in use.
func (e *Engine) Weights() Weights { return e.weights }

// Evaluate rates in on a 0-100 scale, rounded to one decimal place.
func (e *Engine) Evaluate(in model.ProspectInput) Rating {
	diff := in.Wingspan - in.Height
	r := Rating{
		Age:          AgeRating(in.Age),
		Height:       HeightRating(in.Height, in.Position),
		Wingspan:     WingspanRating(diff),
		Differential: roundToHundredth(diff),
	}
	r.Overall = e.Overall(r.Age, r.Height, r.Wingspan)
	return r
}

// Overall combines three 1-10 sub-ratings into the 0-100 composite.
func (e *Engine) Overall(age, height, wingspan float64) float64 {
	w := e.weights
	score := (normalize(age)*w.Age + normalize(height)*w.Height + normalize(wingspan)*w.Wingspan) / w.sum()
	return math.Max(0, math.Min(maxOverall, roundToTenth(score*maxOverall)))
}

// Evaluate rates in with the default weights.
func Evaluate(in model.ProspectInput) Rating {
	return NewEngine().Evaluate(in)
}
