// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/okian/hoopscout/internal/domain/model"
	"github.com/okian/hoopscout/internal/domain/percentile"
	"github.com/okian/hoopscout/internal/domain/prospect"
	"github.com/okian/hoopscout/internal/domain/report"
	"github.com/okian/hoopscout/pkg/logger"
	"github.com/okian/hoopscout/pkg/metrics"
)

// Calculator names used in logs, metrics and stats.
const (
	CalculatorAthleticism = "athleticism"
	CalculatorProspect    = "prospect"
	CalculatorReport      = "report"
)

const defaultMaxReportBytes = 64 << 10

// Service runs the three scouting calculators.
type Service struct {
	normalizer     *percentile.Normalizer
	engine         *prospect.Engine
	maxReportBytes int64
	logger         logger.Logger
	startedAt      time.Time

	athleticismCount atomic.Int64
	prospectCount    atomic.Int64
	reportCount      atomic.Int64
	rejectedCount    atomic.Int64
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBands sets the athleticism percentile bands.
func WithBands(b percentile.Bands) Option {
	return func(s *Service) {
		s.normalizer = percentile.NewNormalizer(percentile.WithBands(b))
	}
}

// WithWeights sets the prospect overall weights. Invalid weights are ignored.
func WithWeights(w prospect.Weights) Option {
	return func(s *Service) {
		s.engine = prospect.NewEngine(prospect.WithWeights(w))
	}
}

// WithMaxReportBytes caps the report size accepted by the HTTP layer.
func WithMaxReportBytes(n int64) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxReportBytes = n
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		normalizer:     percentile.NewNormalizer(),
		engine:         prospect.NewEngine(),
		maxReportBytes: defaultMaxReportBytes,
		startedAt:      time.Now(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.logger = s.logger.Named("service")

	return s
}

// MaxReportBytes returns the configured report size cap.
func (s *Service) MaxReportBytes() int64 { return s.maxReportBytes }

// Athleticism validates the test scores and returns their percentiles.
func (s *Service) Athleticism(ctx context.Context, in model.AthleticismInput) (percentile.Result, error) {
	start := time.Now()
	b := s.normalizer.Bands()
	if err := in.ValidateRanges(b.Speed, b.Agility, b.Vertical); err != nil {
		s.reject(ctx, CalculatorAthleticism, metrics.OutcomeInvalid, start, err)
		return percentile.Result{}, err
	}

	res := s.normalizer.Athleticism(in)
	s.athleticismCount.Add(1)
	s.done(CalculatorAthleticism, start)
	s.logger.Debug(ctx, "athleticism calculated",
		logger.Float64("speed", res.Speed),
		logger.Float64("agility", res.Agility),
		logger.Float64("vertical", res.Vertical),
		logger.Float64("overall", res.Overall),
	)
	return res, nil
}

// Prospect validates the profile and rates it.
func (s *Service) Prospect(ctx context.Context, in model.ProspectInput) (prospect.Rating, error) {
	start := time.Now()
	if err := in.Validate(); err != nil {
		s.reject(ctx, CalculatorProspect, metrics.OutcomeInvalid, start, err)
		return prospect.Rating{}, err
	}

	r := s.engine.Evaluate(in)
	s.prospectCount.Add(1)
	s.done(CalculatorProspect, start)
	s.logger.Debug(ctx, "prospect rated",
		logger.String("position", string(in.Position)),
		logger.Float64("differential", r.Differential),
		logger.Float64("overall", r.Overall),
	)
	return r, nil
}

// Report parses a scouting report and averages its ratings. It fails with
// report.ErrParseReport for too-short input and report.ErrNoRatings when no
// category yields a number.
func (s *Service) Report(ctx context.Context, text string) (report.Averages, error) {
	start := time.Now()
	r, ok := report.ParseReport(text)
	if !ok {
		metrics.RecordReportParseFailure()
		s.reject(ctx, CalculatorReport, metrics.OutcomeInvalid, start, report.ErrParseReport)
		return report.Averages{}, report.ErrParseReport
	}
	metrics.RecordReportFieldsDropped(r.Dropped)

	avg := r.Averages()
	if avg.Empty() {
		s.reject(ctx, CalculatorReport, metrics.OutcomeEmpty, start, report.ErrNoRatings)
		return avg, fmt.Errorf("%w for %s", report.ErrNoRatings, avg.PlayerName)
	}

	s.reportCount.Add(1)
	s.done(CalculatorReport, start)
	s.logger.Debug(ctx, "report averaged",
		logger.String("player", avg.PlayerName),
		logger.Int("dropped", r.Dropped),
		logger.String("overall", avg.Overall.String()),
	)
	return avg, nil
}

func (s *Service) done(calculator string, start time.Time) {
	metrics.RecordCalculation(calculator, metrics.OutcomeOK, sinceMs(start))
}

func (s *Service) reject(ctx context.Context, calculator, outcome string, start time.Time, err error) {
	s.rejectedCount.Add(1)
	metrics.RecordCalculation(calculator, outcome, sinceMs(start))
	s.logger.Debug(ctx, "calculation rejected",
		logger.String("calculator", calculator),
		logger.Error(err),
	)
}

func sinceMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	bands := s.normalizer.Bands()
	weights := s.engine.Weights()
	return map[string]interface{}{
		"uptimeSeconds": int64(time.Since(s.startedAt).Seconds()),
		"calculations": map[string]int64{
			CalculatorAthleticism: s.athleticismCount.Load(),
			CalculatorProspect:    s.prospectCount.Load(),
			CalculatorReport:      s.reportCount.Load(),
		},
		"rejected":       s.rejectedCount.Load(),
		"bands":          bands,
		"weights":        weights,
		"maxReportBytes": s.maxReportBytes,
	}
}
