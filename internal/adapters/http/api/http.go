// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/hoopscout/internal/domain/model"
	"github.com/okian/hoopscout/internal/domain/percentile"
	"github.com/okian/hoopscout/internal/domain/prospect"
	"github.com/okian/hoopscout/internal/domain/report"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	AthleticismDependencies
	ProspectDependencies
	ReportDependencies
}

// AthleticismDependencies computes athletic test percentiles.
type AthleticismDependencies interface {
	Athleticism(ctx context.Context, in model.AthleticismInput) (percentile.Result, error)
}

// ProspectDependencies rates a prospect's physical profile.
type ProspectDependencies interface {
	Prospect(ctx context.Context, in model.ProspectInput) (prospect.Rating, error)
}

// ReportDependencies averages a scouting report.
type ReportDependencies interface {
	Report(ctx context.Context, text string) (report.Averages, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	athleticismHandler *AthleticismHandler
	prospectHandler    *ProspectHandler
	reportHandler      *ReportHandler
}

// NewServer creates a new API server with all handlers. maxReportBytes caps
// the POST /report body.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxReportBytes int64) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		athleticismHandler: NewAthleticismHandler(deps),
		prospectHandler:    NewProspectHandler(deps),
		reportHandler:      NewReportHandler(deps, maxReportBytes),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	route := func(path, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(path, RequestIDMiddleware(MetricsMiddleware(h, endpoint)))
	}
	route("/healthz", "healthz", s.healthHandler.HandleHealth)
	route("/stats", "stats", s.statsHandler.HandleStats)
	route("/athleticism", "athleticism", s.athleticismHandler.HandlePostAthleticism)
	route("/prospect", "prospect", s.prospectHandler.HandlePostProspect)
	route("/report/template", "report_template", s.reportHandler.HandleGetTemplate)
	route("/report", "report", s.reportHandler.HandlePostReport)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// decodeJSON reads a single JSON object and rejects unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
