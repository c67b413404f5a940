package api

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/okian/hoopscout/internal/domain/report"
)

// reportRequest is the JSON form of POST /report.
type reportRequest struct {
	Text string `json:"text"`
}

// ReportHandler handles scouting report requests.
type ReportHandler struct {
	deps     ReportDependencies
	maxBytes int64
}

// NewReportHandler creates a new report handler. Bodies above maxBytes are rejected.
func NewReportHandler(deps ReportDependencies, maxBytes int64) *ReportHandler {
	return &ReportHandler{deps: deps, maxBytes: maxBytes}
}

// HandlePostReport handles POST /report requests. The body is either the
// raw report (text/plain) or {"text": "..."} (application/json).
func (h *ReportHandler) HandlePostReport(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_report"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if h.maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}

	text, err := readReport(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "too_large", WrapKind(op, ErrTooLarge, err))
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	avg, err := h.deps.Report(r.Context(), text)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, avg)
	case errors.Is(err, report.ErrParseReport):
		writeError(w, http.StatusUnprocessableEntity, "unprocessable", WrapKind(op, ErrUnprocessable, err))
	case errors.Is(err, report.ErrNoRatings):
		writeError(w, http.StatusUnprocessableEntity, "no_ratings", WrapKind(op, ErrUnprocessable, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}

// HandleGetTemplate handles GET /report/template requests.
func (h *ReportHandler) HandleGetTemplate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, report.Placeholder)
}

func readReport(r *http.Request) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req reportRequest
		if err := decodeJSON(r, &req); err != nil {
			return "", err
		}
		return req.Text, nil
	}
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
