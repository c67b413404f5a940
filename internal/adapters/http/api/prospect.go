package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/okian/hoopscout/internal/domain/model"
	"github.com/okian/hoopscout/internal/domain/prospect"
)

// prospectRequest mirrors the OpenAPI schema for POST /prospect. Height and
// wingspan use feet'inches notation, e.g. 6'7.5", or a number of inches.
type prospectRequest struct {
	Age      *float64    `json:"age"`
	Height   measurement `json:"height"`
	Wingspan measurement `json:"wingspan"`
	Position string      `json:"position"`
}

// measurement is a length given as feet'inches text or as plain inches.
type measurement struct {
	text   string
	inches *float64
}

func (m *measurement) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &m.text)
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: want feet'inches text or inches, got %s", prospect.ErrInvalidMeasurement, data)
	}
	m.inches = &v
	return nil
}

func (m measurement) missing() bool {
	return m.inches == nil && strings.TrimSpace(m.text) == ""
}

func (m measurement) resolve() (float64, error) {
	if m.inches != nil {
		return *m.inches, nil
	}
	return prospect.ParseMeasurement(m.text)
}

func (p prospectRequest) toInput() (model.ProspectInput, error) {
	switch {
	case p.Age == nil:
		return model.ProspectInput{}, errors.New("missing age")
	case p.Height.missing():
		return model.ProspectInput{}, errors.New("missing height")
	case p.Wingspan.missing():
		return model.ProspectInput{}, errors.New("missing wingspan")
	case strings.TrimSpace(p.Position) == "":
		return model.ProspectInput{}, errors.New("please select a position")
	}
	height, err := p.Height.resolve()
	if err != nil {
		return model.ProspectInput{}, fmt.Errorf("height: %w", err)
	}
	wingspan, err := p.Wingspan.resolve()
	if err != nil {
		return model.ProspectInput{}, fmt.Errorf("wingspan: %w", err)
	}
	pos, err := model.ParsePosition(p.Position)
	if err != nil {
		return model.ProspectInput{}, err
	}
	return model.ProspectInput{Age: *p.Age, Height: height, Wingspan: wingspan, Position: pos}, nil
}

// prospectResponse echoes the normalized measurements next to the rating.
type prospectResponse struct {
	prospect.Rating
	Height   string `json:"height"`
	Wingspan string `json:"wingspan"`
	Position string `json:"position"`
}

// ProspectHandler handles prospect rating requests.
type ProspectHandler struct {
	deps ProspectDependencies
}

// NewProspectHandler creates a new prospect handler.
func NewProspectHandler(deps ProspectDependencies) *ProspectHandler {
	return &ProspectHandler{deps: deps}
}

// HandlePostProspect handles POST /prospect requests.
func (h *ProspectHandler) HandlePostProspect(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_prospect"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req prospectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	rating, err := h.deps.Prospect(r.Context(), in)
	if err != nil {
		writeCalcError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, prospectResponse{
		Rating:   rating,
		Height:   prospect.FormatMeasurement(in.Height),
		Wingspan: prospect.FormatMeasurement(in.Wingspan),
		Position: in.Position.Label(),
	})
}
