package api

import (
	"errors"
	"net/http"

	"github.com/okian/hoopscout/internal/domain/model"
)

// athleticismRequest mirrors the OpenAPI schema for POST /athleticism.
type athleticismRequest struct {
	Speed    *float64 `json:"speed"`
	Agility  *float64 `json:"agility"`
	Vertical *float64 `json:"vertical"`
}

func (a athleticismRequest) toInput() (model.AthleticismInput, error) {
	switch {
	case a.Speed == nil:
		return model.AthleticismInput{}, errors.New("missing speed")
	case a.Agility == nil:
		return model.AthleticismInput{}, errors.New("missing agility")
	case a.Vertical == nil:
		return model.AthleticismInput{}, errors.New("missing vertical")
	}
	return model.AthleticismInput{Speed: *a.Speed, Agility: *a.Agility, Vertical: *a.Vertical}, nil
}

// AthleticismHandler handles athleticism percentile requests.
type AthleticismHandler struct {
	deps AthleticismDependencies
}

// NewAthleticismHandler creates a new athleticism handler.
func NewAthleticismHandler(deps AthleticismDependencies) *AthleticismHandler {
	return &AthleticismHandler{deps: deps}
}

// HandlePostAthleticism handles POST /athleticism requests.
func (h *AthleticismHandler) HandlePostAthleticism(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_athleticism"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req athleticismRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	res, err := h.deps.Athleticism(r.Context(), in)
	if err != nil {
		writeCalcError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// writeCalcError maps calculator errors onto HTTP statuses.
func writeCalcError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, model.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
}
