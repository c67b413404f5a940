package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/hoopscout/internal/domain/model"
	"github.com/okian/hoopscout/internal/domain/prospect"
)

// parseLength accepts feet'inches or a bare number of inches.
func parseLength(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}
	v, err := prospect.ParseMeasurement(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", model.ErrInvalidInput, field, err)
	}
	return v, nil
}
