package prospect

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const inchesPerFoot = 12

// measurementRe matches F'I, F'I.I and F'.I with an optional closing quote.
var measurementRe = regexp.MustCompile(`^(\d+)'(\d+(?:\.\d+)?|\.\d+)(?:"|''|”|″)?$`)

// ParseMeasurement converts a feet'inches string such as 6'5.5" to inches.
func ParseMeasurement(s string) (float64, error) {
	m := measurementRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("%w: use F'I or F'I.I (e.g. 6'5 or 6'5.5), got %q", ErrInvalidMeasurement, s)
	}
	feet, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidMeasurement, err)
	}
	inches, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidMeasurement, err)
	}
	if inches >= inchesPerFoot {
		return 0, fmt.Errorf("%w: inches must be below 12, got %q", ErrInvalidMeasurement, s)
	}
	return feet*inchesPerFoot + inches, nil
}

// FormatMeasurement renders inches as F'I", keeping one decimal when needed.
func FormatMeasurement(inches float64) string {
	feet := int(inches) / inchesPerFoot
	rest := math.Round((inches-float64(feet*inchesPerFoot))*10) / 10
	if rest >= inchesPerFoot {
		feet++
		rest -= inchesPerFoot
	}
	return fmt.Sprintf("%d'%s\"", feet, strconv.FormatFloat(rest, 'f', -1, 64))
}
