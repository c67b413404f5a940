// Package report parses free-form player scouting reports and averages their
// ratings per category.
package report

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MinLines is the fewest non-blank lines a report must have.
const MinLines = 3

var (
	// trailingParen matches a trailing annotation such as " (rating)".
	trailingParen = regexp.MustCompile(`\s*\(.*?\)\s*$`)
	// leadingNumber matches the numeric prefix of a value, like parseFloat.
	leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
)

// Observation is one accepted numeric field value.
type Observation struct {
	Field string  `json:"field"`
	Value float64 `json:"value"`
}

// Report is the structured form of a scouting report.
type Report struct {
	PlayerName   string
	Observations [numCategories][]Observation
	// Dropped counts recognized fields whose value was not a valid
	// non-negative number.
	Dropped int
}

// Values returns the accepted numbers recorded for c.
func (r *Report) Values(c Category) []float64 {
	obs := r.Observations[c]
	out := make([]float64, len(obs))
	for i, o := range obs {
		out[i] = o.Value
	}
	return out
}

// state is the parser position: before any known section, or inside one.
type state int

const (
	seekingHeader state = iota
	inCategory
)

type parser struct {
	state   state
	current Category
	report  *Report
}

func (p *parser) feed(l line) {
	switch l.kind {
	case lineName:
		p.report.PlayerName = l.name
	case lineCategory:
		switch {
		case l.known:
			p.state, p.current = inCategory, l.category
		case p.state == inCategory && p.isField(l.key):
			// "Shooting:" with the rating left blank.
		default:
			p.state = seekingHeader
		}
	case lineData:
		if p.state != inCategory {
			return
		}
		field, ok := p.current.lookupField(l.key)
		if !ok {
			return
		}
		v, ok := extractValue(p.current, field, l.value)
		if !ok {
			p.report.Dropped++
			return
		}
		p.report.Observations[p.current] = append(p.report.Observations[p.current], Observation{Field: field, Value: v})
	case lineIgnored:
	}
}

func (p *parser) isField(key string) bool {
	if key == "" {
		return false
	}
	_, ok := p.current.lookupField(key)
	return ok
}

// ParseReport scans text line by line. It returns false when text has fewer
// than MinLines non-blank lines; every other input yields a (possibly empty)
// Report.
func ParseReport(text string) (*Report, bool) {
	lines := nonBlankLines(text)
	if len(lines) < MinLines {
		return nil, false
	}
	p := &parser{state: seekingHeader, report: &Report{PlayerName: unknownPlayer}}
	for _, raw := range lines {
		p.feed(classify(raw))
	}
	return p.report, true
}

// Parse parses text and computes its averages.
func Parse(text string) (*Averages, bool) {
	r, ok := ParseReport(text)
	if !ok {
		return nil, false
	}
	avg := r.Averages()
	return &avg, true
}

func nonBlankLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// extractValue pulls the rating out of a field value. Physicals Age, Height
// and Wingspan read the last "|" segment; everything else reads the first.
func extractValue(c Category, field, value string) (float64, bool) {
	var seg string
	if c.usesRatingSegment(field) && strings.Contains(value, "|") {
		parts := strings.Split(value, "|")
		seg = parts[len(parts)-1]
	} else {
		seg, _, _ = strings.Cut(value, "|")
	}
	seg = emphasis.Replace(strings.TrimSpace(seg))
	seg = strings.TrimSpace(trailingParen.ReplaceAllString(seg, ""))

	num := leadingNumber.FindString(seg)
	if num == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) || v < 0 {
		return 0, false
	}
	return v, true
}
