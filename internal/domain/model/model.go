// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"
)

// Position is a basketball position used to pick height thresholds.
type Position string

// Supported positions.
const (
	PointGuard    Position = "PG"
	ShootingGuard Position = "SG"
	SmallForward  Position = "SF"
	PowerForward  Position = "PF"
	Center        Position = "C"
)

// Positions lists every supported position in court order.
var Positions = []Position{PointGuard, ShootingGuard, SmallForward, PowerForward, Center}

// ParsePosition normalizes s (case-insensitive) to a Position.
func ParsePosition(s string) (Position, error) {
	p := Position(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: unknown position %q", ErrInvalidInput, s)
	}
	return p, nil
}

// Valid reports whether p is one of Positions.
func (p Position) Valid() bool {
	for _, known := range Positions {
		if p == known {
			return true
		}
	}
	return false
}

// Label returns a human readable name, e.g. "Point Guard (PG)".
func (p Position) Label() string {
	switch p {
	case PointGuard:
		return "Point Guard (PG)"
	case ShootingGuard:
		return "Shooting Guard (SG)"
	case SmallForward:
		return "Small Forward (SF)"
	case PowerForward:
		return "Power Forward (PF)"
	case Center:
		return "Center (C)"
	}
	return string(p)
}

// ScoreRange is a raw-value band mapped onto 0..100.
type ScoreRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Inverted bool    `json:"inverted"`
}

// AthleticismInput holds the three raw athletic test scores.
type AthleticismInput struct {
	Speed    float64 `json:"speed"`
	Agility  float64 `json:"agility"`
	Vertical float64 `json:"vertical"`
}

// ProspectInput is a prospect's physical profile. Lengths are in inches.
type ProspectInput struct {
	Age      float64
	Height   float64
	Wingspan float64
	Position Position
}
