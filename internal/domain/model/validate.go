package model

import (
	"fmt"
	"math"
)

// Accepted input bounds, matching what the scouting forms allow.
const (
	MinAthleticScore = 45
	MaxAthleticScore = 95
	MinVerticalScore = 50
	MaxVerticalScore = 99

	MinAge = 17
	MaxAge = 30

	MinHeightInches   = 60
	MaxHeightInches   = 90
	MinWingspanInches = 60
	MaxWingspanInches = 100
)

// Validate checks the scores against the default form bounds.
func (in AthleticismInput) Validate() error {
	return in.ValidateRanges(
		ScoreRange{Min: MinAthleticScore, Max: MaxAthleticScore},
		ScoreRange{Min: MinAthleticScore, Max: MaxAthleticScore},
		ScoreRange{Min: MinVerticalScore, Max: MaxVerticalScore},
	)
}

// ValidateRanges checks each score against its configured band.
func (in AthleticismInput) ValidateRanges(speed, agility, vertical ScoreRange) error {
	if err := within("speed", in.Speed, speed.Min, speed.Max); err != nil {
		return err
	}
	if err := within("agility", in.Agility, agility.Min, agility.Max); err != nil {
		return err
	}
	return within("vertical", in.Vertical, vertical.Min, vertical.Max)
}

// Validate checks age, lengths and position.
func (in ProspectInput) Validate() error {
	if err := within("age", in.Age, MinAge, MaxAge); err != nil {
		return err
	}
	if err := within("height", in.Height, MinHeightInches, MaxHeightInches); err != nil {
		return err
	}
	if err := within("wingspan", in.Wingspan, MinWingspanInches, MaxWingspanInches); err != nil {
		return err
	}
	if !in.Position.Valid() {
		return fmt.Errorf("%w: please select a position", ErrInvalidInput)
	}
	return nil
}

func within(field string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return fmt.Errorf("%w: %s must be between %g and %g", ErrInvalidInput, field, lo, hi)
	}
	return nil
}
