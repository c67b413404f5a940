package prospect

import (
	"math"

	"github.com/okian/hoopscout/internal/domain/model"
)

// AgeScalePoint maps every age up to MaxAge to Rating.
type AgeScalePoint struct {
	MaxAge float64
	Rating float64
}

// ageScale is ordered ascending by MaxAge; the last entry is unbounded.
var ageScale = []AgeScalePoint{
	{MaxAge: 18.59, Rating: 10},
	{MaxAge: 19.39, Rating: 9},
	{MaxAge: 20.10, Rating: 8},
	{MaxAge: 20.59, Rating: 7},
	{MaxAge: 21.10, Rating: 6},
	{MaxAge: 21.89, Rating: 5},
	{MaxAge: 22.50, Rating: 4},
	{MaxAge: 22.99, Rating: 3},
	{MaxAge: 23.50, Rating: 2},
	{MaxAge: math.Inf(1), Rating: 1},
}

// positionBase is the height in inches that earns the lowest rating.
var positionBase = map[model.Position]float64{
	model.PointGuard:    68,
	model.ShootingGuard: 70,
	model.SmallForward:  72,
	model.PowerForward:  74,
	model.Center:        76,
}

const (
	defaultPositionBase = 68
	heightSteps         = 10
)

// HeightThresholdSet pairs each one-inch threshold with its rating.
type HeightThresholdSet struct {
	Thresholds [heightSteps]float64
	Ratings    [heightSteps]float64
}

// Thresholds builds the ten thresholds for pos, starting at its base height.
func Thresholds(pos model.Position) HeightThresholdSet {
	base, ok := positionBase[pos]
	if !ok {
		base = defaultPositionBase
	}
	var set HeightThresholdSet
	for i := range heightSteps {
		set.Thresholds[i] = base + float64(i)
		set.Ratings[i] = float64(i + 1)
	}
	return set
}

// WingspanScalePoint is one breakpoint of the wingspan differential table.
type WingspanScalePoint struct {
	Diff   float64
	Rating float64
}

// wingspanScale is sorted descending by Diff. The 0.25 breakpoint rates
// below both of its neighbours.
var wingspanScale = []WingspanScalePoint{
	{Diff: 7.0, Rating: 10.0},
	{Diff: 6.5, Rating: 9.5},
	{Diff: 6.0, Rating: 9.0},
	{Diff: 5.5, Rating: 8.5},
	{Diff: 5.0, Rating: 8.0},
	{Diff: 4.75, Rating: 7.5},
	{Diff: 4.5, Rating: 7.0},
	{Diff: 4.25, Rating: 6.5},
	{Diff: 4.0, Rating: 6.0},
	{Diff: 3.5, Rating: 5.5},
	{Diff: 3.0, Rating: 5.0},
	{Diff: 2.5, Rating: 4.5},
	{Diff: 2.0, Rating: 4.0},
	{Diff: 1.5, Rating: 3.5},
	{Diff: 1.0, Rating: 3.0},
	{Diff: 0.5, Rating: 2.5},
	{Diff: 0.25, Rating: 0.5},
	{Diff: 0.0, Rating: 2.0},
	{Diff: -0.5, Rating: 1.5},
	{Diff: -1.0, Rating: 1.0},
}

// AgeScale returns a copy of the age table.
func AgeScale() []AgeScalePoint {
	return append([]AgeScalePoint(nil), ageScale...)
}

// WingspanScale returns a copy of the wingspan table.
func WingspanScale() []WingspanScalePoint {
	return append([]WingspanScalePoint(nil), wingspanScale...)
}
