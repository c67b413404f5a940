// Package prospect rates a draft prospect's physical profile.
package prospect

import (
	"math"

	"github.com/okian/hoopscout/internal/domain/model"
)

// Rating bounds and comparison tolerances.
const (
	minRating         = 1.0
	maxRating         = 10.0
	heightTolerance   = 0.01
	wingspanTolerance = 0.0001
)

// AgeRating returns the rating of the first age bracket that contains age.
func AgeRating(age float64) float64 {
	for _, p := range ageScale {
		if age <= p.MaxAge {
			return p.Rating
		}
	}
	return minRating
}

// HeightRating rates height (inches) against the thresholds for pos.
// Heights between two thresholds snap to the nearer one; exactly at the
// midpoint they get the average of both ratings.
func HeightRating(height float64, pos model.Position) float64 {
	set := Thresholds(pos)
	th, rt := set.Thresholds, set.Ratings
	last := len(th) - 1

	if height < th[0] {
		return minRating
	}
	if height >= th[last] {
		return maxRating
	}

	for i := range th {
		if math.Abs(height-th[i]) < heightTolerance {
			return rt[i]
		}
		if i == last {
			break
		}
		lo, hi := th[i], th[i+1]
		if height <= lo || height >= hi {
			continue
		}
		mid := (lo + hi) / 2
		switch {
		case math.Abs(height-mid) < heightTolerance:
			return (rt[i] + rt[i+1]) / 2
		case height < mid:
			return rt[i]
		default:
			return rt[i+1]
		}
	}
	return minRating
}

// WingspanRating rates the wingspan-minus-height differential. Values between
// breakpoints are interpolated and rounded to the nearest half point.
func WingspanRating(diff float64) float64 {
	top, bottom := wingspanScale[0], wingspanScale[len(wingspanScale)-1]
	if diff >= top.Diff-wingspanTolerance {
		return top.Rating
	}
	if diff <= bottom.Diff+wingspanTolerance {
		return bottom.Rating
	}

	for i := 0; i < len(wingspanScale)-1; i++ {
		hi, lo := wingspanScale[i], wingspanScale[i+1]
		if math.Abs(diff-hi.Diff) < wingspanTolerance {
			return hi.Rating
		}
		if math.Abs(diff-lo.Diff) < wingspanTolerance {
			return lo.Rating
		}
		if diff < hi.Diff && diff > lo.Diff {
			r := lo.Rating + (diff-lo.Diff)*(hi.Rating-lo.Rating)/(hi.Diff-lo.Diff)
			return roundToHalf(r)
		}
	}
	return bottom.Rating
}

// roundToHalf rounds to the nearest 0.5, ties up.
func roundToHalf(x float64) float64 {
	return math.Floor(x*2+0.5) / 2
}

// roundToTenth rounds to one decimal place, ties up.
func roundToTenth(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

// roundToHundredth rounds to two decimal places, ties up.
func roundToHundredth(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

// normalize maps a 1-10 rating onto 0..1, flooring at 0.
func normalize(rating float64) float64 {
	return math.Max(0, (rating-minRating)/(maxRating-minRating))
}
