package report

import (
	"math"

	"github.com/okian/hoopscout/internal/domain/types"
)

// Averages is the per-category and overall summary of a report.
type Averages struct {
	PlayerName string      `json:"player_name"`
	Overall    types.Value `json:"overall_rating"`
	Offense    types.Value `json:"offense"`
	Defense    types.Value `json:"defense"`
	Physicals  types.Value `json:"physicals"`
	Summary    types.Value `json:"summary"`
}

// Category returns the average for c.
func (a Averages) Category(c Category) types.Value {
	switch c {
	case Offense:
		return a.Offense
	case Defense:
		return a.Defense
	case Physicals:
		return a.Physicals
	case Summary:
		return a.Summary
	}
	return types.NotAvailable()
}

// Empty reports whether no category produced a number.
func (a Averages) Empty() bool {
	for _, c := range Categories {
		if a.Category(c).Available() {
			return false
		}
	}
	return true
}

// Averages computes category means rounded to one decimal. The overall is
// the mean of the available category averages.
func (r *Report) Averages() Averages {
	var per [numCategories]types.Value
	var sum float64
	var n int
	for _, c := range Categories {
		avg, ok := mean(r.Values(c))
		if !ok {
			per[c] = types.NotAvailable()
			continue
		}
		rounded := roundToTenth(avg)
		per[c] = types.Numeric(rounded)
		sum += rounded
		n++
	}

	overall := types.NotAvailable()
	if n > 0 {
		overall = types.Numeric(roundToTenth(sum / float64(n)))
	}
	return Averages{
		PlayerName: r.PlayerName,
		Overall:    overall,
		Offense:    per[Offense],
		Defense:    per[Defense],
		Physicals:  per[Physicals],
		Summary:    per[Summary],
	}
}

func mean(vs []float64) (float64, bool) {
	if len(vs) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs)), true
}

// roundToTenth rounds to one decimal place, ties up.
func roundToTenth(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}
