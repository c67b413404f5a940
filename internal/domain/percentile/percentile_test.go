package percentile_test

import (
	"testing"

	"github.com/okian/hoopscout/internal/domain/model"
	"github.com/okian/hoopscout/internal/domain/percentile"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCompute(t *testing.T) {
	Convey("Given a band from 45 to 95", t, func() {
		Convey("When the value sits on the edges", func() {
			Convey("Then min maps to 0 and max maps to 100", func() {
				So(percentile.Compute(45, 45, 95, false), ShouldEqual, 0)
				So(percentile.Compute(95, 45, 95, false), ShouldEqual, 100)
			})

			Convey("And inversion swaps them", func() {
				So(percentile.Compute(45, 45, 95, true), ShouldEqual, 100)
				So(percentile.Compute(95, 45, 95, true), ShouldEqual, 0)
			})
		})

		Convey("When the value is in the middle", func() {
			Convey("Then it should scale linearly", func() {
				So(percentile.Compute(70, 45, 95, false), ShouldEqual, 50)
				So(percentile.Compute(80, 45, 95, false), ShouldAlmostEqual, 70, 1e-9)
				So(percentile.Compute(80, 45, 95, true), ShouldAlmostEqual, 30, 1e-9)
			})
		})

		Convey("When the value is outside the band", func() {
			Convey("Then it should saturate", func() {
				So(percentile.Compute(10, 45, 95, false), ShouldEqual, 0)
				So(percentile.Compute(200, 45, 95, false), ShouldEqual, 100)
				So(percentile.Compute(10, 45, 95, true), ShouldEqual, 100)
			})
		})

		Convey("When sweeping the band", func() {
			Convey("Then the plain percentile never decreases and the inverted one never increases", func() {
				prev, prevInv := -1.0, 101.0
				for v := 45.0; v <= 95.0; v += 0.5 {
					p := percentile.Compute(v, 45, 95, false)
					inv := percentile.Compute(v, 45, 95, true)
					So(p, ShouldBeGreaterThanOrEqualTo, prev)
					So(inv, ShouldBeLessThanOrEqualTo, prevInv)
					prev, prevInv = p, inv
				}
			})
		})
	})

	Convey("Given a degenerate band", t, func() {
		Convey("Then any value maps to 50", func() {
			for _, x := range []float64{-100, 0, 5, 1e9} {
				So(percentile.Compute(x, 5, 5, false), ShouldEqual, 50)
				So(percentile.Compute(x, 5, 5, true), ShouldEqual, 50)
			}
		})
	})
}

func TestAthleticism(t *testing.T) {
	Convey("Given the default bands", t, func() {
		n := percentile.NewNormalizer()

		Convey("When computing athleticism", func() {
			r := n.Athleticism(model.AthleticismInput{Speed: 80, Agility: 70, Vertical: 99})

			Convey("Then each test should be normalized on its own band", func() {
				So(r.Speed, ShouldAlmostEqual, 70, 1e-9)
				So(r.Agility, ShouldEqual, 50)
				So(r.Vertical, ShouldEqual, 100)
			})

			Convey("And overall should be the unweighted mean", func() {
				So(r.Overall, ShouldAlmostEqual, (70.0+50.0+100.0)/3, 1e-9)
			})
		})
	})

	Convey("Given custom bands", t, func() {
		bands := percentile.DefaultBands()
		bands.Speed = model.ScoreRange{Min: 4, Max: 6, Inverted: true}
		n := percentile.NewNormalizer(percentile.WithBands(bands))

		Convey("When a lower raw speed is better", func() {
			r := n.Athleticism(model.AthleticismInput{Speed: 4.5, Agility: 45, Vertical: 50})

			Convey("Then the inverted band should reward it", func() {
				So(r.Speed, ShouldEqual, 75)
				So(n.Bands().Speed.Inverted, ShouldBeTrue)
			})
		})
	})
}
