package report_test

import (
	"testing"

	"github.com/okian/hoopscout/internal/domain/report"
	. "github.com/smartystreets/goconvey/convey"
)

const wellFormed = `#### Player Name: Jalen Carter

###### Offense:
Shooting: 7.5
Finishing: 8
Shot Creation: 6.5
Passing: 7
Dribbling: 6

###### Defense:
Perimeter: 7
Interior: 5.5
Playmaking: 6

###### Physicals:
Athleticism: 8
Age: 19.2 | 9
Height: 6'6" | 7.5
Wingspan: 6'11" | 8.5 (long arms)

###### Summary:
NBA Ready: 6
Potential Min: 5
Potential Mid: 7
Potential Max: 9
`

func TestParse(t *testing.T) {
	Convey("Given a well-formed report", t, func() {
		avg, ok := report.Parse(wellFormed)

		Convey("Then it should parse", func() {
			So(ok, ShouldBeTrue)
			So(avg.PlayerName, ShouldEqual, "Jalen Carter")
		})

		Convey("And each category should be averaged to one decimal", func() {
			So(avg.Offense.Float(), ShouldEqual, 7.0)
			So(avg.Defense.Float(), ShouldEqual, 6.2)
			So(avg.Physicals.Float(), ShouldEqual, 8.3)
			So(avg.Summary.Float(), ShouldEqual, 6.8)
		})

		Convey("And the overall should average all four categories", func() {
			So(avg.Overall.Float(), ShouldEqual, 7.1)
		})
	})

	Convey("Given a report with one field per category", t, func() {
		avg, ok := report.Parse(`Player Name: Sam
Offense
Shooting: 8
Defense
Perimeter: 6
Physicals
Athleticism: 7
Summary
NBA Ready: 4`)

		Convey("Then overall should be the mean of the four averages", func() {
			So(ok, ShouldBeTrue)
			So(avg.Overall.Float(), ShouldEqual, 6.3)
			So(avg.PlayerName, ShouldEqual, "Sam")
		})
	})

	Convey("Given too few lines", t, func() {
		Convey("When there are fewer than three non-blank lines", func() {
			avg, ok := report.Parse("#### Player Name: X\n\n\nOffense:\n   \n")

			Convey("Then parsing should fail", func() {
				So(ok, ShouldBeFalse)
				So(avg, ShouldBeNil)
			})
		})

		Convey("When the input is empty", func() {
			_, ok := report.Parse("")

			Convey("Then parsing should fail", func() {
				So(ok, ShouldBeFalse)
			})
		})
	})

	Convey("Given a category with no usable fields", t, func() {
		avg, ok := report.Parse(`# Player Name Pat
## Offense
Shooting: 9
Passing: 7
## Defense
Perimeter: n/a
Interior: -3
Rebounding: 8`)

		Convey("Then that category should be N/A", func() {
			So(ok, ShouldBeTrue)
			So(avg.Defense.Available(), ShouldBeFalse)
			So(avg.Defense.String(), ShouldEqual, "N/A")
			So(avg.Physicals.Available(), ShouldBeFalse)
			So(avg.Summary.Available(), ShouldBeFalse)
		})

		Convey("And it should be excluded from the overall, not zeroed", func() {
			So(avg.Offense.Float(), ShouldEqual, 8.0)
			So(avg.Overall.Float(), ShouldEqual, 8.0)
			So(avg.Empty(), ShouldBeFalse)
		})

		Convey("And the player name should be read without a colon", func() {
			So(avg.PlayerName, ShouldEqual, "Pat")
		})
	})

	Convey("Given no numeric data at all", t, func() {
		avg, ok := report.Parse("#### Player Name: Q\nOffense:\nShooting: great\nDefense:\nInterior: ok")

		Convey("Then overall should be N/A", func() {
			So(ok, ShouldBeTrue)
			So(avg.Overall.Available(), ShouldBeFalse)
			So(avg.Empty(), ShouldBeTrue)
		})
	})
}

func TestParse_Tolerance(t *testing.T) {
	Convey("Given the placeholder template", t, func() {
		r, ok := report.ParseReport(report.Placeholder)

		Convey("When it is parsed", func() {
			avg := r.Averages()

			Convey("Then it should reproduce the documented empty result", func() {
				So(ok, ShouldBeTrue)
				So(avg.PlayerName, ShouldEqual, "Unknown Player")
				So(avg.Overall.String(), ShouldEqual, "N/A")
				So(avg.Offense.String(), ShouldEqual, "N/A")
				So(avg.Defense.String(), ShouldEqual, "N/A")
				So(avg.Physicals.String(), ShouldEqual, "N/A")
				So(avg.Summary.String(), ShouldEqual, "N/A")
				So(r.Dropped, ShouldEqual, 16)
			})
		})
	})

	Convey("Given pipe-delimited values", t, func() {
		r, ok := report.ParseReport(`Player Name: Lee
Physicals:
Height: 6'8" | 8
Athleticism: 7 | 3
Offense:
Shooting: 6 | 9`)

		Convey("Then physical measurements should use the last segment", func() {
			So(ok, ShouldBeTrue)
			So(r.Values(report.Physicals), ShouldResemble, []float64{8, 7})
		})

		Convey("And other fields should use the first segment", func() {
			So(r.Values(report.Offense), ShouldResemble, []float64{6})
		})
	})

	Convey("Given markdown emphasis and annotations", t, func() {
		r, _ := report.ParseReport(`#### **Marcus Hill**
**OFFENSE:**
**Shooting:** *8.5* (rating)
- Passing: 7 (solid)
_Dribbling_: ~6~`)

		Convey("Then keys and values should be cleaned before matching", func() {
			So(r.PlayerName, ShouldEqual, "Marcus Hill")
			So(r.Values(report.Offense), ShouldResemble, []float64{8.5, 7, 6})
		})
	})

	Convey("Given an unrecognized section", t, func() {
		r, _ := report.ParseReport(`Player Name: Kai
###### Offense
Shooting: 7
###### Intangibles
Passing: 9
Shooting: 9
###### Summary
NBA Ready: 5`)

		Convey("Then lines until the next known header should be ignored", func() {
			So(r.Values(report.Offense), ShouldResemble, []float64{7})
			So(r.Values(report.Summary), ShouldResemble, []float64{5})
		})
	})

	Convey("Given data before any section", t, func() {
		r, _ := report.ParseReport("Shooting: 9\nPassing: 9\nAge: 9")

		Convey("Then nothing should be recorded", func() {
			for _, c := range report.Categories {
				So(r.Values(c), ShouldBeEmpty)
			}
		})
	})

	Convey("Given a four-hash heading naming a category", t, func() {
		r, _ := report.ParseReport("Player Name: Ty\n#### Defense\nPerimeter: 6")

		Convey("Then it should open the section rather than rename the player", func() {
			So(r.PlayerName, ShouldEqual, "Ty")
			So(r.Values(report.Defense), ShouldResemble, []float64{6})
		})
	})

	Convey("Given a bold four-hash heading naming a category", t, func() {
		r, _ := report.ParseReport("Player Name: Jane Doe\n#### **Offense:**\nShooting: 8\nPassing: 6")

		Convey("Then the player name should survive and the section should open", func() {
			So(r.PlayerName, ShouldEqual, "Jane Doe")
			So(r.Values(report.Offense), ShouldResemble, []float64{8, 6})
		})
	})

	Convey("Given an unknown bare section", t, func() {
		avg, ok := report.Parse("Player Name: X\nOffense:\nShooting: 8\nNotes:\nPassing: 2")

		Convey("Then it should reset the current section", func() {
			So(ok, ShouldBeTrue)
			So(avg.Offense.Float(), ShouldEqual, 8.0)
		})
	})

	Convey("Given a bare section header with trailing words", t, func() {
		r, _ := report.ParseReport("Player Name: X\nDefense Ratings:\nInterior: 7\nPerimeter: 5")

		Convey("Then its first token should select the section", func() {
			So(r.Values(report.Defense), ShouldResemble, []float64{7, 5})
		})
	})

	Convey("Given a field left blank inside a section", t, func() {
		r, _ := report.ParseReport("Player Name: X\nOffense:\nShooting:\nPassing: 7")

		Convey("Then the section should stay open for the next field", func() {
			So(r.Values(report.Offense), ShouldResemble, []float64{7})
		})
	})

	Convey("Given values with trailing text", t, func() {
		r, _ := report.ParseReport("Player Name: Bo\nSummary\nPotential Max: 8/10\nPotential Min: .5")

		Convey("Then the leading number should be used", func() {
			So(r.Values(report.Summary), ShouldResemble, []float64{8, 0.5})
		})
	})
}

func TestCategory(t *testing.T) {
	Convey("Given the report categories", t, func() {
		Convey("Then they should have canonical names and allow-lists", func() {
			So(report.Offense.String(), ShouldEqual, "Offense")
			So(report.Summary.String(), ShouldEqual, "Summary")
			So(report.Category(9).String(), ShouldEqual, "Unknown")
			So(report.Physicals.Fields(), ShouldResemble, []string{"Athleticism", "Age", "Height", "Wingspan"})
			So(len(report.Offense.Fields()), ShouldEqual, 5)
		})
	})
}
