package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a private registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "hoopscout")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithCustomLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)
			manager.RecordCalculation("prospect", OutcomeOK, 0.2)

			Convey("Then metric names should carry the namespace and subsystem", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)

				var found bool
				for _, f := range families {
					if f.GetName() == "test_namespace_test_subsystem_calculations_total" {
						found = true
						So(f.GetMetric()[0].GetLabel(), ShouldHaveLength, 3)
					}
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When options receive empty values", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace(""),
				WithHistogramBuckets(nil),
				WithCustomLabels(nil),
				WithPrometheusRegistry(registry),
			)

			Convey("Then defaults should be kept", func() {
				So(manager.namespace, ShouldEqual, "hoopscout")
				So(manager.histogramBuckets, ShouldNotBeEmpty)
				So(manager.constLabels, ShouldBeNil)
			})
		})
	})
}

func TestCalculatorMetrics(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(WithPrometheusRegistry(registry))

		Convey("When calculations are recorded", func() {
			m.RecordCalculation("athleticism", OutcomeOK, 0.1)
			m.RecordCalculation("athleticism", OutcomeOK, 0.3)
			m.RecordCalculation("report", OutcomeEmpty, 1.2)

			Convey("Then they should be counted per calculator and outcome", func() {
				So(testutil.ToFloat64(m.calculations.WithLabelValues("athleticism", OutcomeOK)), ShouldEqual, 2.0)
				So(testutil.ToFloat64(m.calculations.WithLabelValues("report", OutcomeEmpty)), ShouldEqual, 1.0)
			})

			Convey("And latency should be observed", func() {
				So(testutil.CollectAndCount(m.calculationLatency), ShouldEqual, 2)
			})
		})

		Convey("When report fields are dropped", func() {
			m.RecordReportFieldsDropped(3)
			m.RecordReportFieldsDropped(0)
			m.RecordReportFieldsDropped(-1)

			Convey("Then only positive counts should be added", func() {
				So(testutil.ToFloat64(m.reportFieldsDropped), ShouldEqual, 3.0)
			})
		})

		Convey("When a report fails to parse", func() {
			m.RecordReportParseFailure()

			Convey("Then the failure counter should increase", func() {
				So(testutil.ToFloat64(m.reportParseFailures), ShouldEqual, 1.0)
			})
		})
	})
}

func TestGlobalMetrics(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording through package functions", func() {
			So(func() {
				RecordCalculation("prospect", OutcomeInvalid, 0.05)
				RecordReportFieldsDropped(2)
				RecordReportParseFailure()
				RecordHTTPRequest("/prospect", "POST", "200")
				RecordHTTPRequestDuration("/prospect", "POST", "200", 1.5)
				RecordErrorByEndpoint("/report", "POST", "unprocessable")
				UpdateSystemMemoryUsage(1 << 20)
				UpdateSystemGoroutineCount(12)
				RecordSystemGCPauseTime(0.4)
				UpdateBatchQueueSize(3)
				RecordBatchJob(OutcomeFailed)
			}, ShouldNotPanic)

			Convey("Then the custom registry should expose them", func() {
				families, err := GetRegistry().Gather()
				So(err, ShouldBeNil)

				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				joined := strings.Join(names, ",")
				So(joined, ShouldContainSubstring, "hoopscout_calculations_total")
				So(joined, ShouldContainSubstring, "hoopscout_report_fields_dropped_total")
				So(joined, ShouldContainSubstring, "hoopscout_http_requests_total")
				So(joined, ShouldContainSubstring, "hoopscout_system_goroutine_count")
				So(joined, ShouldContainSubstring, "hoopscout_batch_jobs_total")
				So(testutil.ToFloat64(globalManager.batchQueueSize), ShouldEqual, 3.0)
			})
		})
	})
}
