package daemon

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics are registered on a per-service registry so several services can
// coexist in one process.
type metrics struct {
	registry *prometheus.Registry

	CaloriesConsumed prometheus.Gauge
	CalorieBudget    prometheus.Gauge
	CaloriesLeft     prometheus.Gauge
	EntriesToday     prometheus.Gauge
	MacroGrams       *prometheus.GaugeVec
	Polls            prometheus.Counter
	PollErrors       prometheus.Counter
	PollDuration     prometheus.Histogram
	Events           *prometheus.CounterVec
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &metrics{
		registry: reg,

		CaloriesConsumed: f.NewGauge(prometheus.GaugeOpts{
			Name: "kburn_calories_consumed",
			Help: "Calories logged today",
		}),
		CalorieBudget: f.NewGauge(prometheus.GaugeOpts{
			Name: "kburn_calorie_budget",
			Help: "Daily calorie target from the stored profile",
		}),
		CaloriesLeft: f.NewGauge(prometheus.GaugeOpts{
			Name: "kburn_calories_remaining",
			Help: "Calories left in today's budget, floored at zero",
		}),
		EntriesToday: f.NewGauge(prometheus.GaugeOpts{
			Name: "kburn_entries_today",
			Help: "Food entries logged today",
		}),
		MacroGrams: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "kburn_macro_grams",
			Help: "Macronutrient grams logged today",
		}, []string{"macro"}),
		Polls: f.NewCounter(prometheus.CounterOpts{
			Name: "kburn_polls_total",
			Help: "Total number of diary polls",
		}),
		PollErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "kburn_poll_errors_total",
			Help: "Total number of failed diary polls",
		}),
		PollDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "kburn_poll_duration_seconds",
			Help:    "Time spent reading the diary per poll",
			Buckets: prometheus.DefBuckets,
		}),
		Events: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kburn_events_published_total",
			Help: "Total number of published events by type",
		}, []string{"type"}),
	}
}

func (m *metrics) observe(snap Snapshot) {
	m.CaloriesConsumed.Set(float64(snap.Calories))
	m.CalorieBudget.Set(float64(snap.Budget))
	m.CaloriesLeft.Set(float64(snap.Remaining))
	m.EntriesToday.Set(float64(snap.Entries))
	m.MacroGrams.WithLabelValues("protein").Set(snap.Protein)
	m.MacroGrams.WithLabelValues("carbs").Set(snap.Carbs)
	m.MacroGrams.WithLabelValues("fat").Set(snap.Fat)
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
