package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BuildDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "citenet_network_build_duration_seconds",
			Help:    "Network build duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"network"},
	)

	BuildTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "citenet_network_builds_total",
			Help: "Total number of network builds",
		},
		[]string{"network", "status"},
	)

	GraphNodes = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "citenet_network_nodes",
			Help: "Node count of the most recent build per network",
		},
		[]string{"network"},
	)

	GraphLinks = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "citenet_network_links",
			Help: "Link count of the most recent build per network",
		},
		[]string{"network"},
	)
)

func Init() {
	prometheus.MustRegister(BuildDuration)
	prometheus.MustRegister(BuildTotal)
	prometheus.MustRegister(GraphNodes)
	prometheus.MustRegister(GraphLinks)
}

func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
