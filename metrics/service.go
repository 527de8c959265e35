package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// Service owns the Prometheus collectors for the tour backend.
type Service struct {
	RequestsTotal       *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
	MatchesRecorded     prometheus.Counter
	NotificationsSent   prometheus.Counter
	NotificationsFailed prometheus.Counter
	ScoreboardClients   prometheus.Gauge
}

// NewHandler returns an http.Handler for the given Gatherer. If no
// gatherer is provided, the default one is used.
func NewHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the collectors. If no registerer is
// provided, the default Prometheus registerer is used.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tour_http_requests_total",
			Help: "The total number of HTTP requests served.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tour_http_request_duration_seconds",
			Help:    "The duration of HTTP requests.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		MatchesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tour_matches_recorded_total",
			Help: "The total number of matches recorded.",
		}),
		NotificationsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tour_notifications_sent_total",
			Help: "The total number of result notifications successfully sent.",
		}),
		NotificationsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tour_notifications_failed_total",
			Help: "The total number of result notifications that failed to send.",
		}),
		ScoreboardClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tour_scoreboard_clients",
			Help: "The number of websocket scoreboard clients currently connected.",
		}),
	}

	reg.MustRegister(
		s.RequestsTotal,
		s.RequestDuration,
		s.MatchesRecorded,
		s.NotificationsSent,
		s.NotificationsFailed,
		s.ScoreboardClients,
	)

	return s
}

func (s *Service) ObserveRequest(method, route string, status int, duration time.Duration) {
	s.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	s.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (s *Service) IncMatchesRecorded() {
	s.MatchesRecorded.Inc()
}

func (s *Service) IncNotificationsSent() {
	s.NotificationsSent.Inc()
}

func (s *Service) IncNotificationsFailed() {
	s.NotificationsFailed.Inc()
}

func (s *Service) SetScoreboardClients(count int) {
	s.ScoreboardClients.Set(float64(count))
}
