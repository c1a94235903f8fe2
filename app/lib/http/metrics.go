package http

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts connection outcomes. All methods are safe on a nil
// receiver so callers without a registry can pass nil.
type Metrics struct {
	connectionsTotal prometheus.Counter
	responsesTotal   *prometheus.CounterVec
	parseFailures    *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		connectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "httpd_connections_total",
			Help: "Accepted TCP connections.",
		}),
		responsesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "httpd_responses_total",
			Help: "Responses written, by status code and request method.",
		}, []string{"code", "method"}),
		parseFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "httpd_parse_failures_total",
			Help: "Connections dropped before routing, by failure kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.connectionsTotal, m.responsesTotal, m.parseFailures)
	return m
}

func (m *Metrics) ConnectionAccepted() {
	if m == nil {
		return
	}
	m.connectionsTotal.Inc()
}

func (m *Metrics) responseWritten(status int, method string) {
	if m == nil {
		return
	}
	m.responsesTotal.WithLabelValues(strconv.Itoa(status), method).Inc()
}

func (m *Metrics) parseFailed(err error) {
	if m == nil {
		return
	}
	m.parseFailures.WithLabelValues(parseFailureKind(err)).Inc()
}

func parseFailureKind(err error) string {
	switch {
	case errors.Is(err, ErrMalformedRequestLine):
		return "malformed_request_line"
	case errors.Is(err, ErrMalformedHeader):
		return "malformed_header"
	case errors.Is(err, ErrTruncatedBody):
		return "truncated_body"
	default:
		return "io"
	}
}
