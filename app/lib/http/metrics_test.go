package http

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ConnectionAccepted()
	m.ConnectionAccepted()
	m.responseWritten(StatusOK, "GET")
	m.parseFailed(ErrTruncatedBody)

	if got := testutil.ToFloat64(m.connectionsTotal); got != 2 {
		t.Errorf("connections counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.responsesTotal.WithLabelValues("200", "GET")); got != 1 {
		t.Errorf("responses counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.parseFailures.WithLabelValues("truncated_body")); got != 1 {
		t.Errorf("parse failures counter = %v, want 1", got)
	}
}

func TestMetrics_NilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	m.ConnectionAccepted()
	m.responseWritten(StatusOK, "GET")
	m.parseFailed(ErrMalformedHeader)
}

func TestParseFailureKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: ErrMalformedRequestLine, want: "malformed_request_line"},
		{err: ErrMalformedHeader, want: "malformed_header"},
		{err: ErrTruncatedBody, want: "truncated_body"},
		{err: errors.New("connection reset"), want: "io"},
	}

	for _, test := range tests {
		if got := parseFailureKind(test.err); got != test.want {
			t.Errorf("parseFailureKind(%v) = %q, want %q", test.err, got, test.want)
		}
	}
}
