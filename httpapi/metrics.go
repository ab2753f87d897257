package httpapi

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics is the set of counters exposed at /metrics. Fields are
// updated with sync/atomic and read the same way, so the struct is
// safe for concurrent handlers.
type Metrics struct {
	// RequestsTotal counts every request that reached /analyze,
	// regardless of outcome.
	RequestsTotal int64

	// AnalysesTotal counts completed clustering runs.
	AnalysesTotal int64

	// URLsAnalyzedTotal accumulates the input sizes of completed runs.
	URLsAnalyzedTotal int64

	// RequestsRejectedBodyTooLargeTotal counts 413 responses.
	RequestsRejectedBodyTooLargeTotal int64

	// RequestErrorsTotal counts 400 and 405 responses.
	RequestErrorsTotal int64
}

// NewMetrics creates a zeroed Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// String renders the counters one per line in key=value form.
func (m *Metrics) String() string {
	var sb strings.Builder
	sb.Grow(256)

	fmt.Fprintf(&sb, "requests_total=%d\n", atomic.LoadInt64(&m.RequestsTotal))
	fmt.Fprintf(&sb, "analyses_total=%d\n", atomic.LoadInt64(&m.AnalysesTotal))
	fmt.Fprintf(&sb, "urls_analyzed_total=%d\n", atomic.LoadInt64(&m.URLsAnalyzedTotal))
	fmt.Fprintf(&sb, "requests_rejected_body_too_large_total=%d\n", atomic.LoadInt64(&m.RequestsRejectedBodyTooLargeTotal))
	fmt.Fprintf(&sb, "request_errors_total=%d\n", atomic.LoadInt64(&m.RequestErrorsTotal))

	return sb.String()
}
