package metrics

import (
	"strconv"
	"strings"
	"time"
)

// RecordHTTPRequest records HTTP request metrics. endpoint should be the
// route template (c.FullPath()) so slugs and ids do not explode cardinality.
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	m.safeExecute("RecordHTTPRequest", func() {
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := categorizeStatus(statusCode)
		m.HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	})
}

// categorizeStatus converts status code to category (2xx, 3xx, 4xx, 5xx)
func categorizeStatus(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return strconv.Itoa(code/100) + "xx"
}

var skippedSuffixes = []string{"/metrics", "/health", "/ready", "/live"}

// ShouldSkipEndpoint reports whether a path is excluded from HTTP metrics:
// probes, the scrape endpoint, swagger assets and long lived WebSocket streams.
func ShouldSkipEndpoint(path string) bool {
	if strings.Contains(path, "/swagger/") {
		return true
	}
	for _, suffix := range skippedSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}
