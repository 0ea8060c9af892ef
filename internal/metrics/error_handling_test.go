package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var errTest = errors.New("boom")

// Metric recording must never take the request down, even on a half built Metrics
func TestMetricOperationsDoNotPanic(t *testing.T) {
	m := &Metrics{logger: zap.NewNop()}

	ops := map[string]func(){
		"RecordHTTPRequest":      func() { m.RecordHTTPRequest("GET", "/x", 200, time.Second) },
		"RecordDBQuery":          func() { m.RecordDBQuery("query", "reviews", time.Millisecond, errTest) },
		"RecordExternalAPICall":  func() { m.RecordExternalAPICall("http://auth", "POST", 0, time.Second, errTest) },
		"UpdateDBStats":          func() { m.UpdateDBStats(sql.DBStats{OpenConnections: 1}) },
		"IncrementReviewCreated": func() { m.IncrementReviewCreated(ReviewKindReply) },
		"IncrementReaction":      func() { m.IncrementReaction("like") },
		"SetSitesTotal":          func() { m.SetSitesTotal(3) },
		"LiveConnectionOpened":   func() { m.LiveConnectionOpened() },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, op)
		})
	}
}

func TestUpdateDBStats_AddsOnlyGrowth(t *testing.T) {
	m := getTestMetrics()

	m.UpdateDBStats(sql.DBStats{MaxOpenConnections: 25, OpenConnections: 4, InUse: 1, Idle: 3, WaitCount: 5, WaitDuration: 2 * time.Second})
	m.UpdateDBStats(sql.DBStats{MaxOpenConnections: 25, OpenConnections: 6, InUse: 2, Idle: 4, WaitCount: 7, WaitDuration: 3 * time.Second})

	assert.Equal(t, 7.0, getCounterValue(t, m.DBConnectionWaitTotal))
	assert.InDelta(t, 3.0, getCounterValue(t, m.DBConnectionWaitDuration), 0.0001)
	assert.Equal(t, 6.0, getGaugeValue(t, m.DBConnectionsOpen))
	assert.Equal(t, 25.0, getGaugeValue(t, m.DBConnectionsMax))
}

func TestRecordDBQuery(t *testing.T) {
	m := getTestMetrics()

	m.RecordDBQuery("QUERY", "reviews", time.Millisecond, nil)
	m.RecordDBQuery("create", "", time.Millisecond, errTest)

	assert.Equal(t, uint64(1), getHistogramCount(t, m.DBQueryDuration.WithLabelValues("query", "reviews")))
	assert.Equal(t, 1.0, getCounterValue(t, m.DBQueryErrors.WithLabelValues("create", "unknown")))
}

func TestGetErrorType(t *testing.T) {
	tests := []struct {
		name   string
		status int
		err    error
		want   string
	}{
		{"unauthorized", 401, nil, "unauthorized"},
		{"teapot", 418, nil, "client_error"},
		{"bad gateway", 502, nil, "bad_gateway"},
		{"other 5xx", 507, nil, "server_error"},
		{"refused", 0, errors.New("dial tcp: connection refused"), "connection_refused"},
		{"dns", 0, errors.New("lookup auth: no such host"), "dns_error"},
		{"deadline", 0, errors.New("context deadline exceeded"), "timeout"},
		{"reset", 0, errors.New("read: connection reset by peer"), "connection_reset"},
		{"tls", 0, errors.New("x509: certificate signed by unknown authority"), "tls_error"},
		{"other", 0, errors.New("weird"), "network_error"},
		{"nothing", 200, nil, "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getErrorType(tt.status, tt.err))
		})
	}
}

func TestNormalizeEndpoint(t *testing.T) {
	assert.Equal(t, "http://auth/api/users/{id}",
		normalizeEndpoint("http://auth/api/users/123e4567-e89b-12d3-a456-426614174000?expand=1"))
	assert.Equal(t, "http://auth/api/auth/validate", normalizeEndpoint("http://auth/api/auth/validate"))
}

func TestRecordExternalAPICall(t *testing.T) {
	m := getTestMetrics()

	m.RecordExternalAPICall("http://auth/api/auth/validate", "POST", 200, time.Millisecond, nil)
	m.RecordExternalAPICall("http://auth/api/auth/validate", "POST", 401, time.Millisecond, nil)

	assert.Equal(t, 1.0, getCounterValue(t, m.ExternalAPIRequestsTotal.WithLabelValues("http://auth/api/auth/validate", "POST", "200")))
	assert.Equal(t, 1.0, getCounterValue(t, m.ExternalAPIErrors.WithLabelValues("http://auth/api/auth/validate", "unauthorized")))
}
