package metrics

// Review kinds used as the "kind" label
const (
	ReviewKindTopLevel = "top_level"
	ReviewKindReply    = "reply"
)

// IncrementReviewCreated increments the review creation counter for kind
func (m *Metrics) IncrementReviewCreated(kind string) {
	m.safeExecute("IncrementReviewCreated", func() {
		m.ReviewCreatedTotal.WithLabelValues(kind).Inc()
	})
}

// IncrementReaction counts a reaction write; action is like, dislike or clear
func (m *Metrics) IncrementReaction(action string) {
	m.safeExecute("IncrementReaction", func() {
		m.ReactionsTotal.WithLabelValues(action).Inc()
	})
}

// IncrementPhotoUploads increments the uploaded photo counter
func (m *Metrics) IncrementPhotoUploads() {
	m.safeExecute("IncrementPhotoUploads", func() {
		m.PhotoUploadsTotal.Inc()
	})
}

// AddPhotosCleaned adds n removed uploads
func (m *Metrics) AddPhotosCleaned(n int) {
	m.safeExecute("AddPhotosCleaned", func() {
		m.PhotosCleanedTotal.Add(float64(n))
	})
}

// SetSitesTotal sets total dive sites gauge
func (m *Metrics) SetSitesTotal(count int64) {
	m.safeExecute("SetSitesTotal", func() {
		m.SitesTotal.Set(float64(count))
	})
}

// SetReviewsTotal sets total reviews gauge
func (m *Metrics) SetReviewsTotal(count int64) {
	m.safeExecute("SetReviewsTotal", func() {
		m.ReviewsTotal.Set(float64(count))
	})
}

// LiveConnectionOpened and LiveConnectionClosed track open WebSocket streams
func (m *Metrics) LiveConnectionOpened() {
	m.safeExecute("LiveConnectionOpened", func() {
		m.LiveConnections.Inc()
	})
}

func (m *Metrics) LiveConnectionClosed() {
	m.safeExecute("LiveConnectionClosed", func() {
		m.LiveConnections.Dec()
	})
}
