package metrics

import "time"

// RecordStorageRequest records a file storage call with its outcome
func (m *Metrics) RecordStorageRequest(operation string, duration time.Duration, err error) {
	m.safeExecute("RecordStorageRequest", func() {
		status := "success"
		if err != nil {
			status = "error"
			m.StorageErrors.WithLabelValues(operation, "request_failed").Inc()
		}
		m.StorageRequestsTotal.WithLabelValues(operation, status).Inc()
		m.StorageRequestDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
	})
}
