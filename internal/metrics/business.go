package metrics

// IncrementContentCreated increments the content creation counter
func (m *Metrics) IncrementContentCreated() {
	m.safeExecute("IncrementContentCreated", func() {
		m.ContentCreatedTotal.Inc()
	})
}

// IncrementProjectCreated increments the project creation counter
func (m *Metrics) IncrementProjectCreated() {
	m.safeExecute("IncrementProjectCreated", func() {
		m.ProjectCreatedTotal.Inc()
	})
}

// SetContentsTotal sets the total contents gauge
func (m *Metrics) SetContentsTotal(count int64) {
	m.safeExecute("SetContentsTotal", func() {
		m.ContentsTotal.Set(float64(count))
	})
}

// SetProjectsTotal sets the total projects gauge
func (m *Metrics) SetProjectsTotal(count int64) {
	m.safeExecute("SetProjectsTotal", func() {
		m.ProjectsTotal.Set(float64(count))
	})
}

// SetActiveBlocksTotal sets the active content blocks gauge
func (m *Metrics) SetActiveBlocksTotal(count int64) {
	m.safeExecute("SetActiveBlocksTotal", func() {
		m.ActiveBlocksTotal.Set(float64(count))
	})
}
