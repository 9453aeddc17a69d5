package searcher

import "time"

// MoveMetrics describes one completed search.
type MoveMetrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Episodes   int
	TreeReused bool
}

type MetricsCollector interface {
	Start()
	AddEpisode()
	SetTreeReset(reset bool)
	Complete() MoveMetrics
}

type metricsCollector struct {
	startTime  time.Time
	episodes   int
	treeReused bool
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.episodes = 0
}

func (m *metricsCollector) AddEpisode() {
	m.episodes++
}

func (m *metricsCollector) SetTreeReset(reset bool) {
	m.treeReused = !reset
}

func (m *metricsCollector) Complete() MoveMetrics {
	return MoveMetrics{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Episodes:   m.episodes,
		TreeReused: m.treeReused,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return noMetricsCollector{}
}

func (noMetricsCollector) Start()                {}
func (noMetricsCollector) AddEpisode()           {}
func (noMetricsCollector) SetTreeReset(bool)     {}
func (noMetricsCollector) Complete() MoveMetrics { return MoveMetrics{} }
